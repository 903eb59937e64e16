package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/queryops/queryops-golang"
)

const textOperatorsPrefix = "TextOperators."

func (r *root) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME...",
		Short: "Print the token for each operator name",
		Long:  "Print the token for each operator name, one per line. Text search options are addressed as TextOperators.NAME.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				token, err := lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), token)
			}
			return nil
		},
	}
}

func lookup(name string) (string, error) {
	if opt, found := strings.CutPrefix(name, textOperatorsPrefix); found {
		if tok, ok := queryops.LookupTextOption(opt); ok {
			return tok.String(), nil
		}
	} else if op, ok := queryops.Lookup(name); ok {
		return op.String(), nil
	}
	return "", fmt.Errorf("%w: %q", queryops.ErrUnknownKey, name)
}
