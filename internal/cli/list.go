package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/queryops/queryops-golang"
)

func (r *root) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the whole operator table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := r.conf.GetString("format")
			r.log.Debug("Listing operators", "format", format)
			return r.formats.Output(cmd.OutOrStdout(), format, queryops.Table())
		},
	}
	cmd.Flags().StringP("format", "o", "json", fmt.Sprintf("Output format (%s)", strings.Join(r.formats.Names(), ", ")))
	_ = r.conf.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}
