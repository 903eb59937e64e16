// Package cli implements the queryops command.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"github.com/queryops/queryops-golang"
	"github.com/queryops/queryops-golang/internal/output"
)

const envPrefix = "QUERYOPS"

type root struct {
	conf    *viper.Viper
	formats *output.Formatter
	stderr  io.Writer
	log     *slog.Logger
}

// New returns the root queryops command. Diagnostics go to stderr.
func New(stderr io.Writer) *cobra.Command {
	r := &root{
		conf:    viper.New(),
		formats: output.Default(),
		stderr:  stderr,
	}
	r.conf.SetEnvPrefix(envPrefix)
	r.conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	r.conf.AutomaticEnv()

	cmd := &cobra.Command{
		Use:               "queryops",
		Short:             "Print MongoDB query operator tokens",
		Long:              "queryops prints the MongoDB query operators known to the queryops package, by symbolic name.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}
	cmd.SetErr(stderr)
	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	_ = r.conf.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(r.listCmd(), r.getCmd())
	return cmd
}

func (r *root) setup(*cobra.Command, []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(r.conf.GetString("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	r.log = slog.New(slog.NewTextHandler(r.stderr, &slog.HandlerOptions{Level: level}))
	queryops.SetLogger(r.log)
	return nil
}

// Execute runs the queryops command with os.Args and returns the exit
// status.
func Execute() int {
	cmd := New(os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
