// Package cmd holds the portfolio command line.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/HSL-2003/portfolio/internal/config"
)

// app is the state shared by subcommands once the root has loaded it.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve Hoang Son Lam's portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Log.NewLogger(cmd.ErrOrStderr())
			return nil
		},
	}
	root.AddCommand(newServeCommand(a), newCheckCommand(a))
	return root
}
