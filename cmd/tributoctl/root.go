package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tributo/internal/config"
	"tributo/internal/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "tributoctl",
	Short:         "Operator CLI for the IVA settlement engine",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := logger.SetupWriter(loaded.Log, cmd.ErrOrStderr()); err != nil {
			return fmt.Errorf("setting up logger: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		l := logger.WithComponent("cmd")
		l.Error().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newSettleCmd())
	rootCmd.AddCommand(newTokenCmd())
}
