package command

import (
	"fmt"
	"os"

	"smartrx-client/internal/app/services/store"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the smartrx command tree. Every subcommand runs
// against a store wired from the environment.
func NewRootCommand() *cobra.Command {
	app := &application{}
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "smartrx",
		Short:         "SmartRx medication tracker client",
		Long:          "The smartrx command syncs and manages the prescriptions, medications, reminders and profile kept by the SmartRx service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, levelFromEnv := os.LookupEnv("LOGGER_LEVEL")
			if cmd.Flags().Changed("log-level") || !levelFromEnv {
				// Overwrite zap's log level
				if err := os.Setenv("LOGGER_LEVEL", logLevel); err != nil {
					return err
				}
			}

			err := app.start(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			cmd.SetContext(store.NewContext(cmd.Context(), app.Store))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.stop()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "error", "Log Level")

	rootCmd.AddCommand(
		newSyncCmd(app),
		newProfileCmd(app),
		newPrescriptionsCmd(app),
		newFetchCmd(app),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
