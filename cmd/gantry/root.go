package main

import (
	"time"

	"github.com/spf13/cobra"

	"gantry/internal/app"
)

func newRootCommand(exitCode *int) *cobra.Command {
	var (
		configFlag   string
		prefsFlag    string
		headlessFlag bool
		noSpawnFlag  bool
		retriesFlag  int
		delayMSFlag  int
	)

	rootCmd := &cobra.Command{
		Use:           "gantry",
		Short:         "Launch the backend and open the application once it is ready",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.Options{
				ConfigPath:  configFlag,
				PrefsPath:   prefsFlag,
				Headless:    headlessFlag,
				NoSpawn:     noSpawnFlag,
				MaxAttempts: retriesFlag,
				Out:         cmd.OutOrStdout(),
			}
			if delayMSFlag > 0 {
				opts.RetryDelay = time.Duration(delayMSFlag) * time.Millisecond
			}

			code, err := app.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			*exitCode = code
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&prefsFlag, "prefs", "", "Preferences file path")
	rootCmd.Flags().BoolVar(&headlessFlag, "headless", false, "Wait for the backend without the TUI")
	rootCmd.Flags().BoolVar(&noSpawnFlag, "no-spawn", false, "Attach to an already-running backend instead of spawning one")
	rootCmd.Flags().IntVar(&retriesFlag, "retries", 0, "Override the readiness retry budget")
	rootCmd.Flags().IntVar(&delayMSFlag, "delay", 0, "Override the inter-attempt delay in milliseconds")

	rootCmd.AddCommand(newDoctorCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
