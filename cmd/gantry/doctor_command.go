package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gantry/internal/config"
	"gantry/internal/probe"
)

func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Issue a single readiness probe and report the backend state",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Root().PersistentFlags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			prober := probe.NewHTTP(probe.Endpoint{
				Host: cfg.Backend.Host,
				Port: cfg.Backend.Port,
				Path: cfg.Backend.HealthPath,
			})

			stdout := cmd.OutOrStdout()
			result := prober.Check(cmd.Context())
			switch result.State {
			case probe.Ready:
				fmt.Fprintf(stdout, "Backend ready at %s (HTTP %d)\n", prober.BaseURL(), result.StatusCode)
				return nil
			case probe.NotReady:
				return fmt.Errorf("backend at %s is up but not ready (HTTP %d)", prober.BaseURL(), result.StatusCode)
			default:
				return fmt.Errorf("backend at %s is unreachable: %s", prober.BaseURL(), result.Detail)
			}
		},
	}
}
