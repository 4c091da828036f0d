package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"berth/cmd/berth/ui"
	"berth/config"
	dockerinfra "berth/infra/docker"
	"berth/lifecycle"

	"github.com/spf13/cobra"
)

func statusCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the observed state of the service container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			rt, err := dockerinfra.NewRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			obs, err := lifecycle.Inspect(ctx, rt, cfg.Name)
			if err != nil {
				return err
			}
			if obs.Status == lifecycle.StatusAbsent {
				fmt.Println(ui.WarnMsg("no container named %s", ui.Accent(cfg.Name)))
				return nil
			}

			fmt.Print(ui.KeyValues("",
				ui.KV("name", cfg.Name),
				ui.KV("id", obs.ID),
				ui.KV("status", obs.Status.String()),
			))
			return nil
		},
	}
}
