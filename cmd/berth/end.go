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

func endCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "Stop and remove the service container",
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

			stopped, err := lifecycle.NewReconciler(rt, cfg.Name).End(ctx)
			if err != nil {
				return err
			}
			if !stopped {
				fmt.Println(ui.WarnMsg("no application is running"))
				return nil
			}

			fmt.Println(ui.SuccessMsg("%s stopped and removed", ui.Accent(cfg.Name)))
			return nil
		},
	}
}
