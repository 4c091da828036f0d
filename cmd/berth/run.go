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

	"github.com/containerd/errdefs"
	"github.com/spf13/cobra"
)

func runCmd(configPath *string) *cobra.Command {
	var (
		versionTag string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Converge the service container onto the configured image version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if versionTag != "" {
				cfg.Version = versionTag
			}
			if port != 0 {
				cfg.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			spec, err := lifecycle.NewSpec(cfg.Name, cfg.Version, cfg.Port)
			if err != nil {
				return err
			}

			rt, err := dockerinfra.NewRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := lifecycle.NewReconciler(rt, cfg.Name).Run(ctx, spec); err != nil {
				if errdefs.IsConflict(err) {
					return fmt.Errorf("%w (the previous container may still be mid-removal; retry in a moment)", err)
				}
				return err
			}

			fmt.Println(ui.SuccessMsg("%s is running %s on port %d",
				ui.Accent(cfg.Name), ui.Accent(spec.Image), cfg.Port))
			return nil
		},
	}
	cmd.Flags().StringVar(&versionTag, "version-tag", "", "Override the configured image version")
	cmd.Flags().IntVar(&port, "port", 0, "Override the configured port")
	return cmd
}
