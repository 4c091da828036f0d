package main

import (
	"fmt"
	"os"

	"berth/cmd/berth/ui"
	"berth/internal/logging"
	"berth/internal/support/buildinfo"

	"github.com/spf13/cobra"
)

func main() {
	var (
		debug      bool
		configPath string
	)
	if err := logging.Configure(logging.LevelInfo); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "berth",
		Short:         "Run a single versioned service container",
		Version:       buildinfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelInfo
			if debug {
				level = logging.LevelDebug
			}
			if err := logging.Configure(level); err != nil {
				return err
			}
			ui.ConfigureColors()
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to berth.yaml")

	root.AddCommand(runCmd(&configPath))
	root.AddCommand(endCmd(&configPath))
	root.AddCommand(statusCmd(&configPath))
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMsg("%v", err))
		os.Exit(1)
	}
}
