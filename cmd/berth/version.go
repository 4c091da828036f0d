package main

import (
	"fmt"
	"runtime"

	"berth/internal/support/buildinfo"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the berth version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("berth %s (%s, %s/%s)\n",
				buildinfo.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
