package cmd

import (
	"fmt"

	"github.com/go-drift/barskin/pkg/appearance"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the barskin version and the appearance file version it reads.",
		Usage: "barskin version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}

func printVersion() {
	fmt.Fprintf(stdout, "barskin version %s (built %s)\n", Version, BuildTime)
	fmt.Fprintf(stdout, "appearance file version %s\n", appearance.CurrentVersion)
}
