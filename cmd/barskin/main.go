// Command barskin renders menu bar overlays from appearance files.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/barskin/cmd/barskin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
