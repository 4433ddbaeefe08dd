// main is the entry point for the powertrack CLI.
package main

import (
	"fmt"
	"os"

	"github.com/powertrackhq/powertrack/cmd"
	"github.com/powertrackhq/powertrack/internal/iocache"
)

func main() {
	// Wire the global store manager into the command layer before any
	// command runs.
	cmd.SetCacheManager(iocache.Manager)
	defer iocache.CloseStores()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		iocache.CloseStores()
		os.Exit(1)
	}
}
