// Command outcomecheck evaluates outcome matcher scenarios.
package main

import (
	"fmt"
	"os"

	"digital.vasic.outcomes/internal/cli"
	"digital.vasic.outcomes/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
