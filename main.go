// Insight Agent, an AI data analysis dashboard.
//
// Entry point: initializes the Cobra root command and starts the web
// dashboard by default (no subcommand required).
package main

import (
	"os"

	"insightagent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
