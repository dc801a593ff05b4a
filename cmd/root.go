// Package cmd contains all Cobra commands for insightagent.
//
// The root command starts the web dashboard directly; the analyze
// subcommand runs the same pipeline against a local file in the
// terminal.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"insightagent/ai"
	"insightagent/applog"
	"insightagent/config"
	"insightagent/server"
)

var rootCmd = &cobra.Command{
	Use:   "insightagent",
	Short: "AI data analysis dashboard",
	Long: `Insight Agent turns a CSV or Excel table into a narrative analysis:
  • Web dashboard with upload form and interactive charts
  • Model-authored insights, chart picks and a regression suggestion
  • PDF report and spoken summary

Run 'insightagent' to start the dashboard, or
'insightagent analyze <file>' for terminal mode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, provider, err := setup()
		if err != nil {
			return err
		}
		return server.New(cfg, provider).Start()
	},
}

// setup loads configuration and builds the model provider, shared by
// the root and analyze commands.
func setup() (config.Config, ai.Provider, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	provider, err := ai.NewProvider(cfg.AI)
	if err != nil {
		return config.Config{}, nil, err
	}
	applog.Info("starting with provider %s", provider.Name())
	return cfg, provider, nil
}

// Execute runs the root command.
func Execute() error {
	defer applog.Close()
	return rootCmd.Execute()
}
