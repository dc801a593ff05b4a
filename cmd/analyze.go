package cmd

import (
	"github.com/spf13/cobra"

	"insightagent/tui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a local data file in the terminal",
	Long: `Runs the analysis pipeline against a local CSV or Excel file.
Role and tone are picked interactively; the PDF report and audio
summary are written to the current directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, provider, err := setup()
		if err != nil {
			return err
		}
		return tui.Start(cfg, provider, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
