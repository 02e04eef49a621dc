package cmd

import (
	"github.com/spf13/cobra"
	"github.com/texttuner/texttuner/core"
)

// analyzeCmd performs single-text style analysis.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze text style against a target profile.",
	Long: `Measure the style metrics of a Russian text and score them against a style profile.

Computes five metrics over the cleaned text:
- Lexical diversity (unique-to-total word ratio)
- Formality score (formal vs informal vocabulary share)
- Readability index (Flesch-style, adapted for Russian)
- Average sentence length in words
- Average word length in characters

Each metric is compared against the target profile. The weighted similarity
score in [0, 1] tells you how close the text is to the style, and
recommendations explain how to close the gap.

Examples:
  # Analyze a file against the scientific profile
  texttuner analyze essay.txt --style scientific

  # Analyze inline text
  texttuner analyze --text "Данный метод показывает высокую точность." --style official-business

  # Include text statistics and per-metric deviation details
  texttuner analyze essay.txt --detail --explain

  # Export the deviation table to CSV
  texttuner analyze essay.txt --output csv --output-file report.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot run analysis", core.ExecuteAnalyze)
	},
}
