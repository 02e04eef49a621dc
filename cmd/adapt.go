package cmd

import (
	"github.com/spf13/cobra"
	"github.com/texttuner/texttuner/core"
)

// adaptCmd rewrites text toward a target style.
var adaptCmd = &cobra.Command{
	Use:   "adapt [file]",
	Short: "Rewrite text toward a target style.",
	Long: `Apply rule-based substitutions that push a Russian text toward the target style.

The text is analyzed first; each rule has a metric guard and only fires when
the text actually needs it. Rules cover personal pronoun replacement,
punctuation normalization and register-specific vocabulary swaps.

The output shows the original, the adapted text and which rules fired,
plus the similarity of the original so you can re-run analyze on the
result to measure improvement.

Examples:
  # Make an informal draft read like a scientific paper
  texttuner adapt draft.txt --style scientific

  # Adapt inline text to the official-business register
  texttuner adapt --text "Я думаю, надо сделать отчет." --style official-business

  # Get the adaptation as JSON for further processing
  texttuner adapt draft.txt --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot run adaptation", core.ExecuteAdapt)
	},
}
