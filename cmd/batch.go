package cmd

import (
	"github.com/spf13/cobra"
	"github.com/texttuner/texttuner/core"
)

// batchCmd analyzes a directory of text files.
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyze every .txt file in a directory, ranked by similarity.",
	Long: `Analyze all .txt files under a directory against the target style profile.

Files are processed in parallel by a bounded worker pool and ranked by
similarity, best match first. Files that cannot be read or are too short
are reported as failures without aborting the rest of the batch.

Examples:
  # Rank a corpus of essays by closeness to the literary style
  texttuner batch ./essays --style literary

  # Limit the table to the top 10 files with full metric columns
  texttuner batch ./essays --limit 10 --detail

  # Export the ranking to CSV
  texttuner batch ./essays --output csv --output-file ranking.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot run batch analysis", core.ExecuteBatch)
	},
}
