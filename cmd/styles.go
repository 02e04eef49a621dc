package cmd

import (
	"github.com/spf13/cobra"
	"github.com/texttuner/texttuner/core"
)

// stylesCmd lists the configured style profiles.
var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the style profiles with their metric targets.",
	Long: `Show every configured style profile and its per-metric targets.

For each style the table lists the target value, weight and tolerance of
each metric. Values reflect any overrides from the config file, so this
is also the way to verify a custom profile tweak took effect.

Examples:
  # Show all profiles
  texttuner styles

  # Dump the profile table as JSON
  texttuner styles --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot list styles", core.ExecuteStyles)
	},
}
