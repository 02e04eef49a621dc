// Package cmd defines the command-line interface for texttuner.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/texttuner/texttuner/internal/contract"
	"github.com/texttuner/texttuner/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(adaptCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(lexiconCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the lexicon subcommands to the parent lexicon command
	lexiconCmd.AddCommand(lexiconAddCmd)
	lexiconCmd.AddCommand(lexiconRemoveCmd)
	lexiconCmd.AddCommand(lexiconListCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("text", "t", "", "Analyze inline text instead of a file")
	rootCmd.PersistentFlags().StringP("style", "s", string(schema.ScientificStyle), "Target style: scientific, literary, official-business or colloquial")
	rootCmd.PersistentFlags().Bool("detail", false, "Print the text statistics block (word, sentence and POS counts)")
	rootCmd.PersistentFlags().Bool("explain", false, "Print per-metric deviation details (absolute/relative diff, weight)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display in batch mode")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers for batch mode")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Int("max-file-size", contract.DefaultMaxFileSizeMB, "Maximum input file size in megabytes")
	rootCmd.PersistentFlags().String("pos-dict", "", "Path to a word<TAB>tag dictionary file for the morphological tagger")
	rootCmd.PersistentFlags().String("formal-words", "", "Path to an extra formal word list file")
	rootCmd.PersistentFlags().String("informal-words", "", "Path to an extra informal word list file")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis address for the custom lexicon (e.g., localhost:6379); empty disables")
	rootCmd.PersistentFlags().String("history-backend", string(schema.SQLiteBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql run tracking")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
