package cmd

import (
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/texttuner/texttuner/internal/contract"
	"github.com/texttuner/texttuner/internal/lexicon"
)

// lexiconDict opens the Redis-backed custom lexicon from config. The caller
// owns the returned close function.
func lexiconDict() (*lexicon.CustomDict, func(), error) {
	if err := loadConfigFile(); err != nil {
		return nil, nil, err
	}

	addr := viper.GetString("redis-addr")
	if addr == "" {
		return nil, nil, fmt.Errorf("--redis-addr is required for lexicon commands")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	return lexicon.NewCustomDict(client), func() { _ = client.Close() }, nil
}

// lexiconCmd manages the custom formal/informal word lists.
var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Manage the custom formal/informal lexicon in Redis",
	Long: `Manage user-supplied words that extend the built-in formality lexicon.

Words are stored in Redis sets per register (formal or informal) and merged
into the analyzer at startup, so additions immediately influence the
formality score of subsequent analyses.

Requires: --redis-addr (or redis-addr in the config file)

Subcommands:
  add    - Add a word to a register
  remove - Remove a word from a register
  list   - List the words in a register

Examples:
  # Teach the analyzer a new formal word
  texttuner lexicon add formal вышеизложенный --redis-addr localhost:6379

  # List the custom informal words
  texttuner lexicon list informal --redis-addr localhost:6379`,
}

// lexiconAddCmd adds a word to a register set.
var lexiconAddCmd = &cobra.Command{
	Use:   "add <formal|informal> <word>",
	Short: "Add a word to the custom lexicon",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		dict, closeDict, err := lexiconDict()
		if err != nil {
			contract.LogFatal("Cannot open custom lexicon", err)
		}
		defer closeDict()

		register, word := args[0], args[1]
		if err := dict.Add(rootCtx, register, word); err != nil {
			contract.LogFatal("Failed to add word", err)
		}
		fmt.Printf("Added %q to the %s lexicon.\n", word, register)
	},
}

// lexiconRemoveCmd removes a word from a register set.
var lexiconRemoveCmd = &cobra.Command{
	Use:   "remove <formal|informal> <word>",
	Short: "Remove a word from the custom lexicon",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		dict, closeDict, err := lexiconDict()
		if err != nil {
			contract.LogFatal("Cannot open custom lexicon", err)
		}
		defer closeDict()

		register, word := args[0], args[1]
		if err := dict.Remove(rootCtx, register, word); err != nil {
			contract.LogFatal("Failed to remove word", err)
		}
		fmt.Printf("Removed %q from the %s lexicon.\n", word, register)
	},
}

// lexiconListCmd lists the words in a register set.
var lexiconListCmd = &cobra.Command{
	Use:   "list <formal|informal>",
	Short: "List the words in the custom lexicon",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		dict, closeDict, err := lexiconDict()
		if err != nil {
			contract.LogFatal("Cannot open custom lexicon", err)
		}
		defer closeDict()

		register := args[0]
		words, err := dict.All(rootCtx, register)
		if err != nil {
			contract.LogFatal("Failed to list words", err)
		}
		if len(words) == 0 {
			fmt.Printf("No custom %s words.\n", register)
			return
		}
		sort.Strings(words)
		for _, w := range words {
			fmt.Println(w)
		}
	},
}
