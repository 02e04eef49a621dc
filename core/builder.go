package core

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/texttuner/texttuner/internal/contract"
	"github.com/texttuner/texttuner/internal/lexicon"
	"github.com/texttuner/texttuner/internal/morph"
)

// NewAnalyzerFromConfig assembles the lexicon and tagger the config asks
// for. The returned cleanup releases the mmap'd POS dictionary, if any, and
// must be called once the analyzer is no longer needed.
func NewAnalyzerFromConfig(ctx context.Context, cfg *contract.Config) (*Analyzer, func(), error) {
	extraFormal, extraInformal, err := loadLexiconExtras(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	lex := lexicon.NewStatic(extraFormal, extraInformal)

	var tagger morph.Tagger
	cleanup := func() {}
	if cfg.POSDictPath != "" {
		dict, err := morph.NewDictTagger(cfg.POSDictPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load POS dictionary: %w", err)
		}
		tagger = dict
		cleanup = func() {
			if err := dict.Close(); err != nil {
				contract.LogWarn("Failed to close POS dictionary", err)
			}
		}
	} else {
		tagger = morph.NewHeuristicTagger()
	}

	return NewAnalyzer(lex, tagger), cleanup, nil
}

// loadLexiconExtras gathers extra formal and informal words from the
// configured word-list files and the optional Redis custom lexicon.
// Missing word-list files are hard errors; an unreachable Redis only
// degrades to the static lexicon with a warning.
func loadLexiconExtras(ctx context.Context, cfg *contract.Config) ([]string, []string, error) {
	var extraFormal, extraInformal []string

	if cfg.FormalWordsPath != "" {
		words, err := lexicon.LoadWordFile(cfg.FormalWordsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load formal words: %w", err)
		}
		extraFormal = append(extraFormal, words...)
	}
	if cfg.InformalWordsPath != "" {
		words, err := lexicon.LoadWordFile(cfg.InformalWordsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load informal words: %w", err)
		}
		extraInformal = append(extraInformal, words...)
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() {
			if err := client.Close(); err != nil {
				contract.LogWarn("Failed to close Redis client", err)
			}
		}()
		dict := lexicon.NewCustomDict(client)

		if words, err := dict.All(ctx, "formal"); err != nil {
			contract.LogWarn("Custom formal lexicon unavailable", err)
		} else {
			extraFormal = append(extraFormal, words...)
		}
		if words, err := dict.All(ctx, "informal"); err != nil {
			contract.LogWarn("Custom informal lexicon unavailable", err)
		} else {
			extraInformal = append(extraInformal, words...)
		}
	}

	return extraFormal, extraInformal, nil
}
