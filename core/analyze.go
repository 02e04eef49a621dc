// Package core has core logic for text analysis, scoring, recommendations
// and rule-based style adaptation.
package core

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/texttuner/texttuner/internal/lexicon"
	"github.com/texttuner/texttuner/internal/morph"
	"github.com/texttuner/texttuner/internal/textproc"
	"github.com/texttuner/texttuner/schema"
)

// MinTextLength is the minimum number of characters, after trimming
// surrounding whitespace, a text must have to be analyzable.
const MinTextLength = 10

// ErrTextTooShort marks input below the minimum analyzable length.
var ErrTextTooShort = errors.New("text is too short for analysis")

// Analyzer computes style metrics for Russian text. The lexicon and the
// profile table are read-only after construction; the Analyzer is safe for
// concurrent use whenever its tagger is.
type Analyzer struct {
	lex    lexicon.Provider
	tagger morph.Tagger
}

// NewAnalyzer creates an Analyzer from a lexicon provider and a tagger.
func NewAnalyzer(lex lexicon.Provider, tagger morph.Tagger) *Analyzer {
	return &Analyzer{lex: lex, tagger: tagger}
}

// Analyze computes the full metric set for one text. It is all-or-nothing:
// either every metric is computed or an error is returned. Tagger failures
// on individual words degrade to the UNKN tag and never surface here.
func (a *Analyzer) Analyze(text string) (*schema.StyleMetrics, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinTextLength {
		return nil, fmt.Errorf("%w: need at least %d characters", ErrTextTooShort, MinTextLength)
	}

	cleaned := textproc.Clean(text)
	words := textproc.TokenizeWords(cleaned)
	sentences := textproc.SplitSentences(cleaned)

	return &schema.StyleMetrics{
		LexicalDiversity:  lexicalDiversity(words),
		FormalityScore:    a.formalityScore(words),
		ReadabilityIndex:  readabilityIndex(sentences, words),
		POSFrequency:      a.posFrequency(words),
		SentenceLengthAvg: sentenceLengthAvg(sentences),
		WordLengthAvg:     wordLengthAvg(words),
	}, nil
}

// Statistics computes the raw counting statistics shown with --detail.
func (a *Analyzer) Statistics(text string) *schema.TextStatistics {
	cleaned := textproc.Clean(text)
	words := textproc.TokenizeWords(cleaned)
	sentences := textproc.SplitSentences(cleaned)

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}

	avgSentence := 0.0
	if len(sentences) > 0 {
		avgSentence = float64(len(words)) / float64(len(sentences))
	}

	return &schema.TextStatistics{
		TotalCharacters: utf8.RuneCountInString(cleaned),
		TotalWords:      len(words),
		TotalSentences:  len(sentences),
		UniqueWords:     len(unique),
		AvgWordLength:   wordLengthAvg(words),
		AvgSentenceLen:  avgSentence,
	}
}

// lexicalDiversity is the type-token ratio: unique words over total words.
func lexicalDiversity(words []string) float64 {
	if len(words) == 0 {
		return 0.0
	}
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	return float64(len(unique)) / float64(len(words))
}

// formalityScore is the formal share among lexicon-matched words.
// Texts with no matches at all sit at the neutral 0.5, including texts
// that tokenize to zero words.
func (a *Analyzer) formalityScore(words []string) float64 {
	var formal, informal int
	for _, w := range words {
		if a.lex.IsFormal(w) {
			formal++
		}
		if a.lex.IsInformal(w) {
			informal++
		}
	}

	total := formal + informal
	if total == 0 {
		return 0.5
	}
	return float64(formal) / float64(total)
}

// readabilityIndex is a Flesch-style index adapted for Russian,
// clamped to [0,100]. Higher means easier to read.
func readabilityIndex(sentences, words []string) float64 {
	if len(sentences) == 0 || len(words) == 0 {
		return 0.0
	}

	avgSentenceLen := float64(len(words)) / float64(len(sentences))
	avgWordLen := wordLengthAvg(words)

	readability := 206.835 - (1.3 * avgSentenceLen) - (60.1 * avgWordLen)
	return max(0.0, min(100.0, readability))
}

// posFrequency tags every word and returns the per-tag share of tokens.
// Words the tagger cannot handle count as UNKN.
func (a *Analyzer) posFrequency(words []string) map[schema.POSTag]float64 {
	if len(words) == 0 {
		return map[schema.POSTag]float64{}
	}

	counts := make(map[schema.POSTag]int)
	for _, w := range words {
		tag, err := a.tagger.Tag(w)
		if err != nil {
			tag = schema.TagUnknown
		}
		counts[tag]++
	}

	freq := make(map[schema.POSTag]float64, len(counts))
	for tag, count := range counts {
		freq[tag] = float64(count) / float64(len(words))
	}
	return freq
}

// sentenceLengthAvg averages per-sentence word counts, skipping sentences
// that tokenize to nothing.
func sentenceLengthAvg(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0.0
	}

	var total, counted int
	for _, s := range sentences {
		n := len(textproc.TokenizeWords(s))
		if n > 0 {
			total += n
			counted++
		}
	}

	if counted == 0 {
		return 0.0
	}
	return float64(total) / float64(counted)
}

// wordLengthAvg averages word lengths in characters.
func wordLengthAvg(words []string) float64 {
	if len(words) == 0 {
		return 0.0
	}
	total := 0
	for _, w := range words {
		total += textproc.WordLength(w)
	}
	return float64(total) / float64(len(words))
}
