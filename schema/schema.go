// Package schema has configs, models and global variables for all parts of texttuner.
package schema

import "time"

// StyleMetrics holds the stylistic characteristics computed for one text.
// It is created once per analysis by the metric engine and never mutated
// after creation.
type StyleMetrics struct {
	LexicalDiversity  float64            `json:"lexical_diversity"`   // Type-token ratio in [0,1]
	FormalityScore    float64            `json:"formality_score"`     // Formal-lexicon share in [0,1], 0.5 when no signal
	ReadabilityIndex  float64            `json:"readability_index"`   // Cyrillic-adapted Flesch value clamped to [0,100]
	POSFrequency      map[POSTag]float64 `json:"pos_frequency"`       // Per-tag share of word tokens, sums to ~1
	SentenceLengthAvg float64            `json:"sentence_length_avg"` // Mean sentence length in words
	WordLengthAvg     float64            `json:"word_length_avg"`     // Mean word length in characters
}

// Value returns the metric value for a scalar metric key. POS frequencies
// are addressed separately and report ok=false here.
func (m *StyleMetrics) Value(key MetricKey) (float64, bool) {
	switch key {
	case MetricLexicalDiversity:
		return m.LexicalDiversity, true
	case MetricFormalityScore:
		return m.FormalityScore, true
	case MetricReadabilityIndex:
		return m.ReadabilityIndex, true
	case MetricSentenceLengthAvg:
		return m.SentenceLengthAvg, true
	case MetricWordLengthAvg:
		return m.WordLengthAvg, true
	default:
		return 0, false
	}
}

// TextStatistics holds raw counting statistics for a text, shown with --detail.
// Encoding is only set for file input, where the source encoding is known.
type TextStatistics struct {
	Encoding        string  `json:"encoding,omitempty"`
	TotalCharacters int     `json:"total_characters"`
	TotalWords      int     `json:"total_words"`
	TotalSentences  int     `json:"total_sentences"`
	UniqueWords     int     `json:"unique_words"`
	AvgWordLength   float64 `json:"avg_word_length"`
	AvgSentenceLen  float64 `json:"avg_sentence_length"`
}

// MetricTarget is one per-metric entry inside a style profile.
// Weights need not sum to 1 across metrics; the scorer normalizes.
type MetricTarget struct {
	Target    float64 `json:"target"`
	Weight    float64 `json:"weight"`
	Tolerance float64 `json:"tolerance"`
}

// StyleProfile is a named target configuration for one writing style.
// Profiles are built once at startup and read-only afterwards.
type StyleProfile struct {
	Name          StyleName                  `json:"name"`
	Description   string                     `json:"description"`
	TargetMetrics map[MetricKey]MetricTarget `json:"target_metrics"`
}

// DeviationRecord is the per-metric comparison of a computed value against
// its profile target. Records are derived on every comparison and never
// persisted independently of their analysis.
type DeviationRecord struct {
	Current         float64 `json:"current"`
	Target          float64 `json:"target"`
	AbsoluteDiff    float64 `json:"absolute_diff"`
	RelativeDiff    float64 `json:"relative_diff"`
	WithinTolerance bool    `json:"within_tolerance"`
	Tolerance       float64 `json:"tolerance"`
	Weight          float64 `json:"weight"`
}

// AnalysisResult aggregates everything produced by one analysis call.
type AnalysisResult struct {
	Text            string                        `json:"text"`
	SourcePath      string                        `json:"source_path,omitempty"`
	TargetStyle     StyleName                     `json:"target_style"`
	Metrics         *StyleMetrics                 `json:"metrics"`
	Statistics      *TextStatistics               `json:"statistics,omitempty"`
	Deviations      map[MetricKey]DeviationRecord `json:"deviations"`
	Similarity      float64                       `json:"similarity"`
	Recommendations []string                      `json:"recommendations"`
	AnalyzedAt      time.Time                     `json:"analyzed_at"`
}

// AdaptationResult pairs the original text with its rule-based rewrite.
type AdaptationResult struct {
	Original     string          `json:"original"`
	Adapted      string          `json:"adapted"`
	AppliedRules []string        `json:"applied_rules"`
	Analysis     *AnalysisResult `json:"analysis"`
}

// BatchEntry is the outcome of analyzing a single file in batch mode.
// Failed files carry an error message instead of a result.
type BatchEntry struct {
	Name   string          `json:"name"`
	Result *AnalysisResult `json:"result,omitempty"`
	Err    string          `json:"error,omitempty"`
}
