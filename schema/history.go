package schema

import "time"

// HistoryRun is one recorded analysis run in the history store.
type HistoryRun struct {
	RunID      int64     `json:"run_id"`
	AnalyzedAt time.Time `json:"analyzed_at"`
	SourcePath string    `json:"source_path,omitempty"`
	Style      StyleName `json:"style"`
	Similarity float64   `json:"similarity"`

	LexicalDiversity  float64 `json:"lexical_diversity"`
	FormalityScore    float64 `json:"formality_score"`
	ReadabilityIndex  float64 `json:"readability_index"`
	SentenceLengthAvg float64 `json:"sentence_length_avg"`
	WordLengthAvg     float64 `json:"word_length_avg"`
}

// HistoryStatus summarizes the state of the history store.
type HistoryStatus struct {
	Backend   DatabaseBackend `json:"backend"`
	Location  string          `json:"location,omitempty"`
	TotalRuns int64           `json:"total_runs"`
}
