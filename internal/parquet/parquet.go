// Package parquet provides data structures and functions for exporting
// recorded analysis runs to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/texttuner/texttuner/schema"
)

// HistoryRun represents a single recorded style analysis run.
// This struct maps to the texttuner_runs database table.
type HistoryRun struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// AnalyzedAt is when the analysis ran (stored as TIMESTAMP with nanosecond precision)
	AnalyzedAt time.Time `parquet:"analyzed_at,snappy"`

	// SourcePath is the path of the analyzed file (nullable, nil for inline text)
	SourcePath *string `parquet:"source_path,optional,snappy"`

	// Style is the profile the text was scored against
	Style string `parquet:"style,snappy"`

	// Similarity is the overall similarity score in [0, 1]
	Similarity float64 `parquet:"similarity,snappy"`

	// LexicalDiversity is the unique-to-total word ratio
	LexicalDiversity float64 `parquet:"lexical_diversity,snappy"`

	// FormalityScore is the formal vocabulary share in [0, 1]
	FormalityScore float64 `parquet:"formality_score,snappy"`

	// ReadabilityIndex is the Flesch-style readability value in [0, 100]
	ReadabilityIndex float64 `parquet:"readability_index,snappy"`

	// SentenceLengthAvg is the mean sentence length in words
	SentenceLengthAvg float64 `parquet:"sentence_length_avg,snappy"`

	// WordLengthAvg is the mean word length in runes
	WordLengthAvg float64 `parquet:"word_length_avg,snappy"`
}

// WriteHistoryRunsParquet writes a slice of HistoryRun structs to a Parquet file.
func WriteHistoryRunsParquet(data []HistoryRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the HistoryRun struct tags
	writer := parquet.NewGenericWriter[HistoryRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertHistoryRuns converts schema.HistoryRun to HistoryRun for Parquet export.
// Empty source paths become nil so inline analyses export as null cells.
func ConvertHistoryRuns(records []schema.HistoryRun) []HistoryRun {
	result := make([]HistoryRun, len(records))
	for i, record := range records {
		var sourcePath *string
		if record.SourcePath != "" {
			path := record.SourcePath
			sourcePath = &path
		}
		result[i] = HistoryRun{
			RunID:             record.RunID,
			AnalyzedAt:        record.AnalyzedAt,
			SourcePath:        sourcePath,
			Style:             string(record.Style),
			Similarity:        record.Similarity,
			LexicalDiversity:  record.LexicalDiversity,
			FormalityScore:    record.FormalityScore,
			ReadabilityIndex:  record.ReadabilityIndex,
			SentenceLengthAvg: record.SentenceLengthAvg,
			WordLengthAvg:     record.WordLengthAvg,
		}
	}
	return result
}
