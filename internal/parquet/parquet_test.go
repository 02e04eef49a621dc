package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/texttuner/texttuner/schema"
)

func sampleRuns() []HistoryRun {
	now := time.Now()
	essayPath := "docs/essay.txt"
	reportPath := "reports/q3.txt"

	return []HistoryRun{
		{
			RunID:             1,
			AnalyzedAt:        now.Add(-2 * time.Hour),
			SourcePath:        &essayPath,
			Style:             "scientific",
			Similarity:        0.82,
			LexicalDiversity:  0.71,
			FormalityScore:    0.65,
			ReadabilityIndex:  34.2,
			SentenceLengthAvg: 18.5,
			WordLengthAvg:     7.1,
		},
		{
			RunID:             2,
			AnalyzedAt:        now.Add(-1 * time.Hour),
			SourcePath:        &reportPath,
			Style:             "official-business",
			Similarity:        0.91,
			LexicalDiversity:  0.55,
			FormalityScore:    0.88,
			ReadabilityIndex:  28.0,
			SentenceLengthAvg: 21.0,
			WordLengthAvg:     8.3,
		},
		{
			RunID:             3,
			AnalyzedAt:        now,
			SourcePath:        nil, // inline text, no file
			Style:             "colloquial",
			Similarity:        0.47,
			LexicalDiversity:  0.62,
			FormalityScore:    0.12,
			ReadabilityIndex:  78.4,
			SentenceLengthAvg: 6.2,
			WordLengthAvg:     4.8,
		},
	}
}

func TestHistoryRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	fileSchema := parquet.SchemaOf(new(HistoryRun))
	require.NotNil(t, fileSchema)

	expectedColumns := []string{
		"run_id",
		"analyzed_at",
		"source_path",
		"style",
		"similarity",
		"lexical_diversity",
		"formality_score",
		"readability_index",
		"sentence_length_avg",
		"word_length_avg",
	}

	for _, colName := range expectedColumns {
		col, ok := fileSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteHistoryRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "runs.parquet")

	data := sampleRuns()
	err := WriteHistoryRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[HistoryRun](file)
	defer reader.Close()

	readData := make([]HistoryRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].RunID, readData[i].RunID, "RunID should match")
		assert.Equal(t, data[i].Style, readData[i].Style, "Style should match")
		assert.WithinDuration(t, data[i].AnalyzedAt, readData[i].AnalyzedAt, time.Nanosecond, "AnalyzedAt should match within nanosecond precision")
		assert.InDelta(t, data[i].Similarity, readData[i].Similarity, 0.001, "Similarity should match")
		assert.InDelta(t, data[i].LexicalDiversity, readData[i].LexicalDiversity, 0.001, "LexicalDiversity should match")
		assert.InDelta(t, data[i].FormalityScore, readData[i].FormalityScore, 0.001, "FormalityScore should match")
		assert.InDelta(t, data[i].ReadabilityIndex, readData[i].ReadabilityIndex, 0.01, "ReadabilityIndex should match")
		assert.InDelta(t, data[i].SentenceLengthAvg, readData[i].SentenceLengthAvg, 0.01, "SentenceLengthAvg should match")
		assert.InDelta(t, data[i].WordLengthAvg, readData[i].WordLengthAvg, 0.01, "WordLengthAvg should match")

		// Check nullable SourcePath field
		if data[i].SourcePath == nil {
			assert.Nil(t, readData[i].SourcePath, "SourcePath should be nil")
		} else {
			require.NotNil(t, readData[i].SourcePath, "SourcePath should not be nil")
			assert.Equal(t, *data[i].SourcePath, *readData[i].SourcePath, "SourcePath should match")
		}
	}
}

func TestWriteHistoryRunsParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_runs.parquet")

	err := WriteHistoryRunsParquet([]HistoryRun{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteHistoryRunsParquet_InvalidPath(t *testing.T) {
	err := WriteHistoryRunsParquet(sampleRuns(), "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestConvertHistoryRuns(t *testing.T) {
	now := time.Now()
	records := []schema.HistoryRun{
		{
			RunID:             7,
			AnalyzedAt:        now,
			SourcePath:        "letters/formal.txt",
			Style:             schema.ScientificStyle,
			Similarity:        0.73,
			LexicalDiversity:  0.64,
			FormalityScore:    0.8,
			ReadabilityIndex:  40.0,
			SentenceLengthAvg: 17.0,
			WordLengthAvg:     6.9,
		},
		{
			RunID:      8,
			AnalyzedAt: now,
			SourcePath: "", // inline analysis
			Style:      schema.LiteraryStyle,
			Similarity: 0.52,
		},
	}

	converted := ConvertHistoryRuns(records)
	require.Len(t, converted, 2)

	assert.Equal(t, int64(7), converted[0].RunID)
	assert.Equal(t, "scientific", converted[0].Style)
	require.NotNil(t, converted[0].SourcePath)
	assert.Equal(t, "letters/formal.txt", *converted[0].SourcePath)
	assert.InDelta(t, 0.73, converted[0].Similarity, 0.001)

	assert.Equal(t, int64(8), converted[1].RunID)
	assert.Equal(t, "literary", converted[1].Style)
	assert.Nil(t, converted[1].SourcePath, "Empty source path should convert to nil")
}
