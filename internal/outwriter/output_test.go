package outwriter

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/texttuner/texttuner/internal/contract"
	"github.com/texttuner/texttuner/schema"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Precision: 3,
		Output:    schema.TextOut,
		Workers:   4,
		Width:     120,
		Profiles:  schema.GetDefaultProfiles(),
	}
}

func testAnalysisResult() *schema.AnalysisResult {
	metrics := &schema.StyleMetrics{
		LexicalDiversity:  0.72,
		FormalityScore:    0.81,
		ReadabilityIndex:  42.0,
		SentenceLengthAvg: 14.5,
		WordLengthAvg:     6.4,
		POSFrequency: map[schema.POSTag]float64{
			schema.TagNoun: 0.6,
			schema.TagVerb: 0.4,
		},
	}
	return &schema.AnalysisResult{
		Text:        "Тестовый текст для отчета.",
		TargetStyle: schema.ScientificStyle,
		Metrics:     metrics,
		Deviations: map[schema.MetricKey]schema.DeviationRecord{
			schema.MetricLexicalDiversity: {
				Current: 0.72, Target: 0.7, AbsoluteDiff: 0.02, RelativeDiff: 0.028,
				WithinTolerance: true, Tolerance: 0.1, Weight: 0.2,
			},
			schema.MetricFormalityScore: {
				Current: 0.81, Target: 0.8, AbsoluteDiff: 0.01, RelativeDiff: 0.0125,
				WithinTolerance: true, Tolerance: 0.05, Weight: 0.3,
			},
		},
		Similarity:      0.92,
		Recommendations: []string{"Первый совет.", "Второй совет."},
		AnalyzedAt:      time.Now(),
	}
}

func TestWriteAnalysisReport(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	cfg := testConfig()
	result := testAnalysisResult()
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeAnalysisReport(&buf, result, cfg, fmtFloat, 5*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "scientific")
	assert.Contains(t, out, "Lexical diversity")
	assert.Contains(t, out, "0.920")
	assert.Contains(t, out, "Excellent")
	assert.Contains(t, out, "Первый совет.")
	assert.NotContains(t, out, "Text statistics")
}

func TestWriteAnalysisReportDetail(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	cfg := testConfig()
	cfg.Detail = true
	cfg.Explain = true
	result := testAnalysisResult()
	result.Statistics = &schema.TextStatistics{
		TotalCharacters: 120,
		TotalWords:      22,
		TotalSentences:  3,
		UniqueWords:     20,
		AvgWordLength:   6.4,
		AvgSentenceLen:  7.3,
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeAnalysisReport(&buf, result, cfg, fmtFloat, time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Text statistics")
	assert.Contains(t, out, "Words: 22 (unique: 20)")
	assert.Contains(t, out, "NOUN")
	assert.Contains(t, out, "RelDiff")
}

func TestWriteAnalysisCSV(t *testing.T) {
	result := testAnalysisResult()
	fmtFloat, _ := createFormatters(3)

	var buf bytes.Buffer
	err := writeAnalysisCSV(&buf, result, fmtFloat)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "metric,current,target")
	assert.Contains(t, out, "lexical_diversity,0.720,0.700")
	assert.Contains(t, out, "similarity,0.920")
}

func TestWriteBatchTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	cfg := testConfig()
	entries := []schema.BatchEntry{
		{Name: "good.txt", Result: testAnalysisResult()},
		{Name: "broken.txt", Err: "file not found: broken.txt"},
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeBatchTable(&buf, entries, cfg, fmtFloat, 12*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "good.txt")
	assert.Contains(t, out, "broken.txt")
	assert.Contains(t, out, "Failed broken.txt: file not found")
	assert.Contains(t, out, "Showing 2 files (1 failed)")
}

func TestWriteBatchCSV(t *testing.T) {
	entries := []schema.BatchEntry{
		{Name: "good.txt", Result: testAnalysisResult()},
		{Name: "broken.txt", Err: "unreadable"},
	}
	fmtFloat, _ := createFormatters(3)

	var buf bytes.Buffer
	err := writeBatchCSV(&buf, entries, fmtFloat)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "1,good.txt,0.920,Excellent")
	assert.Contains(t, out, "unreadable")
}

func TestWriteBatchJSON(t *testing.T) {
	entries := []schema.BatchEntry{{Name: "good.txt", Result: testAnalysisResult()}}

	var buf bytes.Buffer
	err := writeBatchJSON(&buf, entries)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"rank": 1`)
	assert.Contains(t, out, `"label": "Excellent"`)
}

func TestWriteStylesTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	cfg := testConfig()
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeStylesTable(&buf, cfg, fmtFloat)
	require.NoError(t, err)

	out := buf.String()
	for _, style := range schema.AllStyles {
		assert.Contains(t, out, string(style))
	}
	assert.Contains(t, out, "Научный стиль")
}

func TestWriteStylesCSV(t *testing.T) {
	cfg := testConfig()
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeStylesCSV(&buf, cfg, fmtFloat)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "scientific,lexical_diversity,0.700,0.200,0.100")
	assert.Contains(t, out, "colloquial,word_length_avg")
}

func TestWriteAdaptationReport(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	cfg := testConfig()
	result := &schema.AdaptationResult{
		Original:     "Я думаю, что это очень важно!",
		Adapted:      "автор думаю, что это значительно важно.",
		AppliedRules: []string{"Замена местоимения \"я\" на безличную форму"},
		Analysis:     testAnalysisResult(),
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeAdaptationReport(&buf, result, cfg, fmtFloat, time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Original:")
	assert.Contains(t, out, "Adapted:")
	assert.Contains(t, out, "Замена местоимения")
	assert.Contains(t, out, "Original similarity: 0.920")
}

func TestWriteHistoryTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	cfg := testConfig()
	runs := []schema.HistoryRun{
		{RunID: 2, AnalyzedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), Style: schema.ScientificStyle, Similarity: 0.9},
		{RunID: 1, AnalyzedAt: time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC), SourcePath: "doc.txt", Style: schema.ColloquialStyle, Similarity: 0.3},
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeHistoryTable(&buf, runs, cfg, fmtFloat)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "inline")
	assert.Contains(t, out, "doc.txt")
	assert.Contains(t, out, "Showing 2 runs")
}

func TestGetMaxTableNameWidth(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 200
	assert.Equal(t, 60, GetMaxTableNameWidth(cfg))

	cfg.Width = 40
	assert.Equal(t, 15, GetMaxTableNameWidth(cfg))

	cfg.Width = 100
	cfg.Detail = true
	assert.Equal(t, 20, GetMaxTableNameWidth(cfg))
}
