package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/texttuner/texttuner/schema"
)

// validInput returns a minimal raw input that passes validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		OutputStr:         "text",
		StyleStr:          "scientific",
		PrecisionInt:      DefaultPrecision,
		WorkersInt:        2,
		LimitInt:          10,
		HistoryBackendStr: "sqlite",
		ColorStr:          "yes",
	}
}

// TestProcessAndValidate covers the happy path and the main failure modes.
func TestProcessAndValidate(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, validInput()))
		assert.Equal(t, schema.ScientificStyle, cfg.TargetStyle)
		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.Equal(t, schema.SQLiteBackend, cfg.HistoryBackend)
		assert.True(t, cfg.UseColors)
		assert.Len(t, cfg.Profiles, 4)
	})

	t.Run("style is case-insensitive", func(t *testing.T) {
		cfg := &Config{}
		input := validInput()
		input.StyleStr = "Official-Business"
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.OfficialStyle, cfg.TargetStyle)
	})

	t.Run("unknown style lists valid names", func(t *testing.T) {
		cfg := &Config{}
		input := validInput()
		input.StyleStr = "poetic"
		err := ProcessAndValidate(cfg, input)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownStyle)
		assert.Contains(t, err.Error(), "scientific")
		assert.Contains(t, err.Error(), "colloquial")
	})

	t.Run("invalid output mode", func(t *testing.T) {
		cfg := &Config{}
		input := validInput()
		input.OutputStr = "xml"
		assert.Error(t, ProcessAndValidate(cfg, input))
	})

	t.Run("invalid history backend", func(t *testing.T) {
		cfg := &Config{}
		input := validInput()
		input.HistoryBackendStr = "mongodb"
		assert.Error(t, ProcessAndValidate(cfg, input))
	})

	t.Run("defaults applied for non-positive values", func(t *testing.T) {
		cfg := &Config{}
		input := validInput()
		input.WorkersInt = 0
		input.LimitInt = -5
		input.MaxFileSizeInt = 0
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, DefaultWorkers, cfg.Workers)
		assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
		assert.Equal(t, DefaultMaxFileSizeMB, cfg.MaxFileSizeMB)
	})

	t.Run("limit capped at maximum", func(t *testing.T) {
		cfg := &Config{}
		input := validInput()
		input.LimitInt = 5000
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, MaxResultLimit, cfg.ResultLimit)
	})
}

// TestBuildProfilesOverrides checks YAML override merging.
func TestBuildProfilesOverrides(t *testing.T) {
	target := 0.95
	weight := 0.5

	raw := &ProfilesRawInput{
		Scientific: map[string]MetricTargetRaw{
			"formality_score": {Target: &target, Weight: &weight},
			"no_such_metric":  {Target: &target},
		},
	}

	profiles := buildProfiles(raw)

	sci := profiles[schema.ScientificStyle].TargetMetrics[schema.MetricFormalityScore]
	assert.Equal(t, 0.95, sci.Target)
	assert.Equal(t, 0.5, sci.Weight)
	// Tolerance untouched by a partial override
	assert.Equal(t, 0.05, sci.Tolerance)

	// Unrelated style untouched
	col := profiles[schema.ColloquialStyle].TargetMetrics[schema.MetricFormalityScore]
	assert.Equal(t, 0.2, col.Target)

	// Unknown metric names are ignored
	assert.Len(t, profiles[schema.ScientificStyle].TargetMetrics, 5)
}

// TestGetPlainLabel verifies label thresholds.
func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		similarity float64
		expected   string
	}{
		{0.95, ExcellentValue},
		{0.85, ExcellentValue},
		{0.7, GoodValue},
		{0.5, FairValue},
		{0.1, PoorValue},
		{0.0, PoorValue},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetPlainLabel(tt.similarity))
	}
}

// TestTruncate verifies tail-preserving truncation.
func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "...file.txt", Truncate("/very/long/path/to/file.txt", 11))
	assert.Equal(t, "abc", Truncate("abc", 3))
}
