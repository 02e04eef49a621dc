package core

import (
	"math"
	"testing"

	"github.com/texttuner/texttuner/schema"
)

// FuzzScoreDeviations fuzzes the scorer with arbitrary metric snapshots and
// profile targets, checking the similarity invariant holds.
func FuzzScoreDeviations(f *testing.F) {
	seeds := []struct {
		lexdiv, formality, readability, sentLen, wordLen float64
		target, weight, tolerance                        float64
	}{
		{0.7, 0.8, 40.0, 15.0, 6.5, 0.7, 0.2, 0.1},
		{0.0, 0.0, 0.0, 0.0, 0.0, 0.5, 1.0, 0.05},
		{1.0, 1.0, 100.0, 50.0, 20.0, 0.0, 0.0, 0.0},
	}
	for _, s := range seeds {
		f.Add(s.lexdiv, s.formality, s.readability, s.sentLen, s.wordLen,
			s.target, s.weight, s.tolerance)
	}

	f.Fuzz(func(t *testing.T,
		lexdiv, formality, readability, sentLen, wordLen float64,
		target, weight, tolerance float64,
	) {
		for _, v := range []float64{lexdiv, formality, readability, sentLen, wordLen, target, weight, tolerance} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Skip("non-finite input")
			}
		}
		if weight < 0 {
			t.Skip("negative weights are rejected at config time")
		}

		metrics := &schema.StyleMetrics{
			LexicalDiversity:  lexdiv,
			FormalityScore:    formality,
			ReadabilityIndex:  readability,
			SentenceLengthAvg: sentLen,
			WordLengthAvg:     wordLen,
		}
		profile := schema.StyleProfile{
			Name: schema.ScientificStyle,
			TargetMetrics: map[schema.MetricKey]schema.MetricTarget{
				schema.MetricLexicalDiversity:  {Target: target, Weight: weight, Tolerance: tolerance},
				schema.MetricFormalityScore:    {Target: target, Weight: weight, Tolerance: tolerance},
				schema.MetricReadabilityIndex:  {Target: target, Weight: weight, Tolerance: tolerance},
				schema.MetricSentenceLengthAvg: {Target: target, Weight: weight, Tolerance: tolerance},
				schema.MetricWordLengthAvg:     {Target: target, Weight: weight, Tolerance: tolerance},
			},
		}

		_, score := ScoreDeviations(metrics, profile)
		if score < 0.0 || score > 1.0 {
			t.Errorf("similarity %v out of [0,1]", score)
		}
	})
}
