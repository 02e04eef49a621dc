package core

import (
	"math"

	"github.com/texttuner/texttuner/schema"
)

// ScoreDeviations compares computed metrics against a style profile and
// returns the per-metric deviation records plus the weighted similarity
// score in [0,1]. Scoring never fails: profile metrics the metric set does
// not cover are skipped, and an empty overlap scores 0.
func ScoreDeviations(metrics *schema.StyleMetrics, profile schema.StyleProfile) (map[schema.MetricKey]schema.DeviationRecord, float64) {
	deviations := make(map[schema.MetricKey]schema.DeviationRecord, len(profile.TargetMetrics))

	for key, target := range profile.TargetMetrics {
		current, ok := metrics.Value(key)
		if !ok {
			continue
		}

		absoluteDiff := math.Abs(current - target.Target)
		relativeDiff := 0.0
		if target.Target != 0 {
			relativeDiff = absoluteDiff / math.Abs(target.Target)
		}

		deviations[key] = schema.DeviationRecord{
			Current:         current,
			Target:          target.Target,
			AbsoluteDiff:    absoluteDiff,
			RelativeDiff:    relativeDiff,
			WithinTolerance: absoluteDiff <= target.Tolerance,
			Tolerance:       target.Tolerance,
			Weight:          target.Weight,
		}
	}

	return deviations, overallScore(deviations)
}

// overallScore folds deviation records into one weighted similarity value.
// Each metric contributes max(0, 1-min(relativeDiff, 1)) scaled by its
// weight; a zero total weight scores 0.
func overallScore(deviations map[schema.MetricKey]schema.DeviationRecord) float64 {
	if len(deviations) == 0 {
		return 0.0
	}

	var weightedSum, totalWeight float64
	for _, d := range deviations {
		metricScore := max(0.0, 1.0-min(d.RelativeDiff, 1.0))
		weightedSum += metricScore * d.Weight
		totalWeight += d.Weight
	}

	if totalWeight == 0 {
		return 0.0
	}
	return weightedSum / totalWeight
}
