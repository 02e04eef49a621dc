package core

import (
	"github.com/texttuner/texttuner/schema"
)

// maxRecommendations caps the advice list so reports stay readable.
const maxRecommendations = 10

// recommendationTexts holds the direction-aware advice per metric.
// "low" is shown when the current value is under target, "high" when over.
var recommendationTexts = map[schema.MetricKey]struct{ low, high string }{
	schema.MetricLexicalDiversity: {
		low:  "Увеличьте лексическое разнообразие. Используйте синонимы вместо повторяющихся слов.",
		high: "Слишком высокое лексическое разнообразие может снижать связность текста.",
	},
	schema.MetricFormalityScore: {
		low:  "Увеличьте формальность текста. Используйте термины и избегайте разговорных выражений.",
		high: "Снизьте формальность текста. Используйте более естественные, разговорные конструкции.",
	},
	schema.MetricReadabilityIndex: {
		low:  "Упростите текст для лучшей читаемости. Разбейте длинные предложения на более короткие.",
		high: "Текст может быть слишком упрощенным для целевого стиля. Добавьте более сложные конструкции.",
	},
	schema.MetricSentenceLengthAvg: {
		low:  "Увеличьте среднюю длину предложений. Объединяйте короткие предложения в более сложные конструкции.",
		high: "Слишком длинные предложения. Разбейте сложные предложения на более простые.",
	},
	schema.MetricWordLengthAvg: {
		low:  "Используйте более длинные, точные слова или специальные термины.",
		high: "Используйте более короткие и понятные слова.",
	},
}

// Recommend builds style improvement advice from the metric snapshot and the
// target profile. Metrics inside tolerance produce nothing; out-of-tolerance
// metrics produce direction-aware advice, followed by style-specific extras.
// The list is capped at 10 entries and iterated in stable metric order.
func Recommend(metrics *schema.StyleMetrics, profile schema.StyleProfile) []string {
	recommendations := make([]string, 0, maxRecommendations)

	for _, key := range schema.AllMetricKeys {
		target, ok := profile.TargetMetrics[key]
		if !ok {
			continue
		}
		current, ok := metrics.Value(key)
		if !ok {
			continue
		}
		texts, ok := recommendationTexts[key]
		if !ok {
			continue
		}

		diff := current - target.Target
		if diff >= -target.Tolerance && diff <= target.Tolerance {
			continue
		}
		if diff < 0 {
			recommendations = append(recommendations, texts.low)
		} else {
			recommendations = append(recommendations, texts.high)
		}
	}

	recommendations = append(recommendations, styleSpecificAdvice(profile.Name, metrics)...)

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

// styleSpecificAdvice adds advice tied to one target style rather than to a
// single metric deviation.
func styleSpecificAdvice(style schema.StyleName, metrics *schema.StyleMetrics) []string {
	var advice []string

	switch style {
	case schema.ScientificStyle:
		if metrics.FormalityScore < 0.7 {
			advice = append(advice,
				"Для научного стиля используйте безличные конструкции: 'можно заключить' вместо 'я считаю'.")
		}
		if metrics.ReadabilityIndex > 50 {
			advice = append(advice,
				"Усложните синтаксис: используйте причастные и деепричастные обороты.")
		}
	case schema.LiteraryStyle:
		if metrics.LexicalDiversity < 0.7 {
			advice = append(advice,
				"Используйте больше эпитетов, метафор и образных выражений.")
		}
		if metrics.FormalityScore > 0.4 {
			advice = append(advice,
				"Добавьте диалоги, восклицания, риторические вопросы.")
		}
	case schema.OfficialStyle:
		if metrics.SentenceLengthAvg < 15 {
			advice = append(advice,
				"Используйте стандартные формулировки и клише: 'в соответствии с', 'на основании вышеизложенного'.")
		}
	case schema.ColloquialStyle:
		if metrics.WordLengthAvg > 5 {
			advice = append(advice,
				"Используйте сокращения, простые слова, междометия.")
		}
	}

	return advice
}
