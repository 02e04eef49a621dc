package schema

// GetDefaultProfile returns the built-in profile for a given style.
// The targets encode the expected shape of each Russian functional style:
// formality and word length climb from colloquial to official-business,
// readability moves the other way.
func GetDefaultProfile(style StyleName) StyleProfile {
	switch style {
	case ScientificStyle:
		return StyleProfile{
			Name:        ScientificStyle,
			Description: "Научный стиль: точность, формальность, объективность",
			TargetMetrics: map[MetricKey]MetricTarget{
				MetricLexicalDiversity:  {Target: 0.7, Weight: 0.2, Tolerance: 0.1},
				MetricFormalityScore:    {Target: 0.8, Weight: 0.3, Tolerance: 0.05},
				MetricReadabilityIndex:  {Target: 40.0, Weight: 0.1, Tolerance: 10.0},
				MetricSentenceLengthAvg: {Target: 15.0, Weight: 0.2, Tolerance: 3.0},
				MetricWordLengthAvg:     {Target: 6.5, Weight: 0.2, Tolerance: 0.5},
			},
		}
	case LiteraryStyle:
		return StyleProfile{
			Name:        LiteraryStyle,
			Description: "Художественный стиль: выразительность, эмоциональность, образность",
			TargetMetrics: map[MetricKey]MetricTarget{
				MetricLexicalDiversity:  {Target: 0.8, Weight: 0.3, Tolerance: 0.1},
				MetricFormalityScore:    {Target: 0.3, Weight: 0.2, Tolerance: 0.1},
				MetricReadabilityIndex:  {Target: 70.0, Weight: 0.2, Tolerance: 15.0},
				MetricSentenceLengthAvg: {Target: 12.0, Weight: 0.15, Tolerance: 4.0},
				MetricWordLengthAvg:     {Target: 5.0, Weight: 0.15, Tolerance: 1.0},
			},
		}
	case OfficialStyle:
		return StyleProfile{
			Name:        OfficialStyle,
			Description: "Официально-деловой стиль: стандартизированность, точность, безличность",
			TargetMetrics: map[MetricKey]MetricTarget{
				MetricLexicalDiversity:  {Target: 0.6, Weight: 0.15, Tolerance: 0.1},
				MetricFormalityScore:    {Target: 0.9, Weight: 0.35, Tolerance: 0.05},
				MetricReadabilityIndex:  {Target: 30.0, Weight: 0.1, Tolerance: 10.0},
				MetricSentenceLengthAvg: {Target: 20.0, Weight: 0.25, Tolerance: 5.0},
				MetricWordLengthAvg:     {Target: 7.0, Weight: 0.15, Tolerance: 0.5},
			},
		}
	default: // ColloquialStyle
		return StyleProfile{
			Name:        ColloquialStyle,
			Description: "Разговорный стиль: неформальность, простота, естественность",
			TargetMetrics: map[MetricKey]MetricTarget{
				MetricLexicalDiversity:  {Target: 0.5, Weight: 0.2, Tolerance: 0.15},
				MetricFormalityScore:    {Target: 0.2, Weight: 0.3, Tolerance: 0.1},
				MetricReadabilityIndex:  {Target: 80.0, Weight: 0.25, Tolerance: 15.0},
				MetricSentenceLengthAvg: {Target: 8.0, Weight: 0.15, Tolerance: 3.0},
				MetricWordLengthAvg:     {Target: 4.5, Weight: 0.1, Tolerance: 1.0},
			},
		}
	}
}

// GetDefaultProfiles returns the full built-in profile table keyed by style.
func GetDefaultProfiles() map[StyleName]StyleProfile {
	profiles := make(map[StyleName]StyleProfile, len(AllStyles))
	for _, style := range AllStyles {
		profiles[style] = GetDefaultProfile(style)
	}
	return profiles
}
