package schema

// Custom string types for type safety.
type (
	// MetricKey identifies one of the computed stylistic metrics.
	MetricKey string

	// StyleName identifies a target writing style.
	StyleName string

	// POSTag is a part-of-speech tag produced by the morphological tagger.
	POSTag string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for history tracking.
	DatabaseBackend string
)

// Metric keys used across analysis, scoring and output.
const (
	MetricLexicalDiversity  MetricKey = "lexical_diversity"
	MetricFormalityScore    MetricKey = "formality_score"
	MetricReadabilityIndex  MetricKey = "readability_index"
	MetricSentenceLengthAvg MetricKey = "sentence_length_avg"
	MetricWordLengthAvg     MetricKey = "word_length_avg"
)

// All target styles supported.
const (
	ScientificStyle StyleName = "scientific"
	LiteraryStyle   StyleName = "literary"
	OfficialStyle   StyleName = "official-business"
	ColloquialStyle StyleName = "colloquial"
)

// Part-of-speech tags, following the pymorphy-style OpenCorpora tagset
// commonly used for Russian.
const (
	TagNoun         POSTag = "NOUN"
	TagVerb         POSTag = "VERB"
	TagAdjective    POSTag = "ADJF"
	TagAdverb       POSTag = "ADVB"
	TagPronoun      POSTag = "NPRO"
	TagPreposition  POSTag = "PREP"
	TagConjunction  POSTag = "CONJ"
	TagParticle     POSTag = "PRCL"
	TagInterjection POSTag = "INTJ"
	TagNumeral      POSTag = "NUMR"
	TagUnknown      POSTag = "UNKN"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllStyles returns the supported styles in display order.
var AllStyles = []StyleName{ScientificStyle, LiteraryStyle, OfficialStyle, ColloquialStyle}

// AllMetricKeys returns the metric keys in display order.
var AllMetricKeys = []MetricKey{
	MetricLexicalDiversity,
	MetricFormalityScore,
	MetricReadabilityIndex,
	MetricSentenceLengthAvg,
	MetricWordLengthAvg,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
}

// ValidStyles lists all valid style names.
var ValidStyles = map[StyleName]struct{}{
	ScientificStyle: {},
	LiteraryStyle:   {},
	OfficialStyle:   {},
	ColloquialStyle: {},
}

// ValidHistoryBackends lists all valid history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// MetricDisplayName returns a human-readable name for a metric key.
func MetricDisplayName(key MetricKey) string {
	switch key {
	case MetricLexicalDiversity:
		return "Lexical diversity"
	case MetricFormalityScore:
		return "Formality"
	case MetricReadabilityIndex:
		return "Readability"
	case MetricSentenceLengthAvg:
		return "Avg sentence length"
	case MetricWordLengthAvg:
		return "Avg word length"
	default:
		return string(key)
	}
}
