package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/texttuner/texttuner/schema"
)

// TestAdaptTextScientific checks pronoun, punctuation and adverb rewrites.
func TestAdaptTextScientific(t *testing.T) {
	metrics := &schema.StyleMetrics{FormalityScore: 0.5}

	adapted, applied := AdaptText("Я думаю, что это очень важно!", metrics, schema.ScientificStyle)

	assert.Equal(t, "автор думаю, что это значительно важно.", adapted)
	assert.Len(t, applied, 3)
}

// TestAdaptTextScientificGuard verifies the pronoun rule stays off for
// already-formal text while the unconditional rules still run.
func TestAdaptTextScientificGuard(t *testing.T) {
	metrics := &schema.StyleMetrics{FormalityScore: 0.9}

	adapted, applied := AdaptText("Я уверен в результате!", metrics, schema.ScientificStyle)

	assert.Equal(t, "Я уверен в результате.", adapted)
	assert.Len(t, applied, 1)
}

// TestAdaptTextOfficial checks the unconditional official-business rewrites.
func TestAdaptTextOfficial(t *testing.T) {
	metrics := &schema.StyleMetrics{FormalityScore: 0.2}

	adapted, applied := AdaptText("Мы считаем, что надо работать.", metrics, schema.OfficialStyle)

	assert.Equal(t, "организация считаем, что необходимо работать.", adapted)
	assert.Len(t, applied, 2)
}

// TestAdaptTextColloquial checks formality-gated loosening.
func TestAdaptTextColloquial(t *testing.T) {
	t.Run("formal input is loosened", func(t *testing.T) {
		metrics := &schema.StyleMetrics{FormalityScore: 0.8}
		adapted, applied := AdaptText("Необходимо работать.", metrics, schema.ColloquialStyle)
		assert.Equal(t, "нужно работать!", adapted)
		assert.Len(t, applied, 2)
	})

	t.Run("already informal input is untouched", func(t *testing.T) {
		metrics := &schema.StyleMetrics{FormalityScore: 0.1}
		adapted, applied := AdaptText("Нужно работать.", metrics, schema.ColloquialStyle)
		assert.Equal(t, "Нужно работать.", adapted)
		assert.Empty(t, applied)
	})
}

// TestAdaptTextLiterary checks ellipsis and verb substitution for flat text.
func TestAdaptTextLiterary(t *testing.T) {
	metrics := &schema.StyleMetrics{LexicalDiversity: 0.4}

	adapted, applied := AdaptText("Он был там.", metrics, schema.LiteraryStyle)

	assert.Equal(t, "Он превратился там...", adapted)
	assert.Len(t, applied, 2)
}

// TestAdaptTextWordBoundaries verifies replacement never touches substrings
// inside longer words.
func TestAdaptTextWordBoundaries(t *testing.T) {
	metrics := &schema.StyleMetrics{FormalityScore: 0.5}

	adapted, _ := AdaptText("Ябеда моя язык ясный.", metrics, schema.ScientificStyle)

	// None of these words is the standalone pronoun, so they survive.
	assert.Equal(t, "Ябеда моя язык ясный.", adapted)
}

// TestAdaptTextUnknownStyle verifies an unconfigured style is a no-op.
func TestAdaptTextUnknownStyle(t *testing.T) {
	metrics := &schema.StyleMetrics{}

	adapted, applied := AdaptText("Текст без изменений.", metrics, schema.StyleName("other"))

	assert.Equal(t, "Текст без изменений.", adapted)
	assert.Empty(t, applied)
}

// TestStyleRulesOrdering verifies every built-in style carries rules and the
// table is stable.
func TestStyleRulesOrdering(t *testing.T) {
	for _, style := range schema.AllStyles {
		rules := StyleRules(style)
		assert.NotEmpty(t, rules, string(style))
		for _, rule := range rules {
			assert.NotEmpty(t, rule.Description)
			assert.NotNil(t, rule.Guard)
			assert.NotNil(t, rule.Rewrite)
		}
	}
}

// TestSuggestSynonyms checks the curated synonym table lookup.
func TestSuggestSynonyms(t *testing.T) {
	assert.Contains(t, SuggestSynonyms("большой", schema.ScientificStyle), "значительный")
	assert.Contains(t, SuggestSynonyms("  Хороший ", schema.ColloquialStyle), "классный")
	assert.Empty(t, SuggestSynonyms("большой", schema.OfficialStyle))
	assert.Empty(t, SuggestSynonyms("неизвестное", schema.LiteraryStyle))
}
