package morph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/texttuner/texttuner/schema"
)

// TestHeuristicTagger checks closed-class lookup and suffix rules.
func TestHeuristicTagger(t *testing.T) {
	tagger := NewHeuristicTagger()

	tests := []struct {
		word     string
		expected schema.POSTag
	}{
		{"это", schema.TagPronoun},
		{"для", schema.TagPreposition},
		{"однако", schema.TagConjunction},
		{"только", schema.TagParticle},
		{"пять", schema.TagNumeral},
		{"использовать", schema.TagVerb},
		{"характеризуется", schema.TagVerb},
		{"научный", schema.TagAdjective},
		{"технический", schema.TagAdjective},
		{"исследование", schema.TagNoun},
		{"формальность", schema.TagNoun},
		{"теоретически", schema.TagAdverb},
		{"стол", schema.TagNoun}, // default guess
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			tag, err := tagger.Tag(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, tag)
		})
	}
}

// TestHeuristicTaggerErrors checks that non-taggable input fails with TagError.
func TestHeuristicTaggerErrors(t *testing.T) {
	tagger := NewHeuristicTagger()

	for _, word := range []string{"", "   ", "hello", "тест123"} {
		t.Run("invalid "+word, func(t *testing.T) {
			tag, err := tagger.Tag(word)
			assert.Error(t, err)
			var tagErr *TagError
			assert.ErrorAs(t, err, &tagErr)
			assert.Equal(t, schema.TagUnknown, tag)
		})
	}
}

// TestDictTagger validates the mmap-backed dictionary with heuristic fallback.
func TestDictTagger(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pos.tsv")
	content := "# test dictionary\n" +
		"стол\tNOUN\n" +
		"бежать\tVERB\n" +
		"красиво\tADVB\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tagger, err := NewDictTagger(path)
	require.NoError(t, err)
	defer func() { _ = tagger.Close() }()

	assert.Equal(t, 3, tagger.Len())

	tag, err := tagger.Tag("бежать")
	assert.NoError(t, err)
	assert.Equal(t, schema.TagVerb, tag)

	tag, err = tagger.Tag("красиво")
	assert.NoError(t, err)
	assert.Equal(t, schema.TagAdverb, tag)

	// Falls back to heuristics for words outside the dictionary.
	tag, err = tagger.Tag("научный")
	assert.NoError(t, err)
	assert.Equal(t, schema.TagAdjective, tag)
}

// TestDictTaggerMissingFile ensures a clear error for a bad path.
func TestDictTaggerMissingFile(t *testing.T) {
	_, err := NewDictTagger("/nonexistent/pos.tsv")
	assert.Error(t, err)
}
