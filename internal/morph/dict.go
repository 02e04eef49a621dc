package morph

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/texttuner/texttuner/schema"
)

// DictTagger tags words from a tab-separated dictionary file mapped into
// memory with mmap, falling back to suffix heuristics for words outside
// the dictionary. The file format is one "word<TAB>TAG" pair per line.
type DictTagger struct {
	entries  map[string]schema.POSTag
	fallback *HeuristicTagger
	mapped   mmap.MMap
	file     *os.File
}

// NewDictTagger opens and maps the dictionary file. The mapping stays
// valid for the tagger's lifetime; call Close to release it.
func NewDictTagger(path string) (*DictTagger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open POS dictionary %q: %w", path, err)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to mmap POS dictionary %q: %w", path, err)
	}

	t := &DictTagger{
		entries:  make(map[string]schema.POSTag),
		fallback: NewHeuristicTagger(),
		mapped:   m,
		file:     f,
	}

	for line := range bytes.Lines(m) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		word, tag, found := bytes.Cut(line, []byte{'\t'})
		if !found {
			continue
		}
		t.entries[string(bytes.ToLower(word))] = schema.POSTag(bytes.TrimSpace(tag))
	}

	return t, nil
}

// Tag implements Tagger.
func (t *DictTagger) Tag(word string) (schema.POSTag, error) {
	if tag, ok := t.entries[word]; ok {
		return tag, nil
	}
	return t.fallback.Tag(word)
}

// Len returns the number of dictionary entries.
func (t *DictTagger) Len() int {
	return len(t.entries)
}

// Close unmaps the dictionary file.
func (t *DictTagger) Close() error {
	if err := t.mapped.Unmap(); err != nil {
		return err
	}
	return t.file.Close()
}
