package lexicon

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// LoadWordFile reads a newline-separated word list. The file is mapped
// read-only with mmap and scanned in place, so large lexicons are not
// copied into the heap twice. Blank lines and '#' comments are skipped.
func LoadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat word list %q: %w", path, err)
	}
	if info.Size() == 0 {
		return nil, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to mmap word list %q: %w", path, err)
	}
	defer func() { _ = m.Unmap() }()

	var words []string
	for line := range bytes.Lines(m) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		words = append(words, string(bytes.ToLower(line)))
	}
	return words, nil
}
