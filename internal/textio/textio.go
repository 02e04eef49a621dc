// Package textio reads Russian plain-text files, transparently decoding
// the legacy Cyrillic encodings still common in .txt corpora.
package textio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// fallbackEncodings are tried in order when a file is not valid UTF-8.
var fallbackEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"windows-1251", charmap.Windows1251},
	{"koi8-r", charmap.KOI8R},
	{"iso-8859-5", charmap.ISO8859_5},
}

// ReadTextFile reads a .txt file and returns its content as UTF-8.
// Files that do not decode as UTF-8 are re-decoded via the legacy
// Cyrillic code pages. maxSizeMB bounds the file size; 0 disables the check.
func ReadTextFile(path string, maxSizeMB int) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("file not found: %s", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".txt") {
		return "", fmt.Errorf("only .txt files are supported, got %q", filepath.Ext(path))
	}
	if maxSizeMB > 0 && info.Size() > int64(maxSizeMB)*1024*1024 {
		return "", fmt.Errorf("file %s exceeds the %d MB size limit", path, maxSizeMB)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	decoded, _, err := decodeLegacy(raw)
	if err != nil {
		return "", fmt.Errorf("could not decode %s: %w", path, err)
	}
	return decoded, nil
}

// decodeLegacy tries every legacy code page and keeps the best-scoring
// candidate. A single-byte decode almost never errors, so "first decode
// that works" would silently pick windows-1251 for koi8-r files; scoring
// by lowercase Cyrillic share disambiguates them.
func decodeLegacy(raw []byte) (string, string, error) {
	var best string
	var bestName string
	bestScore := -1

	for _, fb := range fallbackEncodings {
		decoded, err := fb.enc.NewDecoder().Bytes(raw)
		if err != nil || !looksRussian(decoded) {
			continue
		}
		score := russianScore(decoded)
		if score > bestScore {
			best, bestName, bestScore = string(decoded), fb.name, score
		}
	}

	if bestScore < 0 {
		return "", "", fmt.Errorf("not UTF-8 and no Cyrillic code page matched")
	}
	return best, bestName, nil
}

// russianScore counts lowercase Cyrillic letters. Misdecoded Cyrillic
// (e.g. koi8-r bytes read as windows-1251) flips case, so the correct
// code page scores higher on ordinary running text.
func russianScore(b []byte) int {
	score := 0
	for _, r := range string(b) {
		if (r >= 'а' && r <= 'я') || r == 'ё' {
			score++
		}
	}
	return score
}

// DetectEncoding reports which encoding ReadTextFile would use for a file.
func DetectEncoding(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(raw) {
		return "utf-8", nil
	}
	_, name, err := decodeLegacy(raw)
	if err != nil {
		return "", fmt.Errorf("unknown encoding for %s: %w", path, err)
	}
	return name, nil
}

// looksRussian checks that a decoded buffer contains a meaningful share of
// Cyrillic letters. The single-byte code pages rarely fail outright, so a
// successful decode alone proves nothing.
func looksRussian(b []byte) bool {
	var cyr, letters int
	for _, r := range string(b) {
		if r == utf8.RuneError {
			return false
		}
		switch {
		case r >= 'а' && r <= 'я', r >= 'А' && r <= 'Я', r == 'ё', r == 'Ё':
			cyr++
			letters++
		case r > ' ' && r < 0x7f:
			letters++
		case r > 0x7f:
			letters++
		}
	}
	return letters > 0 && cyr*2 >= letters
}

// FindTextFiles returns the sorted list of .txt files directly under dir.
func FindTextFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
