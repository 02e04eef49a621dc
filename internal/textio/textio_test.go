package textio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const sample = "Привет, мир. Это тестовый текст для анализа."

// TestReadTextFileUTF8 reads a plain UTF-8 file.
func TestReadTextFileUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	got, err := ReadTextFile(path, 10)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

// TestReadTextFileCP1251 decodes a windows-1251 file transparently.
func TestReadTextFileCP1251(t *testing.T) {
	encoded, err := charmap.Windows1251.NewEncoder().Bytes([]byte(sample))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "legacy.txt")
	require.NoError(t, os.WriteFile(path, encoded, 0o644))

	got, err := ReadTextFile(path, 10)
	require.NoError(t, err)
	assert.Equal(t, sample, got)

	enc, err := DetectEncoding(path)
	require.NoError(t, err)
	assert.Equal(t, "windows-1251", enc)
}

// TestReadTextFileKOI8R decodes a koi8-r file transparently.
func TestReadTextFileKOI8R(t *testing.T) {
	encoded, err := charmap.KOI8R.NewEncoder().Bytes([]byte(sample))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "koi.txt")
	require.NoError(t, os.WriteFile(path, encoded, 0o644))

	got, err := ReadTextFile(path, 10)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

// TestReadTextFileErrors covers the rejection paths.
func TestReadTextFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadTextFile(filepath.Join(dir, "nope.txt"), 10)
		assert.Error(t, err)
	})

	t.Run("wrong extension", func(t *testing.T) {
		path := filepath.Join(dir, "doc.pdf")
		require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
		_, err := ReadTextFile(path, 10)
		assert.Error(t, err)
	})

	t.Run("size limit", func(t *testing.T) {
		path := filepath.Join(dir, "big.txt")
		require.NoError(t, os.WriteFile(path, make([]byte, 2*1024*1024), 0o644))
		_, err := ReadTextFile(path, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "size limit")
	})
}

// TestFindTextFiles lists only .txt files, sorted.
func TestFindTextFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.TXT"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.md"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	files, err := FindTextFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.TXT"),
		filepath.Join(dir, "b.txt"),
	}, files)
}
