package docload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestLoadPages_SingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "scan.png", []byte("png-bytes"))

	pages, err := LoadPages(filepath.Join(dir, "scan.png"))
	require.NoError(t, err)

	require.Len(t, pages, 1)
	assert.Equal(t, []byte("png-bytes"), pages[0].Data)
	assert.Equal(t, "image/png", pages[0].MediaType)
}

func TestLoadPages_DirectorySortedByName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page-002.jpg", []byte("two"))
	writeFile(t, dir, "page-001.png", []byte("one"))
	writeFile(t, dir, "page-010.jpeg", []byte("ten"))
	writeFile(t, dir, "notes.txt", []byte("skip me"))

	pages, err := LoadPages(dir)
	require.NoError(t, err)

	require.Len(t, pages, 3)
	assert.Equal(t, []byte("one"), pages[0].Data)
	assert.Equal(t, "image/png", pages[0].MediaType)
	assert.Equal(t, []byte("two"), pages[1].Data)
	assert.Equal(t, "image/jpeg", pages[1].MediaType)
	assert.Equal(t, []byte("ten"), pages[2].Data)
}

func TestLoadPages_EmptyDirectory(t *testing.T) {
	_, err := LoadPages(t.TempDir())
	assert.Error(t, err)
}

func TestLoadPages_MissingPath(t *testing.T) {
	_, err := LoadPages(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadPages_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "scan.tiff", []byte("tiff"))

	_, err := LoadPages(filepath.Join(dir, "scan.tiff"))
	assert.Error(t, err)
}
