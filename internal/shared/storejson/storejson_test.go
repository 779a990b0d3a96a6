package storejson

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMissingFileReportsNotFound(t *testing.T) {
	var dest map[string]string
	found, err := Read(filepath.Join(t.TempDir(), "nope.json"), &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "section.json")

	in := map[string]interface{}{"heading": "Hello", "count": float64(3)}
	require.NoError(t, Write(path, in))

	var out map[string]interface{}
	found, err := Read(path, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestWriteIsPrettyPrintedWithTwoSpaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pretty.json")
	require.NoError(t, Write(path, map[string]string{"heading": "Hello"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"heading\"")
	assert.False(t, strings.Contains(string(data), "\t"))
}

func TestWriteLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(filepath.Join(dir, "a.json"), map[string]string{"k": "v"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.json", entries[0].Name())
}
