package journal

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendWritesOneLinePerCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")

	require.NoError(t, Append(path, map[string]string{"action": "record"}))
	require.NoError(t, Append(path, map[string]string{"action": "benchmark"}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"record"`)
	assert.Contains(t, lines[1], `"benchmark"`)
}

func TestAppendCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.jsonl")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	require.NoError(t, Append(path, map[string]int{"n": 1}))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"n":1`)
}
