package argutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandResponseFilesFlat(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flags.rsp"), []byte("-DFOO -DBAR=1"), 0o644))

	got := ExpandResponseFiles([]string{"-c", "@flags.rsp", "main.c"}, dir)
	assert.Equal(t, []string{"-c", "-DFOO", "-DBAR=1", "main.c"}, got)
}

func TestExpandResponseFilesNested(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "inner.rsp"), []byte("-DINNER"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "outer.rsp"), []byte("-DOUTER @sub/inner.rsp"), 0o644))

	got := ExpandResponseFiles([]string{"@outer.rsp"}, dir)
	assert.Equal(t, []string{"-DOUTER", "-DINNER"}, got)
}

func TestExpandResponseFilesMissing(t *testing.T) {
	dir := t.TempDir()
	got := ExpandResponseFiles([]string{"-c", "@nope.rsp", "main.c"}, dir)
	assert.Equal(t, []string{"-c", "main.c"}, got)
}

func TestExpandResponseFilesIdempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flags.rsp"), []byte("-DFOO"), 0o644))

	once := ExpandResponseFiles([]string{"@flags.rsp"}, dir)
	twice := ExpandResponseFiles(once, dir)
	assert.Equal(t, once, twice)
}

func TestExpandResponseFilesDepthLimit(t *testing.T) {
	dir := t.TempDir()
	// a.rsp -> @a.rsp, an infinite nest; must terminate via the depth cap.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.rsp"), []byte("@a.rsp"), 0o644))

	got := ExpandResponseFiles([]string{"@a.rsp"}, dir)
	assert.Empty(t, got)
}
