package actions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailofbits/blight/internal/tool"
)

func TestFindInputsClassifiesBySuffix(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.c"), []byte("int main(){}"), 0o644))

	cc := tool.NewCC([]string{"-c", "main.c"}, dir, nil)
	a, err := newFindInputs(map[string]string{})
	require.NoError(t, err)

	res, err := a.AfterRun(cc, false)
	require.NoError(t, err)

	result := res.(FindResult)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "main.c", result.Files[0].Path)
	assert.Equal(t, "c_source", result.Files[0].Kind)
	assert.Empty(t, result.Files[0].Stored)
}

func TestFindInputsStoresWhenConfigured(t *testing.T) {
	srcDir := t.TempDir()
	storeDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "main.c"), []byte("int main(){}"), 0o644))

	cc := tool.NewCC([]string{"-c", filepath.Join(srcDir, "main.c")}, srcDir, nil)
	a, err := newFindInputs(map[string]string{"store_dir": storeDir})
	require.NoError(t, err)

	res, err := a.AfterRun(cc, false)
	require.NoError(t, err)
	result := res.(FindResult)
	require.Len(t, result.Files, 1)
	assert.NotEmpty(t, result.Files[0].Stored)
	assert.FileExists(t, result.Files[0].Stored)
}

func TestFindOutputsClassifiesObjectFile(t *testing.T) {
	cc := tool.NewCC([]string{"-c", "main.c", "-o", "main.o"}, ".", nil)
	a, err := newFindOutputs(map[string]string{})
	require.NoError(t, err)

	res, err := a.AfterRun(cc, false)
	require.NoError(t, err)
	result := res.(FindResult)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "main.o", result.Files[0].Path)
	assert.Equal(t, "object", result.Files[0].Kind)
}

func TestFindOutputsClassifiesDefaultAOutAsExecutable(t *testing.T) {
	cc := tool.NewCC([]string{"main.c"}, ".", nil)
	a, err := newFindOutputs(map[string]string{})
	require.NoError(t, err)

	res, err := a.AfterRun(cc, false)
	require.NoError(t, err)
	result := res.(FindResult)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "executable", result.Files[0].Kind)
}
