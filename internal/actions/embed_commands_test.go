package actions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailofbits/blight/internal/tool"
)

func TestEmbedCommandsInjectsIncludeHeader(t *testing.T) {
	cc := tool.NewCC([]string{"-c", "main.c"}, ".", nil)
	a, err := newEmbedCommands(map[string]string{"compiler": "clang"})
	require.NoError(t, err)

	impl := a.(*embedCommands)
	require.NoError(t, impl.BeforeRun(cc))

	args := cc.Args()
	require.GreaterOrEqual(t, len(args), 2)
	assert.Equal(t, "-include", args[0])

	header := args[1]
	defer os.Remove(header)
	content, err := os.ReadFile(header)
	require.NoError(t, err)
	assert.Contains(t, string(content), "__attribute__")
	assert.Contains(t, string(content), "cc_")

	assert.True(t, strings.Contains(strings.Join(args, " "), "main.c"))
}

func TestEmbedCommandsSkipsAssemblyInputs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.s"), nil, 0o644))
	cc := tool.NewCC([]string{"-c", "main.s"}, dir, nil)
	a, err := newEmbedCommands(map[string]string{})
	require.NoError(t, err)

	require.NoError(t, a.BeforeRun(cc))
	assert.Equal(t, []string{"-c", "main.s"}, cc.Args())
}
