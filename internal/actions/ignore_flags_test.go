package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailofbits/blight/internal/tool"
)

func TestIgnoreFlagsRemovesConfiguredFlags(t *testing.T) {
	cc := tool.NewCC([]string{"-Wall", "-c", "main.c", "-Wpedantic"}, ".", nil)
	a, err := newIgnoreFlags(map[string]string{"FLAGS": "-Wall -Wpedantic"})
	require.NoError(t, err)

	require.NoError(t, a.BeforeRun(cc))
	assert.Equal(t, []string{"-c", "main.c"}, cc.Args())
}

func TestIgnoreFlagsNoConfigLeavesArgsUntouched(t *testing.T) {
	cc := tool.NewCC([]string{"-Wall", "-c", "main.c"}, ".", nil)
	a, err := newIgnoreFlags(map[string]string{})
	require.NoError(t, err)

	require.NoError(t, a.BeforeRun(cc))
	assert.Equal(t, []string{"-Wall", "-c", "main.c"}, cc.Args())
}
