package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailofbits/blight/internal/tool"
)

func TestIgnoreWerrorStripsFlag(t *testing.T) {
	cc := tool.NewCC([]string{"-Wall", "-Werror", "-c", "main.c"}, ".", nil)
	a, err := newIgnoreWerror(map[string]string{})
	require.NoError(t, err)

	require.NoError(t, a.BeforeRun(cc))
	assert.Equal(t, []string{"-Wall", "-c", "main.c"}, cc.Args())
}

func TestIgnoreWerrorNoopWithoutFlag(t *testing.T) {
	cc := tool.NewCC([]string{"-Wall", "-c", "main.c"}, ".", nil)
	a, err := newIgnoreWerror(map[string]string{})
	require.NoError(t, err)

	require.NoError(t, a.BeforeRun(cc))
	assert.Equal(t, []string{"-Wall", "-c", "main.c"}, cc.Args())
}
