package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailofbits/blight/internal/tool"
)

func TestIgnoreFltoStripsFltoFlags(t *testing.T) {
	cc := tool.NewCC([]string{"-flto=4", "-flto-partition=balanced", "-c", "main.c"}, ".", nil)
	a, err := newIgnoreFlto(map[string]string{})
	require.NoError(t, err)

	require.NoError(t, a.BeforeRun(cc))
	assert.Equal(t, []string{"-c", "main.c"}, cc.Args())
}

func TestIgnoreFltoLeavesOtherFlagsAlone(t *testing.T) {
	cc := tool.NewCC([]string{"-c", "main.c"}, ".", nil)
	a, err := newIgnoreFlto(map[string]string{})
	require.NoError(t, err)

	require.NoError(t, a.BeforeRun(cc))
	assert.Equal(t, []string{"-c", "main.c"}, cc.Args())
}
