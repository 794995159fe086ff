package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailofbits/blight/internal/tool"
)

func TestCCForCxxInjectsXFlagForCxxStandard(t *testing.T) {
	cc := tool.NewCC([]string{"-std=c++17", "-c", "main.c"}, ".", nil)
	a, err := newCCForCxx(map[string]string{})
	require.NoError(t, err)

	require.NoError(t, a.BeforeRun(cc))
	assert.Equal(t, []string{"-x", "c++", "-std=c++17", "-c", "main.c"}, cc.Args())
}

func TestCCForCxxNoopForCStandard(t *testing.T) {
	cc := tool.NewCC([]string{"-std=c99", "-c", "main.c"}, ".", nil)
	a, err := newCCForCxx(map[string]string{})
	require.NoError(t, err)

	require.NoError(t, a.BeforeRun(cc))
	assert.Equal(t, []string{"-std=c99", "-c", "main.c"}, cc.Args())
}
