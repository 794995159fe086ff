package actions

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailofbits/blight/internal/tool"
)

func TestLintWarnsOnMisspelledFortifySource(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	cc := tool.NewCC([]string{"-DFORTIFY_SOURCE=2", "-c", "main.c"}, ".", nil)
	a, err := newLint(map[string]string{})
	require.NoError(t, err)

	require.NoError(t, a.BeforeRun(cc))
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.Entries[0].Level)
	assert.Contains(t, hook.Entries[0].Message, "_FORTIFY_SOURCE")
}

func TestLintSilentOnCorrectFortifySource(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	cc := tool.NewCC([]string{"-D_FORTIFY_SOURCE=2", "-c", "main.c"}, ".", nil)
	a, err := newLint(map[string]string{})
	require.NoError(t, err)

	require.NoError(t, a.BeforeRun(cc))
	assert.Empty(t, hook.Entries)
}
