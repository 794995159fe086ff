package actions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailofbits/blight/internal/tool"
)

func TestBenchmarkReportsElapsedMicros(t *testing.T) {
	cc := tool.NewCC([]string{"-c", "main.c"}, ".", nil)
	a, err := newBenchmark(map[string]string{})
	require.NoError(t, err)

	require.NoError(t, a.BeforeRun(cc))
	time.Sleep(time.Millisecond)
	res, err := a.AfterRun(cc, false)
	require.NoError(t, err)

	result := res.(BenchmarkResult)
	assert.False(t, result.RunSkipped)
	assert.Greater(t, result.ElapsedMicros, int64(0))
}

func TestBenchmarkReportsSkippedRun(t *testing.T) {
	cc := tool.NewCC([]string{"-c", "main.c"}, ".", nil)
	a, err := newBenchmark(map[string]string{})
	require.NoError(t, err)

	require.NoError(t, a.BeforeRun(cc))
	res, err := a.AfterRun(cc, true)
	require.NoError(t, err)
	assert.True(t, res.(BenchmarkResult).RunSkipped)
}
