package actions

import (
	"time"

	"github.com/trailofbits/blight/internal/action"
	"github.com/trailofbits/blight/internal/tool"
)

func init() {
	action.Register("benchmark", newBenchmark)
}

type benchmark struct {
	action.Base
	start time.Time
}

func newBenchmark(map[string]string) (action.Action, error) {
	return &benchmark{Base: action.Base{ActionName: "benchmark", Mask: action.MaskAll}}, nil
}

// BenchmarkResult is the journaled shape of a benchmark measurement.
type BenchmarkResult struct {
	ElapsedMicros int64 `json:"elapsed_us"`
	RunSkipped    bool  `json:"run_skipped"`
}

func (a *benchmark) BeforeRun(tool.Instance) error {
	a.start = time.Now()
	return nil
}

// AfterRun reports the monotonic wall-clock time elapsed since BeforeRun,
// in microseconds -- measured even when the run was skipped, so a skipped
// invocation's near-zero time is itself informative.
func (a *benchmark) AfterRun(t tool.Instance, runSkipped bool) (any, error) {
	elapsed := time.Since(a.start)
	return BenchmarkResult{ElapsedMicros: elapsed.Nanoseconds() / 1000, RunSkipped: runSkipped}, nil
}
