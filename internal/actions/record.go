package actions

import (
	"github.com/trailofbits/blight/internal/action"
	"github.com/trailofbits/blight/internal/tool"
)

func init() {
	action.Register("record", newRecord)
}

type record struct{ action.Base }

func newRecord(map[string]string) (action.Action, error) {
	return &record{action.Base{ActionName: "record", Mask: action.MaskAll}}, nil
}

// Result is what the record action contributes to a journal entry.
type Result struct {
	Tool       tool.Record `json:"tool"`
	RunSkipped bool        `json:"run_skipped"`
}

// AfterRun returns the tool's full record plus whether the run was
// skipped by an earlier action (e.g. skip_strip). The runner commits this,
// keyed by action name, to BLIGHT_JOURNAL_PATH alongside every other
// action's result.
func (a *record) AfterRun(t tool.Instance, runSkipped bool) (any, error) {
	return Result{Tool: t.Record(), RunSkipped: runSkipped}, nil
}
