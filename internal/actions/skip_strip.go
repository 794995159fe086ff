package actions

import (
	"github.com/trailofbits/blight/internal/action"
	"github.com/trailofbits/blight/internal/tool"
)

func init() {
	action.Register("skip_strip", newSkipStrip)
}

type skipStrip struct{ action.Base }

func newSkipStrip(map[string]string) (action.Action, error) {
	return &skipStrip{action.Base{ActionName: "skip_strip", Mask: action.MaskSTRIP}}, nil
}

// BeforeRun always skips the wrapped strip invocation -- useful for builds
// that want debug info preserved without editing the build system itself.
func (a *skipStrip) BeforeRun(tool.Instance) error {
	return action.ErrSkipRun
}
