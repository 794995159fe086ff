package actions

import (
	"github.com/trailofbits/blight/internal/action"
	"github.com/trailofbits/blight/internal/tool"
)

func init() {
	action.Register("cc_for_cxx", newCCForCxx)
}

type ccForCxx struct{ action.Base }

func newCCForCxx(map[string]string) (action.Action, error) {
	return &ccForCxx{action.Base{ActionName: "cc_for_cxx", Mask: action.MaskCC}}, nil
}

// BeforeRun adds -x c++ when a build calls the C compiler driver (cc) with
// a C++ standard flag, which otherwise silently compiles the input as C.
func (a *ccForCxx) BeforeRun(t tool.Instance) error {
	std, ok := t.(tool.HasStandard)
	if !ok || !std.Std().IsCxxStd() {
		return nil
	}
	t.SetArgs(append([]string{"-x", "c++"}, t.Args()...))
	return nil
}
