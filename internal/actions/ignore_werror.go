package actions

import (
	"github.com/trailofbits/blight/internal/action"
	"github.com/trailofbits/blight/internal/tool"
)

func init() {
	action.Register("ignore_werror", newIgnoreWerror)
}

type ignoreWerror struct{ action.Base }

func newIgnoreWerror(map[string]string) (action.Action, error) {
	return &ignoreWerror{action.Base{ActionName: "ignore_werror", Mask: action.MaskCompilerTool}}, nil
}

// BeforeRun strips -Werror so warnings can never fail the build.
func (a *ignoreWerror) BeforeRun(t tool.Instance) error {
	kept := make([]string, 0, len(t.Args()))
	for _, arg := range t.Args() {
		if arg == "-Werror" {
			continue
		}
		kept = append(kept, arg)
	}
	t.SetArgs(kept)
	return nil
}
