package actions

import (
	"strings"

	"github.com/trailofbits/blight/internal/action"
	"github.com/trailofbits/blight/internal/tool"
)

func init() {
	action.Register("ignore_flto", newIgnoreFlto)
}

type ignoreFlto struct{ action.Base }

func newIgnoreFlto(map[string]string) (action.Action, error) {
	return &ignoreFlto{action.Base{ActionName: "ignore_flto", Mask: action.MaskCompilerTool}}, nil
}

// BeforeRun strips any -flto* flag.
func (a *ignoreFlto) BeforeRun(t tool.Instance) error {
	kept := make([]string, 0, len(t.Args()))
	for _, arg := range t.Args() {
		if strings.HasPrefix(arg, "-flto") {
			continue
		}
		kept = append(kept, arg)
	}
	t.SetArgs(kept)
	return nil
}
