package actions

import (
	"strings"

	"github.com/trailofbits/blight/internal/action"
	"github.com/trailofbits/blight/internal/tool"
)

func init() {
	action.Register("ignore_flags", newIgnoreFlags)
}

type ignoreFlags struct {
	action.Base
	flags map[string]bool
}

func newIgnoreFlags(config map[string]string) (action.Action, error) {
	set := make(map[string]bool)
	for _, f := range strings.Fields(config["FLAGS"]) {
		set[f] = true
	}
	return &ignoreFlags{
		Base:  action.Base{ActionName: "ignore_flags", Mask: action.MaskCompilerTool},
		flags: set,
	}, nil
}

// BeforeRun removes every argument that exactly matches one of the
// configured flags.
func (a *ignoreFlags) BeforeRun(t tool.Instance) error {
	if len(a.flags) == 0 {
		return nil
	}
	kept := make([]string, 0, len(t.Args()))
	for _, arg := range t.Args() {
		if a.flags[arg] {
			continue
		}
		kept = append(kept, arg)
	}
	t.SetArgs(kept)
	return nil
}
