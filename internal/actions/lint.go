package actions

import (
	"github.com/sirupsen/logrus"
	"github.com/trailofbits/blight/internal/action"
	"github.com/trailofbits/blight/internal/tool"
)

func init() {
	action.Register("lint", newLint)
}

type lint struct{ action.Base }

func newLint(map[string]string) (action.Action, error) {
	return &lint{action.Base{ActionName: "lint", Mask: action.MaskCompilerTool}}, nil
}

// BeforeRun warns about -DFORTIFY_SOURCE, a common typo for
// -D_FORTIFY_SOURCE that silently does nothing.
// TODO: flag -Wall without -Wextra once a concrete hardening-flag policy exists.
func (a *lint) BeforeRun(t tool.Instance) error {
	defs, ok := t.(tool.HasDefines)
	if !ok {
		return nil
	}
	for _, d := range defs.Defines() {
		if d.Name == "FORTIFY_SOURCE" {
			logrus.Warn("blight: -DFORTIFY_SOURCE defined without its leading underscore; did you mean -D_FORTIFY_SOURCE?")
		}
	}
	return nil
}
