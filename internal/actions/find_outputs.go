package actions

import (
	"path/filepath"

	"github.com/trailofbits/blight/internal/action"
	"github.com/trailofbits/blight/internal/enums"
	"github.com/trailofbits/blight/internal/tool"
)

func init() {
	action.Register("find_outputs", newFindOutputs)
}

type findOutputs struct {
	action.Base
	storeDir string
}

func newFindOutputs(config map[string]string) (action.Action, error) {
	return &findOutputs{
		Base:     action.Base{ActionName: "find_outputs", Mask: action.MaskAll},
		storeDir: config["store_dir"],
	}, nil
}

// AfterRun classifies and, if store_dir is configured, archives every
// output the wrapped tool produced. A linker's default a.out is classified
// as an executable even though its name carries no recognizable suffix.
func (a *findOutputs) AfterRun(t tool.Instance, runSkipped bool) (any, error) {
	k := t.Kind()
	classify := func(p string) string {
		if filepath.Base(p) == "a.out" && (k == enums.CC || k == enums.CXX || k == enums.LD) {
			return enums.OutputExecutable.String()
		}
		return enums.ClassifyOutput(p).String()
	}
	return findFiles(t.Outputs(), classify, a.storeDir)
}
