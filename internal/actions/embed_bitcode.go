package actions

import (
	"github.com/trailofbits/blight/internal/action"
	"github.com/trailofbits/blight/internal/tool"
)

func init() {
	action.Register("embed_bitcode", newEmbedBitcode)
}

type embedBitcode struct{ action.Base }

func newEmbedBitcode(map[string]string) (action.Action, error) {
	return &embedBitcode{action.Base{ActionName: "embed_bitcode", Mask: action.MaskCompilerTool}}, nil
}

// BeforeRun prepends -fembed-bitcode so it can still be overridden by a
// later, more specific flag from the build system itself.
func (a *embedBitcode) BeforeRun(t tool.Instance) error {
	t.SetArgs(append([]string{"-fembed-bitcode"}, t.Args()...))
	return nil
}
