// Package actions implements blight's built-in actions: small, composable
// before/after-run hooks registered with internal/action and selected via
// BLIGHT_ACTIONS.
package actions

import (
	"strings"

	"github.com/trailofbits/blight/internal/action"
	"github.com/trailofbits/blight/internal/enums"
	"github.com/trailofbits/blight/internal/tool"
)

func init() {
	action.Register("inject_flags", newInjectFlags)
}

type injectFlags struct {
	action.Base
	cflags         []string
	cxxflags       []string
	cppflags       []string
	cflagsLinker   []string
	cxxflagsLinker []string
}

func newInjectFlags(config map[string]string) (action.Action, error) {
	return &injectFlags{
		Base:           action.Base{ActionName: "inject_flags", Mask: action.MaskCompilerTool},
		cflags:         strings.Fields(config["CFLAGS"]),
		cxxflags:       strings.Fields(config["CXXFLAGS"]),
		cppflags:       strings.Fields(config["CPPFLAGS"]),
		cflagsLinker:   strings.Fields(config["CFLAGS_LINKER"]),
		cxxflagsLinker: strings.Fields(config["CXXFLAGS_LINKER"]),
	}, nil
}

// BeforeRun appends the configured flags for the invocation's resolved
// language, plus CPPFLAGS whenever that language resolved at all, plus the
// *_LINKER flags only when the compiler is also driving the link (stage ==
// AllStages) -- a compile-only invocation (-c) never sees link flags it
// would just warn about. Branching on Lang() rather than Kind() means a CC
// invocation flipped to C++ by cc_for_cxx's -x c++ injection still gets
// CXXFLAGS; nothing is injected, not even CPPFLAGS, when the language
// can't be resolved at all.
func (a *injectFlags) BeforeRun(t tool.Instance) error {
	hl, ok := t.(tool.HasLanguage)
	if !ok {
		return nil
	}
	lang := hl.Lang()
	if lang == enums.LangUnknown {
		return nil
	}

	var extra []string
	extra = append(extra, a.cppflags...)

	atAllStages := false
	if st, ok := t.(tool.HasStage); ok {
		atAllStages = st.Stage() == enums.StageAllStages
	}

	switch lang {
	case enums.LangC:
		extra = append(extra, a.cflags...)
		if atAllStages {
			extra = append(extra, a.cflagsLinker...)
		}
	case enums.LangCxx:
		extra = append(extra, a.cxxflags...)
		if atAllStages {
			extra = append(extra, a.cxxflagsLinker...)
		}
	}

	if len(extra) == 0 {
		return nil
	}
	t.SetArgs(append(append([]string{}, t.Args()...), extra...))
	return nil
}
