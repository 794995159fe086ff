package tool

import "github.com/trailofbits/blight/internal/enums"

// CPP wraps an invocation of the standalone preprocessor. It recognizes
// language and standard flags and defines, but has no notion of
// optimization level or compilation stage.
type CPP struct{ *base }

// NewCPP constructs a CPP tool from raw args.
func NewCPP(args []string, cwd string, env []string) CPP {
	return CPP{newBase(enums.CPP, args, cwd, env)}
}

func (t CPP) Lang() enums.Lang               { return langOf(t.base) }
func (t CPP) Std() enums.Std                 { return stdOf(t.base, t.Lang()) }
func (t CPP) Defines() []Define              { return definesOf(t.base) }
func (t CPP) IndexedUndefines() map[string]int { return indexedUndefinesOf(t.base) }
func (t CPP) Record() Record                 { return recordOf(t) }
