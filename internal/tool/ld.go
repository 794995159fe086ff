package tool

import "github.com/trailofbits/blight/internal/enums"

// LD wraps an invocation of the linker, invoked either directly or as the
// final step of a compiler driver.
type LD struct{ *base }

// NewLD constructs an LD tool from raw args.
func NewLD(args []string, cwd string, env []string) LD {
	return LD{newBase(enums.LD, args, cwd, env)}
}

func (t LD) SearchPaths() []string      { return searchPathsOf(t.base) }
func (t LD) LibraryNames() []string     { return libraryNamesOf(t.base) }
func (t LD) CodeModel() enums.CodeModel { return codeModelOf(t.base) }
func (t LD) Record() Record             { return recordOf(t) }

// Outputs prefers an explicit -o, then --output[=], then falls back to
// a.out the way the linker itself does.
func (t LD) Outputs() []string {
	args := t.CanonicalArgs()
	if vals := collectMashOrSpace(args, "-o"); len(vals) > 0 {
		return []string{vals[len(vals)-1]}
	}
	if vals := collectEqualOrSpace(args, "--output"); len(vals) > 0 {
		return []string{vals[len(vals)-1]}
	}
	return []string{"a.out"}
}
