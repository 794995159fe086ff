package tool

import "github.com/trailofbits/blight/internal/enums"

// STRIP wraps an invocation of the symbol stripper. It has no kind-specific
// capabilities beyond the generic base behavior; its real-world usage never
// produces a distinct output file (it rewrites its input in place), so the
// generic -o-scan Outputs implementation correctly returns nothing for the
// common case.
type STRIP struct{ *base }

// NewSTRIP constructs a STRIP tool from raw args.
func NewSTRIP(args []string, cwd string, env []string) STRIP {
	return STRIP{newBase(enums.STRIP, args, cwd, env)}
}

func (t STRIP) Record() Record { return recordOf(t) }
