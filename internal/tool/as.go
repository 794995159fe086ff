package tool

import "github.com/trailofbits/blight/internal/enums"

// AS wraps an invocation of the assembler. It has no kind-specific
// capabilities beyond the generic base behavior.
type AS struct{ *base }

// NewAS constructs an AS tool from raw args.
func NewAS(args []string, cwd string, env []string) AS {
	return AS{newBase(enums.AS, args, cwd, env)}
}

func (t AS) Record() Record { return recordOf(t) }
