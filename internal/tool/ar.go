package tool

import (
	"strings"

	"github.com/trailofbits/blight/internal/enums"
)

// AR wraps an invocation of the archiver.
type AR struct{ *base }

// NewAR constructs an AR tool from raw args.
func NewAR(args []string, cwd string, env []string) AR {
	return AR{newBase(enums.AR, args, cwd, env)}
}

// Outputs scans left to right for the first positional argument whose
// suffix is .a; ar has no -o flag of its own.
func (t AR) Outputs() []string {
	for _, a := range t.CanonicalArgs() {
		if strings.HasPrefix(a, "-") {
			continue
		}
		if strings.HasSuffix(a, ".a") {
			return []string{a}
		}
	}
	return nil
}

func (t AR) Record() Record { return recordOf(t) }
