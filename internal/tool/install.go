package tool

import (
	"strings"

	"github.com/trailofbits/blight/internal/enums"
)

// INSTALL wraps an invocation of the install utility, whose grammar is
// unlike any other wrapped tool's: there is no single -o output flag,
// and whether the final positional is a destination file or directory
// depends on a handful of mode-changing options.
type INSTALL struct{ *base }

// NewINSTALL constructs an INSTALL tool from raw args. Response files are
// never expanded for install invocations (CanonicalArgs == Args) -- real
// build systems don't generate @file lists for install calls, and GNU
// install has no @file convention of its own.
func NewINSTALL(args []string, cwd string, env []string) INSTALL {
	return INSTALL{newBase(enums.INSTALL, args, cwd, env)}
}

// installValueFlags are the options that consume a following argument as
// their value, rather than being a bare boolean switch.
var installValueFlags = map[string]bool{
	"-m": true, "--mode": true,
	"-o": true, "--owner": true,
	"-g": true, "--group": true,
	"-S": true, "--suffix": true,
	"-t": true, "--target-directory": true,
	"--strip-program": true,
}

type installGrammar struct {
	help          bool
	directoryMode bool
	targetDir     string
	positionals   []string
}

// parseInstall is install(1)'s mini-grammar: [OPTION]... SOURCE... DEST,
// [OPTION]... -t DIR SOURCE..., or -d DIR... (create-directories mode).
func parseInstall(args []string) installGrammar {
	var g installGrammar
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--help":
			g.help = true
		case a == "-d" || a == "--directory":
			g.directoryMode = true
		case a == "-t":
			if i+1 < len(args) {
				i++
				g.targetDir = args[i]
			}
		case strings.HasPrefix(a, "--target-directory="):
			g.targetDir = strings.TrimPrefix(a, "--target-directory=")
		case installValueFlags[a]:
			i++
		case strings.HasPrefix(a, "-") && a != "-":
			// unrecognized flag: assume boolean and move on
		default:
			g.positionals = append(g.positionals, a)
		}
	}
	return g
}

// Inputs resolves install's source file(s): everything but the trailing
// destination, unless -t/-d changes the grammar.
func (t INSTALL) Inputs() []string {
	g := parseInstall(t.CanonicalArgs())
	switch {
	case g.help, g.directoryMode:
		return nil
	case g.targetDir != "":
		return g.positionals
	case len(g.positionals) == 0:
		return nil
	default:
		return g.positionals[:len(g.positionals)-1]
	}
}

// Outputs resolves install's destination(s).
func (t INSTALL) Outputs() []string {
	g := parseInstall(t.CanonicalArgs())
	switch {
	case g.help:
		return nil
	case g.directoryMode:
		return g.positionals
	case g.targetDir != "":
		return []string{g.targetDir}
	case len(g.positionals) == 0:
		return nil
	default:
		return []string{g.positionals[len(g.positionals)-1]}
	}
}

func (t INSTALL) Record() Record { return recordOf(t) }
