package tool

import "github.com/trailofbits/blight/internal/enums"

// New constructs the appropriate concrete tool type for kind.
func New(kind enums.ToolKind, args []string, cwd string, env []string) Instance {
	switch kind {
	case enums.CC:
		return NewCC(args, cwd, env)
	case enums.CXX:
		return NewCXX(args, cwd, env)
	case enums.CPP:
		return NewCPP(args, cwd, env)
	case enums.LD:
		return NewLD(args, cwd, env)
	case enums.AS:
		return NewAS(args, cwd, env)
	case enums.AR:
		return NewAR(args, cwd, env)
	case enums.STRIP:
		return NewSTRIP(args, cwd, env)
	case enums.INSTALL:
		return NewINSTALL(args, cwd, env)
	default:
		return NewCC(args, cwd, env)
	}
}
