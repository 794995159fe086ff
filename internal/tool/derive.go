package tool

import (
	"strings"

	"github.com/trailofbits/blight/internal/argutil"
	"github.com/trailofbits/blight/internal/enums"
)

// langOf resolves the rightmost -x LANG / -xLANG argument, falling back to
// the kind's implied default (CC -> C, CXX -> C++, everything else ->
// unknown).
func langOf(b *base) enums.Lang {
	vals := argutil.CollectOptionValues(b.CanonicalArgs(), "-x", argutil.MashOrSpace)
	if len(vals) > 0 {
		switch vals[len(vals)-1].Value {
		case "c", "c-header":
			return enums.LangC
		case "c++", "c++-header":
			return enums.LangCxx
		default:
			return enums.LangUnknown
		}
	}
	switch b.kind {
	case enums.CC:
		return enums.LangC
	case enums.CXX:
		return enums.LangCxx
	default:
		return enums.LangUnknown
	}
}

// stdOf resolves -ansi and -std=, falling back to a GNU-flavored default
// for the resolved language when neither is present.
func stdOf(b *base, lang enums.Lang) enums.Std {
	args := b.CanonicalArgs()
	if _, ok := argutil.Rindex(args, "-ansi"); ok {
		switch lang {
		case enums.LangC:
			return enums.StdC89
		case enums.LangCxx:
			return enums.StdCxx03
		default:
			return enums.StdUnknown
		}
	}
	if flag, ok := argutil.RitemPrefix(args, "-std="); ok {
		if std, ok := enums.StdFlagMap[flag]; ok {
			return std
		}
		switch {
		case strings.HasPrefix(flag, "-std=gnu++"):
			return enums.StdGnuxxUnknown
		case strings.HasPrefix(flag, "-std=c++"):
			return enums.StdCxxUnknown
		case strings.HasPrefix(flag, "-std=gnu"):
			return enums.StdGnuUnknown
		case strings.HasPrefix(flag, "-std=c"), strings.HasPrefix(flag, "-std=iso9899"):
			return enums.StdCUnknown
		default:
			return enums.StdUnknown
		}
	}
	switch lang {
	case enums.LangC:
		return enums.StdGnuUnknown
	case enums.LangCxx:
		return enums.StdGnuxxUnknown
	default:
		return enums.StdUnknown
	}
}

// optOf scans right to left for the last recognizable -O-family flag.
func optOf(b *base) enums.OptLevel {
	args := b.CanonicalArgs()
	for i := len(args) - 1; i >= 0; i-- {
		if lvl, ok := enums.ClassifyOpt(args[i]); ok {
			return lvl
		}
	}
	return enums.OptO0
}

// stageOf scans left to right, stopping at the first flag that determines
// how far the compiler goes.
func stageOf(b *base) enums.Stage {
	args := b.CanonicalArgs()
	if len(args) == 0 {
		return enums.StageUnknown
	}
	for _, a := range args {
		switch a {
		case "-v", "-###":
			return enums.StageUnknown
		case "-E":
			return enums.StagePreprocess
		case "-fsyntax-only":
			return enums.StageSyntaxOnly
		case "-S":
			return enums.StageAssemble
		case "-c":
			return enums.StageCompileObject
		}
	}
	return enums.StageAllStages
}

// codeModelOf resolves -mcmodel=, defaulting to the small model.
func codeModelOf(b *base) enums.CodeModel {
	vals := argutil.CollectOptionValues(b.CanonicalArgs(), "-mcmodel", argutil.Equal)
	if len(vals) == 0 {
		return enums.CodeModelSmall
	}
	v := vals[len(vals)-1].Value
	if cm, ok := enums.CodeModelAliases[v]; ok {
		return cm
	}
	return enums.CodeModelUnknown
}

// indexedUndefinesOf returns the rightmost argument index at which each
// -U'd name was undefined.
func indexedUndefinesOf(b *base) map[string]int {
	out := map[string]int{}
	for _, v := range argutil.CollectOptionValues(b.CanonicalArgs(), "-U", argutil.MashOrSpace) {
		if cur, ok := out[v.Value]; !ok || v.Index > cur {
			out[v.Value] = v.Index
		}
	}
	return out
}

// definesOf resolves -D in left-to-right order, excluding any name that a
// later (higher-indexed) -U undefines.
func definesOf(b *base) []Define {
	undefs := indexedUndefinesOf(b)
	var out []Define
	for _, v := range argutil.CollectOptionValues(b.CanonicalArgs(), "-D", argutil.MashOrSpace) {
		name, value := v.Value, "1"
		if eq := strings.IndexByte(v.Value, '='); eq >= 0 {
			name, value = v.Value[:eq], v.Value[eq+1:]
		}
		if uidx, ok := undefs[name]; ok && uidx > v.Index {
			continue
		}
		out = append(out, Define{Name: name, Value: value})
	}
	return out
}

// searchPathsOf collects -L and --library-path values, in argument order.
func searchPathsOf(b *base) []string {
	args := b.CanonicalArgs()
	short := argutil.CollectOptionValues(args, "-L", argutil.MashOrSpace)
	long := argutil.CollectOptionValues(args, "--library-path", argutil.EqualOrSpace)
	var out []string
	for len(short) > 0 || len(long) > 0 {
		if len(long) == 0 || (len(short) > 0 && short[0].Index < long[0].Index) {
			out = append(out, short[0].Value)
			short = short[1:]
		} else {
			out = append(out, long[0].Value)
			long = long[1:]
		}
	}
	return out
}

// libraryNamesOf collects -l and --library values, re-prefixed with "lib"
// the way the linker resolves them to a filename.
func libraryNamesOf(b *base) []string {
	args := b.CanonicalArgs()
	var out []string
	for _, v := range argutil.CollectOptionValues(args, "-l", argutil.MashOrSpace) {
		out = append(out, "lib"+v.Value)
	}
	for _, v := range argutil.CollectOptionValues(args, "--library", argutil.EqualOrSpace) {
		out = append(out, "lib"+v.Value)
	}
	return out
}

// collectMashOrSpace returns just the values for a MashOrSpace-style
// option, discarding indices.
func collectMashOrSpace(args []string, opt string) []string {
	vals := argutil.CollectOptionValues(args, opt, argutil.MashOrSpace)
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.Value
	}
	return out
}

// collectEqualOrSpace returns just the values for an EqualOrSpace-style
// option, discarding indices.
func collectEqualOrSpace(args []string, opt string) []string {
	vals := argutil.CollectOptionValues(args, opt, argutil.EqualOrSpace)
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.Value
	}
	return out
}

// compilerOutputs is CC/CXX's Outputs override: an explicit -o wins;
// otherwise the output is derived from the stage reached.
func compilerOutputs(b *base, stage enums.Stage) []string {
	if vals := argutil.CollectOptionValues(b.CanonicalArgs(), "-o", argutil.MashOrSpace); len(vals) > 0 {
		return []string{vals[len(vals)-1].Value}
	}
	switch stage {
	case enums.StagePreprocess:
		return []string{"-"}
	case enums.StageAssemble:
		var out []string
		for _, in := range b.Inputs() {
			out = append(out, withSuffix(in, ".s"))
		}
		return out
	case enums.StageCompileObject:
		var out []string
		for _, in := range b.Inputs() {
			out = append(out, withSuffix(in, ".o"))
		}
		return out
	case enums.StageAllStages:
		return []string{"a.out"}
	default:
		return nil
	}
}
