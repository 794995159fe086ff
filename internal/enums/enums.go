// Package enums holds the closed vocabularies blight's tool model is built
// from: tool kinds, languages, language standards, compilation stages,
// optimization levels, code models, and the suffix/pattern tables used to
// classify inputs and outputs.
package enums

import "regexp"

// ToolKind identifies which member of the C/C++ toolchain a Tool wraps.
type ToolKind int

const (
	CC ToolKind = iota
	CXX
	CPP
	LD
	AS
	AR
	STRIP
	INSTALL
)

func (k ToolKind) String() string {
	switch k {
	case CC:
		return "cc"
	case CXX:
		return "c++"
	case CPP:
		return "cpp"
	case LD:
		return "ld"
	case AS:
		return "as"
	case AR:
		return "ar"
	case STRIP:
		return "strip"
	case INSTALL:
		return "install"
	default:
		return "unknown"
	}
}

// EnvSuffix is the suffix used in BLIGHT_WRAPPED_<suffix> for this kind.
func (k ToolKind) EnvSuffix() string {
	switch k {
	case CC:
		return "CC"
	case CXX:
		return "CXX"
	case CPP:
		return "CPP"
	case LD:
		return "LD"
	case AS:
		return "AS"
	case AR:
		return "AR"
	case STRIP:
		return "STRIP"
	case INSTALL:
		return "INSTALL"
	default:
		return ""
	}
}

// SupportsResponseFiles reports whether args for this kind are subject to
// @file expansion. Every wrapped tool except install does.
func (k ToolKind) SupportsResponseFiles() bool {
	return k != INSTALL
}

// WrappedEnvVar returns the BLIGHT_WRAPPED_<KIND> variable name for k.
func WrappedEnvVar(k ToolKind) string {
	return "BLIGHT_WRAPPED_" + k.EnvSuffix()
}

// ShimBasenames maps the canonical blight-* shim names, plus the common
// compiler/linker aliases a real build will invoke directly (gcc, clang,
// g++, clang++, gold, gas, lld and versioned clang variants), to the kind
// they wrap.
var ShimBasenames = buildShimBasenames()

func buildShimBasenames() map[string]ToolKind {
	m := map[string]ToolKind{
		"blight-cc":      CC,
		"blight-c++":     CXX,
		"blight-cpp":     CPP,
		"blight-ld":      LD,
		"blight-as":      AS,
		"blight-ar":      AR,
		"blight-strip":   STRIP,
		"blight-install": INSTALL,
		"gcc":            CC,
		"cc":             CC,
		"clang":          CC,
		"g++":            CXX,
		"c++":            CXX,
		"clang++":        CXX,
		"cpp":            CPP,
		"ld":             LD,
		"gold":           LD,
		"lld":            LD,
		"as":             AS,
		"gas":            AS,
		"ar":             AR,
		"strip":          STRIP,
		"install":        INSTALL,
	}
	for _, v := range []string{"3.8", "7", "9", "10", "11", "12", "13", "14", "15", "16", "17", "18"} {
		m["clang-"+v] = CC
		m["clang++-"+v] = CXX
	}
	return m
}

// Lang is the source language a compiler invocation targets.
type Lang int

const (
	LangUnknown Lang = iota
	LangC
	LangCxx
)

func (l Lang) String() string {
	switch l {
	case LangC:
		return "c"
	case LangCxx:
		return "c++"
	default:
		return "unknown"
	}
}

// Std is a specific language standard, C and C++ alike.
type Std int

const (
	StdUnknown Std = iota
	StdC89
	StdC99
	StdC11
	StdC17
	StdC2x
	StdCUnknown
	StdGnu89
	StdGnu99
	StdGnu11
	StdGnu17
	StdGnu2x
	StdGnuUnknown
	StdCxx03
	StdCxx11
	StdCxx14
	StdCxx17
	StdCxx2a
	StdCxxUnknown
	StdGnuxx03
	StdGnuxx11
	StdGnuxx14
	StdGnuxx17
	StdGnuxx2a
	StdGnuxxUnknown
)

// IsCStd reports whether s names a (possibly GNU-flavored) C standard.
func (s Std) IsCStd() bool {
	switch s {
	case StdC89, StdC99, StdC11, StdC17, StdC2x, StdCUnknown,
		StdGnu89, StdGnu99, StdGnu11, StdGnu17, StdGnu2x, StdGnuUnknown:
		return true
	default:
		return false
	}
}

// IsCxxStd reports whether s names a (possibly GNU-flavored) C++ standard.
func (s Std) IsCxxStd() bool {
	switch s {
	case StdCxx03, StdCxx11, StdCxx14, StdCxx17, StdCxx2a, StdCxxUnknown,
		StdGnuxx03, StdGnuxx11, StdGnuxx14, StdGnuxx17, StdGnuxx2a, StdGnuxxUnknown:
		return true
	default:
		return false
	}
}

// Lang returns the language implied by s, if any.
func (s Std) Lang() Lang {
	switch {
	case s.IsCStd():
		return LangC
	case s.IsCxxStd():
		return LangCxx
	default:
		return LangUnknown
	}
}

// StdFlagMap is the exhaustive set of literal -std= flag values blight
// recognizes, matching gcc/clang's accepted spellings.
var StdFlagMap = map[string]Std{
	"-std=c89":           StdC89,
	"-std=c90":           StdC89,
	"-std=iso9899:1990":  StdC89,
	"-std=c99":           StdC99,
	"-std=c9x":           StdC99,
	"-std=iso9899:1999":  StdC99,
	"-std=iso9899:199x":  StdC99,
	"-std=c11":           StdC11,
	"-std=c1x":           StdC11,
	"-std=iso9899:2011":  StdC11,
	"-std=c17":           StdC17,
	"-std=c18":           StdC17,
	"-std=iso9899:2017":  StdC17,
	"-std=iso9899:2018":  StdC17,
	"-std=c2x":           StdC2x,
	"-std=gnu89":         StdGnu89,
	"-std=gnu90":         StdGnu89,
	"-std=gnu99":         StdGnu99,
	"-std=gnu9x":         StdGnu99,
	"-std=gnu11":         StdGnu11,
	"-std=gnu1x":         StdGnu11,
	"-std=gnu17":         StdGnu17,
	"-std=gnu18":         StdGnu17,
	"-std=gnu2x":         StdGnu2x,
	"-std=c++98":         StdCxx03,
	"-std=c++03":         StdCxx03,
	"-std=c++11":         StdCxx11,
	"-std=c++0x":         StdCxx11,
	"-std=c++14":         StdCxx14,
	"-std=c++1y":         StdCxx14,
	"-std=c++17":         StdCxx17,
	"-std=c++1z":         StdCxx17,
	"-std=c++2a":         StdCxx2a,
	"-std=gnu++98":       StdGnuxx03,
	"-std=gnu++03":       StdGnuxx03,
	"-std=gnu++11":       StdGnuxx11,
	"-std=gnu++0x":       StdGnuxx11,
	"-std=gnu++14":       StdGnuxx14,
	"-std=gnu++1y":       StdGnuxx14,
	"-std=gnu++17":       StdGnuxx17,
	"-std=gnu++1z":       StdGnuxx17,
	"-std=gnu++2a":       StdGnuxx2a,
}

// Stage is the furthest stage of compilation a CC/CXX invocation reaches.
type Stage int

const (
	StageAllStages Stage = iota
	StagePreprocess
	StageSyntaxOnly
	StageAssemble
	StageCompileObject
	StageUnknown
)

// OptLevel is a compiler optimization level.
type OptLevel int

const (
	OptO0 OptLevel = iota
	OptO1
	OptO2
	OptO3
	OptOFast
	OptOSize
	OptOSizeZ
	OptODebug
	OptUnknown
)

// ForSize reports whether the level optimizes primarily for code size.
func (o OptLevel) ForSize() bool {
	return o == OptOSize || o == OptOSizeZ
}

// ForPerformance reports whether the level optimizes primarily for speed.
func (o OptLevel) ForPerformance() bool {
	return o == OptO2 || o == OptO3 || o == OptOFast
}

// ForDebug reports whether the level favors debuggability over codegen.
func (o OptLevel) ForDebug() bool {
	return o == OptO0 || o == OptODebug
}

// OptFlagMap is the exact-match table for -O flags with no numeric suffix.
var OptFlagMap = map[string]OptLevel{
	"-O0":     OptO0,
	"-O":      OptO1,
	"-O1":     OptO1,
	"-O2":     OptO2,
	"-O3":     OptO3,
	"-Ofast":  OptOFast,
	"-Os":     OptOSize,
	"-Oz":     OptOSizeZ,
	"-Og":     OptODebug,
}

var optHighNumberRe = regexp.MustCompile(`^-O[1-9][0-9]*$`)

// ClassifyOpt resolves a single -O-family argument to an OptLevel. Callers
// scan right to left over the raw arguments and stop at the first match.
func ClassifyOpt(arg string) (OptLevel, bool) {
	if lvl, ok := OptFlagMap[arg]; ok {
		return lvl, true
	}
	if optHighNumberRe.MatchString(arg) {
		return OptO3, true
	}
	if len(arg) > 2 && arg[0] == '-' && arg[1] == 'O' {
		return OptUnknown, true
	}
	return OptUnknown, false
}

// CodeModel is the machine code model a compiler or linker targets via
// -mcmodel=.
type CodeModel int

const (
	CodeModelSmall CodeModel = iota
	CodeModelMedium
	CodeModelLarge
	CodeModelKernel
	CodeModelUnknown
)

// CodeModelAliases maps historical aliases to their canonical model, as
// gcc/clang accept both spellings.
var CodeModelAliases = map[string]CodeModel{
	"small":   CodeModelSmall,
	"medlow":  CodeModelSmall,
	"medium":  CodeModelMedium,
	"medany":  CodeModelMedium,
	"large":   CodeModelLarge,
	"kernel":  CodeModelKernel,
}

// OutputKind classifies a tool's output file by suffix or name pattern.
type OutputKind int

const (
	OutputUnknown OutputKind = iota
	OutputObject
	OutputAssembly
	OutputPreprocessed
	OutputExecutable
	OutputSharedLibrary
	OutputStaticLibrary
	OutputBitcode
	OutputLLVMAssembly
	OutputDebugInfo
)

// OutputSuffixKindMap maps an exact output-file suffix to its OutputKind.
var OutputSuffixKindMap = map[string]OutputKind{
	".o":      OutputObject,
	".obj":    OutputObject,
	".s":      OutputAssembly,
	".S":      OutputAssembly,
	".i":      OutputPreprocessed,
	".ii":     OutputPreprocessed,
	".a":      OutputStaticLibrary,
	".so":     OutputSharedLibrary,
	".dylib":  OutputSharedLibrary,
	".dll":    OutputSharedLibrary,
	".bc":     OutputBitcode,
	".ll":     OutputLLVMAssembly,
	".dSYM":   OutputDebugInfo,
	".pdb":    OutputDebugInfo,
	".debug":  OutputDebugInfo,
}

// OutputSuffixPatternMap maps a regex over the full output basename to its
// OutputKind, for suffixes a literal table can't express (versioned shared
// objects produced by libtool: libfoo.so.1.2.3).
var OutputSuffixPatternMap = map[*regexp.Regexp]OutputKind{
	regexp.MustCompile(`\.so(\.\d+){1,3}$`): OutputSharedLibrary,
}

func (k OutputKind) String() string {
	switch k {
	case OutputObject:
		return "object"
	case OutputAssembly:
		return "assembly"
	case OutputPreprocessed:
		return "preprocessed"
	case OutputExecutable:
		return "executable"
	case OutputSharedLibrary:
		return "shared_library"
	case OutputStaticLibrary:
		return "static_library"
	case OutputBitcode:
		return "bitcode"
	case OutputLLVMAssembly:
		return "llvm_assembly"
	case OutputDebugInfo:
		return "debug_info"
	default:
		return "unknown"
	}
}

// ClassifyOutput resolves the OutputKind for a filename, trying the literal
// suffix table first and then the pattern table.
func ClassifyOutput(name string) OutputKind {
	if kind, ok := classifyBySuffix(name); ok {
		return kind
	}
	for re, kind := range OutputSuffixPatternMap {
		if re.MatchString(name) {
			return kind
		}
	}
	return OutputUnknown
}

func classifyBySuffix(name string) (OutputKind, bool) {
	for suffix, kind := range OutputSuffixKindMap {
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return kind, true
		}
	}
	return OutputUnknown, false
}

// InputKind classifies a tool's input file by suffix.
type InputKind int

const (
	InputUnknown InputKind = iota
	InputCSource
	InputCxxSource
	InputHeader
	InputAssembly
	InputObject
	InputStaticLibrary
	InputSharedLibrary
	InputBitcode
)

// InputSuffixKindMap maps an exact input-file suffix to its InputKind.
var InputSuffixKindMap = map[string]InputKind{
	".c":     InputCSource,
	".cc":    InputCxxSource,
	".cp":    InputCxxSource,
	".cxx":   InputCxxSource,
	".cpp":   InputCxxSource,
	".c++":   InputCxxSource,
	".h":     InputHeader,
	".hh":    InputHeader,
	".hpp":   InputHeader,
	".hxx":   InputHeader,
	".s":     InputAssembly,
	".S":     InputAssembly,
	".o":     InputObject,
	".obj":   InputObject,
	".a":     InputStaticLibrary,
	".so":    InputSharedLibrary,
	".dylib": InputSharedLibrary,
	".bc":    InputBitcode,
}

func (k InputKind) String() string {
	switch k {
	case InputCSource:
		return "c_source"
	case InputCxxSource:
		return "cxx_source"
	case InputHeader:
		return "header"
	case InputAssembly:
		return "assembly"
	case InputObject:
		return "object"
	case InputStaticLibrary:
		return "static_library"
	case InputSharedLibrary:
		return "shared_library"
	case InputBitcode:
		return "bitcode"
	default:
		return "unknown"
	}
}

// ClassifyInput resolves the InputKind for a filename by suffix.
func ClassifyInput(name string) InputKind {
	for suffix, kind := range InputSuffixKindMap {
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return kind
		}
	}
	return InputUnknown
}

// SwizzleSentinel is the suffix appended to blight's swizzled shim
// directories, letting the PATH sanitizer recognize and strip its own
// directories before handing the environment to a wrapped tool (this is
// what prevents a shim from recursively re-invoking itself).
const SwizzleSentinel = "@blight-swizzle@"

// ResponseFileRecursionLimit bounds @file expansion depth.
const ResponseFileRecursionLimit = 64
