package tool

import "github.com/trailofbits/blight/internal/enums"

// CC wraps an invocation of the C compiler frontend.
type CC struct{ *base }

// NewCC constructs a CC tool from raw (un-response-file-expanded) args.
func NewCC(args []string, cwd string, env []string) CC {
	return CC{newBase(enums.CC, args, cwd, env)}
}

func (t CC) Lang() enums.Lang               { return langOf(t.base) }
func (t CC) Std() enums.Std                 { return stdOf(t.base, t.Lang()) }
func (t CC) Opt() enums.OptLevel            { return optOf(t.base) }
func (t CC) Stage() enums.Stage             { return stageOf(t.base) }
func (t CC) CodeModel() enums.CodeModel     { return codeModelOf(t.base) }
func (t CC) Defines() []Define              { return definesOf(t.base) }
func (t CC) IndexedUndefines() map[string]int { return indexedUndefinesOf(t.base) }
func (t CC) SearchPaths() []string          { return searchPathsOf(t.base) }
func (t CC) LibraryNames() []string         { return libraryNamesOf(t.base) }
func (t CC) Family() (Family, error)        { return probeFamily(t.base) }
func (t CC) Outputs() []string              { return compilerOutputs(t.base, t.Stage()) }
func (t CC) Record() Record                 { return recordOf(t) }

// CXX wraps an invocation of the C++ compiler frontend.
type CXX struct{ *base }

// NewCXX constructs a CXX tool from raw args.
func NewCXX(args []string, cwd string, env []string) CXX {
	return CXX{newBase(enums.CXX, args, cwd, env)}
}

func (t CXX) Lang() enums.Lang               { return langOf(t.base) }
func (t CXX) Std() enums.Std                 { return stdOf(t.base, t.Lang()) }
func (t CXX) Opt() enums.OptLevel            { return optOf(t.base) }
func (t CXX) Stage() enums.Stage             { return stageOf(t.base) }
func (t CXX) CodeModel() enums.CodeModel     { return codeModelOf(t.base) }
func (t CXX) Defines() []Define              { return definesOf(t.base) }
func (t CXX) IndexedUndefines() map[string]int { return indexedUndefinesOf(t.base) }
func (t CXX) SearchPaths() []string          { return searchPathsOf(t.base) }
func (t CXX) LibraryNames() []string         { return libraryNamesOf(t.base) }
func (t CXX) Family() (Family, error)        { return probeFamily(t.base) }
func (t CXX) Outputs() []string              { return compilerOutputs(t.base, t.Stage()) }
func (t CXX) Record() Record                 { return recordOf(t) }
