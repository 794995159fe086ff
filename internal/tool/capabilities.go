package tool

import "github.com/trailofbits/blight/internal/enums"

// HasLanguage is implemented by kinds whose invocation targets a specific
// source language (-x c / -x c++, or an implied default for the kind).
type HasLanguage interface {
	Lang() enums.Lang
}

// HasStandard is implemented by kinds that additionally recognize -std=.
type HasStandard interface {
	HasLanguage
	Std() enums.Std
}

// HasOpt is implemented by kinds that recognize -O-family flags.
type HasOpt interface {
	Opt() enums.OptLevel
}

// HasStage is implemented by compiler frontends, which stop at different
// points of the pipeline depending on -E/-S/-c/-fsyntax-only.
type HasStage interface {
	Stage() enums.Stage
}

// HasCodeModel is implemented by kinds that recognize -mcmodel=.
type HasCodeModel interface {
	CodeModel() enums.CodeModel
}

// HasDefines is implemented by kinds that recognize -D/-U.
type HasDefines interface {
	Defines() []Define
	IndexedUndefines() map[string]int
}

// HasLinkSearch is implemented by kinds that recognize -L/-l and their
// GNU-style long-option spellings.
type HasLinkSearch interface {
	SearchPaths() []string
	LibraryNames() []string
}

// HasFamily is implemented by kinds that can be probed for their compiler
// lineage (gcc vs. clang) via a one-shot -### invocation.
type HasFamily interface {
	Family() (Family, error)
}

// Define is a single preprocessor definition surfaced via -D.
type Define struct {
	Name  string
	Value string
}
