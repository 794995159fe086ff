// Package tool models a single invocation of a wrapped C/C++ toolchain
// member. Each tool kind (CC, CXX, CPP, LD, AS, AR, STRIP, INSTALL) is a
// distinct Go type embedding a common base, implementing only the
// capability interfaces that apply to it -- a tagged union plus traits,
// rather than the class-hierarchy mixins the original Python
// implementation leaned on.
package tool

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trailofbits/blight/internal/argutil"
	"github.com/trailofbits/blight/internal/enums"
)

// Instance is the common surface every tool kind satisfies.
type Instance interface {
	Kind() enums.ToolKind
	RawArgs() []string
	Args() []string
	SetArgs([]string)
	CanonicalArgs() []string
	Cwd() string
	Env() []string
	WrappedPath() (string, error)
	Inputs() []string
	Outputs() []string
	Record() Record
}

// base implements the mechanics shared by every kind: argument storage,
// response-file expansion, and the generic -o-based output search. Kind
// types embed *base and override Outputs/Inputs where their kind's
// semantics differ, and add whichever capability methods apply to them.
type base struct {
	kind           enums.ToolKind
	rawArgs        []string
	args           []string
	cwd            string
	env            []string
	canonical      []string
	canonicalValid bool
}

func newBase(kind enums.ToolKind, args []string, cwd string, env []string) *base {
	return &base{
		kind:    kind,
		rawArgs: append([]string(nil), args...),
		args:    append([]string(nil), args...),
		cwd:     cwd,
		env:     env,
	}
}

func (b *base) Kind() enums.ToolKind { return b.kind }
func (b *base) RawArgs() []string    { return b.rawArgs }
func (b *base) Args() []string       { return b.args }
func (b *base) Cwd() string          { return b.cwd }
func (b *base) Env() []string        { return b.env }

// SetArgs replaces the working argument list -- actions call this to
// inject or remove flags before the wrapped tool runs -- and invalidates
// the cached canonical view.
func (b *base) SetArgs(args []string) {
	b.args = args
	b.canonicalValid = false
}

// CanonicalArgs is the response-file-expanded view of Args, used by every
// derived property. It is recomputed lazily and cached until SetArgs is
// called again.
func (b *base) CanonicalArgs() []string {
	if !b.canonicalValid {
		if b.kind.SupportsResponseFiles() {
			b.canonical = argutil.ExpandResponseFiles(b.args, b.cwd)
		} else {
			b.canonical = append([]string(nil), b.args...)
		}
		b.canonicalValid = true
	}
	return b.canonical
}

// WrappedPath returns the real tool path from BLIGHT_WRAPPED_<KIND>.
func (b *base) WrappedPath() (string, error) {
	key := enums.WrappedEnvVar(b.kind)
	if v, ok := getenv(b.env, key); ok && v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%s is not set; blight cannot determine which %s to wrap", key, b.kind)
}

// Inputs is the generic input-resolution algorithm: positional arguments
// (not flag-prefixed, not response files, not the value following -o or
// -aux-info) that name a file that exists relative to cwd. A bare "-"
// (stdin) is kept.
func (b *base) Inputs() []string {
	args := b.CanonicalArgs()
	var out []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "-aux-info" || a == "-o" {
			i++
			continue
		}
		if a != "-" && strings.HasPrefix(a, "-") {
			continue
		}
		if strings.HasPrefix(a, "@") {
			continue
		}
		p := a
		if !filepath.IsAbs(p) {
			p = filepath.Join(b.cwd, p)
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, a)
		}
	}
	return out
}

// Outputs is the generic output-resolution algorithm: the rightmost -o
// value, in either "-o X" or "-oX" form. Kinds whose real tool uses a
// different convention (LD, AR, INSTALL) override this.
func (b *base) Outputs() []string {
	vals := argutil.CollectOptionValues(b.CanonicalArgs(), "-o", argutil.MashOrSpace)
	if len(vals) == 0 {
		return nil
	}
	return []string{vals[len(vals)-1].Value}
}

func getenv(env []string, key string) (string, bool) {
	prefix := key + "="
	for i := len(env) - 1; i >= 0; i-- {
		if strings.HasPrefix(env[i], prefix) {
			return env[i][len(prefix):], true
		}
	}
	return "", false
}

// Record is the serializable snapshot of a tool invocation, used by the
// Record and journal-committing parts of the runtime.
type Record struct {
	Kind          string   `json:"kind"`
	RawArgs       []string `json:"raw_args"`
	Args          []string `json:"args"`
	CanonicalArgs []string `json:"canonical_args"`
	Cwd           string   `json:"cwd"`
	Wrapped       string   `json:"wrapped,omitempty"`
	Inputs        []string `json:"inputs"`
	Outputs       []string `json:"outputs"`
}

func recordOf(i Instance) Record {
	wrapped, _ := i.WrappedPath()
	return Record{
		Kind:          i.Kind().String(),
		RawArgs:       i.RawArgs(),
		Args:          i.Args(),
		CanonicalArgs: i.CanonicalArgs(),
		Cwd:           i.Cwd(),
		Wrapped:       wrapped,
		Inputs:        i.Inputs(),
		Outputs:       i.Outputs(),
	}
}

func withSuffix(path, suffix string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	return base + suffix
}
