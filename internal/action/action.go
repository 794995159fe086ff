// Package action defines the framework built-in and external actions plug
// into: a kind-filtered before/after-run hook pair, a SkipRun control-flow
// signal, and the BLIGHT_ACTIONS/BLIGHT_ACTION_<NAME> configuration
// contract.
package action

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/trailofbits/blight/internal/enums"
	"github.com/trailofbits/blight/internal/tool"
)

// ErrSkipRun is returned from BeforeRun to signal that the wrapped tool
// must not be run. It is control flow, not a failure: the dispatcher
// catches it with errors.Is and still runs every action's AfterRun with
// runSkipped=true.
var ErrSkipRun = errors.New("blight: skip run")

// KindMask is a bitset of tool kinds, used to decide which invocations an
// action applies to.
type KindMask uint16

const (
	MaskCC KindMask = 1 << iota
	MaskCXX
	MaskCPP
	MaskLD
	MaskAS
	MaskAR
	MaskSTRIP
	MaskINSTALL
)

// MaskCompilerTool covers both compiler frontends.
const MaskCompilerTool = MaskCC | MaskCXX

// MaskAll matches every kind.
const MaskAll = MaskCC | MaskCXX | MaskCPP | MaskLD | MaskAS | MaskAR | MaskSTRIP | MaskINSTALL

// MaskFor returns the single-bit mask for a kind.
func MaskFor(k enums.ToolKind) KindMask {
	switch k {
	case enums.CC:
		return MaskCC
	case enums.CXX:
		return MaskCXX
	case enums.CPP:
		return MaskCPP
	case enums.LD:
		return MaskLD
	case enums.AS:
		return MaskAS
	case enums.AR:
		return MaskAR
	case enums.STRIP:
		return MaskSTRIP
	case enums.INSTALL:
		return MaskINSTALL
	default:
		return 0
	}
}

// Action is a single unit of pre/post-run behavior applied to a tool
// invocation.
type Action interface {
	Name() string
	Applies(enums.ToolKind) bool
	BeforeRun(t tool.Instance) error
	AfterRun(t tool.Instance, runSkipped bool) (any, error)
}

// Base provides the common Applies() implementation and no-op hooks.
// Concrete actions embed it and override whichever hooks they need.
type Base struct {
	ActionName string
	Mask       KindMask
}

// Name returns the action's registered name.
func (b Base) Name() string { return b.ActionName }

// Applies reports whether k is in the action's kind mask.
func (b Base) Applies(k enums.ToolKind) bool { return b.Mask&MaskFor(k) != 0 }

// BeforeRun is a no-op by default.
func (b Base) BeforeRun(tool.Instance) error { return nil }

// AfterRun is a no-op by default.
func (b Base) AfterRun(tool.Instance, bool) (any, error) { return nil, nil }

// Constructor builds an Action from its parsed BLIGHT_ACTION_<NAME>
// configuration.
type Constructor func(config map[string]string) (Action, error)

var registry = map[string]Constructor{}

// Register adds a built-in action constructor under name. Called from
// init() in the internal/actions package; panics on a duplicate name,
// since that can only happen from a programming mistake at link time.
func Register(name string, ctor Constructor) {
	if _, exists := registry[name]; exists {
		panic("blight: action " + name + " registered twice")
	}
	registry[name] = ctor
}

// ParseConfig splits a BLIGHT_ACTION_<NAME> value into key=value pairs
// using POSIX shell-quoting rules, the same convention response files use.
func ParseConfig(raw string) (map[string]string, error) {
	tokens, err := shlex.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid action configuration: %w", err)
	}
	config := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		if eq := strings.IndexByte(tok, '='); eq >= 0 {
			config[tok[:eq]] = tok[eq+1:]
		} else {
			config[tok] = ""
		}
	}
	return config, nil
}

// Load builds the ordered, de-duplicated list of actions named by
// BLIGHT_ACTIONS (colon-separated), each configured from its own
// BLIGHT_ACTION_<NAME> environment variable.
func Load(environ []string) ([]Action, error) {
	names := dedupOrdered(splitColon(getenv(environ, "BLIGHT_ACTIONS")))
	actions := make([]Action, 0, len(names))
	for _, name := range names {
		ctor, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("blight: unknown action %q", name)
		}
		raw := getenv(environ, "BLIGHT_ACTION_"+strings.ToUpper(name))
		config, err := ParseConfig(raw)
		if err != nil {
			return nil, fmt.Errorf("blight: action %q: %w", name, err)
		}
		a, err := ctor(config)
		if err != nil {
			return nil, fmt.Errorf("blight: action %q: %w", name, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func splitColon(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ":")
}

func dedupOrdered(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func getenv(environ []string, key string) string {
	prefix := key + "="
	for i := len(environ) - 1; i >= 0; i-- {
		if strings.HasPrefix(environ[i], prefix) {
			return environ[i][len(prefix):]
		}
	}
	return ""
}
