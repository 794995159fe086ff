// Package argutil provides the small set of argument-list utilities the
// tool model is built from: rightmost-match lookups, option-value
// collection under gcc/clang's various flag styles, @file response-file
// expansion, and PATH sanitization against blight's own swizzle directories.
package argutil

import "strings"

// Rindex returns the index of the rightmost occurrence of needle in items,
// and false if it does not appear.
func Rindex(items []string, needle string) (int, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == needle {
			return i, true
		}
	}
	return -1, false
}

// RindexPrefix returns the index of the rightmost item with the given
// prefix, and false if none match.
func RindexPrefix(items []string, prefix string) (int, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if strings.HasPrefix(items[i], prefix) {
			return i, true
		}
	}
	return -1, false
}

// RitemPrefix returns the rightmost item with the given prefix.
func RitemPrefix(items []string, prefix string) (string, bool) {
	idx, ok := RindexPrefix(items, prefix)
	if !ok {
		return "", false
	}
	return items[idx], true
}

// OptionStyle is the calling convention an option accepts its value in.
type OptionStyle int

const (
	// Space: "-opt value" -- two separate arguments.
	Space OptionStyle = iota
	// Mash: "-optvalue" -- value concatenated directly onto the flag.
	Mash
	// MashOrSpace tries Mash first, falling back to Space.
	MashOrSpace
	// Equal: "-opt=value".
	Equal
	// EqualOrSpace tries Equal first, falling back to Space.
	EqualOrSpace
)

// IndexedValue pairs an option value with the index of the argument it was
// extracted from (the flag argument itself, not a following value
// argument).
type IndexedValue struct {
	Index int
	Value string
}

// CollectOptionValues scans args left to right, collecting every value
// supplied to opt under the given style, in argument order.
func CollectOptionValues(args []string, opt string, style OptionStyle) []IndexedValue {
	var out []IndexedValue
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch style {
		case Space:
			if a == opt && i+1 < len(args) {
				out = append(out, IndexedValue{i, args[i+1]})
			}
		case Mash:
			if v, ok := mashValue(a, opt); ok {
				out = append(out, IndexedValue{i, v})
			}
		case MashOrSpace:
			if v, ok := mashValue(a, opt); ok {
				out = append(out, IndexedValue{i, v})
			} else if a == opt && i+1 < len(args) {
				out = append(out, IndexedValue{i, args[i+1]})
			}
		case Equal:
			if v, ok := equalValue(a, opt); ok {
				out = append(out, IndexedValue{i, v})
			}
		case EqualOrSpace:
			if v, ok := equalValue(a, opt); ok {
				out = append(out, IndexedValue{i, v})
			} else if a == opt && i+1 < len(args) {
				out = append(out, IndexedValue{i, args[i+1]})
			}
		}
	}
	return out
}

func mashValue(arg, opt string) (string, bool) {
	if arg == opt {
		return "", false
	}
	if strings.HasPrefix(arg, opt) {
		return arg[len(opt):], true
	}
	return "", false
}

func equalValue(arg, opt string) (string, bool) {
	prefix := opt + "="
	if strings.HasPrefix(arg, prefix) {
		return arg[len(prefix):], true
	}
	return "", false
}

// SanitizePath removes any PATH element whose basename ends with blight's
// swizzle sentinel, preventing a spawned child from walking back into one
// of blight's own shim directories.
func SanitizePath(path, sep, sentinel string) string {
	parts := strings.Split(path, sep)
	kept := parts[:0:0]
	for _, p := range parts {
		if hasSentinelBasename(p, sentinel) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, sep)
}

func hasSentinelBasename(p, sentinel string) bool {
	base := p
	if i := strings.LastIndexAny(p, "/\\"); i >= 0 {
		base = p[i+1:]
	}
	return strings.HasSuffix(base, sentinel)
}
