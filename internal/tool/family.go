package tool

import (
	"os/exec"
	"strings"
)

// Family is a compiler's lineage, as distinguished by its -### banner.
type Family string

const (
	FamilyGCC     Family = "gcc"
	FamilyClang   Family = "clang"
	FamilyUnknown Family = "unknown"
)

// probeFamily invokes the wrapped compiler once with -### to determine
// whether it's a gcc or clang lineage. It is never called by the
// dispatcher itself -- only by actions that explicitly need it -- since it
// spawns a real process.
func probeFamily(b *base) (Family, error) {
	wrapped, err := b.WrappedPath()
	if err != nil {
		return FamilyUnknown, err
	}
	cmd := exec.Command(wrapped, "-###", "-E", "-")
	cmd.Dir = b.cwd
	cmd.Env = b.env
	out, _ := cmd.CombinedOutput()
	text := string(out)
	switch {
	case strings.Contains(text, "clang"):
		return FamilyClang, nil
	case strings.Contains(text, "gcc"), strings.Contains(text, "GCC"):
		return FamilyGCC, nil
	default:
		return FamilyUnknown, nil
	}
}
