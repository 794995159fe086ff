// Package swizzle builds the directory of toolchain-name shims that get
// prepended to PATH so that an unmodified build invoking "gcc", "ld", or
// any other recognized toolchain name transparently runs through blight
// instead.
package swizzle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trailofbits/blight/internal/enums"
)

// Dir is a populated swizzle directory. Its basename carries
// enums.SwizzleSentinel so that a wrapped tool's own PATH lookup, via
// argutil.SanitizePath, can recognize and skip over it -- otherwise a
// shim resolving "gcc" on PATH would find itself again and loop forever.
type Dir struct {
	Path string
}

// Create makes a fresh swizzle directory under base and populates it with
// one shim per entry in enums.ShimBasenames, each forwarding to the
// canonical blight-<kind> name for its tool kind.
func Create(base string) (*Dir, error) {
	path, err := os.MkdirTemp(base, "swizzle-*"+enums.SwizzleSentinel)
	if err != nil {
		return nil, fmt.Errorf("swizzle: create dir: %w", err)
	}
	d := &Dir{Path: path}
	for name, kind := range enums.ShimBasenames {
		if err := d.AddShim(name, "blight-"+kind.String()); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// AddShim writes name, inside the swizzle directory, as a two-line POSIX
// script that forwards every argument to target.
func (d *Dir) AddShim(name, target string) error {
	path := filepath.Join(d.Path, name)
	script := fmt.Sprintf("#!/bin/sh\n%s \"${@}\"\n", target)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		return fmt.Errorf("swizzle: write shim %s: %w", name, err)
	}
	return nil
}

// AddStub writes a non-functional placeholder shim: a script that exits
// successfully without doing anything, used in tests to assert that a
// particular toolchain name was never actually invoked for real.
func (d *Dir) AddStub(name string) error {
	path := filepath.Join(d.Path, name)
	script := "#!/bin/sh\nexit 0\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		return fmt.Errorf("swizzle: write stub %s: %w", name, err)
	}
	return nil
}

// Remove deletes the swizzle directory and everything in it.
func (d *Dir) Remove() error {
	return os.RemoveAll(d.Path)
}
