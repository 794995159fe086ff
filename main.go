// Command blight is both the operator CLI and, under any of its shim
// basenames (blight-cc, blight-c++, blight-cpp, blight-ld, blight-as,
// blight-ar, blight-strip, blight-install, or one of their common aliases
// like gcc/clang/g++/clang++), the interposing shim itself. Which mode
// runs is decided entirely by os.Args[0]'s basename, the same multi-call
// convention BusyBox and this binary's own installed shim scripts rely on.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trailofbits/blight/cmd"
	"github.com/trailofbits/blight/internal/enums"
	"github.com/trailofbits/blight/internal/runner"
)

func main() {
	if _, ok := enums.ShimBasenames[filepath.Base(os.Args[0])]; ok {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "blight: %v\n", err)
			os.Exit(1)
		}
		os.Exit(runner.Dispatch(os.Args[0], os.Args[1:], os.Environ(), cwd))
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
