// Package cmd implements the blight operator Cobra command tree. This is
// deliberately thin: the shim binaries (blight-cc, blight-c++, ...) never
// reach this package, dispatching instead through internal/runner from
// main.go before Cobra is even constructed. blight itself only exposes
// introspection over actions and journals -- it does not generate the
// shell `export` statements a build environment needs; that's a separate
// front-end's job.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version, Commit, and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "blight",
	Short: "Introspection for the blight build-tool interposer",
	Long: `blight - introspection for the blight build-tool interposer

blight itself runs as blight-cc, blight-c++, blight-cpp, blight-ld,
blight-as, blight-ar, blight-strip, and blight-install: point CC/CXX/LD/...
at those names (or swizzle $PATH ahead of a build) and blight transparently
forwards every invocation to the real tool, running whatever actions
BLIGHT_ACTIONS names along the way.

This command only introspects that machinery after the fact:

  blight actions             list the built-in actions and which tool
                              kinds they apply to
  blight journal <path>       pretty-print a journal file written by the
                              record/benchmark/find_inputs/find_outputs
                              actions`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits
	rootCmd.SetVersionTemplate(fmt.Sprintf("blight version {{.Version}} (commit: %s, built: %s)\n", Commit, Date))
}
