package argutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
	"github.com/trailofbits/blight/internal/enums"
)

// ExpandResponseFiles walks args left to right, replacing every @file token
// with the shell-quoted contents of that file, recursively, up to
// enums.ResponseFileRecursionLimit levels deep. Relative paths are resolved
// against dir for top-level tokens and against the including file's own
// directory for nested ones. A response file that does not exist, or that
// fails to tokenize, expands to nothing rather than erroring -- a build
// invoking a stale @file should still get "no extra args", not a crash.
func ExpandResponseFiles(args []string, dir string) []string {
	return expand(args, dir, 0)
}

func expand(args []string, dir string, depth int) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if isResponseFileToken(a) {
			out = append(out, expandToken(a, dir, depth)...)
			continue
		}
		out = append(out, a)
	}
	return out
}

func isResponseFileToken(a string) bool {
	return len(a) > 1 && a[0] == '@'
}

func expandToken(token, dir string, depth int) []string {
	if depth >= enums.ResponseFileRecursionLimit {
		return nil
	}
	path := token[1:]
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	tokens, err := shlex.Split(strings.TrimRight(string(data), "\n"))
	if err != nil {
		return nil
	}
	return expand(tokens, filepath.Dir(path), depth+1)
}
