package runner

import (
	"os"
	"runtime"
	"strings"

	"github.com/trailofbits/blight/internal/argutil"
	"github.com/trailofbits/blight/internal/enums"
)

// pathSeparator returns the platform's PATH list separator.
func pathSeparator() string {
	if runtime.GOOS == "windows" {
		return ";"
	}
	return ":"
}

// BuildSwizzledEnv returns a copy of the current process's environment
// with swizzleDir prepended to PATH, so that a build launched under the
// returned environment resolves every toolchain name swizzleDir shims to
// blight instead of the real tool.
func BuildSwizzledEnv(swizzleDir string) []string {
	base := os.Environ()
	sep := pathSeparator()
	result := make([]string, 0, len(base)+1)

	foundPath := false
	for _, env := range base {
		key, val, ok := splitEnvVar(env)
		if !ok {
			result = append(result, env)
			continue
		}
		if strings.EqualFold(key, "PATH") {
			result = append(result, key+"="+swizzleDir+sep+val)
			foundPath = true
			continue
		}
		result = append(result, env)
	}
	if !foundPath {
		result = append(result, "PATH="+swizzleDir)
	}
	return result
}

// sanitizeEnv strips any swizzle directory from PATH, so that the wrapped
// tool's own PATH lookup (and any further child process it spawns) finds
// the next real toolchain on PATH rather than looping back into a shim.
func sanitizeEnv(environ []string) []string {
	sep := pathSeparator()
	out := make([]string, len(environ))
	copy(out, environ)
	for i, kv := range out {
		key, val, ok := splitEnvVar(kv)
		if ok && strings.EqualFold(key, "PATH") {
			out[i] = key + "=" + argutil.SanitizePath(val, sep, enums.SwizzleSentinel)
		}
	}
	return out
}

// splitEnvVar splits an environment variable string "KEY=VALUE" into key
// and value. Returns false if the string doesn't contain '='.
func splitEnvVar(env string) (key, value string, ok bool) {
	idx := strings.IndexByte(env, '=')
	if idx < 0 {
		return "", "", false
	}
	return env[:idx], env[idx+1:], true
}
