// Package runner implements blight's shim-mode entry point: given the
// basename a shim was invoked as, it resolves the tool kind, builds a
// tool.Instance, runs every configured action's BeforeRun, execs the real
// wrapped tool unless an action skipped it, runs every action's AfterRun,
// and commits one aggregated record to the journal.
package runner

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/trailofbits/blight/internal/action"
	"github.com/trailofbits/blight/internal/enums"
	"github.com/trailofbits/blight/internal/journal"
	"github.com/trailofbits/blight/internal/tool"
)

// ConfigurationError reports a problem with blight's own setup -- an
// unrecognized shim basename, a malformed BLIGHT_ACTION_* value, an
// unknown action name -- as opposed to a failure of the wrapped build.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// BuildError wraps a failure from an action hook or from the wrapped tool
// itself.
type BuildError struct {
	Msg string
	Err error
}

func (e *BuildError) Error() string { return fmt.Sprintf("%s: %v", e.Msg, e.Err) }
func (e *BuildError) Unwrap() error { return e.Err }

// Dispatch is the shim entry point. shimPath is the invoked path
// (os.Args[0]); its basename selects the tool kind. It returns the
// process exit code the shim should exit with: 0 on success, 1 on any
// fatal ConfigurationError or BuildError, logged as a single line on
// stderr before returning.
func Dispatch(shimPath string, args []string, environ []string, cwd string) int {
	log := configureLogging(environ)

	exitCode, err := dispatch(shimPath, args, environ, cwd, log)
	if err != nil {
		log.Errorf("blight: %v", err)
		return 1
	}
	return exitCode
}

func dispatch(shimPath string, args []string, environ []string, cwd string, log *logrus.Logger) (int, error) {
	kind, ok := enums.ShimBasenames[basename(shimPath)]
	if !ok {
		return 0, &ConfigurationError{Msg: fmt.Sprintf("%q is not a recognized toolchain shim name", shimPath)}
	}

	env := sanitizeEnv(environ)
	t := tool.New(kind, args, cwd, env)

	actions, err := action.Load(env)
	if err != nil {
		return 0, &ConfigurationError{Msg: err.Error()}
	}

	applicable := make([]action.Action, 0, len(actions))
	for _, a := range actions {
		if a.Applies(kind) {
			applicable = append(applicable, a)
		}
	}

	runSkipped := false
	for _, a := range applicable {
		if err := a.BeforeRun(t); err != nil {
			if errors.Is(err, action.ErrSkipRun) {
				runSkipped = true
				continue
			}
			return 0, &BuildError{Msg: fmt.Sprintf("action %q failed", a.Name()), Err: err}
		}
	}

	exitCode := 0
	var toolErr error
	if !runSkipped {
		wrapped, err := t.WrappedPath()
		if err != nil {
			return 0, &ConfigurationError{Msg: err.Error()}
		}
		exitCode, err = spawn(wrapped, t, env, cwd)
		if err != nil {
			return 0, &BuildError{Msg: "failed to run wrapped tool", Err: err}
		}
		if exitCode != 0 {
			toolErr = &BuildError{Msg: "wrapped tool failed", Err: fmt.Errorf("exit code %d", exitCode)}
		}
	}

	results := make(map[string]any, len(applicable))
	for _, a := range applicable {
		result, err := a.AfterRun(t, runSkipped)
		if err != nil {
			log.Errorf("blight: action %q AfterRun failed: %v", a.Name(), err)
			continue
		}
		if result != nil {
			results[a.Name()] = result
		}
	}

	if path, ok := getenv(env, "BLIGHT_JOURNAL_PATH"); ok && path != "" && len(results) > 0 {
		if err := journal.Append(path, results); err != nil {
			log.Warnf("blight: journal write failed: %v", err)
		}
	}

	return exitCode, toolErr
}

// spawn execs the wrapped tool with the invocation's canonical arguments,
// streaming its stdio through unchanged, and returns its exit code.
func spawn(wrapped string, t tool.Instance, env []string, cwd string) (int, error) {
	cmd := exec.Command(wrapped, t.CanonicalArgs()...)
	cmd.Dir = cwd
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	runErr := cmd.Run()
	return ExitCodeFromError(runErr), nil
}

// configureLogging builds the logrus logger blight uses for its own
// diagnostics, with its level driven by BLIGHT_LOGLEVEL (default: warn).
func configureLogging(environ []string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(valueOr(getenvStr(environ, "BLIGHT_LOGLEVEL"), "warn"))
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	return log
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func getenvStr(environ []string, key string) string {
	v, _ := getenv(environ, key)
	return v
}

func getenv(environ []string, key string) (string, bool) {
	prefix := key + "="
	for i := len(environ) - 1; i >= 0; i-- {
		if strings.HasPrefix(environ[i], prefix) {
			return environ[i][len(prefix):], true
		}
	}
	return "", false
}

func basename(path string) string {
	if i := strings.LastIndexAny(path, "/\\"); i >= 0 {
		return path[i+1:]
	}
	return path
}
