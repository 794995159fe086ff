// Package journal commits one JSON line per wrapped-tool invocation to the
// file named by BLIGHT_JOURNAL_PATH, aggregating every action's result
// into a single record rather than letting each action write its own file.
package journal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// Append encodes v as JSON and appends it, followed by a newline, to path.
// A flock-based lock guards the append against other blight processes
// writing to the same journal concurrently, which a parallel build makes
// routine.
func Append(path string, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("journal: marshal: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("journal: lock %s: %w", path, err)
	}
	defer lock.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("journal: open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(append(encoded, '\n')); err != nil {
		return fmt.Errorf("journal: write %s: %w", path, err)
	}
	return nil
}
