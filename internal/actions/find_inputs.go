package actions

import (
	"github.com/trailofbits/blight/internal/action"
	"github.com/trailofbits/blight/internal/enums"
	"github.com/trailofbits/blight/internal/store"
	"github.com/trailofbits/blight/internal/tool"
)

func init() {
	action.Register("find_inputs", newFindInputs)
}

type findInputs struct {
	action.Base
	storeDir string
}

func newFindInputs(config map[string]string) (action.Action, error) {
	return &findInputs{
		Base:     action.Base{ActionName: "find_inputs", Mask: action.MaskAll},
		storeDir: config["store_dir"],
	}, nil
}

// FileRecord describes one input or output file found during a run,
// classified by kind and, when a store directory is configured, the
// content-addressed path it was copied to.
type FileRecord struct {
	Path   string `json:"path"`
	Kind   string `json:"kind"`
	Stored string `json:"stored,omitempty"`
}

// FindResult is the journaled shape find_inputs and find_outputs share.
type FindResult struct {
	Files []FileRecord `json:"files"`
}

// AfterRun classifies and, if store_dir is configured, archives every
// input the wrapped tool consumed.
func (a *findInputs) AfterRun(t tool.Instance, runSkipped bool) (any, error) {
	classify := func(p string) string { return enums.ClassifyInput(p).String() }
	return findFiles(t.Inputs(), classify, a.storeDir)
}

func findFiles(paths []string, classify func(string) string, storeDir string) (FindResult, error) {
	records := make([]FileRecord, 0, len(paths))
	for _, p := range paths {
		rec := FileRecord{Path: p, Kind: classify(p)}
		if storeDir != "" {
			dest, _, err := store.Put(storeDir, p, true)
			if err == nil {
				rec.Stored = dest
			}
		}
		records = append(records, rec)
	}
	return FindResult{Files: records}, nil
}
