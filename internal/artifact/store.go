package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/planrun-cli/planrun/internal/report"
)

// Store keeps the raw per-step output of a run on disk, next to the report,
// so a failed installation can be inspected after the fact.
type Store struct {
	RunID   string
	BaseDir string // <root>/runs/<run_id>
}

// New creates a store for a run under root (conventionally ".planrun").
func New(runID, root string) (*Store, error) {
	base := filepath.Join(root, "runs", runID)
	if err := os.MkdirAll(filepath.Join(base, "steps"), 0o755); err != nil {
		return nil, fmt.Errorf("creating artifact dir: %w", err)
	}
	return &Store{RunID: runID, BaseDir: base}, nil
}

// WriteStepOutput writes the captured stdout/stderr for one step.
func (s *Store) WriteStepOutput(stepNumber int, stdout, stderr string) error {
	name := strconv.Itoa(stepNumber)
	if stdout != "" {
		if err := os.WriteFile(filepath.Join(s.BaseDir, "steps", name+".stdout"), []byte(stdout), 0o644); err != nil {
			return err
		}
	}
	if stderr != "" {
		if err := os.WriteFile(filepath.Join(s.BaseDir, "steps", name+".stderr"), []byte(stderr), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport writes the structured report for the run.
func (s *Store) WriteReport(rep *report.ExecutionReport) error {
	data, err := report.JSON(rep)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.BaseDir, "report.json"), data, 0o644)
}

// SaveRun persists every executed step's output plus the report itself.
// Dry runs produce no artifacts.
func SaveRun(rep *report.ExecutionReport, root string) (*Store, error) {
	if rep.DryRun {
		return nil, nil
	}
	store, err := New(rep.RunID, root)
	if err != nil {
		return nil, err
	}
	for _, sr := range rep.Steps {
		if sr.CommandResult == nil {
			continue
		}
		if err := store.WriteStepOutput(sr.Number, sr.CommandResult.Output, sr.CommandResult.Error); err != nil {
			return store, err
		}
	}
	if err := store.WriteReport(rep); err != nil {
		return store, err
	}
	return store, nil
}
