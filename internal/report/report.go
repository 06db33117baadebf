package report

import (
	"encoding/json"
	"time"

	"github.com/planrun-cli/planrun/internal/runner"
)

// StepReport is one execution record per step.
type StepReport struct {
	Number        int                   `json:"step"`
	Name          string                `json:"name"`
	Status        Status                `json:"status"`
	CommandResult *runner.CommandResult `json:"command_result,omitempty"`
	VerifyResult  *runner.CommandResult `json:"verify_result,omitempty"`
}

// ExecutionReport aggregates one engine run. It is created fresh per run,
// mutated as each step resolves, and finalized when the loop ends.
type ExecutionReport struct {
	RunID       string       `json:"run_id"`
	Target      string       `json:"target"`
	Platform    string       `json:"platform"`
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt time.Time    `json:"completed_at"`
	DryRun      bool         `json:"dry_run"`
	Steps       []StepReport `json:"steps"`
	Success     bool         `json:"success"`
	FailedStep  *int         `json:"failed_step,omitempty"`
}

// JSON renders the report as an indented structured document.
func JSON(r *ExecutionReport) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
