package errors

import "fmt"

// Error type constants
const (
	PlanInvalid    = "PLAN_INVALID"
	PlanNotFound   = "PLAN_NOT_FOUND"
	StepFailed     = "STEP_FAILED"
	VerifyFailed   = "VERIFY_FAILED"
	CommandTimeout = "COMMAND_TIMEOUT"
	CommandFault   = "COMMAND_FAULT"
	RollbackFault  = "ROLLBACK_FAULT"
)

// RunError is a structured error for tooling and report consumers.
type RunError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Step    int    `json:"step,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

func (e *RunError) Error() string {
	if e.Step != 0 {
		return fmt.Sprintf("[%s] step %d: %s", e.Type, e.Step, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func NewPlanError(msg, hint string) *RunError {
	return &RunError{Type: PlanInvalid, Message: msg, Hint: hint}
}

func NewStepError(step int, msg, hint string) *RunError {
	return &RunError{Type: StepFailed, Step: step, Message: msg, Hint: hint}
}
