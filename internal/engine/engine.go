package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/planrun-cli/planrun/internal/plan"
	"github.com/planrun-cli/planrun/internal/report"
	"github.com/planrun-cli/planrun/internal/runner"
)

// Engine executes an installation plan sequentially: one step at a time,
// verification after each command, reverse-order rollback on critical failure.
// An Engine holds no cross-run state; Execute may be called repeatedly.
type Engine struct {
	Log            zerolog.Logger
	CommandTimeout time.Duration
	VerifyTimeout  time.Duration

	// run is swappable in tests; defaults to runner.Run.
	run func(command string, timeout time.Duration) *runner.CommandResult
}

// New builds an engine with default timeouts.
func New(log zerolog.Logger) *Engine {
	return &Engine{
		Log:            log,
		CommandTimeout: runner.DefaultTimeout,
		VerifyTimeout:  runner.DefaultTimeout,
		run:            runner.Run,
	}
}

// Execute runs the plan and returns the finished report. Step-level failures
// are captured in the report, never returned: the report is the record.
func (e *Engine) Execute(p *plan.Plan, dryRun bool) *report.ExecutionReport {
	if e.run == nil {
		e.run = runner.Run
	}

	rep := &report.ExecutionReport{
		RunID:     uuid.New().String(),
		Target:    p.Target,
		Platform:  p.Platform,
		StartedAt: time.Now(),
		DryRun:    dryRun,
		Success:   true,
	}

	// Ledger of steps that reached success, in completion order.
	// Rolled back most-recent-first when a later critical step fails.
	var executed []plan.Step

	for _, step := range p.Steps {
		sr := report.StepReport{Number: step.Number, Name: step.Name, Status: report.StatusPending}

		if dryRun {
			sr.Status = report.StatusSkipped
			rep.Steps = append(rep.Steps, sr)
			continue
		}

		e.Log.Info().Int("step", step.Number).Str("name", step.Name).Msg("executing step")
		res := e.run(step.Command, e.CommandTimeout)
		sr.CommandResult = res

		if !res.Success {
			sr.Status = report.StatusFailed
			rep.Steps = append(rep.Steps, sr)

			if step.IsCritical() {
				e.Log.Error().Int("step", step.Number).Str("error", res.Error).Msg("critical step failed")
				e.markFailed(rep, step.Number)
				e.rollback(executed)
				break
			}
			e.Log.Warn().Int("step", step.Number).Msg("non-critical step failed, continuing")
			continue
		}

		if step.Verify != "" {
			e.Log.Info().Int("step", step.Number).Str("verify", step.Verify).Msg("verifying step")
			vres := e.run(step.Verify, e.VerifyTimeout)
			sr.VerifyResult = vres

			if !vres.Success {
				if step.IsCritical() {
					sr.Status = report.StatusVerifyFailed
					rep.Steps = append(rep.Steps, sr)
					e.Log.Error().Int("step", step.Number).Str("error", vres.Error).Msg("verification failed")
					e.markFailed(rep, step.Number)

					// The failing step's own rollback runs before the
					// prior steps are unwound.
					if step.Rollback != "" {
						e.runRollback(step)
					}
					e.rollback(executed)
					break
				}
				e.Log.Warn().Int("step", step.Number).Msg("verification failed on non-critical step")
			}
		}

		sr.Status = report.StatusSuccess
		rep.Steps = append(rep.Steps, sr)
		executed = append(executed, step)
	}

	rep.CompletedAt = time.Now()
	return rep
}

func (e *Engine) markFailed(rep *report.ExecutionReport, stepNumber int) {
	n := stepNumber
	rep.Success = false
	rep.FailedStep = &n
}

// rollback unwinds previously completed steps most-recently-executed first.
// Rollback is best-effort: a failing rollback command is logged and the
// remaining sequence continues; it never changes the terminal outcome.
func (e *Engine) rollback(executed []plan.Step) {
	if len(executed) == 0 {
		return
	}
	e.Log.Info().Int("steps", len(executed)).Msg("rolling back previous steps")
	for i := len(executed) - 1; i >= 0; i-- {
		e.runRollback(executed[i])
	}
}

func (e *Engine) runRollback(step plan.Step) {
	if step.Rollback == "" {
		return
	}
	e.Log.Info().Int("step", step.Number).Str("name", step.Name).Msg("rolling back")
	res := e.run(step.Rollback, e.CommandTimeout)
	if !res.Success {
		e.Log.Error().Int("step", step.Number).Str("error", res.Error).Msg("rollback command failed")
	}
}
