package plan

import (
	"fmt"

	runerrors "github.com/planrun-cli/planrun/internal/errors"
)

// Validate checks a plan for structural correctness. The loader is tolerant
// of missing optional fields (verify, rollback, critical); target and a
// well-formed step list are required.
func Validate(p *Plan) error {
	if p.Target == "" {
		return runerrors.NewPlanError("plan has no target", "Set the top-level 'target' field")
	}
	if len(p.Steps) == 0 {
		return runerrors.NewPlanError("plan has no steps", "Add at least one entry under 'steps'")
	}

	prev := 0
	for i, s := range p.Steps {
		if s.Number <= 0 {
			return runerrors.NewPlanError(
				fmt.Sprintf("step at index %d has no step number", i),
				"Every step needs a positive 'step' field")
		}
		if s.Name == "" {
			return &runerrors.RunError{
				Type:    runerrors.PlanInvalid,
				Step:    s.Number,
				Message: fmt.Sprintf("step %d has no name", s.Number),
			}
		}
		if s.Number <= prev {
			return &runerrors.RunError{
				Type:    runerrors.PlanInvalid,
				Step:    s.Number,
				Message: fmt.Sprintf("step %d is out of order after step %d", s.Number, prev),
				Hint:    "Step numbers must be strictly increasing in declaration order",
			}
		}
		prev = s.Number
	}
	return nil
}
