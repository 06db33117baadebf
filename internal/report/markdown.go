package report

import (
	"fmt"
	"strings"
)

// Output truncation budgets keep the rendered document reviewable.
const (
	outputBudget = 1000
	errorBudget  = 500
)

var statusIcons = map[Status]string{
	StatusSuccess:      "✅",
	StatusFailed:       "❌",
	StatusVerifyFailed: "⚠️",
	StatusSkipped:      "⏭️",
	StatusPending:      "⏳",
}

// Markdown renders the report as a human-readable document. It is a pure
// function of the report: no command is ever re-run here.
func Markdown(r *ExecutionReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Installation Report: %s\n\n", r.Target)
	fmt.Fprintf(&b, "**Platform:** %s\n", r.Platform)
	fmt.Fprintf(&b, "**Started:** %s\n", r.StartedAt.Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&b, "**Completed:** %s\n", r.CompletedAt.Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&b, "**Status:** %s\n\n", statusWord(r.Success))

	if r.DryRun {
		b.WriteString("*This was a dry run - no commands were executed.*\n\n")
	}

	b.WriteString("## Steps\n\n")
	for _, step := range r.Steps {
		icon, ok := statusIcons[step.Status]
		if !ok {
			icon = "❓"
		}
		fmt.Fprintf(&b, "### Step %d: %s\n", step.Number, step.Name)
		fmt.Fprintf(&b, "**Status:** %s %s\n\n", icon, strings.ToUpper(step.Status.String()))

		if res := step.CommandResult; res != nil {
			if res.Output != "" {
				b.WriteString("**Output:**\n```\n")
				b.WriteString(truncate(res.Output, outputBudget))
				b.WriteString("\n```\n")
			}
			if res.Error != "" && !res.Success {
				b.WriteString("**Error:**\n```\n")
				b.WriteString(truncate(res.Error, errorBudget))
				b.WriteString("\n```\n")
			}
		}
		if res := step.VerifyResult; res != nil && !res.Success {
			b.WriteString("**Verification error:**\n```\n")
			b.WriteString(truncate(res.Error, errorBudget))
			b.WriteString("\n```\n")
		}
		b.WriteString("\n")
	}

	if !r.Success {
		b.WriteString("## Troubleshooting\n\n")
		if r.FailedStep != nil {
			fmt.Fprintf(&b, "The installation failed at step %d.\n", *r.FailedStep)
		} else {
			b.WriteString("The installation failed.\n")
		}
		b.WriteString("Please check the error output above and ensure:\n")
		b.WriteString("- You have the required permissions (sudo/admin)\n")
		b.WriteString("- Your package manager is properly configured\n")
		b.WriteString("- Network connectivity is available\n")
	}

	return b.String()
}

func statusWord(success bool) string {
	if success {
		return "SUCCESS"
	}
	return "FAILED"
}

func truncate(s string, budget int) string {
	if len(s) <= budget {
		return s
	}
	return s[:budget]
}
