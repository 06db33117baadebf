package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a command invocation unless the caller picks another budget.
const DefaultTimeout = 300 * time.Second

// CommandResult holds the outcome of one shell command.
// Timeouts and launch faults are reported here, never as a Go error:
// the engine's control flow stays linear and tests assert on values.
type CommandResult struct {
	Success    bool   `json:"success"`
	Output     string `json:"output,omitempty"`
	Error      string `json:"error,omitempty"`
	ReturnCode int    `json:"returncode"`
}

// Run executes a command via sh -c with a bounded timeout and captures output.
// An empty command or one starting with a comment marker is a no-op sentinel:
// it succeeds immediately without spawning a process.
func Run(command string, timeout time.Duration) *CommandResult {
	if strings.TrimSpace(command) == "" || strings.HasPrefix(strings.TrimSpace(command), "#") {
		return &CommandResult{
			Success:    true,
			Output:     "Skipped (no command or placeholder)",
			ReturnCode: 0,
		}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &CommandResult{
			Success:    false,
			Error:      timeoutMessage(timeout),
			ReturnCode: -1,
		}
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &CommandResult{
				Success:    false,
				Output:     stdout.String(),
				Error:      stderrOr(stderr.String(), err),
				ReturnCode: exitErr.ExitCode(),
			}
		}
		// Launch fault: missing interpreter, permission error, etc.
		return &CommandResult{
			Success:    false,
			Error:      err.Error(),
			ReturnCode: -1,
		}
	}

	return &CommandResult{
		Success:    true,
		Output:     stdout.String(),
		Error:      stderr.String(),
		ReturnCode: 0,
	}
}

func timeoutMessage(timeout time.Duration) string {
	return fmt.Sprintf("command timed out after %d seconds", int(timeout/time.Second))
}

func stderrOr(stderr string, err error) string {
	if stderr != "" {
		return stderr
	}
	return err.Error()
}
