package runner

import (
	"strings"
	"testing"
	"time"
)

func TestRunEchoHello(t *testing.T) {
	r := Run("echo hello", 0)
	if !r.Success {
		t.Fatalf("expected success, got error %q", r.Error)
	}
	if r.ReturnCode != 0 {
		t.Fatalf("expected returncode 0, got %d", r.ReturnCode)
	}
	if strings.TrimSpace(r.Output) != "hello" {
		t.Errorf("expected output 'hello', got %q", r.Output)
	}
}

func TestRunCapturesStderr(t *testing.T) {
	r := Run("echo oops >&2; exit 3", 0)
	if r.Success {
		t.Fatal("expected failure")
	}
	if r.ReturnCode != 3 {
		t.Errorf("expected returncode 3, got %d", r.ReturnCode)
	}
	if strings.TrimSpace(r.Error) != "oops" {
		t.Errorf("expected error 'oops', got %q", r.Error)
	}
}

func TestRunNonZeroExitCode(t *testing.T) {
	r := Run("exit 42", 0)
	if r.Success {
		t.Fatal("expected failure")
	}
	if r.ReturnCode != 42 {
		t.Errorf("expected returncode 42, got %d", r.ReturnCode)
	}
}

func TestRunPipesWork(t *testing.T) {
	r := Run("echo hello world | wc -w", 0)
	if !r.Success {
		t.Fatalf("expected success, got error %q", r.Error)
	}
	if strings.TrimSpace(r.Output) != "2" {
		t.Errorf("expected output '2', got %q", strings.TrimSpace(r.Output))
	}
}

func TestRunEmptyCommandIsNoOp(t *testing.T) {
	r := Run("", 0)
	if !r.Success {
		t.Fatal("expected no-op success")
	}
	if r.ReturnCode != 0 {
		t.Errorf("expected returncode 0, got %d", r.ReturnCode)
	}
	if !strings.Contains(r.Output, "Skipped") {
		t.Errorf("expected skipped placeholder output, got %q", r.Output)
	}
}

func TestRunCommentCommandIsNoOp(t *testing.T) {
	r := Run("# manual step: review the config", 0)
	if !r.Success {
		t.Fatal("expected no-op success")
	}
	if !strings.Contains(r.Output, "Skipped") {
		t.Errorf("expected skipped placeholder output, got %q", r.Output)
	}
}

func TestRunTimeout(t *testing.T) {
	start := time.Now()
	r := Run("sleep 30", 1*time.Second)
	if time.Since(start) > 10*time.Second {
		t.Fatal("timeout did not bound the command")
	}
	if r.Success {
		t.Fatal("expected failure on timeout")
	}
	if r.ReturnCode != -1 {
		t.Errorf("expected returncode -1, got %d", r.ReturnCode)
	}
	if !strings.Contains(r.Error, "timed out after 1 second") {
		t.Errorf("expected timeout message, got %q", r.Error)
	}
}

func TestRunTimeoutMessageNamesBudget(t *testing.T) {
	r := Run("sleep 30", 5*time.Second)
	if r.Success {
		t.Fatal("expected failure on timeout")
	}
	if r.ReturnCode != -1 {
		t.Errorf("expected returncode -1, got %d", r.ReturnCode)
	}
	if !strings.Contains(r.Error, "5 seconds") {
		t.Errorf("expected error to mention '5 seconds', got %q", r.Error)
	}
}

func TestRunMissingBinaryIsFailureResult(t *testing.T) {
	r := Run("definitely-not-a-real-binary-xyz", 0)
	if r.Success {
		t.Fatal("expected failure")
	}
	if r.ReturnCode == 0 {
		t.Error("expected non-zero returncode")
	}
	if r.Error == "" {
		t.Error("expected error text")
	}
}
