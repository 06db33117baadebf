package envprobe

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestProbeReportsHost(t *testing.T) {
	rep := Probe()
	if rep.OS.System != runtime.GOOS {
		t.Errorf("expected system %q, got %q", runtime.GOOS, rep.OS.System)
	}
	if rep.OS.Architecture != runtime.GOARCH {
		t.Errorf("expected architecture %q, got %q", runtime.GOARCH, rep.OS.Architecture)
	}
	if rep.ProbedAt.IsZero() {
		t.Error("expected probed_at to be stamped")
	}
	if rep.Tools == nil {
		t.Error("expected tools map")
	}
}

func TestReadOSRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "os-release")
	content := `NAME="Debian GNU/Linux"
ID=debian
PRETTY_NAME="Debian GNU/Linux 12 (bookworm)"
VERSION_ID="12"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var info OSInfo
	readOSRelease(path, &info)
	if info.DistroID != "debian" {
		t.Errorf("expected distro id 'debian', got %q", info.DistroID)
	}
	if info.DistroName != "Debian GNU/Linux 12 (bookworm)" {
		t.Errorf("unexpected distro name %q", info.DistroName)
	}
	if info.DistroVersion != "12" {
		t.Errorf("expected version '12', got %q", info.DistroVersion)
	}
}

func TestReadOSReleaseMissingFileIsNoOp(t *testing.T) {
	var info OSInfo
	readOSRelease(filepath.Join(t.TempDir(), "nope"), &info)
	if info.DistroID != "" {
		t.Errorf("expected empty distro id, got %q", info.DistroID)
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("apt 2.6.1 (amd64)\nmore\nlines"); got != "apt 2.6.1 (amd64)" {
		t.Errorf("unexpected first line %q", got)
	}
	if got := firstLine("single"); got != "single" {
		t.Errorf("unexpected first line %q", got)
	}
}
