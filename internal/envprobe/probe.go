package envprobe

import (
	"bufio"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/planrun-cli/planrun/internal/runner"
)

const versionTimeout = 30 * time.Second

// Report describes the host environment for the plan generator.
type Report struct {
	ProbedAt        time.Time         `json:"probed_at"`
	OS              OSInfo            `json:"os"`
	Shell           string            `json:"shell,omitempty"`
	HasSudo         bool              `json:"has_sudo"`
	PackageManagers []PackageManager  `json:"package_managers"`
	Tools           map[string]string `json:"tools"`
}

// OSInfo holds operating system details.
type OSInfo struct {
	System        string `json:"system"`
	Architecture  string `json:"architecture"`
	DistroID      string `json:"distro_id,omitempty"`
	DistroName    string `json:"distro_name,omitempty"`
	DistroVersion string `json:"distro_version,omitempty"`
	DistroFamily  string `json:"distro_family,omitempty"`
}

// PackageManager is one detected package manager.
type PackageManager struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Version string `json:"version,omitempty"`
}

// Candidate package managers, broadly ordered by how commonly plans use them.
var managerProbes = []struct {
	name        string
	versionFlag string
}{
	{"apt-get", "--version"},
	{"dnf", "--version"},
	{"yum", "--version"},
	{"pacman", "--version"},
	{"zypper", "--version"},
	{"apk", "--version"},
	{"brew", "--version"},
	{"snap", "--version"},
	{"flatpak", "--version"},
	{"pip3", "--version"},
	{"npm", "--version"},
	{"cargo", "--version"},
	{"gem", "--version"},
}

// Common tools installation steps tend to depend on.
var toolProbes = []string{
	"curl", "wget", "git", "tar", "unzip", "make", "gcc", "docker", "systemctl",
}

// Probe inspects the current host.
func Probe() *Report {
	rep := &Report{
		ProbedAt: time.Now(),
		OS:       detectOS(),
		Shell:    os.Getenv("SHELL"),
		Tools:    map[string]string{},
	}

	if _, err := exec.LookPath("sudo"); err == nil {
		rep.HasSudo = true
	}

	for _, probe := range managerProbes {
		path, err := exec.LookPath(probe.name)
		if err != nil {
			continue
		}
		pm := PackageManager{Name: probe.name, Path: path}
		res := runner.Run(probe.name+" "+probe.versionFlag, versionTimeout)
		if res.Success {
			pm.Version = firstLine(res.Output)
		}
		rep.PackageManagers = append(rep.PackageManagers, pm)
	}

	for _, tool := range toolProbes {
		if path, err := exec.LookPath(tool); err == nil {
			rep.Tools[tool] = path
		}
	}

	return rep
}

func detectOS() OSInfo {
	info := OSInfo{
		System:       runtime.GOOS,
		Architecture: runtime.GOARCH,
	}
	if runtime.GOOS == "linux" {
		readOSRelease("/etc/os-release", &info)
	}
	return info
}

// readOSRelease fills distro fields from an os-release file, if present.
func readOSRelease(path string, info *OSInfo) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "ID":
			info.DistroID = value
		case "PRETTY_NAME":
			info.DistroName = value
		case "VERSION_ID":
			info.DistroVersion = value
		case "ID_LIKE":
			info.DistroFamily = value
		}
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
