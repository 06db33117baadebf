package plan

// Plan is the top-level installation plan structure. It is read-only input
// produced by the upstream plan generator (or hand-authored).
type Plan struct {
	Target         string `yaml:"target"`
	Platform       string `yaml:"platform,omitempty"`
	Architecture   string `yaml:"architecture,omitempty"`
	PackageManager string `yaml:"package_manager,omitempty"`
	Steps          []Step `yaml:"steps"`
}

// Step defines a single unit of work within a plan. Execution order is
// declaration order; Number is the step's identity in reports.
type Step struct {
	Number   int    `yaml:"step"`
	Name     string `yaml:"name"`
	Command  string `yaml:"command,omitempty"`
	Verify   string `yaml:"verify,omitempty"`
	Rollback string `yaml:"rollback,omitempty"`
	Critical *bool  `yaml:"critical,omitempty"`
}

// IsCritical reports whether the step halts the plan on failure.
// Unset defaults to true.
func (s Step) IsCritical() bool {
	return s.Critical == nil || *s.Critical
}
