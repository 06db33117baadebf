package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	runerrors "github.com/planrun-cli/planrun/internal/errors"
)

// LoadFile reads and parses a plan YAML file.
func LoadFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	return Load(data)
}

// Load parses plan YAML bytes and checks the required shape.
func Load(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, runerrors.NewPlanError(fmt.Sprintf("parsing YAML: %v", err), "")
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
