// Package layout describes what a finished box looks like on disk.
//
// The manifest is compiled in. A box carries no configuration files of
// its own, so the description of "complete" ships with the binary.
package layout

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"devinabox/internal/platform"
)

//go:embed manifest.yaml
var manifestFS embed.FS

// Checkout is one working copy or generated artifact tree the box
// ships with.
type Checkout struct {
	Name     string `yaml:"name"`
	Dir      string `yaml:"dir"`       // relative to the box root
	Required bool   `yaml:"required"`
	DocIndex string `yaml:"doc_index"` // built docs landing page, relative to the box root
	Note     string `yaml:"note"`
}

// Tool is an external program some part of the workflow shells out to.
type Tool struct {
	Name     string            `yaml:"name"`
	Commands []string          `yaml:"commands"` // acceptable command names, first found wins
	Families []platform.Family `yaml:"families"` // empty means every family
	Required bool              `yaml:"required"`
	Note     string            `yaml:"note"`
}

// AppliesTo reports whether the tool matters on the given family.
func (t Tool) AppliesTo(f platform.Family) bool {
	if len(t.Families) == 0 {
		return true
	}
	for _, tf := range t.Families {
		if tf == f {
			return true
		}
	}
	return false
}

// Manifest is the full box layout.
type Manifest struct {
	Checkouts []Checkout `yaml:"checkouts"`
	Tools     []Tool     `yaml:"tools"`
}

// ToolsFor filters the tools down to those relevant on the given family.
func (m *Manifest) ToolsFor(f platform.Family) []Tool {
	var out []Tool
	for _, t := range m.Tools {
		if t.AppliesTo(f) {
			out = append(out, t)
		}
	}
	return out
}

// Load parses the embedded manifest.
func Load() (*Manifest, error) {
	raw, err := manifestFS.ReadFile("manifest.yaml")
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Checkouts) == 0 {
		return nil, fmt.Errorf("manifest lists no checkouts")
	}
	for _, c := range m.Checkouts {
		if c.Name == "" || c.Dir == "" {
			return nil, fmt.Errorf("checkout %q: name and dir are required", c.Name)
		}
	}
	for _, t := range m.Tools {
		if len(t.Commands) == 0 {
			return nil, fmt.Errorf("tool %q lists no commands", t.Name)
		}
		for _, f := range t.Families {
			if !platform.Valid(f) {
				return nil, fmt.Errorf("tool %q names unknown family %q", t.Name, f)
			}
		}
	}
	return &m, nil
}
