package profile

import "jsonschema2crateo/internal/common"

// DefinitionOverride is the only class definition mode the translator emits.
const DefinitionOverride = "override"

// Profile is a Crate-O metadata-entry profile.
type Profile struct {
	Metadata       Metadata               `json:"metadata"       yaml:"metadata"`
	RootDatasets   map[string]RootDataset `json:"rootDatasets"   yaml:"rootDatasets"`
	InputGroups    []InputGroup           `json:"inputGroups"    yaml:"inputGroups"`
	EnabledClasses []string               `json:"enabledClasses" yaml:"enabledClasses"`
	Classes        map[string]Class       `json:"classes"        yaml:"classes"`
}

// Metadata describes the profile itself.
type Metadata struct {
	Name        string `json:"name"              yaml:"name"`
	Description string `json:"description"       yaml:"description"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
}

// RootDataset names the class used for a root dataset.
type RootDataset struct {
	Type string `json:"type" yaml:"type"`
}

// InputGroup is a named tab of inputs in the editor.
type InputGroup struct {
	Name        string   `json:"name"                  yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Inputs      []string `json:"inputs"                yaml:"inputs"`
}

// Class is one entry of the profile class map.
type Class struct {
	Definition string   `json:"definition" yaml:"definition"`
	SubClassOf []string `json:"subClassOf" yaml:"subClassOf"`
	Inputs     []Input  `json:"inputs"     yaml:"inputs"`
}

// Input is one editable property of a class.
type Input struct {
	ID       string   `json:"id"       yaml:"id"`
	Name     string   `json:"name"     yaml:"name"`
	Label    string   `json:"label"    yaml:"label"`
	Help     string   `json:"help"     yaml:"help"`
	Required bool     `json:"required" yaml:"required"`
	Multiple bool     `json:"multiple" yaml:"multiple"`
	Type     []string `json:"type"     yaml:"type"`
}

// NewClass creates an override class with non-nil slices.
func NewClass(subClassOf []string, inputs []Input) Class {
	return Class{
		Definition: DefinitionOverride,
		SubClassOf: common.NonNil(subClassOf),
		Inputs:     common.NonNil(inputs),
	}
}

// Normalize replaces nil slices and maps with empty ones so the document
// serializes [] and {} instead of null.
func (p *Profile) Normalize() {
	if p.RootDatasets == nil {
		p.RootDatasets = map[string]RootDataset{}
	}

	if p.Classes == nil {
		p.Classes = map[string]Class{}
	}

	p.InputGroups = common.NonNil(p.InputGroups)
	p.EnabledClasses = common.NonNil(p.EnabledClasses)

	for i := range p.InputGroups {
		p.InputGroups[i].Inputs = common.NonNil(p.InputGroups[i].Inputs)
	}

	for name, c := range p.Classes {
		if c.Definition == "" {
			c.Definition = DefinitionOverride
		}

		c.SubClassOf = common.NonNil(c.SubClassOf)
		c.Inputs = common.NonNil(c.Inputs)

		for j := range c.Inputs {
			c.Inputs[j].Type = common.NonNil(c.Inputs[j].Type)
		}

		p.Classes[name] = c
	}
}
