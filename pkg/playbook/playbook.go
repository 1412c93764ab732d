// Package playbook defines the pack catalog: named workflows with a prose
// SOP, optional structured steps and the side-effect tier that drives the
// auto-execute policy.
package playbook

import "regexp"

// Tier classifies the side effects of running a pack.
type Tier string

const (
	TierReadonly      Tier = "readonly"
	TierSoftWrite     Tier = "soft_write"
	TierExternalWrite Tier = "external_write"
)

// Kind distinguishes user-facing playbooks from internal capabilities.
type Kind string

const (
	KindPlaybook   Kind = "playbook"
	KindCapability Kind = "capability"
)

// Step is one structured step of a playbook.
type Step struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Playbook is one entry of the pack catalog.
type Playbook struct {
	Code        string `yaml:"code"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`

	// SOP is the prose body handed to the LLM as the system prompt base.
	SOP string `yaml:"sop"`

	// Steps is optional; a playbook without structured steps is
	// conversational and grows its step count dynamically.
	Steps []Step `yaml:"steps,omitempty"`

	Tier        Tier `yaml:"tier"`
	Kind        Kind `yaml:"kind"`
	LongRunning bool `yaml:"long_running,omitempty"`

	// Background marks packs whose suggestions run without user visibility,
	// e.g. habit_learning.
	Background bool `yaml:"background,omitempty"`
}

var phaseMarker = regexp.MustCompile(`(?m)^### Phase \d+:`)

// CountPhases counts "### Phase N:" markers in an SOP body.
func CountPhases(sop string) int {
	return len(phaseMarker.FindAllString(sop, -1))
}

// TotalSteps returns the initial step budget: the structured step count,
// else the SOP phase count, else 1 for conversational playbooks.
func (p *Playbook) TotalSteps() int {
	if len(p.Steps) > 0 {
		return len(p.Steps)
	}
	if n := CountPhases(p.SOP); n > 0 {
		return n
	}
	return 1
}

// Conversational reports whether the playbook has no structured step list.
func (p *Playbook) Conversational() bool {
	return len(p.Steps) == 0
}
