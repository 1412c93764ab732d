package config

import "time"

// CoordinatorConfig controls the auto-execution policy: per-priority
// confidence thresholds and duplicate-suggestion suppression.
type CoordinatorConfig struct {
	// Thresholds maps workspace priority to the minimum LLM confidence
	// required to auto-execute a soft_write proposal.
	Thresholds map[string]float64 `yaml:"thresholds"`

	// SuppressionWindow is how long an identical suggestion
	// (same source and file set) is suppressed after one was created.
	SuppressionWindow time.Duration `yaml:"suppression_window"`
}

// DefaultCoordinatorConfig returns the built-in policy defaults.
func DefaultCoordinatorConfig() *CoordinatorConfig {
	return &CoordinatorConfig{
		Thresholds: map[string]float64{
			"low":    0.6,
			"medium": 0.75,
			"high":   0.9,
		},
		SuppressionWindow: 1 * time.Hour,
	}
}

// ThresholdFor returns the confidence threshold for a workspace priority,
// falling back to the medium threshold for unknown values.
func (c *CoordinatorConfig) ThresholdFor(priority string) float64 {
	if t, ok := c.Thresholds[priority]; ok {
		return t
	}
	return c.Thresholds["medium"]
}
