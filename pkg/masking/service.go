// Package masking redacts secrets from tool output before it is persisted
// or fed back into the model. Redaction is regex based and deliberately
// forgiving: on any doubt the original text is kept, never the other way
// around for recognized secret shapes.
package masking

import (
	"github.com/cortexops/playbookd/pkg/config"
)

// baselineGroup is applied to every cluster regardless of configuration.
const baselineGroup = "secrets"

// Service resolves and applies masking patterns per tool cluster.
type Service struct {
	patterns   map[string]*CompiledPattern
	groups     map[string][]string
	perCluster map[string][]*CompiledPattern
}

// NewService compiles the builtin pattern table and resolves the per-cluster
// pattern sets from the registry. A nil registry yields baseline-only masking.
func NewService(registry *config.ClusterRegistry) *Service {
	s := &Service{
		patterns:   compileBuiltins(),
		groups:     patternGroups(),
		perCluster: make(map[string][]*CompiledPattern),
	}
	if registry == nil {
		return s
	}
	for _, name := range registry.Names() {
		cfg, err := registry.Get(name)
		if err != nil || cfg.Masking == nil {
			continue
		}
		s.perCluster[name] = s.resolve(cfg.Masking)
	}
	return s
}

// MaskString applies the baseline plus the cluster's configured patterns.
func (s *Service) MaskString(cluster, data string) string {
	for _, cp := range s.baseline() {
		data = cp.Regex.ReplaceAllString(data, cp.Replacement)
	}
	for _, cp := range s.perCluster[cluster] {
		data = cp.Regex.ReplaceAllString(data, cp.Replacement)
	}
	return data
}

// MaskValue walks maps, slices and strings, masking every string leaf.
// Non-string scalars pass through untouched.
func (s *Service) MaskValue(cluster string, v any) any {
	switch val := v.(type) {
	case string:
		return s.MaskString(cluster, val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = s.MaskValue(cluster, item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = s.MaskValue(cluster, item)
		}
		return out
	default:
		return v
	}
}

func (s *Service) baseline() []*CompiledPattern {
	return s.resolve(&config.MaskingConfig{PatternGroups: []string{baselineGroup}})
}

// resolve expands groups and individual names into a deduplicated pattern
// list. Unknown names are ignored.
func (s *Service) resolve(cfg *config.MaskingConfig) []*CompiledPattern {
	seen := make(map[string]bool)
	var resolved []*CompiledPattern

	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		if cp, ok := s.patterns[name]; ok {
			resolved = append(resolved, cp)
		}
	}

	for _, groupName := range cfg.PatternGroups {
		for _, name := range s.groups[groupName] {
			add(name)
		}
	}
	for _, name := range cfg.Patterns {
		add(name)
	}
	return resolved
}
