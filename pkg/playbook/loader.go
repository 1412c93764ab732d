package playbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir registers every .yaml/.yml playbook definition in dir on top of
// the packs already in the registry. User-defined packs override builtins
// with the same code. Returns the number of packs loaded.
func (r *Registry) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read playbook dir %s: %w", dir, err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return loaded, fmt.Errorf("failed to read playbook %s: %w", path, err)
		}

		var p Playbook
		if err := yaml.Unmarshal(data, &p); err != nil {
			return loaded, fmt.Errorf("failed to parse playbook %s: %w", path, err)
		}
		if p.Code == "" {
			return loaded, fmt.Errorf("playbook %s has no code", path)
		}
		if p.SOP == "" {
			return loaded, fmt.Errorf("playbook %s has no sop", path)
		}

		r.Register(&p)
		loaded++
	}
	return loaded, nil
}
