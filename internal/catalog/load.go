package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML catalog override. Sections left out of the file keep
// their built-in defaults. An empty path returns Default().
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %q: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML catalog, fills missing sections from Default and validates it.
func Parse(raw []byte) (Catalog, error) {
	var override Catalog
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	cat := Default()
	if len(override.Categories) > 0 {
		cat.Categories = override.Categories
	}
	if len(override.Phases) > 0 {
		cat.Phases = override.Phases
	}
	if len(override.StandardTasks) > 0 {
		cat.StandardTasks = override.StandardTasks
	}

	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// Validate checks the table invariants the engine relies on.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category %d: %w", i, ErrEmptyName)
		}
		if seen[cat.Name] {
			return fmt.Errorf("category %s: %w", cat.Name, ErrDuplicateID)
		}
		seen[cat.Name] = true
		if len(cat.Keywords) == 0 {
			return fmt.Errorf("category %s: %w", cat.Name, ErrNoKeywords)
		}
		if cat.MinLeadMonths < 0 {
			return fmt.Errorf("category %s: %w", cat.Name, ErrNegativeLead)
		}
		if !cat.Priority.Valid() {
			return fmt.Errorf("category %s: %w %q", cat.Name, ErrInvalidPriority, cat.Priority)
		}
	}

	phaseIDs := make(map[string]bool, len(c.Phases))
	for i, p := range c.Phases {
		if p.ID == "" {
			return fmt.Errorf("phase %d: %w", i, ErrEmptyName)
		}
		if phaseIDs[p.ID] {
			return fmt.Errorf("phase %s: %w", p.ID, ErrDuplicateID)
		}
		phaseIDs[p.ID] = true
		if p.EndMonths < 0 || p.StartMonths < p.EndMonths {
			return fmt.Errorf("phase %s: %w", p.ID, ErrPhaseRange)
		}
		if !p.Priority.Valid() {
			return fmt.Errorf("phase %s: %w %q", p.ID, ErrInvalidPriority, p.Priority)
		}
	}

	for _, t := range c.StandardTasks {
		if t.Text == "" {
			return fmt.Errorf("standard task: %w", ErrEmptyName)
		}
		if !phaseIDs[t.Phase] {
			return fmt.Errorf("standard task %q: %w %q", t.Text, ErrUnknownTaskPhase, t.Phase)
		}
		if !t.Urgency.Valid() {
			return fmt.Errorf("standard task %q: %w %q", t.Text, ErrInvalidPriority, t.Urgency)
		}
	}

	return nil
}
