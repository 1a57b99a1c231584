package catalog

import "wedding-timeline/internal/model"

// Category is a wedding-planning task category used for keyword matching.
type Category struct {
	Name          string         `yaml:"name"`
	Keywords      []string       `yaml:"keywords"`
	Priority      model.Priority `yaml:"priority"`
	MinLeadMonths float64        `yaml:"min_lead_months"`
	EstimatedDays int            `yaml:"estimated_days"`
	Suggestion    string         `yaml:"suggestion"` // Task text proposed when the category is missing
	Tips          []string       `yaml:"tips"`
}

// Phase is a nominal planning window, measured in months before the wedding.
// StartMonths is the far edge, EndMonths the near edge.
type Phase struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	StartMonths float64        `yaml:"start_months"`
	EndMonths   float64        `yaml:"end_months"`
	IsFlexible  bool           `yaml:"is_flexible"`
	Priority    model.Priority `yaml:"priority"`
	Tips        []string       `yaml:"tips"`
	Icon        string         `yaml:"icon"`
}

// MinMonthsBefore is the threshold the compressor compares remaining time against.
func (p Phase) MinMonthsBefore() float64 { return p.StartMonths }

// MaxMonthsBefore is the near edge of the phase.
func (p Phase) MaxMonthsBefore() float64 { return p.EndMonths }

// StandardTask is one entry of the canonical planning checklist.
type StandardTask struct {
	Text    string         `yaml:"text"`
	Phase   string         `yaml:"phase"`
	Months  float64        `yaml:"months"` // Recommended lead time
	Urgency model.Priority `yaml:"urgency"`
}

// Catalog bundles the static tables the timeline engine runs on.
// Slice order is significant everywhere.
type Catalog struct {
	Categories    []Category     `yaml:"categories"`
	Phases        []Phase        `yaml:"phases"`
	StandardTasks []StandardTask `yaml:"standard_tasks"`
}

// PhaseByID returns the phase with the given id.
func (c Catalog) PhaseByID(id string) (Phase, bool) {
	for _, p := range c.Phases {
		if p.ID == id {
			return p, true
		}
	}
	return Phase{}, false
}

// CategoryByName returns the category with the given name.
func (c Catalog) CategoryByName(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}
