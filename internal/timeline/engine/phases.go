package engine

import (
	"time"

	"wedding-timeline/internal/catalog"
	"wedding-timeline/internal/model"
	"wedding-timeline/internal/timeline"
)

// Phases returns a copy of the phase table in catalog order.
func (e *Engine) Phases() []catalog.Phase {
	out := make([]catalog.Phase, len(e.cat.Phases))
	copy(out, e.cat.Phases)
	return out
}

// PhaseByID looks up a phase by id.
func (e *Engine) PhaseByID(id string) (catalog.Phase, bool) {
	return e.cat.PhaseByID(id)
}

// PhaseStatus places a phase relative to the months remaining. A rigid phase
// whose window has closed is overdue; a flexible one is simply past.
func (e *Engine) PhaseStatus(phase catalog.Phase, monthsUntilWedding float64) timeline.PhaseStatus {
	switch {
	case monthsUntilWedding > phase.StartMonths:
		return timeline.PhaseStatusUpcoming
	case monthsUntilWedding >= phase.EndMonths:
		return timeline.PhaseStatusCurrent
	case phase.IsFlexible:
		return timeline.PhaseStatusPast
	default:
		return timeline.PhaseStatusOverdue
	}
}

// CurrentPhase returns the first adapted phase whose window contains now.
func (e *Engine) CurrentPhase(phases []timeline.AdaptivePhase) *timeline.AdaptivePhase {
	now := e.now()
	for i := range phases {
		if !now.Before(phases[i].AdaptedStartDate) && !now.After(phases[i].AdaptedEndDate) {
			current := phases[i]
			return &current
		}
	}
	return nil
}

// SuggestPhaseForTask maps a categorized task to a phase id.
//
// The critical branch only names venue, photography and catering; any other
// critical category (legal, with the default catalog) lands in vendor
// selection.
func (e *Engine) SuggestPhaseForTask(category string, urgency model.Priority) string {
	switch {
	case urgency == model.PriorityCritical:
		if category == "venue" || category == "photography" || category == "catering" {
			return catalog.PhaseFoundation
		}
		return catalog.PhaseVendorSelection
	case urgency == model.PriorityHigh:
		if category == "attire" || category == "music" || category == "flowers" {
			return catalog.PhaseVendorSelection
		}
		return catalog.PhaseDetailedPlanning
	case category == "legal" || category == "beauty":
		return catalog.PhaseFinalPreparations
	default:
		return catalog.PhaseDetailedPlanning
	}
}

// CategorizeExisting groups todos by suggested phase. Every catalog phase gets
// a group, even when empty, in catalog order.
func (e *Engine) CategorizeExisting(todos []model.TodoItem) []timeline.PhaseGroup {
	groups := make([]timeline.PhaseGroup, 0, len(e.cat.Phases))
	index := make(map[string]int, len(e.cat.Phases))
	for _, p := range e.cat.Phases {
		index[p.ID] = len(groups)
		groups = append(groups, timeline.PhaseGroup{PhaseID: p.ID, Todos: []timeline.SmartTodoItem{}})
	}

	for _, todo := range todos {
		smart := e.Categorize(todo)
		phaseID := e.SuggestPhaseForTask(smart.AICategory, smart.UrgencyLevel)

		i, ok := index[phaseID]
		if !ok {
			// Custom catalogs may drop a phase the mapping still names.
			i = len(groups)
			index[phaseID] = i
			groups = append(groups, timeline.PhaseGroup{PhaseID: phaseID})
		}
		groups[i].Todos = append(groups[i].Todos, smart)
	}

	return groups
}

// phaseEnd finds the adapted end date for a phase id.
func phaseEnd(phases []timeline.AdaptivePhase, id string) (time.Time, bool) {
	for _, p := range phases {
		if p.ID == id {
			return p.AdaptedEndDate, true
		}
	}
	return time.Time{}, false
}
