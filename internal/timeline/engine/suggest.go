package engine

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wedding-timeline/internal/model"
	"wedding-timeline/internal/timeline"
)

// SuggestedTodos returns the canonical checklist tasks that are relevant for
// the time remaining and not already on the couple's list.
//
// A task is relevant once monthsUntilWedding >= task.Months-1, so with more
// than a year to go every task qualifies and only the duplicate check filters.
func (e *Engine) SuggestedTodos(wedding time.Time, existing []model.TodoItem) []timeline.TimelineTodo {
	if wedding.IsZero() {
		return []timeline.TimelineTodo{}
	}

	months := e.MonthsUntilWedding(wedding)

	existingTexts := make(map[string]bool, len(existing))
	for _, todo := range existing {
		existingTexts[strings.ToLower(todo.Text)] = true
	}

	out := make([]timeline.TimelineTodo, 0, len(e.cat.StandardTasks))
	for _, task := range e.cat.StandardTasks {
		isRelevant := months >= task.Months-1
		alreadyExists := existingTexts[strings.ToLower(task.Text)]
		if !isRelevant || alreadyExists {
			continue
		}

		out = append(out, timeline.TimelineTodo{
			ID:      suggestionID("standard", task.Text),
			Text:    task.Text,
			Phase:   task.Phase,
			Months:  task.Months,
			Urgency: task.Urgency,
		})
	}
	return out
}

// SmartSuggestions proposes one task per category the couple has not covered
// yet. Critical categories short on lead time become urgent with half the
// nominal duration; other categories are proposed only while enough lead time
// remains. A coordinator suggestion follows when the current phase is heavily
// compressed. The result is truncated to MaxSmartSuggestions.
func (e *Engine) SmartSuggestions(wedding time.Time, existing []model.TodoItem, phases []timeline.AdaptivePhase) []timeline.SmartTodoItem {
	if wedding.IsZero() {
		return []timeline.SmartTodoItem{}
	}

	months := e.MonthsUntilWedding(wedding)
	covered := e.coveredCategories(existing)
	title := cases.Title(language.English)

	out := make([]timeline.SmartTodoItem, 0, len(e.cat.Categories)+1)
	for _, cat := range e.cat.Categories {
		if covered[cat.Name] {
			continue
		}

		leadNote := fmt.Sprintf("%s usually needs %s months of lead time", title.String(cat.Name), formatMonths(cat.MinLeadMonths))

		switch {
		case cat.Priority == model.PriorityCritical && months < cat.MinLeadMonths:
			out = append(out, timeline.SmartTodoItem{
				TodoItem: model.TodoItem{
					ID:   model.TodoID(suggestionID("smart", cat.Name)),
					Text: "Urgent: " + cat.Suggestion,
				},
				AICategory:        cat.Name,
				UrgencyLevel:      model.PriorityCritical,
				EstimatedDuration: int(math.Ceil(float64(cat.EstimatedDays) * UrgentDurationFactor)),
				AISuggestions:     append([]string{leadNote, "Contact vendors this week and ask about last-minute availability"}, cat.Tips...),
			})

		case months >= cat.MinLeadMonths:
			out = append(out, timeline.SmartTodoItem{
				TodoItem: model.TodoItem{
					ID:   model.TodoID(suggestionID("smart", cat.Name)),
					Text: cat.Suggestion,
				},
				AICategory:        cat.Name,
				UrgencyLevel:      cat.Priority,
				EstimatedDuration: cat.EstimatedDays,
				AISuggestions:     append([]string{leadNote}, cat.Tips...),
			})
		}
	}

	if current := e.CurrentPhase(phases); current != nil && current.CompressionLevel > CoordinatorCompression {
		out = append(out, timeline.SmartTodoItem{
			TodoItem: model.TodoItem{
				ID:   model.TodoID(suggestionID("smart", CoordinatorCategory)),
				Text: CoordinatorSuggestion,
			},
			AICategory:        CoordinatorCategory,
			UrgencyLevel:      model.PriorityHigh,
			EstimatedDuration: CoordinatorDurationDays,
			AISuggestions:     []string{fmt.Sprintf("The %s phase is running on a compressed schedule", current.Name)},
		})
	}

	if len(out) > MaxSmartSuggestions {
		out = out[:MaxSmartSuggestions]
	}
	return out
}

// formatMonths prints whole months without a decimal point.
func formatMonths(m float64) string {
	if m == math.Trunc(m) {
		return fmt.Sprintf("%d", int(m))
	}
	return fmt.Sprintf("%.1f", m)
}
