package engine

import (
	"strings"

	"wedding-timeline/internal/model"
	"wedding-timeline/internal/timeline"
	"wedding-timeline/pkg/textmatch"
)

// Categorize assigns the best matching category to a todo.
//
// Confidence is (exact keyword hits + 0.5 * fuzzy hits) / keyword count. Ties
// keep the earlier category. Todos matching nothing fall into "general".
func (e *Engine) Categorize(todo model.TodoItem) timeline.SmartTodoItem {
	text := strings.ToLower(todo.Text)

	bestIdx := -1
	bestConfidence := 0.0
	for i, cat := range e.cat.Categories {
		if len(cat.Keywords) == 0 {
			continue
		}

		matches := 0.0
		for _, kw := range cat.Keywords {
			keyword := strings.ToLower(kw)
			if strings.Contains(text, keyword) {
				matches++
			} else if textmatch.Similarity(text, keyword) >= FuzzySimilarityThreshold {
				matches += FuzzyMatchWeight
			}
		}

		confidence := matches / float64(len(cat.Keywords))
		if confidence > bestConfidence {
			bestConfidence = confidence
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return timeline.SmartTodoItem{
			TodoItem:          todo,
			AICategory:        GeneralCategory,
			UrgencyLevel:      model.PriorityMedium,
			EstimatedDuration: GeneralEstimatedDays,
			AISuggestions:     []string{"Break this task into smaller steps", "Set a deadline for it"},
		}
	}

	cat := e.cat.Categories[bestIdx]
	return timeline.SmartTodoItem{
		TodoItem:          todo,
		AICategory:        cat.Name,
		UrgencyLevel:      cat.Priority,
		EstimatedDuration: cat.EstimatedDays,
		AISuggestions:     append([]string(nil), cat.Tips...),
	}
}

// coveredCategories returns the categories already represented by todos.
func (e *Engine) coveredCategories(todos []model.TodoItem) map[string]bool {
	covered := make(map[string]bool, len(todos))
	for _, todo := range todos {
		if c := e.Categorize(todo).AICategory; c != GeneralCategory {
			covered[c] = true
		}
	}
	return covered
}
