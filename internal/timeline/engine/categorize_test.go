package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-timeline/internal/model"
)

func TestCategorize(t *testing.T) {
	e := newTestEngine()

	tcs := map[string]struct {
		text     string
		category string
		urgency  model.Priority
		duration int
	}{
		"exact keyword":             {text: "Book our venue", category: "venue", urgency: model.PriorityCritical, duration: 30},
		"case insensitive":          {text: "BOOK CATERER", category: "catering", urgency: model.PriorityCritical, duration: 21},
		"multi word keyword":        {text: "Schedule hair trial", category: "beauty", urgency: model.PriorityMedium, duration: 3},
		"legal":                     {text: "Get marriage license", category: "legal", urgency: model.PriorityCritical, duration: 7},
		"fuzzy tie keeps first":     {text: "Find a photografer", category: "photography", urgency: model.PriorityCritical, duration: 14},
		"higher confidence wins":    {text: "Rent limo", category: "transportation", urgency: model.PriorityMedium, duration: 5},
		"low priority":              {text: "Plan honeymoon flights", category: "honeymoon", urgency: model.PriorityLow, duration: 10},
		"no match falls to general": {text: "xyz", category: GeneralCategory, urgency: model.PriorityMedium, duration: GeneralEstimatedDays},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := e.Categorize(model.TodoItem{ID: "1", Text: tc.text})
			assert.Equal(t, tc.category, got.AICategory)
			assert.Equal(t, tc.urgency, got.UrgencyLevel)
			assert.Equal(t, tc.duration, got.EstimatedDuration)
			assert.Equal(t, tc.text, got.Text)
		})
	}
}

func TestCategorizeGeneralSuggestions(t *testing.T) {
	got := newTestEngine().Categorize(model.TodoItem{Text: "xyz"})
	assert.Len(t, got.AISuggestions, 2)
}

func TestCategorizeDeterministic(t *testing.T) {
	e := newTestEngine()
	todo := model.TodoItem{ID: "7", Text: "Hire florist for bouquet"}

	first := e.Categorize(todo)
	second := e.Categorize(todo)
	assert.Equal(t, first, second)
}

func TestCategorizeReturnsOwnTips(t *testing.T) {
	e := newTestEngine()
	todo := model.TodoItem{Text: "Book our venue"}

	first := e.Categorize(todo)
	require.NotEmpty(t, first.AISuggestions)
	first.AISuggestions[0] = "changed"

	assert.NotEqual(t, "changed", e.Categorize(todo).AISuggestions[0])
}
