package engine

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-timeline/internal/catalog"
	"wedding-timeline/internal/model"
	"wedding-timeline/internal/timeline"
)

func todoTexts(todos []timeline.TimelineTodo) []string {
	out := make([]string, 0, len(todos))
	for _, todo := range todos {
		out = append(out, todo.Text)
	}
	return out
}

func TestSuggestedTodos(t *testing.T) {
	e := newTestEngine()

	t.Run("more than a year out lists everything", func(t *testing.T) {
		got := e.SuggestedTodos(date(2027, 2, 10), nil)
		assert.Len(t, got, len(catalog.Default().StandardTasks))
	})

	t.Run("existing task is not repeated", func(t *testing.T) {
		got := e.SuggestedTodos(date(2027, 2, 10), []model.TodoItem{{ID: "1", Text: "BOOK WEDDING VENUE"}})
		assert.Len(t, got, len(catalog.Default().StandardTasks)-1)
		assert.NotContains(t, todoTexts(got), "Book wedding venue")
	})

	t.Run("five months out", func(t *testing.T) {
		got := e.SuggestedTodos(date(2026, 6, 10), nil)
		assert.Equal(t, []string{
			"Send save-the-dates",
			"Order wedding invitations",
			"Arrange transportation",
			"Schedule hair and makeup trial",
			"Get marriage license",
			"Pack for honeymoon",
		}, todoTexts(got))
	})

	t.Run("wedding this month", func(t *testing.T) {
		got := e.SuggestedTodos(date(2026, 1, 20), nil)
		assert.Equal(t, []string{"Get marriage license", "Pack for honeymoon"}, todoTexts(got))
	})

	t.Run("zero date", func(t *testing.T) {
		got := e.SuggestedTodos(time.Time{}, nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("ids are stable", func(t *testing.T) {
		first := e.SuggestedTodos(date(2027, 2, 10), nil)
		second := e.SuggestedTodos(date(2026, 6, 10), nil)
		assert.Equal(t, first[len(first)-1].ID, second[len(second)-1].ID)
		assert.NotEqual(t, first[0].ID, first[1].ID)
	})
}

func TestSmartSuggestions(t *testing.T) {
	e := newTestEngine()

	t.Run("ample time proposes every category", func(t *testing.T) {
		wedding := date(2027, 2, 10)
		got := e.SmartSuggestions(wedding, nil, e.AdaptiveTimeline(wedding, nil))
		require.Len(t, got, 12)

		venue := catalog.Default().Categories[0]
		assert.Equal(t, venue.Suggestion, got[0].Text)
		assert.Equal(t, model.PriorityCritical, got[0].UrgencyLevel)
		assert.Equal(t, venue.EstimatedDays, got[0].EstimatedDuration)
		assert.Equal(t, "Venue usually needs 12 months of lead time", got[0].AISuggestions[0])
	})

	t.Run("covered category is skipped", func(t *testing.T) {
		wedding := date(2027, 2, 10)
		got := e.SmartSuggestions(wedding, []model.TodoItem{{ID: "1", Text: "Book our venue"}}, nil)
		require.Len(t, got, 11)
		for _, s := range got {
			assert.NotEqual(t, "venue", s.AICategory)
		}
	})

	t.Run("late plan gets urgent vendors and a coordinator", func(t *testing.T) {
		wedding := date(2026, 1, 20)
		got := e.SmartSuggestions(wedding, nil, e.AdaptiveTimeline(wedding, nil))
		require.Len(t, got, 5)

		wantDurations := []int{15, 7, 11, 4}
		for i, category := range []string{"venue", "photography", "catering", "legal"} {
			assert.Equal(t, category, got[i].AICategory)
			assert.Equal(t, model.PriorityCritical, got[i].UrgencyLevel)
			assert.True(t, strings.HasPrefix(got[i].Text, "Urgent: "), got[i].Text)
			assert.Equal(t, wantDurations[i], got[i].EstimatedDuration)
		}

		assert.Equal(t, CoordinatorCategory, got[4].AICategory)
		assert.Equal(t, CoordinatorSuggestion, got[4].Text)
	})

	t.Run("zero date", func(t *testing.T) {
		got := e.SmartSuggestions(time.Time{}, nil, nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("capped", func(t *testing.T) {
		cat := catalog.Default()
		cat.Categories = nil
		for i := 0; i < 14; i++ {
			cat.Categories = append(cat.Categories, catalog.Category{
				Name:          fmt.Sprintf("extra-%02d", i),
				Keywords:      []string{fmt.Sprintf("keyword%02d", i)},
				Priority:      model.PriorityMedium,
				EstimatedDays: 1,
				Suggestion:    fmt.Sprintf("Extra task %02d", i),
			})
		}
		e := New(cat, WithClock(func() time.Time { return testNow }))

		got := e.SmartSuggestions(date(2027, 2, 10), nil, nil)
		require.Len(t, got, MaxSmartSuggestions)
		assert.Equal(t, "extra-11", got[MaxSmartSuggestions-1].AICategory)
	})
}
