package usecase

import (
	"context"

	"wedding-timeline/internal/timeline"
)

// SuggestTodos returns the standard checklist tasks still worth adding.
func (uc *implUseCase) SuggestTodos(ctx context.Context, input timeline.PlanInput) (timeline.SuggestTodosOutput, error) {
	wedding, err := uc.parseWeddingDate(ctx, input.WeddingDate)
	if err != nil {
		return timeline.SuggestTodosOutput{}, err
	}

	todos := uc.engine.SuggestedTodos(wedding, input.Todos)
	uc.l.Debugf(ctx, "SuggestTodos: %d suggestions", len(todos))

	return timeline.SuggestTodosOutput{Todos: todos}, nil
}

// SmartSuggestions returns one task per uncovered category.
func (uc *implUseCase) SmartSuggestions(ctx context.Context, input timeline.PlanInput) (timeline.SmartSuggestionsOutput, error) {
	wedding, err := uc.parseWeddingDate(ctx, input.WeddingDate)
	if err != nil {
		return timeline.SmartSuggestionsOutput{}, err
	}

	phases := uc.engine.AdaptiveTimeline(wedding, input.Todos)
	suggestions := uc.engine.SmartSuggestions(wedding, input.Todos, phases)
	uc.l.Debugf(ctx, "SmartSuggestions: %d suggestions", len(suggestions))

	return timeline.SmartSuggestionsOutput{Suggestions: suggestions}, nil
}
