package usecase

import (
	"context"

	"wedding-timeline/internal/timeline"
)

// Overview evaluates every view against one plan. The wedding date is parsed
// once and the adapted phases are shared by suggestions and insights.
func (uc *implUseCase) Overview(ctx context.Context, input timeline.PlanInput) (timeline.OverviewOutput, error) {
	wedding, err := uc.parseWeddingDate(ctx, input.WeddingDate)
	if err != nil {
		return timeline.OverviewOutput{}, err
	}

	phases := uc.engine.AdaptiveTimeline(wedding, input.Todos)
	out := timeline.OverviewOutput{
		Countdown:        uc.countdown(wedding),
		Phases:           phases,
		SuggestedTodos:   uc.engine.SuggestedTodos(wedding, input.Todos),
		SmartSuggestions: uc.engine.SmartSuggestions(wedding, input.Todos, phases),
		Groups:           uc.engine.CategorizeExisting(input.Todos),
		Insights:         uc.engine.Insights(input.Todos, wedding, phases),
	}

	uc.l.Infof(ctx, "Overview: todos=%d phases=%d suggestions=%d smart=%d",
		len(input.Todos), len(out.Phases), len(out.SuggestedTodos), len(out.SmartSuggestions))

	return out, nil
}
