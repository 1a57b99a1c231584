package usecase

import (
	"context"

	"wedding-timeline/internal/timeline"
)

// AdaptiveTimeline fits the phase table to the time left.
func (uc *implUseCase) AdaptiveTimeline(ctx context.Context, input timeline.PlanInput) (timeline.AdaptiveTimelineOutput, error) {
	wedding, err := uc.parseWeddingDate(ctx, input.WeddingDate)
	if err != nil {
		return timeline.AdaptiveTimelineOutput{}, err
	}

	return timeline.AdaptiveTimelineOutput{Phases: uc.engine.AdaptiveTimeline(wedding, input.Todos)}, nil
}
