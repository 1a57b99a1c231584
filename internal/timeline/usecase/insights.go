package usecase

import (
	"context"

	"wedding-timeline/internal/timeline"
)

// Insights computes progress, stress and recommendations for a plan.
func (uc *implUseCase) Insights(ctx context.Context, input timeline.PlanInput) (timeline.InsightsOutput, error) {
	wedding, err := uc.parseWeddingDate(ctx, input.WeddingDate)
	if err != nil {
		return timeline.InsightsOutput{}, err
	}

	phases := uc.engine.AdaptiveTimeline(wedding, input.Todos)
	insights := uc.engine.Insights(input.Todos, wedding, phases)
	uc.l.Infof(ctx, "Insights: progress=%.1f stress=%.2f critical_left=%d",
		insights.OverallProgress, insights.TimelineStress, insights.CriticalTasksRemaining)

	return timeline.InsightsOutput{Insights: insights}, nil
}
