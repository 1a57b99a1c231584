package timeline

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Countdown reports days and months until the wedding.
	Countdown(ctx context.Context, input CountdownInput) (CountdownOutput, error)

	// Phase table
	ListPhases(ctx context.Context, input ListPhasesInput) (ListPhasesOutput, error)
	DetailPhase(ctx context.Context, input DetailPhaseInput) (DetailPhaseOutput, error)

	// Categorize classifies a single todo.
	Categorize(ctx context.Context, input CategorizeInput) (CategorizeOutput, error)

	// Suggestions
	SuggestTodos(ctx context.Context, input PlanInput) (SuggestTodosOutput, error)
	SmartSuggestions(ctx context.Context, input PlanInput) (SmartSuggestionsOutput, error)

	// AdaptiveTimeline fits the phase table to the time remaining.
	AdaptiveTimeline(ctx context.Context, input PlanInput) (AdaptiveTimelineOutput, error)

	// GroupTodos maps todos onto phases.
	GroupTodos(ctx context.Context, input GroupTodosInput) (GroupTodosOutput, error)

	// Insights computes progress, stress and recommendations.
	Insights(ctx context.Context, input PlanInput) (InsightsOutput, error)

	// Overview runs all of the above against one plan.
	Overview(ctx context.Context, input PlanInput) (OverviewOutput, error)
}
