package usecase

import (
	"context"
	"fmt"
	"time"

	"wedding-timeline/internal/catalog"
	"wedding-timeline/internal/timeline"
)

// ListPhases returns the phase table, with statuses when a date is given.
func (uc *implUseCase) ListPhases(ctx context.Context, input timeline.ListPhasesInput) (timeline.ListPhasesOutput, error) {
	wedding, err := uc.parseWeddingDate(ctx, input.WeddingDate)
	if err != nil {
		return timeline.ListPhasesOutput{}, err
	}

	phases := uc.engine.Phases()
	views := make([]timeline.PhaseView, 0, len(phases))
	for _, p := range phases {
		views = append(views, uc.phaseView(p, wedding))
	}

	return timeline.ListPhasesOutput{Phases: views}, nil
}

// DetailPhase returns a single phase by id.
func (uc *implUseCase) DetailPhase(ctx context.Context, input timeline.DetailPhaseInput) (timeline.DetailPhaseOutput, error) {
	p, ok := uc.engine.PhaseByID(input.ID)
	if !ok {
		uc.l.Warnf(ctx, "DetailPhase: unknown phase %q", input.ID)
		return timeline.DetailPhaseOutput{}, fmt.Errorf("%w: %s", timeline.ErrPhaseNotFound, input.ID)
	}

	wedding, err := uc.parseWeddingDate(ctx, input.WeddingDate)
	if err != nil {
		return timeline.DetailPhaseOutput{}, err
	}

	return timeline.DetailPhaseOutput{Phase: uc.phaseView(p, wedding)}, nil
}

func (uc *implUseCase) phaseView(p catalog.Phase, wedding time.Time) timeline.PhaseView {
	view := timeline.PhaseView{Phase: p}
	if !wedding.IsZero() {
		view.Status = uc.engine.PhaseStatus(p, uc.engine.MonthsUntilWedding(wedding))
	}
	return view
}
