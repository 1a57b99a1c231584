package usecase

import (
	"context"
	"time"

	"wedding-timeline/internal/timeline"
)

// Countdown reports how long is left before the wedding.
func (uc *implUseCase) Countdown(ctx context.Context, input timeline.CountdownInput) (timeline.CountdownOutput, error) {
	wedding, err := uc.parseWeddingDate(ctx, input.WeddingDate)
	if err != nil {
		return timeline.CountdownOutput{}, err
	}

	return uc.countdown(wedding), nil
}

func (uc *implUseCase) countdown(wedding time.Time) timeline.CountdownOutput {
	if wedding.IsZero() {
		return timeline.CountdownOutput{}
	}

	return timeline.CountdownOutput{
		WeddingDate:        wedding,
		HasDate:            true,
		DaysUntilWedding:   uc.engine.DaysUntilWedding(wedding),
		MonthsUntilWedding: uc.engine.MonthsUntilWedding(wedding),
		Countdown:          uc.engine.Countdown(wedding),
	}
}
