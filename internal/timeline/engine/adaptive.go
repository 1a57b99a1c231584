package engine

import (
	"math"
	"time"

	"wedding-timeline/internal/catalog"
	"wedding-timeline/internal/model"
	"wedding-timeline/internal/timeline"
)

// AdaptiveTimeline fits every catalog phase to the time left before the wedding.
// Todos are accepted for interface symmetry; the result depends only on the
// wedding date and the clock. A zero wedding date yields no phases.
func (e *Engine) AdaptiveTimeline(wedding time.Time, todos []model.TodoItem) []timeline.AdaptivePhase {
	if wedding.IsZero() {
		return []timeline.AdaptivePhase{}
	}

	now := e.now()
	months := e.MonthsUntilWedding(wedding)

	phases := make([]timeline.AdaptivePhase, 0, len(e.cat.Phases))
	for _, p := range e.cat.Phases {
		phases = append(phases, e.adaptPhase(p, wedding, now, months))
	}
	return phases
}

// adaptPhase picks the first matching regime: ample time, compressible
// shortage, then overdue. Equality with MinMonthsBefore counts as ample.
func (e *Engine) adaptPhase(p catalog.Phase, wedding, now time.Time, months float64) timeline.AdaptivePhase {
	minBefore := p.MinMonthsBefore()
	maxBefore := p.MaxMonthsBefore()

	switch {
	case months >= minBefore:
		return timeline.AdaptivePhase{
			Phase:            p,
			AdaptedStartDate: wedding.Add(-monthsToDuration(minBefore)),
			AdaptedEndDate:   wedding.Add(-monthsToDuration(maxBefore)),
		}

	case months <= minBefore && p.IsFlexible:
		ratio := math.Max(MinCompressionRatio, months/minBefore)
		compressed := (minBefore - maxBefore) * ratio

		end := now.Add(monthsToDuration(compressed))
		if wedding.After(now) && end.After(wedding) {
			end = wedding
		}

		return timeline.AdaptivePhase{
			Phase:            p,
			AdaptedStartDate: now,
			AdaptedEndDate:   end,
			CompressionLevel: 1 - ratio,
			UrgencyBoost:     int(math.Floor((1 - ratio) * MaxUrgencyBoost)),
		}

	default:
		return timeline.AdaptivePhase{
			Phase:            p,
			AdaptedStartDate: now,
			AdaptedEndDate:   now.Add(OverdueWindow),
			CompressionLevel: 1,
			UrgencyBoost:     MaxUrgencyBoost,
		}
	}
}
