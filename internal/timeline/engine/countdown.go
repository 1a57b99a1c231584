package engine

import (
	"fmt"
	"math"
	"time"

	"wedding-timeline/internal/timeline"
)

// Countdown tones.
const (
	TonePast        = "past"
	ToneCelebration = "celebration"
	ToneUrgent      = "urgent"
	ToneSoon        = "soon"
	ToneSteady      = "steady"
	ToneCalm        = "calm"
)

// MonthsUntilWedding returns the calendar-month distance to the wedding with a
// half-month adjustment for the day of month, never below zero.
// A zero wedding date yields 0.
func (e *Engine) MonthsUntilWedding(wedding time.Time) float64 {
	if wedding.IsZero() {
		return 0
	}
	now := e.now().In(wedding.Location())

	total := float64((wedding.Year()-now.Year())*12 + int(wedding.Month()) - int(now.Month()))

	dayDiff := wedding.Day() - now.Day()
	if dayDiff < 0 {
		total -= 0.5
	} else if dayDiff > 15 {
		total += 0.5
	}

	return math.Max(0, total)
}

// DaysUntilWedding rounds the remaining time up to whole days. Negative once
// the day has passed.
func (e *Engine) DaysUntilWedding(wedding time.Time) int {
	diff := wedding.Sub(e.now())
	return int(math.Ceil(diff.Hours() / 24))
}

// Countdown buckets the remaining days into a dashboard message.
func (e *Engine) Countdown(wedding time.Time) timeline.Countdown {
	if wedding.IsZero() {
		return timeline.Countdown{}
	}

	days := e.DaysUntilWedding(wedding)
	switch {
	case days < 0:
		return timeline.Countdown{Days: days, Message: "Congratulations, the big day has passed!", Tone: TonePast}
	case days == 0:
		return timeline.Countdown{Days: days, Message: "Today is your wedding day!", Tone: ToneCelebration, Urgent: true}
	case days == 1:
		return timeline.Countdown{Days: days, Message: "Tomorrow is the big day!", Tone: ToneUrgent, Urgent: true}
	case days <= 7:
		return timeline.Countdown{Days: days, Message: fmt.Sprintf("%d days to go", days), Tone: ToneUrgent, Urgent: true}
	case days <= 30:
		return timeline.Countdown{Days: days, Message: fmt.Sprintf("%d days to go", days), Tone: ToneSoon}
	case days <= 90:
		return timeline.Countdown{Days: days, Message: fmt.Sprintf("%d weeks to go", days/7), Tone: ToneSteady}
	default:
		return timeline.Countdown{Days: days, Message: fmt.Sprintf("%d months to go", days/DaysPerMonth), Tone: ToneCalm}
	}
}
