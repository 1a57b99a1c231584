package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthsUntilWedding(t *testing.T) {
	e := newTestEngine()

	tcs := map[string]struct {
		wedding time.Time
		want    float64
	}{
		"same day of month":       {wedding: date(2027, 1, 10), want: 12},
		"earlier day of month":    {wedding: date(2027, 1, 5), want: 11.5},
		"fifteen days later":      {wedding: date(2027, 1, 25), want: 12},
		"more than fifteen later": {wedding: date(2027, 1, 26), want: 12.5},
		"nine months":             {wedding: date(2026, 10, 10), want: 9},
		"this month":              {wedding: date(2026, 1, 20), want: 0},
		"past is clamped":         {wedding: date(2025, 6, 1), want: 0},
		"zero date":               {wedding: time.Time{}, want: 0},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.MonthsUntilWedding(tc.wedding))
		})
	}
}

func TestMonthsUntilWeddingMonotonic(t *testing.T) {
	e := newTestEngine()

	prev := -1.0
	for d := -60; d <= 800; d++ {
		wedding := date(2026, 1, 10).AddDate(0, 0, d)
		got := e.MonthsUntilWedding(wedding)

		assert.GreaterOrEqual(t, got, 0.0, "wedding %s", wedding.Format("2006-01-02"))
		assert.GreaterOrEqual(t, got, prev, "wedding %s", wedding.Format("2006-01-02"))
		prev = got
	}
}

func TestDaysUntilWedding(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, 0, e.DaysUntilWedding(date(2026, 1, 10)))
	assert.Equal(t, 1, e.DaysUntilWedding(date(2026, 1, 11)))
	assert.Equal(t, 5, e.DaysUntilWedding(date(2026, 1, 15)))
	assert.Equal(t, -1, e.DaysUntilWedding(date(2026, 1, 9)))
}

func TestCountdown(t *testing.T) {
	e := newTestEngine()

	tcs := map[string]struct {
		wedding time.Time
		days    int
		message string
		tone    string
		urgent  bool
	}{
		"past":          {wedding: date(2026, 1, 1), days: -9, message: "Congratulations, the big day has passed!", tone: TonePast},
		"today":         {wedding: date(2026, 1, 10), days: 0, message: "Today is your wedding day!", tone: ToneCelebration, urgent: true},
		"tomorrow":      {wedding: date(2026, 1, 11), days: 1, message: "Tomorrow is the big day!", tone: ToneUrgent, urgent: true},
		"within a week": {wedding: date(2026, 1, 17), days: 7, message: "7 days to go", tone: ToneUrgent, urgent: true},
		"within month":  {wedding: date(2026, 1, 18), days: 8, message: "8 days to go", tone: ToneSoon},
		"three weeks":   {wedding: date(2026, 2, 1), days: 22, message: "22 days to go", tone: ToneSoon},
		"weeks":         {wedding: date(2026, 3, 15), days: 64, message: "9 weeks to go", tone: ToneSteady},
		"months":        {wedding: date(2027, 1, 10), days: 365, message: "12 months to go", tone: ToneCalm},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := e.Countdown(tc.wedding)
			assert.Equal(t, tc.days, got.Days)
			assert.Equal(t, tc.message, got.Message)
			assert.Equal(t, tc.tone, got.Tone)
			assert.Equal(t, tc.urgent, got.Urgent)
		})
	}

	t.Run("zero date", func(t *testing.T) {
		assert.Empty(t, e.Countdown(time.Time{}))
	})
}
