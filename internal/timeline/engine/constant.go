package engine

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DaysPerMonth is the month approximation used for all phase arithmetic.
	DaysPerMonth = 30

	// Category matcher
	GeneralCategory          = "general"
	GeneralEstimatedDays     = 7
	FuzzyMatchWeight         = 0.5
	FuzzySimilarityThreshold = 0.5

	// Compressor
	MinCompressionRatio = 0.3
	OverdueWindow       = 15 * 24 * time.Hour
	MaxUrgencyBoost     = 2

	// Suggestions
	MaxSmartSuggestions     = 12
	UrgentDurationFactor    = 0.5
	CoordinatorCompression  = 0.5
	CoordinatorCategory     = "planning"
	CoordinatorSuggestion   = "Consider hiring a professional wedding coordinator"
	CoordinatorDurationDays = 3

	// Insights
	StressBoostWeight    = 0.3
	StressPhaseWeight    = 0.7
	StressCriticalWeight = 0.3
)

// Recommendation messages, in the order they are emitted.
const (
	RecommendationBehindSchedule = "Less than half of your tasks are done with under 6 months to go. Focus on booking critical vendors first."
	RecommendationCriticalLeft   = "You have %d critical task(s) left with under 3 months to go. Tackle them this week."
	RecommendationCompressed     = "The %s phase is heavily compressed. A wedding coordinator can take work off your plate."
	RecommendationHighStress     = "Timeline stress is very high. Delegate tasks to family and friends and trim optional extras."
)

// suggestionNamespace seeds deterministic ids for generated tasks.
var suggestionNamespace = uuid.MustParse("9b1f3c4e-6a2d-4f8e-9c71-2d5e8a0b7f13")

func suggestionID(kind, key string) string {
	return uuid.NewSHA1(suggestionNamespace, []byte(kind+":"+key)).String()
}

// monthsToDuration converts 30-day months into a time.Duration.
func monthsToDuration(months float64) time.Duration {
	return time.Duration(months * DaysPerMonth * float64(24*time.Hour))
}
