package engine

import (
	"fmt"
	"math"
	"time"

	"wedding-timeline/internal/model"
	"wedding-timeline/internal/timeline"
)

// Insights aggregates progress, overdue and priority tasks, timeline stress and
// recommendations. Date-dependent recommendations are skipped when no wedding
// date is set.
func (e *Engine) Insights(todos []model.TodoItem, wedding time.Time, phases []timeline.AdaptivePhase) timeline.TimelineInsights {
	now := e.now()

	insights := timeline.TimelineInsights{
		Recommendations: []string{},
		OverdueTasks:    []timeline.SmartTodoItem{},
		PriorityTasks:   []timeline.SmartTodoItem{},
	}

	completed := 0
	criticalTotal := 0
	for _, todo := range todos {
		smart := e.Categorize(todo)
		if smart.UrgencyLevel == model.PriorityCritical {
			criticalTotal++
		}
		if todo.Completed {
			completed++
			continue
		}

		if end, ok := phaseEnd(phases, e.SuggestPhaseForTask(smart.AICategory, smart.UrgencyLevel)); ok && end.Before(now) {
			insights.OverdueTasks = append(insights.OverdueTasks, smart)
		}
		if smart.UrgencyLevel == model.PriorityCritical || smart.UrgencyLevel == model.PriorityHigh {
			insights.PriorityTasks = append(insights.PriorityTasks, smart)
		}
		if smart.UrgencyLevel == model.PriorityCritical {
			insights.CriticalTasksRemaining++
		}
	}

	if len(todos) > 0 {
		insights.OverallProgress = float64(completed) / float64(len(todos)) * 100
	}

	insights.CurrentPhase = e.CurrentPhase(phases)
	insights.TimelineStress = timelineStress(phases, insights.CriticalTasksRemaining, criticalTotal)

	if !wedding.IsZero() {
		months := e.MonthsUntilWedding(wedding)
		if months < 6 && insights.OverallProgress < 50 {
			insights.Recommendations = append(insights.Recommendations, RecommendationBehindSchedule)
		}
		if insights.CriticalTasksRemaining > 0 && months < 3 {
			insights.Recommendations = append(insights.Recommendations, fmt.Sprintf(RecommendationCriticalLeft, insights.CriticalTasksRemaining))
		}
	}
	if insights.CurrentPhase != nil && insights.CurrentPhase.CompressionLevel > 0.7 {
		insights.Recommendations = append(insights.Recommendations, fmt.Sprintf(RecommendationCompressed, insights.CurrentPhase.Name))
	}
	if insights.TimelineStress > 0.8 {
		insights.Recommendations = append(insights.Recommendations, RecommendationHighStress)
	}

	return insights
}

// timelineStress blends average phase pressure with the share of critical
// tasks still open. The result is clamped to [0, 1].
func timelineStress(phases []timeline.AdaptivePhase, criticalRemaining, criticalTotal int) float64 {
	phaseStress := 0.0
	if len(phases) > 0 {
		sum := 0.0
		for _, p := range phases {
			sum += math.Min(1, p.CompressionLevel+float64(p.UrgencyBoost)*StressBoostWeight)
		}
		phaseStress = sum / float64(len(phases))
	}

	criticalFraction := 0.0
	if criticalTotal > 0 {
		criticalFraction = float64(criticalRemaining) / float64(criticalTotal)
	}

	stress := StressPhaseWeight*phaseStress + StressCriticalWeight*criticalFraction
	return math.Max(0, math.Min(1, stress))
}
