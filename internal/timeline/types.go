package timeline

import (
	"time"

	"wedding-timeline/internal/catalog"
	"wedding-timeline/internal/model"
)

// --- Derived view models ---

// AdaptivePhase is a catalog phase fitted to the time left before the wedding.
type AdaptivePhase struct {
	catalog.Phase
	AdaptedStartDate time.Time
	AdaptedEndDate   time.Time
	CompressionLevel float64 // 0 = nominal, 1 = fully squeezed
	UrgencyBoost     int     // 0..2
}

// SmartTodoItem is a todo annotated by the category matcher.
type SmartTodoItem struct {
	model.TodoItem
	AICategory        string
	UrgencyLevel      model.Priority
	EstimatedDuration int // days
	AISuggestions     []string
}

// TimelineTodo is a canonical checklist task proposed to the couple.
type TimelineTodo struct {
	ID        string
	Text      string
	Phase     string
	Months    float64
	Urgency   model.Priority
	Completed bool
}

// TimelineInsights aggregates progress and stress for a plan.
type TimelineInsights struct {
	OverallProgress        float64 // 0..100
	CurrentPhase           *AdaptivePhase
	Recommendations        []string
	TimelineStress         float64 // 0..1
	CriticalTasksRemaining int
	OverdueTasks           []SmartTodoItem
	PriorityTasks          []SmartTodoItem
}

// PhaseGroup holds the todos mapped to one phase. Groups keep catalog order.
type PhaseGroup struct {
	PhaseID string
	Todos   []SmartTodoItem
}

// Countdown is the qualitative countdown shown on the dashboard.
type Countdown struct {
	Days    int
	Message string
	Tone    string
	Urgent  bool
}

// PhaseStatus places a phase relative to the time remaining.
type PhaseStatus string

const (
	PhaseStatusUpcoming PhaseStatus = "upcoming"
	PhaseStatusCurrent  PhaseStatus = "current"
	PhaseStatusPast     PhaseStatus = "past"
	PhaseStatusOverdue  PhaseStatus = "overdue"
)

// --- UseCase Inputs ---

// PlanInput is the common request shape: a wedding date plus the couple's todos.
// An empty WeddingDate means no date has been set yet.
type PlanInput struct {
	WeddingDate string
	Todos       []model.TodoItem
}

type CountdownInput struct {
	WeddingDate string
}

type ListPhasesInput struct {
	WeddingDate string // optional; enables statuses
}

type DetailPhaseInput struct {
	ID          string
	WeddingDate string // optional; enables status
}

type CategorizeInput struct {
	Todo model.TodoItem
}

type GroupTodosInput struct {
	Todos []model.TodoItem
}

// --- UseCase Outputs ---

type CountdownOutput struct {
	WeddingDate        time.Time
	HasDate            bool
	DaysUntilWedding   int
	MonthsUntilWedding float64
	Countdown          Countdown
}

// PhaseView is a catalog phase with its status, when a date is known.
type PhaseView struct {
	Phase  catalog.Phase
	Status PhaseStatus // empty when no wedding date was given
}

type ListPhasesOutput struct {
	Phases []PhaseView
}

type DetailPhaseOutput struct {
	Phase PhaseView
}

type CategorizeOutput struct {
	Todo SmartTodoItem
}

type SuggestTodosOutput struct {
	Todos []TimelineTodo
}

type SmartSuggestionsOutput struct {
	Suggestions []SmartTodoItem
}

type AdaptiveTimelineOutput struct {
	Phases []AdaptivePhase
}

type GroupTodosOutput struct {
	Groups []PhaseGroup
}

type InsightsOutput struct {
	Insights TimelineInsights
}

// OverviewOutput bundles every derived view for one plan.
type OverviewOutput struct {
	Countdown        CountdownOutput
	Phases           []AdaptivePhase
	SuggestedTodos   []TimelineTodo
	SmartSuggestions []SmartTodoItem
	Groups           []PhaseGroup
	Insights         TimelineInsights
}
