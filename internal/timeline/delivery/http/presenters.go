package http

import (
	"wedding-timeline/internal/catalog"
	"wedding-timeline/internal/model"
	"wedding-timeline/internal/timeline"
	"wedding-timeline/pkg/response"
)

// --- Request DTOs ---

type weddingDateQuery struct {
	WeddingDate string `form:"wedding_date"`
}

func (r weddingDateQuery) validate() error { return nil }

func (r weddingDateQuery) toCountdownInput() timeline.CountdownInput {
	return timeline.CountdownInput{WeddingDate: r.WeddingDate}
}

func (r weddingDateQuery) toListPhasesInput() timeline.ListPhasesInput {
	return timeline.ListPhasesInput{WeddingDate: r.WeddingDate}
}

// ---

type detailPhaseReq struct {
	ID          string `uri:"id"`
	WeddingDate string `form:"wedding_date"`
}

func (r detailPhaseReq) validate() error {
	if r.ID == "" {
		return errPhaseIDRequired
	}
	return nil
}

func (r detailPhaseReq) toInput() timeline.DetailPhaseInput {
	return timeline.DetailPhaseInput{ID: r.ID, WeddingDate: r.WeddingDate}
}

// ---

type categorizeReq struct {
	Todo model.TodoItem `json:"todo"`
}

func (r categorizeReq) validate() error { return nil }

func (r categorizeReq) toInput() timeline.CategorizeInput {
	return timeline.CategorizeInput{Todo: r.Todo}
}

// ---

type planReq struct {
	WeddingDate string           `json:"wedding_date"`
	Todos       []model.TodoItem `json:"todos" binding:"max=1000"`
}

func (r planReq) validate() error { return nil }

func (r planReq) toInput() timeline.PlanInput {
	return timeline.PlanInput{WeddingDate: r.WeddingDate, Todos: r.Todos}
}

// ---

type groupTodosReq struct {
	Todos []model.TodoItem `json:"todos" binding:"max=1000"`
}

func (r groupTodosReq) validate() error { return nil }

func (r groupTodosReq) toInput() timeline.GroupTodosInput {
	return timeline.GroupTodosInput{Todos: r.Todos}
}

// --- Response DTOs ---

type phaseResp struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	StartMonths float64        `json:"start_months"`
	EndMonths   float64        `json:"end_months"`
	IsFlexible  bool           `json:"is_flexible"`
	Priority    model.Priority `json:"priority"`
	Tips        []string       `json:"tips"`
	Icon        string         `json:"icon"`
	Status      string         `json:"status,omitempty"`
}

func newPhaseResp(p catalog.Phase, status timeline.PhaseStatus) phaseResp {
	return phaseResp{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartMonths: p.StartMonths,
		EndMonths:   p.EndMonths,
		IsFlexible:  p.IsFlexible,
		Priority:    p.Priority,
		Tips:        nonNil(p.Tips),
		Icon:        p.Icon,
		Status:      string(status),
	}
}

type adaptivePhaseResp struct {
	phaseResp
	AdaptedStartDate response.DateTime `json:"adapted_start_date"`
	AdaptedEndDate   response.DateTime `json:"adapted_end_date"`
	CompressionLevel float64           `json:"compression_level"`
	UrgencyBoost     int               `json:"urgency_boost"`
}

func newAdaptivePhaseResp(p timeline.AdaptivePhase) adaptivePhaseResp {
	return adaptivePhaseResp{
		phaseResp:        newPhaseResp(p.Phase, ""),
		AdaptedStartDate: response.DateTime(p.AdaptedStartDate),
		AdaptedEndDate:   response.DateTime(p.AdaptedEndDate),
		CompressionLevel: p.CompressionLevel,
		UrgencyBoost:     p.UrgencyBoost,
	}
}

func newAdaptivePhaseResps(phases []timeline.AdaptivePhase) []adaptivePhaseResp {
	out := make([]adaptivePhaseResp, len(phases))
	for i, p := range phases {
		out[i] = newAdaptivePhaseResp(p)
	}
	return out
}

type smartTodoResp struct {
	ID                string         `json:"id"`
	Text              string         `json:"text"`
	Completed         bool           `json:"completed"`
	Cost              *float64       `json:"cost,omitempty"`
	VendorName        string         `json:"vendor_name,omitempty"`
	AICategory        string         `json:"ai_category"`
	UrgencyLevel      model.Priority `json:"urgency_level"`
	EstimatedDuration int            `json:"estimated_duration"`
	AISuggestions     []string       `json:"ai_suggestions"`
}

func newSmartTodoResp(t timeline.SmartTodoItem) smartTodoResp {
	return smartTodoResp{
		ID:                string(t.ID),
		Text:              t.Text,
		Completed:         t.Completed,
		Cost:              t.Cost,
		VendorName:        t.VendorName,
		AICategory:        t.AICategory,
		UrgencyLevel:      t.UrgencyLevel,
		EstimatedDuration: t.EstimatedDuration,
		AISuggestions:     nonNil(t.AISuggestions),
	}
}

func newSmartTodoResps(todos []timeline.SmartTodoItem) []smartTodoResp {
	out := make([]smartTodoResp, len(todos))
	for i, t := range todos {
		out[i] = newSmartTodoResp(t)
	}
	return out
}

type timelineTodoResp struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Phase     string         `json:"phase"`
	Months    float64        `json:"months"`
	Urgency   model.Priority `json:"urgency"`
	Completed bool           `json:"completed"`
}

func newTimelineTodoResps(todos []timeline.TimelineTodo) []timelineTodoResp {
	out := make([]timelineTodoResp, len(todos))
	for i, t := range todos {
		out[i] = timelineTodoResp{
			ID:        t.ID,
			Text:      t.Text,
			Phase:     t.Phase,
			Months:    t.Months,
			Urgency:   t.Urgency,
			Completed: t.Completed,
		}
	}
	return out
}

type phaseGroupResp struct {
	PhaseID string          `json:"phase_id"`
	Todos   []smartTodoResp `json:"todos"`
}

func newPhaseGroupResps(groups []timeline.PhaseGroup) []phaseGroupResp {
	out := make([]phaseGroupResp, len(groups))
	for i, g := range groups {
		out[i] = phaseGroupResp{PhaseID: g.PhaseID, Todos: newSmartTodoResps(g.Todos)}
	}
	return out
}

type insightsResp struct {
	OverallProgress        float64            `json:"overall_progress"`
	CurrentPhase           *adaptivePhaseResp `json:"current_phase"`
	Recommendations        []string           `json:"recommendations"`
	TimelineStress         float64            `json:"timeline_stress"`
	CriticalTasksRemaining int                `json:"critical_tasks_remaining"`
	OverdueTasks           []smartTodoResp    `json:"overdue_tasks"`
	PriorityTasks          []smartTodoResp    `json:"priority_tasks"`
}

func newInsightsResp(in timeline.TimelineInsights) insightsResp {
	resp := insightsResp{
		OverallProgress:        in.OverallProgress,
		Recommendations:        nonNil(in.Recommendations),
		TimelineStress:         in.TimelineStress,
		CriticalTasksRemaining: in.CriticalTasksRemaining,
		OverdueTasks:           newSmartTodoResps(in.OverdueTasks),
		PriorityTasks:          newSmartTodoResps(in.PriorityTasks),
	}
	if in.CurrentPhase != nil {
		current := newAdaptivePhaseResp(*in.CurrentPhase)
		resp.CurrentPhase = &current
	}
	return resp
}

type countdownResp struct {
	WeddingDate        *response.Date `json:"wedding_date"`
	HasDate            bool           `json:"has_date"`
	DaysUntilWedding   int            `json:"days_until_wedding"`
	MonthsUntilWedding float64        `json:"months_until_wedding"`
	Message            string         `json:"message"`
	Tone               string         `json:"tone"`
	Urgent             bool           `json:"urgent"`
}

func newCountdownResp(out timeline.CountdownOutput) countdownResp {
	resp := countdownResp{
		HasDate:            out.HasDate,
		DaysUntilWedding:   out.DaysUntilWedding,
		MonthsUntilWedding: out.MonthsUntilWedding,
		Message:            out.Countdown.Message,
		Tone:               out.Countdown.Tone,
		Urgent:             out.Countdown.Urgent,
	}
	if out.HasDate {
		d := response.Date(out.WeddingDate)
		resp.WeddingDate = &d
	}
	return resp
}

// ---

type listPhasesResp struct {
	Phases []phaseResp `json:"phases"`
}

func (h *handler) newListPhasesResp(out timeline.ListPhasesOutput) listPhasesResp {
	phases := make([]phaseResp, len(out.Phases))
	for i, v := range out.Phases {
		phases[i] = newPhaseResp(v.Phase, v.Status)
	}
	return listPhasesResp{Phases: phases}
}

type detailPhaseResp struct {
	Phase phaseResp `json:"phase"`
}

func (h *handler) newDetailPhaseResp(out timeline.DetailPhaseOutput) detailPhaseResp {
	return detailPhaseResp{Phase: newPhaseResp(out.Phase.Phase, out.Phase.Status)}
}

type categorizeResp struct {
	Todo smartTodoResp `json:"todo"`
}

func (h *handler) newCategorizeResp(out timeline.CategorizeOutput) categorizeResp {
	return categorizeResp{Todo: newSmartTodoResp(out.Todo)}
}

type suggestTodosResp struct {
	Todos []timelineTodoResp `json:"todos"`
}

func (h *handler) newSuggestTodosResp(out timeline.SuggestTodosOutput) suggestTodosResp {
	return suggestTodosResp{Todos: newTimelineTodoResps(out.Todos)}
}

type smartSuggestionsResp struct {
	Suggestions []smartTodoResp `json:"suggestions"`
}

func (h *handler) newSmartSuggestionsResp(out timeline.SmartSuggestionsOutput) smartSuggestionsResp {
	return smartSuggestionsResp{Suggestions: newSmartTodoResps(out.Suggestions)}
}

type adaptiveTimelineResp struct {
	Phases []adaptivePhaseResp `json:"phases"`
}

func (h *handler) newAdaptiveTimelineResp(out timeline.AdaptiveTimelineOutput) adaptiveTimelineResp {
	return adaptiveTimelineResp{Phases: newAdaptivePhaseResps(out.Phases)}
}

type groupTodosResp struct {
	Groups []phaseGroupResp `json:"groups"`
}

func (h *handler) newGroupTodosResp(out timeline.GroupTodosOutput) groupTodosResp {
	return groupTodosResp{Groups: newPhaseGroupResps(out.Groups)}
}

type insightsOutputResp struct {
	Insights insightsResp `json:"insights"`
}

func (h *handler) newInsightsResp(out timeline.InsightsOutput) insightsOutputResp {
	return insightsOutputResp{Insights: newInsightsResp(out.Insights)}
}

type overviewResp struct {
	Countdown        countdownResp       `json:"countdown"`
	Phases           []adaptivePhaseResp `json:"phases"`
	SuggestedTodos   []timelineTodoResp  `json:"suggested_todos"`
	SmartSuggestions []smartTodoResp     `json:"smart_suggestions"`
	Groups           []phaseGroupResp    `json:"groups"`
	Insights         insightsResp        `json:"insights"`
}

func (h *handler) newOverviewResp(out timeline.OverviewOutput) overviewResp {
	return overviewResp{
		Countdown:        newCountdownResp(out.Countdown),
		Phases:           newAdaptivePhaseResps(out.Phases),
		SuggestedTodos:   newTimelineTodoResps(out.SuggestedTodos),
		SmartSuggestions: newSmartTodoResps(out.SmartSuggestions),
		Groups:           newPhaseGroupResps(out.Groups),
		Insights:         newInsightsResp(out.Insights),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
