package http

import (
	"github.com/gin-gonic/gin"

	"wedding-timeline/pkg/response"
)

// Countdown godoc
// @Summary     Wedding countdown
// @Description Returns days and months until the wedding with a dashboard message.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       wedding_date query string false "Wedding date (YYYY-MM-DD or relative, e.g. \"in 9 months\")"
// @Success     200 {object} countdownResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/countdown [GET]
func (h *handler) Countdown(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWeddingDateQuery(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Countdown(ctx, req.toCountdownInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Countdown: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCountdownResp(output))
}

// ListPhases godoc
// @Summary     List planning phases
// @Description Returns the planning phases, with a status for each when a wedding date is given.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       wedding_date query string false "Wedding date"
// @Success     200 {object} listPhasesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/phases [GET]
func (h *handler) ListPhases(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWeddingDateQuery(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListPhases(ctx, req.toListPhasesInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPhases: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListPhasesResp(output))
}

// DetailPhase godoc
// @Summary     Get phase detail
// @Description Returns a single planning phase by its id.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       id           path  string true  "Phase ID"
// @Param       wedding_date query string false "Wedding date"
// @Success     200 {object} detailPhaseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/phases/{id} [GET]
func (h *handler) DetailPhase(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetailPhaseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DetailPhase(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailPhase: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailPhaseResp(output))
}

// Categorize godoc
// @Summary     Categorize a todo
// @Description Classifies a todo into a planning category with urgency, duration and tips.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       body body categorizeReq true "Todo to classify"
// @Success     200 {object} categorizeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/categorize [POST]
func (h *handler) Categorize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCategorizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Categorize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Categorize: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCategorizeResp(output))
}

// SuggestTodos godoc
// @Summary     Suggest checklist tasks
// @Description Returns standard checklist tasks relevant to the time left that are not already planned.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Wedding date and current todos"
// @Success     200 {object} suggestTodosResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/suggestions [POST]
func (h *handler) SuggestTodos(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SuggestTodos(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestTodos: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSuggestTodosResp(output))
}

// SmartSuggestions godoc
// @Summary     Smart suggestions
// @Description Proposes one task per uncovered category, escalating critical vendors when lead time is short.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Wedding date and current todos"
// @Success     200 {object} smartSuggestionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/smart-suggestions [POST]
func (h *handler) SmartSuggestions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SmartSuggestions(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SmartSuggestions: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSmartSuggestionsResp(output))
}

// AdaptiveTimeline godoc
// @Summary     Adaptive timeline
// @Description Fits every planning phase to the time remaining before the wedding.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Wedding date and current todos"
// @Success     200 {object} adaptiveTimelineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/adaptive [POST]
func (h *handler) AdaptiveTimeline(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AdaptiveTimeline(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AdaptiveTimeline: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAdaptiveTimelineResp(output))
}

// GroupTodos godoc
// @Summary     Group todos by phase
// @Description Maps each todo onto the planning phase it belongs to. Every phase is returned.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       body body groupTodosReq true "Todos to group"
// @Success     200 {object} groupTodosResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/groups [POST]
func (h *handler) GroupTodos(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGroupTodosReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GroupTodos(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GroupTodos: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newGroupTodosResp(output))
}

// Insights godoc
// @Summary     Timeline insights
// @Description Computes progress, overdue and priority tasks, timeline stress and recommendations.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Wedding date and current todos"
// @Success     200 {object} insightsOutputResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/insights [POST]
func (h *handler) Insights(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Insights(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Insights: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newInsightsResp(output))
}

// Overview godoc
// @Summary     Plan overview
// @Description Runs every timeline view against one plan in a single call.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Wedding date and current todos"
// @Success     200 {object} overviewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/overview [POST]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Overview(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Overview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newOverviewResp(output))
}
