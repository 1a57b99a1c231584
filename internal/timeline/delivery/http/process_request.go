package http

import (
	"github.com/gin-gonic/gin"
)

// processWeddingDateQuery binds the optional wedding_date query parameter.
func (h *handler) processWeddingDateQuery(c *gin.Context) (weddingDateQuery, error) {
	var req weddingDateQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDetailPhaseReq binds the phase id URI param and optional wedding date.
func (h *handler) processDetailPhaseReq(c *gin.Context) (detailPhaseReq, error) {
	var req detailPhaseReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

// processCategorizeReq binds and validates the categorize request body.
func (h *handler) processCategorizeReq(c *gin.Context) (categorizeReq, error) {
	var req categorizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processPlanReq binds and validates a wedding date plus todos body.
func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processGroupTodosReq binds and validates the group todos request body.
func (h *handler) processGroupTodosReq(c *gin.Context) (groupTodosReq, error) {
	var req groupTodosReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
