package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calzone/internal/authz"
	"calzone/internal/clients"
	"calzone/internal/models"
	"calzone/internal/services"
	"calzone/internal/utils"
)

type PipelineHandler struct {
	Service *services.PipelineService
}

func NewPipelineHandler(service *services.PipelineService) *PipelineHandler {
	return &PipelineHandler{Service: service}
}

// @Summary      Unified pipeline view
// @Description  Orders and manual deals merged into one pipeline list. Manual deals come first. Pass refresh=true to re-fetch both sources.
// @Tags         Pipeline
// @Produce      json
// @Param        stage    query  string  false  "Filter by canonical stage"
// @Param        owner    query  string  false  "Filter by owner email"
// @Param        refresh  query  bool    false  "Force a re-fetch of both sources"
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /pipeline [get]
func (h *PipelineHandler) List(c *gin.Context) {
	roleID := callerRole(c)
	if !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	refresh := c.DefaultQuery("refresh", "false") == "true"
	if refresh || !h.Service.Loaded() {
		if err := h.Service.Refresh(c.Request.Context()); err != nil {
			// no partial data: either source failing fails the whole view
			utils.Logger.Error().Err(err).Msg("pipeline refresh failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load deals"})
			return
		}
	}

	filter := services.Filter{
		Stage: c.Query("stage"),
		Owner: c.Query("owner"),
	}
	deals := h.Service.Snapshot(filter)
	c.JSON(http.StatusOK, gin.H{
		"deals":     deals,
		"fetchedAt": h.Service.FetchedAt(),
	})
}

// @Summary      Pipeline metrics
// @Description  KPI block over the unfiltered snapshot: total value, avg deal size, win rate, stage distribution.
// @Tags         Pipeline
// @Produce      json
// @Success      200  {object}  models.Metrics
// @Router       /pipeline/metrics [get]
func (h *PipelineHandler) Metrics(c *gin.Context) {
	roleID := callerRole(c)
	if !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if !h.Service.Loaded() {
		if err := h.Service.Refresh(c.Request.Context()); err != nil {
			utils.Logger.Error().Err(err).Msg("pipeline refresh failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load deals"})
			return
		}
	}
	c.JSON(http.StatusOK, h.Service.Metrics())
}

// @Summary      Create a manual deal
// @Description  Stores the deal upstream and prepends the confirmed record to the pipeline view.
// @Tags         Pipeline
// @Accept       json
// @Produce      json
// @Param        deal  body      models.DealInput  true  "New deal"
// @Success      201   {object}  models.UnifiedDeal
// @Failure      400   {object}  map[string]string
// @Router       /pipeline/deals [post]
func (h *PipelineHandler) CreateDeal(c *gin.Context) {
	roleID := callerRole(c)
	if !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var input models.DealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.CreateDeal(c.Request.Context(), input)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, models.ErrNameRequired),
			errors.Is(err, models.ErrCustomerRequired),
			errors.Is(err, models.ErrInvalidStage),
			errors.Is(err, models.ErrInvalidProb):
			status = http.StatusBadRequest
		}
		var apiErr *clients.APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			status = apiErr.Status
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

type assignRequest struct {
	AssigneeEmail string `json:"assignee_email" binding:"required"`
}

// @Summary      Assign an owner
// @Description  Routes the assignment to the record's source backend (order or manual deal) and patches the in-memory owner.
// @Tags         Pipeline
// @Accept       json
// @Produce      json
// @Param        id      path      string         true  "Prefixed deal id (order-5 / deal-5)"
// @Param        assign  body      assignRequest  true  "Assignee"
// @Success      200     {object}  models.UnifiedDeal
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /pipeline/deals/{id}/assign [put]
func (h *PipelineHandler) Assign(c *gin.Context) {
	roleID := callerRole(c)
	if !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.AssignOwner(c.Request.Context(), c.Param("id"), req.AssigneeEmail)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrBadUnifiedID):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}
