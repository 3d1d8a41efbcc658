// README: Planning handler (itinerary generation, health, history).
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/msollami/vacabuilder/internal/modules/itinerary"
)

// planTimeout bounds one planning request end to end. Generation alone can
// take tens of seconds.
const planTimeout = 5 * time.Minute

type PlanHandler struct {
	planner *itinerary.Service
}

func NewPlanHandler(planner *itinerary.Service) *PlanHandler {
	return &PlanHandler{planner: planner}
}

type planRequest struct {
	Destinations []itinerary.Destination `json:"destinations"`
	Preferences  string                  `json:"preferences"`
}

// Plan handles POST /api/plan.
func (h *PlanHandler) Plan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	result, err := h.planner.Plan(ctx, req.Destinations, req.Preferences)
	if err != nil {
		writePlanError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, result)
}

// Health handles GET /health.
func (h *PlanHandler) Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"status":     "healthy",
		"llm_loaded": h.planner.Ready(),
	})
}

// History handles GET /api/itineraries.
func (h *PlanHandler) History(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		writeError(c, http.StatusBadRequest, "invalid limit")
		return
	}

	records, err := h.planner.History(c.Request.Context(), limit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, gin.H{"itineraries": records})
}
