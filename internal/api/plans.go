package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fresh-pantry/internal/planner"
)

type weeklyPlanRequest struct {
	WeekStart string            `json:"week_start" binding:"required"`
	Days      []planner.DayPlan `json:"days"`
}

func (h *Handler) saveWeeklyPlan(c *gin.Context) {
	var req weeklyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := planner.WeeklyPlan{WeekStart: req.WeekStart, Days: req.Days}
	if err := h.plans.Save(c.Request.Context(), &plan); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *Handler) getWeeklyPlan(c *gin.Context) {
	plan, err := h.plans.Get(c.Request.Context(), c.Query("week_start"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *Handler) listWeeklyPlans(c *gin.Context) {
	plans, err := h.plans.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if plans == nil {
		plans = []planner.WeeklyPlan{}
	}
	c.JSON(http.StatusOK, plans)
}
