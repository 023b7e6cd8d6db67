package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"lg/wellness-go-api/nutrition"
)

// getDietPlan returns the daily targets and their split across meals.
// GET /api/sessions/:id/diet-plan. 409 until a profile has been saved.
func (h *Handler) getDietPlan(c *gin.Context) {
	h.withSession(c, func(s *session) {
		if s.profile == nil {
			apiError(c, http.StatusConflict, "enter details first")
			return
		}
		c.JSON(http.StatusOK, dietPlanResponse{
			Targets: s.profile.Targets,
			Meals:   nutrition.MealAllocation(s.profile.Targets),
		})
	})
}
