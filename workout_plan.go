package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"lg/wellness-go-api/nutrition"
)

// parseWorkoutQuery reads ?level= (required) and ?goal= (optional) and writes
// a 400 on failure.
func parseWorkoutQuery(c *gin.Context) (nutrition.ExperienceLevel, nutrition.WorkoutGoal, bool) {
	rawLevel := c.Query("level")
	if rawLevel == "" {
		apiError(c, http.StatusBadRequest, "level is required")
		return "", "", false
	}
	level, err := nutrition.ParseExperienceLevel(rawLevel)
	if err != nil {
		apiError(c, http.StatusBadRequest, "level must be one of: beginner, intermediate, advanced")
		return "", "", false
	}

	var goal nutrition.WorkoutGoal
	if rawGoal := c.Query("goal"); rawGoal != "" {
		goal, err = nutrition.ParseWorkoutGoal(rawGoal)
		if err != nil {
			apiError(c, http.StatusBadRequest, "goal must be one of: muscle_gain, fat_loss")
			return "", "", false
		}
	}
	return level, goal, true
}

// getWorkoutPlan returns the fixed template for an experience level.
// GET /api/workout-plan?level=beginner&goal=fat_loss. The goal is validated
// but does not change the plan.
func (h *Handler) getWorkoutPlan(c *gin.Context) {
	level, goal, ok := parseWorkoutQuery(c)
	if !ok {
		return
	}
	plan, err := nutrition.BuildWorkoutPlan(level, goal)
	if err != nil {
		engineError(c, "getWorkoutPlan", err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
