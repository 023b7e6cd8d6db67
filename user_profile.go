package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"lg/wellness-go-api/nutrition"
)

// saveProfile replaces the session's profile wholesale and returns it with
// BMR and daily targets filled in.
// PUT /api/sessions/:id/profile.
func (h *Handler) saveProfile(c *gin.Context) {
	var body saveProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Enums accept form labels as well as API values.
	gender, err := nutrition.ParseGender(body.Gender)
	if err != nil {
		engineError(c, "saveProfile", err)
		return
	}
	activity, err := nutrition.ParseActivityLevel(body.ActivityLevel)
	if err != nil {
		apiError(c, http.StatusBadRequest, "activity_level must be one of: sedentary, light, moderate, active, very_active")
		return
	}
	goal, err := nutrition.ParseGoal(body.Goal)
	if err != nil {
		apiError(c, http.StatusBadRequest, "goal must be one of: maintain, lose_weight, gain_weight")
		return
	}

	profile, err := nutrition.NewUserProfile(nutrition.ProfileInput{
		Name:     body.Name,
		Age:      body.Age,
		Gender:   gender,
		WeightKG: body.WeightKG,
		HeightCM: body.HeightCM,
		Activity: activity,
		Goal:     goal,
	})
	if err != nil {
		engineError(c, "saveProfile", err)
		return
	}

	h.withSession(c, func(s *session) {
		s.profile = &profile
		c.JSON(http.StatusOK, profile)
	})
}

// getProfile returns the saved profile.
// GET /api/sessions/:id/profile. 404 until details have been saved.
func (h *Handler) getProfile(c *gin.Context) {
	h.withSession(c, func(s *session) {
		if s.profile == nil {
			apiError(c, http.StatusNotFound, "profile not found")
			return
		}
		c.JSON(http.StatusOK, s.profile)
	})
}
