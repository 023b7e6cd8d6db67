package main

import "lg/wellness-go-api/nutrition"

/* ─── Food catalog ───────────────────────────────────────────────────── */

// foodResponse is one row of GET /api/foods.
type foodResponse struct {
	Name    string                `json:"name"`
	Per100g nutrition.FoodProfile `json:"per_100g"`
}

// scaledFoodResponse is the response shape for GET /api/foods/:name.
type scaledFoodResponse struct {
	Name   string                `json:"name"`
	Grams  float64               `json:"grams"`
	Macros nutrition.FoodProfile `json:"macros"`
}

/* ─── Intake log ─────────────────────────────────────────────────────── */

// addIntakeRequest is the request body for POST /api/sessions/:id/intake.
type addIntakeRequest struct {
	Food  string  `json:"food"`
	Grams float64 `json:"grams"`
}

// dailySummary is the response shape for GET /api/sessions/:id/summary.
// Targets and CaloriesLeft are only present once a profile has been saved.
type dailySummary struct {
	Entries      []nutrition.IntakeEntry `json:"entries"`
	Totals       nutrition.FoodProfile   `json:"totals"`
	ProteinPct   float64                 `json:"protein_pct"`
	CarbsPct     float64                 `json:"carbs_pct"`
	FatPct       float64                 `json:"fat_pct"`
	Targets      *nutrition.DailyTargets `json:"targets,omitempty"`
	CaloriesLeft *float64                `json:"calories_left,omitempty"`
}

/* ─── Profile and plans ──────────────────────────────────────────────── */

// saveProfileRequest is the request body for PUT /api/sessions/:id/profile.
// Enum fields accept form labels ("Very Active") or API values ("very_active").
type saveProfileRequest struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	WeightKG      float64 `json:"weight_kg"`
	HeightCM      float64 `json:"height_cm"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

// dietPlanResponse is the response shape for GET /api/sessions/:id/diet-plan.
type dietPlanResponse struct {
	Targets nutrition.DailyTargets `json:"targets"`
	Meals   []nutrition.MealPlan   `json:"meals"`
}
