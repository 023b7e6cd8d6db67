package main

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"lg/wellness-go-api/nutrition"
)

// generatePlanPDF lays out the diet plan and workout plan on one A4 page set.
// Core fonts are cp1252, so every string goes through the UTF-8 translator
// (the templates use "–", "—" and "×").
func generatePlanPDF(profile nutrition.UserProfile, meals []nutrition.MealPlan, workout nutrition.WorkoutPlan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "B", 16)
	pdf.AddPage()

	title := "Diet & Workout Plan"
	if profile.Name != "" {
		title += " for " + profile.Name
	}
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)

	// Daily targets
	t := profile.Targets
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Daily Target: %d kcal", t.Calories)))
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Protein: %d g | Carbs: %d g | Fat: %d g | Fiber: %d g",
		t.ProteinG, t.CarbsG, t.FatG, t.FiberG)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("BMR: %.0f kcal | Activity: %s | Goal: %s",
		profile.BMR, profile.Activity, profile.Goal)))
	pdf.Ln(10)

	// Meals
	for _, m := range meals {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 7, tr(fmt.Sprintf("%s (%.0f%%)", m.Label, m.Fraction*100)))
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Calories %d kcal | Protein %dg | Carbs %dg | Fat %dg | Fiber %dg",
			m.Targets.Calories, m.Targets.ProteinG, m.Targets.CarbsG, m.Targets.FatG, m.Targets.FiberG)))
		pdf.Ln(5)
		pdf.Cell(0, 6, tr("Suggested: "+m.SuggestedFoods))
		pdf.Ln(8)
	}

	// Workout
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, tr("Recommended Split: "+workout.Split))
	pdf.Ln(9)
	for _, d := range workout.Days {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 6, tr(d.Label))
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		for _, e := range d.Exercises {
			pdf.Cell(0, 5, tr("  - "+e))
			pdf.Ln(5)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// getPlanPDF returns the printable diet + workout plan.
// GET /api/sessions/:id/plan.pdf?level=beginner&goal=muscle_gain.
// 409 until a profile has been saved.
func (h *Handler) getPlanPDF(c *gin.Context) {
	level, goal, ok := parseWorkoutQuery(c)
	if !ok {
		return
	}
	workout, err := nutrition.BuildWorkoutPlan(level, goal)
	if err != nil {
		engineError(c, "getPlanPDF", err)
		return
	}

	h.withSession(c, func(s *session) {
		if s.profile == nil {
			apiError(c, http.StatusConflict, "enter details first")
			return
		}
		data, err := generatePlanPDF(*s.profile, nutrition.MealAllocation(s.profile.Targets), workout)
		if err != nil {
			log.Printf("[getPlanPDF] %v", err)
			apiError(c, http.StatusInternalServerError, "failed to generate plan")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="plan.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	})
}
