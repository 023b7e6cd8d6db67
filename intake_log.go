package main

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"lg/wellness-go-api/nutrition"
)

// addIntakeEntry scales the food and appends it to the session ledger.
// POST /api/sessions/:id/intake. Body: { "food": "Oats", "grams": 60 }.
func (h *Handler) addIntakeEntry(c *gin.Context) {
	var body addIntakeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Food == "" {
		apiError(c, http.StatusBadRequest, "food is required")
		return
	}
	if body.Grams > maxGrams {
		apiError(c, http.StatusBadRequest, "grams must not exceed 800")
		return
	}

	entry, err := nutrition.NewIntakeEntry(body.Food, body.Grams)
	if err != nil {
		engineError(c, "addIntakeEntry", err)
		return
	}

	h.withSession(c, func(s *session) {
		s.ledger.Append(entry)
		c.JSON(http.StatusCreated, entry)
	})
}

// listIntakeEntries returns the ledger in logging order.
// GET /api/sessions/:id/intake. Returns an empty array (not null) when nothing is logged.
func (h *Handler) listIntakeEntries(c *gin.Context) {
	h.withSession(c, func(s *session) {
		c.JSON(http.StatusOK, s.ledger.Entries())
	})
}

// getDailySummary returns the ledger, its totals and macro split. When a
// profile is saved the day's targets and remaining calories are included.
// GET /api/sessions/:id/summary.
func (h *Handler) getDailySummary(c *gin.Context) {
	h.withSession(c, func(s *session) {
		c.JSON(http.StatusOK, buildDailySummary(s))
	})
}

// buildDailySummary assembles the summary for s. Caller holds s.mu.
func buildDailySummary(s *session) dailySummary {
	totals := s.ledger.Total()
	protein, carbs, fat := nutrition.MacroSplit(totals)

	summary := dailySummary{
		Entries:    s.ledger.Entries(),
		Totals:     totals,
		ProteinPct: protein,
		CarbsPct:   carbs,
		FatPct:     fat,
	}
	if s.profile != nil {
		targets := s.profile.Targets
		left := float64(targets.Calories) - totals.Calories
		summary.Targets = &targets
		summary.CaloriesLeft = &left
	}
	return summary
}

// exportIntakeCSV streams the ledger as CSV, one row per entry plus a total row.
// GET /api/sessions/:id/intake.csv.
func (h *Handler) exportIntakeCSV(c *gin.Context) {
	h.withSession(c, func(s *session) {
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)

		header := []string{"food", "grams", "calories", "protein_g", "carbs_g", "fat_g", "fiber_g"}
		if err := w.Write(header); err != nil {
			engineError(c, "exportIntakeCSV", err)
			return
		}
		for _, e := range s.ledger.Entries() {
			if err := w.Write(csvRow(e.Food, formatFloat(e.Grams), e.Profile)); err != nil {
				engineError(c, "exportIntakeCSV", err)
				return
			}
		}
		if err := w.Write(csvRow("TOTAL", "", s.ledger.Total())); err != nil {
			engineError(c, "exportIntakeCSV", err)
			return
		}
		w.Flush()
		if err := w.Error(); err != nil {
			engineError(c, "exportIntakeCSV", err)
			return
		}

		c.Header("Content-Disposition", `attachment; filename="intake.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	})
}

func csvRow(food, grams string, p nutrition.FoodProfile) []string {
	return []string{
		food, grams,
		formatFloat(p.Calories),
		formatFloat(p.ProteinG),
		formatFloat(p.CarbsG),
		formatFloat(p.FatG),
		formatFloat(p.FiberG),
	}
}

// formatFloat renders one decimal place, the precision the UI shows.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
