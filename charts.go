package main

import (
	"bytes"
	"io"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"lg/wellness-go-api/nutrition"
)

// generateMacroPie builds a protein/carbs/fat pie from ledger totals.
// Slice values are grams rounded to one decimal.
func generateMacroPie(totals nutrition.FoodProfile) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Daily Nutrition Summary",
			Subtitle: formatFloat(totals.Calories) + " kcal",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
	)

	pie.AddSeries("Macros (g)", []opts.PieData{
		{Name: "Protein", Value: round1(totals.ProteinG)},
		{Name: "Carbs", Value: round1(totals.CarbsG)},
		{Name: "Fat", Value: round1(totals.FatG)},
	}, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return pie
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// renderMacroChart writes the pie as a standalone HTML page.
func renderMacroChart(w io.Writer, totals nutrition.FoodProfile) error {
	return generateMacroPie(totals).Render(w)
}

// getSummaryChart renders the session's macro split as an HTML pie chart.
// GET /api/sessions/:id/summary/chart. 409 when nothing has been logged.
func (h *Handler) getSummaryChart(c *gin.Context) {
	h.withSession(c, func(s *session) {
		if s.ledger.Len() == 0 {
			apiError(c, http.StatusConflict, "no food added")
			return
		}

		var buf bytes.Buffer
		if err := renderMacroChart(&buf, s.ledger.Total()); err != nil {
			log.Printf("[getSummaryChart] render error: %v", err)
			apiError(c, http.StatusInternalServerError, "failed to render chart")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	})
}
