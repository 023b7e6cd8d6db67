package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"lg/wellness-go-api/nutrition"
)

// maxGrams is the largest quantity a single log entry may carry.
const maxGrams = 800

// listFoods returns the catalog in table order with per-100g values.
// GET /api/foods.
func (h *Handler) listFoods(c *gin.Context) {
	names := nutrition.Foods()
	out := make([]foodResponse, 0, len(names))
	for _, name := range names {
		p, _ := nutrition.LookupFood(name)
		out = append(out, foodResponse{Name: name, Per100g: p})
	}
	c.JSON(http.StatusOK, out)
}

// getFood returns macros for one food scaled to ?grams (default 100).
// GET /api/foods/:name?grams=N.
func (h *Handler) getFood(c *gin.Context) {
	grams, err := strconv.ParseFloat(c.DefaultQuery("grams", "100"), 64)
	if err != nil {
		apiError(c, http.StatusBadRequest, "grams must be a number")
		return
	}
	if grams > maxGrams {
		apiError(c, http.StatusBadRequest, "grams must not exceed 800")
		return
	}

	name := c.Param("name")
	macros, err := nutrition.ScaleFood(name, grams)
	if err != nil {
		engineError(c, "getFood", err)
		return
	}

	c.JSON(http.StatusOK, scaledFoodResponse{Name: name, Grams: grams, Macros: macros})
}
