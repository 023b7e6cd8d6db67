package nutrition

import (
	"fmt"
	"math"
)

// Goal adjusts maintenance calories.
type Goal string

const (
	Maintain   Goal = "maintain"
	LoseWeight Goal = "lose_weight"
	GainWeight Goal = "gain_weight"
)

var goalFactors = map[Goal]float64{
	Maintain:   1.0,
	LoseWeight: 0.85,
	GainWeight: 1.15,
}

// ParseGoal accepts "Lose Weight" style labels and "lose_weight" values.
func ParseGoal(s string) (Goal, error) {
	g := Goal(normalizeKey(s))
	if _, ok := goalFactors[g]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownGoal, s)
	}
	return g, nil
}

// DailyTargets are whole-number daily intake targets.
type DailyTargets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
	FiberG   int `json:"fiber_g"`
}

const (
	proteinGPerKG      = 1.6
	fatCalorieShare    = 0.25
	kcalPerGramFat     = 9
	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	fiberGPer1000Kcal  = 14
)

// ComputeDailyTargets derives daily targets from BMR, activity, body weight
// and goal. Every output is rounded to the nearest integer.
//
// Carbs take whatever calories protein and fat leave over and are not clamped:
// a heavy body on a low calorie budget yields a negative carb target.
func ComputeDailyTargets(bmr float64, a ActivityLevel, weightKG float64, g Goal) (DailyTargets, error) {
	mult, err := ActivityMultiplier(a)
	if err != nil {
		return DailyTargets{}, err
	}
	factor, ok := goalFactors[g]
	if !ok {
		return DailyTargets{}, fmt.Errorf("%w: %q", ErrUnknownGoal, string(g))
	}

	calories := bmr * mult * factor
	protein := proteinGPerKG * weightKG
	fat := fatCalorieShare * calories / kcalPerGramFat
	carbs := (calories - (protein*kcalPerGramProtein + fat*kcalPerGramFat)) / kcalPerGramCarb
	fiber := calories / 1000 * fiberGPer1000Kcal

	return DailyTargets{
		Calories: roundHalfEven(calories),
		ProteinG: roundHalfEven(protein),
		CarbsG:   roundHalfEven(carbs),
		FatG:     roundHalfEven(fat),
		FiberG:   roundHalfEven(fiber),
	}, nil
}

// roundHalfEven rounds to the nearest integer, ties to even.
func roundHalfEven(f float64) int {
	return int(math.RoundToEven(f))
}

/* ─── Meal allocation ────────────────────────────────────────────────── */

// MealSlot names one of the four fixed daily meals.
type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Snacks    MealSlot = "snacks"
	Dinner    MealSlot = "dinner"
)

// MealShare is a slot's fixed fraction of the day plus its static food hint.
type MealShare struct {
	Slot           MealSlot
	Label          string
	Fraction       float64
	SuggestedFoods string
}

// mealShares lists the slots in serving order. Fractions sum to 1.0.
var mealShares = []MealShare{
	{Breakfast, "Breakfast", 0.25, "Oats + Milk + Egg"},
	{Lunch, "Lunch", 0.35, "Rice + Chicken / Paneer + Dal"},
	{Snacks, "Snacks", 0.10, "Fruit + Nuts"},
	{Dinner, "Dinner", 0.30, "Roti + Dal + Veggies"},
}

// MealShares returns the slot definitions in serving order.
func MealShares() []MealShare {
	out := make([]MealShare, len(mealShares))
	copy(out, mealShares)
	return out
}

// MealPlan is the share of DailyTargets assigned to one slot.
type MealPlan struct {
	Slot           MealSlot     `json:"slot"`
	Label          string       `json:"label"`
	Fraction       float64      `json:"fraction"`
	Targets        DailyTargets `json:"targets"`
	SuggestedFoods string       `json:"suggested_foods"`
}

// MealAllocation splits t across the meal slots in serving order. Each field
// is truncated independently, so the slots need not add back up to t.
func MealAllocation(t DailyTargets) []MealPlan {
	plans := make([]MealPlan, 0, len(mealShares))
	for _, m := range mealShares {
		plans = append(plans, MealPlan{
			Slot:     m.Slot,
			Label:    m.Label,
			Fraction: m.Fraction,
			Targets: DailyTargets{
				Calories: share(t.Calories, m.Fraction),
				ProteinG: share(t.ProteinG, m.Fraction),
				CarbsG:   share(t.CarbsG, m.Fraction),
				FatG:     share(t.FatG, m.Fraction),
				FiberG:   share(t.FiberG, m.Fraction),
			},
			SuggestedFoods: m.SuggestedFoods,
		})
	}
	return plans
}

// share truncates toward zero, so a negative carb target stays negative.
func share(v int, fraction float64) int {
	return int(float64(v) * fraction)
}
