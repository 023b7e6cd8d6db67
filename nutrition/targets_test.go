package nutrition

import (
	"errors"
	"testing"
)

/* ─── Daily target tests ─────────────────────────────────────────────── */

// TestComputeDailyTargets_Reference reproduces the worked example:
// base = 1700 * 1.2 = 2040, protein = 112, fat = round(56.67) = 57,
// carbs = round(270.5) = 270 (tie to even), fiber = round(28.56) = 29.
func TestComputeDailyTargets_Reference(t *testing.T) {
	got, err := ComputeDailyTargets(1700, Sedentary, 70, Maintain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DailyTargets{Calories: 2040, ProteinG: 112, CarbsG: 270, FatG: 57, FiberG: 29}
	if got != want {
		t.Errorf("ComputeDailyTargets = %+v, want %+v", got, want)
	}
}

// TestComputeDailyTargets_Goals verifies the goal calorie factors on a
// 70kg/175cm/30y male at sedentary activity.
func TestComputeDailyTargets_Goals(t *testing.T) {
	bmr := ComputeBMR(70, 175, 30, Male)
	cases := []struct {
		goal Goal
		want DailyTargets
	}{
		{Maintain, DailyTargets{Calories: 1978, ProteinG: 112, CarbsG: 259, FatG: 55, FiberG: 28}},
		{LoseWeight, DailyTargets{Calories: 1682, ProteinG: 112, CarbsG: 203, FatG: 47, FiberG: 24}},
		{GainWeight, DailyTargets{Calories: 2275, ProteinG: 112, CarbsG: 315, FatG: 63, FiberG: 32}},
	}
	for _, tc := range cases {
		t.Run(string(tc.goal), func(t *testing.T) {
			got, err := ComputeDailyTargets(bmr, Sedentary, 70, tc.goal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("targets = %+v, want %+v", got, tc.want)
			}
		})
	}
}

// TestComputeDailyTargets_NegativeCarbs verifies a protein-heavy, low-calorie
// combination keeps its negative carb target: 1020 kcal with 320g protein.
func TestComputeDailyTargets_NegativeCarbs(t *testing.T) {
	got, err := ComputeDailyTargets(1000, Sedentary, 200, LoseWeight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CarbsG != -129 {
		t.Errorf("CarbsG = %d, want -129", got.CarbsG)
	}
}

func TestComputeDailyTargets_Errors(t *testing.T) {
	if _, err := ComputeDailyTargets(1700, "couch", 70, Maintain); !errors.Is(err, ErrUnknownActivityLevel) {
		t.Errorf("expected ErrUnknownActivityLevel, got %v", err)
	}
	if _, err := ComputeDailyTargets(1700, Sedentary, 70, "bulk"); !errors.Is(err, ErrUnknownGoal) {
		t.Errorf("expected ErrUnknownGoal, got %v", err)
	}
}

func TestParseGoal(t *testing.T) {
	cases := map[string]Goal{
		"Maintain":    Maintain,
		"Lose Weight": LoseWeight,
		"gain_weight": GainWeight,
	}
	for in, want := range cases {
		if got, err := ParseGoal(in); err != nil || got != want {
			t.Errorf("ParseGoal(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseGoal("Muscle Gain"); !errors.Is(err, ErrUnknownGoal) {
		t.Errorf("expected ErrUnknownGoal, got %v", err)
	}
}

/* ─── Meal allocation tests ──────────────────────────────────────────── */

func TestMealShares_SumToOne(t *testing.T) {
	var sum float64
	for _, m := range MealShares() {
		sum += m.Fraction
	}
	if sum != 1.0 {
		t.Errorf("meal fractions sum to %v, want 1.0", sum)
	}
}

// TestMealAllocation_Truncates verifies per-field truncation against the
// reference targets, including the protein drift (28+39+11+33 = 111 of 112).
func TestMealAllocation_Truncates(t *testing.T) {
	targets := DailyTargets{Calories: 2040, ProteinG: 112, CarbsG: 270, FatG: 57, FiberG: 29}
	plans := MealAllocation(targets)

	want := []struct {
		slot MealSlot
		t    DailyTargets
	}{
		{Breakfast, DailyTargets{Calories: 510, ProteinG: 28, CarbsG: 67, FatG: 14, FiberG: 7}},
		{Lunch, DailyTargets{Calories: 714, ProteinG: 39, CarbsG: 94, FatG: 19, FiberG: 10}},
		{Snacks, DailyTargets{Calories: 204, ProteinG: 11, CarbsG: 27, FatG: 5, FiberG: 2}},
		{Dinner, DailyTargets{Calories: 612, ProteinG: 33, CarbsG: 81, FatG: 17, FiberG: 8}},
	}
	if len(plans) != len(want) {
		t.Fatalf("expected %d meals, got %d", len(want), len(plans))
	}
	var protein int
	for i, w := range want {
		if plans[i].Slot != w.slot {
			t.Errorf("meal %d slot = %s, want %s", i, plans[i].Slot, w.slot)
		}
		if plans[i].Targets != w.t {
			t.Errorf("%s targets = %+v, want %+v", w.slot, plans[i].Targets, w.t)
		}
		protein += plans[i].Targets.ProteinG
	}
	if protein != 111 {
		t.Errorf("allocated protein = %d, want 111", protein)
	}
}

func TestMealAllocation_SuggestedFoods(t *testing.T) {
	plans := MealAllocation(DailyTargets{})
	want := map[MealSlot]string{
		Breakfast: "Oats + Milk + Egg",
		Lunch:     "Rice + Chicken / Paneer + Dal",
		Snacks:    "Fruit + Nuts",
		Dinner:    "Roti + Dal + Veggies",
	}
	for _, p := range plans {
		if p.SuggestedFoods != want[p.Slot] {
			t.Errorf("%s suggested = %q, want %q", p.Slot, p.SuggestedFoods, want[p.Slot])
		}
	}
}

// TestMealAllocation_NegativeCarbs verifies truncation toward zero.
func TestMealAllocation_NegativeCarbs(t *testing.T) {
	plans := MealAllocation(DailyTargets{CarbsG: -129})
	if plans[0].Targets.CarbsG != -32 {
		t.Errorf("breakfast carbs = %d, want -32", plans[0].Targets.CarbsG)
	}
}
