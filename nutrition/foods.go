package nutrition

import "fmt"

// FoodProfile holds calories and macro grams. Table entries are per 100g;
// scaled profiles are for the logged quantity.
type FoodProfile struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

// Add returns the field-wise sum of p and o.
func (p FoodProfile) Add(o FoodProfile) FoodProfile {
	return FoodProfile{
		Calories: p.Calories + o.Calories,
		ProteinG: p.ProteinG + o.ProteinG,
		CarbsG:   p.CarbsG + o.CarbsG,
		FatG:     p.FatG + o.FatG,
		FiberG:   p.FiberG + o.FiberG,
	}
}

// Scale multiplies every field by grams/100. No rounding; display precision is
// the caller's concern.
func (p FoodProfile) Scale(grams float64) FoodProfile {
	factor := grams / 100
	return FoodProfile{
		Calories: p.Calories * factor,
		ProteinG: p.ProteinG * factor,
		CarbsG:   p.CarbsG * factor,
		FatG:     p.FatG * factor,
		FiberG:   p.FiberG * factor,
	}
}

/* ─── Food table ─────────────────────────────────────────────────────── */

type foodRow struct {
	name    string
	per100g FoodProfile
}

// foodTable is the fixed per-100g catalog. Order matters: it is the order
// Foods() reports and the order the catalog is published in.
var foodTable = []foodRow{
	{"Oats", FoodProfile{Calories: 389, ProteinG: 17, CarbsG: 66, FatG: 7, FiberG: 10.6}},
	{"Milk", FoodProfile{Calories: 60, ProteinG: 3.2, CarbsG: 5, FatG: 3.5, FiberG: 0}},
	{"Egg", FoodProfile{Calories: 155, ProteinG: 13, CarbsG: 1.1, FatG: 11, FiberG: 0}},
	{"Banana", FoodProfile{Calories: 89, ProteinG: 1.1, CarbsG: 23, FatG: 0.3, FiberG: 2.6}},
	{"Rice", FoodProfile{Calories: 130, ProteinG: 2.7, CarbsG: 28, FatG: 0.3, FiberG: 0.4}},
	{"Roti", FoodProfile{Calories: 120, ProteinG: 3.0, CarbsG: 20, FatG: 3.0, FiberG: 3.9}},
	{"Chicken Breast", FoodProfile{Calories: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6, FiberG: 0}},
	{"Paneer", FoodProfile{Calories: 265, ProteinG: 18, CarbsG: 6, FatG: 20, FiberG: 0}},
	{"Almonds", FoodProfile{Calories: 579, ProteinG: 21, CarbsG: 22, FatG: 50, FiberG: 12.5}},
	{"Broccoli", FoodProfile{Calories: 34, ProteinG: 2.8, CarbsG: 6.6, FatG: 0.4, FiberG: 2.6}},
	{"Dal", FoodProfile{Calories: 116, ProteinG: 9, CarbsG: 20, FatG: 0.4, FiberG: 7.9}},
	{"Curd", FoodProfile{Calories: 98, ProteinG: 11, CarbsG: 3.4, FatG: 4.3, FiberG: 0}},
}

// foodIndex maps name to per-100g profile. Built once; read-only afterwards,
// so it is safe to share across goroutines.
var foodIndex = func() map[string]FoodProfile {
	m := make(map[string]FoodProfile, len(foodTable))
	for _, r := range foodTable {
		m[r.name] = r.per100g
	}
	return m
}()

// Foods returns the food names in table order.
func Foods() []string {
	names := make([]string, len(foodTable))
	for i, r := range foodTable {
		names[i] = r.name
	}
	return names
}

// LookupFood returns the per-100g profile for name. Names are case-sensitive.
func LookupFood(name string) (FoodProfile, error) {
	p, ok := foodIndex[name]
	if !ok {
		return FoodProfile{}, fmt.Errorf("%w: %q", ErrUnknownFood, name)
	}
	return p, nil
}

// ScaleFood returns name's profile scaled to grams.
func ScaleFood(name string, grams float64) (FoodProfile, error) {
	p, err := LookupFood(name)
	if err != nil {
		return FoodProfile{}, err
	}
	// !(grams > 0) also rejects NaN
	if !(grams > 0) {
		return FoodProfile{}, fmt.Errorf("%w: got %v", ErrInvalidQuantity, grams)
	}
	return p.Scale(grams), nil
}

// MacroSplit returns the percentage of protein, carb and fat grams in the
// combined macro mass of p. A profile with no macros yields zeros.
func MacroSplit(p FoodProfile) (proteinPct, carbsPct, fatPct float64) {
	total := p.ProteinG + p.CarbsG + p.FatG
	if total <= 0 {
		return 0, 0, 0
	}
	return p.ProteinG / total * 100, p.CarbsG / total * 100, p.FatG / total * 100
}
