package nutrition

import (
	"fmt"
	"strings"
)

// Gender selects the Mifflin-St Jeor constant.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ActivityLevel scales BMR up to total daily energy expenditure.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

// activityMultipliers maps activity level to its TDEE multiplier.
// This is the single source of truth for valid activity levels.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// normalizeKey folds "Very Active", "very-active" and "very_active" to the
// same key.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// ParseGender accepts "Male"/"Female" in any case.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(normalizeKey(s)); g {
	case Male, Female:
		return g, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGender, s)
}

// ParseActivityLevel accepts display labels ("Very Active") and API values
// ("very_active").
func ParseActivityLevel(s string) (ActivityLevel, error) {
	a := ActivityLevel(normalizeKey(s))
	if _, ok := activityMultipliers[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownActivityLevel, s)
	}
	return a, nil
}

// ActivityMultiplier returns the TDEE multiplier for a.
func ActivityMultiplier(a ActivityLevel) (float64, error) {
	mult, found := activityMultipliers[a]
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrUnknownActivityLevel, string(a))
	}
	return mult, nil
}

// ComputeBMR returns basal metabolic rate in kcal/day via Mifflin-St Jeor.
// Any gender other than Male takes the female constant.
func ComputeBMR(weightKG, heightCM float64, age int, g Gender) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if g == Male {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}
