package nutrition

import (
	"fmt"
	"strings"
)

// Accepted body metric ranges, inclusive.
const (
	MinAge      = 10
	MaxAge      = 100
	MinWeightKG = 25.0
	MaxWeightKG = 200.0
	MinHeightCM = 120.0
	MaxHeightCM = 230.0
)

// ProfileInput is what a user enters on the details form.
type ProfileInput struct {
	Name     string        `json:"name"`
	Age      int           `json:"age"`
	Gender   Gender        `json:"gender"`
	WeightKG float64       `json:"weight_kg"`
	HeightCM float64       `json:"height_cm"`
	Activity ActivityLevel `json:"activity_level"`
	Goal     Goal          `json:"goal"`
}

// UserProfile is the saved input plus its derived BMR and daily targets.
// It is replaced wholesale on every save.
type UserProfile struct {
	ProfileInput
	BMR     float64      `json:"bmr"`
	Targets DailyTargets `json:"targets"`
}

// NewUserProfile validates in and derives BMR and targets from it.
func NewUserProfile(in ProfileInput) (UserProfile, error) {
	in.Name = strings.TrimSpace(in.Name)

	if in.Age < MinAge || in.Age > MaxAge {
		return UserProfile{}, fmt.Errorf("%w: age must be between %d and %d", ErrInvalidProfile, MinAge, MaxAge)
	}
	// Negated comparisons so NaN fails too.
	if !(in.WeightKG >= MinWeightKG && in.WeightKG <= MaxWeightKG) {
		return UserProfile{}, fmt.Errorf("%w: weight_kg must be between %.0f and %.0f", ErrInvalidProfile, MinWeightKG, MaxWeightKG)
	}
	if !(in.HeightCM >= MinHeightCM && in.HeightCM <= MaxHeightCM) {
		return UserProfile{}, fmt.Errorf("%w: height_cm must be between %.0f and %.0f", ErrInvalidProfile, MinHeightCM, MaxHeightCM)
	}
	if in.Gender != Male && in.Gender != Female {
		return UserProfile{}, fmt.Errorf("%w: %q", ErrUnknownGender, string(in.Gender))
	}

	bmr := ComputeBMR(in.WeightKG, in.HeightCM, in.Age, in.Gender)
	targets, err := ComputeDailyTargets(bmr, in.Activity, in.WeightKG, in.Goal)
	if err != nil {
		return UserProfile{}, err
	}

	return UserProfile{ProfileInput: in, BMR: bmr, Targets: targets}, nil
}
