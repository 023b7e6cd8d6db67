package nutrition

import "fmt"

// ExperienceLevel picks one of the fixed training templates.
type ExperienceLevel string

const (
	Beginner     ExperienceLevel = "beginner"
	Intermediate ExperienceLevel = "intermediate"
	Advanced     ExperienceLevel = "advanced"
)

// WorkoutGoal is collected alongside the experience level. No template
// currently varies by it.
type WorkoutGoal string

const (
	MuscleGain WorkoutGoal = "muscle_gain"
	FatLoss    WorkoutGoal = "fat_loss"
)

// WorkoutDay is one labelled session. Each exercise reads
// "Name – Sets×Reps".
type WorkoutDay struct {
	Label     string   `json:"label"`
	Exercises []string `json:"exercises"`
}

// WorkoutPlan is a full template for one experience level.
type WorkoutPlan struct {
	Level ExperienceLevel `json:"level"`
	Split string          `json:"split"`
	Days  []WorkoutDay    `json:"days"`
}

var workoutTemplates = map[ExperienceLevel]WorkoutPlan{
	Beginner: {
		Level: Beginner,
		Split: "3 Days — Full Body Split",
		Days: []WorkoutDay{
			{"Day 1", []string{"Squat – 3×10", "Pushups – 3×12", "Lat Pulldown – 3×12"}},
			{"Day 2", []string{"Leg Press – 3×12", "Bench Press – 3×10", "Seated Row – 3×12"}},
			{"Day 3", []string{"Lunges – 3×12", "Shoulder Press – 3×10", "Plank – 3×30s"}},
		},
	},
	Intermediate: {
		Level: Intermediate,
		Split: "4 Days — Upper / Lower Split",
		Days: []WorkoutDay{
			{"Day 1 (Upper)", []string{"Bench Press – 4×8", "Pullups – 3×8", "Shoulder Press – 3×10"}},
			{"Day 2 (Lower)", []string{"Squats – 4×8", "Leg Curl – 3×10", "Calf Raise – 3×12"}},
			{"Day 3 (Upper)", []string{"Incline Press – 4×8", "Rows – 4×8", "Dips – 3×10"}},
			{"Day 4 (Lower)", []string{"Deadlift – 3×5", "Leg Press – 3×12", "Abs – 3×15"}},
		},
	},
	// Categories, each trained twice across the six days.
	Advanced: {
		Level: Advanced,
		Split: "6 Days — Push / Pull / Legs",
		Days: []WorkoutDay{
			{"Push", []string{"Bench Press – 5×5", "Shoulder Press – 4×8", "Tricep Dip – 4×10"}},
			{"Pull", []string{"Deadlift – 5×3", "Barbell Row – 4×8", "Curl – 3×10"}},
			{"Legs", []string{"Squat – 5×5", "Leg Press – 4×10", "Calf Raise – 4×12"}},
		},
	},
}

// ExperienceLevels lists the levels in ascending order.
func ExperienceLevels() []ExperienceLevel {
	return []ExperienceLevel{Beginner, Intermediate, Advanced}
}

func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	l := ExperienceLevel(normalizeKey(s))
	if _, ok := workoutTemplates[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownExperienceLevel, s)
	}
	return l, nil
}

// ParseWorkoutGoal accepts "Muscle Gain" / "Fat Loss" and their snake_case forms.
func ParseWorkoutGoal(s string) (WorkoutGoal, error) {
	switch g := WorkoutGoal(normalizeKey(s)); g {
	case MuscleGain, FatLoss:
		return g, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWorkoutGoal, s)
}

// BuildWorkoutPlan returns a copy of the template for level. The goal is
// accepted for interface stability and does not change the result.
func BuildWorkoutPlan(level ExperienceLevel, _ WorkoutGoal) (WorkoutPlan, error) {
	tmpl, ok := workoutTemplates[level]
	if !ok {
		return WorkoutPlan{}, fmt.Errorf("%w: %q", ErrUnknownExperienceLevel, string(level))
	}
	plan := WorkoutPlan{Level: tmpl.Level, Split: tmpl.Split, Days: make([]WorkoutDay, len(tmpl.Days))}
	for i, d := range tmpl.Days {
		plan.Days[i] = WorkoutDay{Label: d.Label, Exercises: append([]string(nil), d.Exercises...)}
	}
	return plan, nil
}
