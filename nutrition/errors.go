package nutrition

import "errors"

// Input validation failures. Callers match them with errors.Is; the wrapped
// message carries the offending value.
var (
	ErrUnknownFood            = errors.New("unknown food")
	ErrInvalidQuantity        = errors.New("quantity must be greater than zero")
	ErrUnknownGender          = errors.New("unknown gender")
	ErrUnknownActivityLevel   = errors.New("unknown activity level")
	ErrUnknownGoal            = errors.New("unknown goal")
	ErrUnknownExperienceLevel = errors.New("unknown experience level")
	ErrUnknownWorkoutGoal     = errors.New("unknown workout goal")
	ErrInvalidProfile         = errors.New("invalid profile")
)
