package nutrition

import (
	"errors"
	"testing"
)

/* ─── BMR accuracy tests ─────────────────────────────────────────────── */

// TestComputeBMR_Male verifies the male Mifflin-St Jeor constant.
//
// Inputs: 70kg, 175cm, 30 years. Expected: 700 + 1093.75 - 150 + 5 = 1648.75.
func TestComputeBMR_Male(t *testing.T) {
	got := ComputeBMR(70, 175, 30, Male)
	want := 10*70 + 6.25*175 - 5*30 + 5.0
	if got != want {
		t.Errorf("male BMR = %v, want %v", got, want)
	}
}

// TestComputeBMR_Female verifies the same inputs with the -161 constant.
func TestComputeBMR_Female(t *testing.T) {
	got := ComputeBMR(70, 175, 30, Female)
	if want := 1482.75; got != want {
		t.Errorf("female BMR = %v, want %v", got, want)
	}
}

/* ─── Activity multiplier tests ──────────────────────────────────────── */

func TestActivityMultiplier(t *testing.T) {
	cases := []struct {
		level ActivityLevel
		want  float64
	}{
		{Sedentary, 1.2},
		{Light, 1.375},
		{Moderate, 1.55},
		{Active, 1.725},
		{VeryActive, 1.9},
	}
	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			got, err := ActivityMultiplier(tc.level)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ActivityMultiplier(%s) = %v, want %v", tc.level, got, tc.want)
			}
		})
	}
}

func TestActivityMultiplier_Unknown(t *testing.T) {
	if _, err := ActivityMultiplier("couch"); !errors.Is(err, ErrUnknownActivityLevel) {
		t.Errorf("expected ErrUnknownActivityLevel, got %v", err)
	}
}

/* ─── Parsing tests ──────────────────────────────────────────────────── */

// TestParseActivityLevel verifies form labels and API values both parse.
func TestParseActivityLevel(t *testing.T) {
	cases := []struct {
		in   string
		want ActivityLevel
	}{
		{"Sedentary", Sedentary},
		{"Very Active", VeryActive},
		{"very_active", VeryActive},
		{"very-active", VeryActive},
		{" moderate ", Moderate},
	}
	for _, tc := range cases {
		got, err := ParseActivityLevel(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseActivityLevel(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseActivityLevel("extreme"); !errors.Is(err, ErrUnknownActivityLevel) {
		t.Errorf("expected ErrUnknownActivityLevel, got %v", err)
	}
}

func TestParseGender(t *testing.T) {
	if g, err := ParseGender("Male"); err != nil || g != Male {
		t.Errorf("ParseGender(Male) = %q, %v", g, err)
	}
	if g, err := ParseGender("FEMALE"); err != nil || g != Female {
		t.Errorf("ParseGender(FEMALE) = %q, %v", g, err)
	}
	if _, err := ParseGender("other"); !errors.Is(err, ErrUnknownGender) {
		t.Errorf("expected ErrUnknownGender, got %v", err)
	}
}
