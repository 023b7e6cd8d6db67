package main

import "testing"

func TestDescriptionFromFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2026-10-18-002-create-food-catalog.sql", "create food catalog"},
		{"2026-10-18-001-create-migrations.sql", "create migrations"},
		{"no-prefix.sql", "no prefix"},
	}
	for _, tc := range cases {
		if got := descriptionFromFilename(tc.in); got != tc.want {
			t.Errorf("descriptionFromFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
