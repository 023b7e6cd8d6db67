package main

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"lg/wellness-go-api/nutrition"
)

func TestAddIntakeEntry(t *testing.T) {
	router, _ := setupTest(testConfig())
	id := createTestSession(t, router)

	w := doRequest(router, "POST", "/api/sessions/"+id+"/intake", `{"food":"Oats","grams":50}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var entry nutrition.IntakeEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if entry.Food != "Oats" || entry.Grams != 50 || entry.Profile.Calories != 194.5 {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestAddIntakeEntry_Validation(t *testing.T) {
	router, _ := setupTest(testConfig())
	id := createTestSession(t, router)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"malformed JSON", `{"food":`, "invalid request body"},
		{"missing food", `{"grams":100}`, "food is required"},
		{"too many grams", `{"food":"Rice","grams":900}`, "grams must not exceed 800"},
		{"zero grams", `{"food":"Rice","grams":0}`, ""},
		{"unknown food", `{"food":"Pizza","grams":100}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, "POST", "/api/sessions/"+id+"/intake", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if msg := decodeError(t, w); tc.want != "" && msg != tc.want {
				t.Errorf("error = %q, want %q", msg, tc.want)
			}
		})
	}

	// Nothing was appended by the rejected requests.
	w := doRequest(router, "GET", "/api/sessions/"+id+"/intake", "")
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("ledger not empty after rejected adds: %s", w.Body.String())
	}
}

// TestDailySummary_Totals verifies totals, ordering and macro split.
func TestDailySummary_Totals(t *testing.T) {
	router, _ := setupTest(testConfig())
	id := createTestSession(t, router)

	doRequest(router, "POST", "/api/sessions/"+id+"/intake", `{"food":"Egg","grams":100}`)
	doRequest(router, "POST", "/api/sessions/"+id+"/intake", `{"food":"Rice","grams":200}`)
	doRequest(router, "POST", "/api/sessions/"+id+"/intake", `{"food":"Egg","grams":100}`)

	w := doRequest(router, "GET", "/api/sessions/"+id+"/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var s dailySummary
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(s.Entries) != 3 || s.Entries[1].Food != "Rice" {
		t.Fatalf("unexpected entries: %+v", s.Entries)
	}
	// 155 + 260 + 155
	if s.Totals.Calories != 570 {
		t.Errorf("total calories = %v, want 570", s.Totals.Calories)
	}
	if s.Targets != nil || s.CaloriesLeft != nil {
		t.Error("targets present without a saved profile")
	}
	if sum := s.ProteinPct + s.CarbsPct + s.FatPct; sum < 99.999 || sum > 100.001 {
		t.Errorf("macro split sums to %v, want 100", sum)
	}
}

func TestDailySummary_Empty(t *testing.T) {
	router, _ := setupTest(testConfig())
	id := createTestSession(t, router)

	w := doRequest(router, "GET", "/api/sessions/"+id+"/summary", "")
	var s dailySummary
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if s.Totals != (nutrition.FoodProfile{}) || s.ProteinPct != 0 {
		t.Errorf("empty summary not zero: %+v", s)
	}
	if !strings.Contains(w.Body.String(), `"entries":[]`) {
		t.Errorf("entries should be an empty array: %s", w.Body.String())
	}
}

func TestExportIntakeCSV(t *testing.T) {
	router, _ := setupTest(testConfig())
	id := createTestSession(t, router)
	doRequest(router, "POST", "/api/sessions/"+id+"/intake", `{"food":"Banana","grams":120}`)

	w := doRequest(router, "GET", "/api/sessions/"+id+"/intake.csv", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 1 entry + total, got %d rows", len(records))
	}
	// 89 * 1.2 = 106.8
	if records[1][0] != "Banana" || records[1][1] != "120.0" || records[1][2] != "106.8" {
		t.Errorf("entry row = %v", records[1])
	}
	if records[2][0] != "TOTAL" || records[2][2] != "106.8" {
		t.Errorf("total row = %v", records[2])
	}
}
