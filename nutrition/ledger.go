package nutrition

// IntakeEntry is one logged food. Profile is computed once at creation and
// never recomputed.
type IntakeEntry struct {
	Food    string      `json:"food"`
	Grams   float64     `json:"grams"`
	Profile FoodProfile `json:"profile"`
}

// NewIntakeEntry scales food to grams and wraps the result in an entry.
func NewIntakeEntry(food string, grams float64) (IntakeEntry, error) {
	p, err := ScaleFood(food, grams)
	if err != nil {
		return IntakeEntry{}, err
	}
	return IntakeEntry{Food: food, Grams: grams, Profile: p}, nil
}

// Ledger is an append-only list of intake entries in logging order. It is not
// safe for concurrent use; each session owns its own Ledger.
type Ledger struct {
	entries []IntakeEntry
}

// Append adds e unconditionally. Repeated foods are kept as separate entries.
func (l *Ledger) Append(e IntakeEntry) {
	l.entries = append(l.entries, e)
}

// Total sums every entry field-wise in insertion order. An empty ledger
// totals to the zero profile.
func (l *Ledger) Total() FoodProfile {
	var t FoodProfile
	for _, e := range l.entries {
		t = t.Add(e.Profile)
	}
	return t
}

// Entries returns a copy of the entries in insertion order.
func (l *Ledger) Entries() []IntakeEntry {
	out := make([]IntakeEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Len() int { return len(l.entries) }

// Reset drops every entry. Used when a session ends.
func (l *Ledger) Reset() {
	l.entries = nil
}
