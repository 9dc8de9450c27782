package scoring

import "testing"

func TestEngine_ScoreViolation(t *testing.T) {
	engine := NewEngine()

	testCases := []struct {
		name          string
		violationType string
		status        string
		expected      int
	}{
		{
			name:          "Structural damage with open case",
			violationType: "Structural Damage - Unsafe Building",
			status:        "Open",
			expected:      10,
		},
		{
			name:          "Structural damage closed case",
			violationType: "Structural Damage",
			status:        "Closed",
			expected:      9,
		},
		{
			name:          "Fire hazard",
			violationType: "Fire Hazard",
			status:        "Resolved",
			expected:      8,
		},
		{
			name:          "Mold complaint pending",
			violationType: "Interior Mold",
			status:        "Pending Review",
			expected:      9,
		},
		{
			name:          "Overgrown lot",
			violationType: "Overgrown vegetation",
			status:        "",
			expected:      6,
		},
		{
			name:          "Vacant structure active",
			violationType: "Vacant & Abandoned Structure",
			status:        "Active",
			expected:      7,
		},
		{
			name:          "Roof repair",
			violationType: "Roof deterioration",
			status:        "",
			expected:      5,
		},
		{
			name:          "Unmatched violation text",
			violationType: "Signage without permit",
			status:        "",
			expected:      5,
		},
		{
			name:          "Missing everything",
			violationType: "",
			status:        "",
			expected:      5,
		},
		{
			name:          "First matching group wins over later groups",
			violationType: "Unsafe building with trash and debris",
			status:        "",
			expected:      9,
		},
		{
			name:          "Case-insensitive matching",
			violationType: "CONDEMNED PROPERTY",
			status:        "OPEN",
			expected:      10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.ScoreViolation(tc.violationType, tc.status)
			if got != tc.expected {
				t.Errorf("ScoreViolation(%q, %q) = %d, want %d", tc.violationType, tc.status, got, tc.expected)
			}
		})
	}
}

func TestEngine_ScoreViolation_Range(t *testing.T) {
	engine := NewEngine()

	inputs := []struct{ violationType, status string }{
		{"Structural collapse", "Open"},
		{"fire", "active"},
		{"trash", "pending"},
		{"roof", "closed"},
		{"", ""},
		{"random text", "random status"},
	}

	for _, in := range inputs {
		score := engine.ScoreViolation(in.violationType, in.status)
		if score < 1 || score > 10 {
			t.Errorf("ScoreViolation(%q, %q) = %d, out of range [1,10]", in.violationType, in.status, score)
		}
	}
}

func TestEngine_ScoreViolation_StatusBumpMonotonic(t *testing.T) {
	engine := NewEngine()

	violations := []string{
		"Structural Damage",
		"Fire Hazard",
		"Overgrown lot",
		"Roof leak",
		"Unclassified complaint",
		"",
	}

	for _, v := range violations {
		closed := engine.ScoreViolation(v, "Closed")
		open := engine.ScoreViolation(v, "Open")
		if open < closed {
			t.Errorf("open score %d < closed score %d for %q", open, closed, v)
		}
		if open > 10 {
			t.Errorf("open score %d exceeds cap for %q", open, v)
		}
	}
}

func TestEngine_ScoreViolation_Deterministic(t *testing.T) {
	engine := NewEngine()

	first := engine.ScoreViolation("Electrical hazard near foundation", "Pending")
	for i := 0; i < 100; i++ {
		if got := engine.ScoreViolation("Electrical hazard near foundation", "Pending"); got != first {
			t.Fatalf("score changed between calls: %d vs %d", first, got)
		}
	}
}

func TestEngine_ScoreTaxDelinquency(t *testing.T) {
	engine := NewEngine()

	testCases := []struct {
		years    int
		expected int
	}{
		{0, 5},
		{1, 6},
		{2, 7},
		{4, 9},
		{10, 9},
		{-3, 5},
	}

	for _, tc := range testCases {
		if got := engine.ScoreTaxDelinquency(tc.years); got != tc.expected {
			t.Errorf("ScoreTaxDelinquency(%d) = %d, want %d", tc.years, got, tc.expected)
		}
	}
}
