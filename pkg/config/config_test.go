package config

import (
	"testing"
	"time"
)

func TestConfig_GetRefreshTimes(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []RefreshTime
	}{
		{
			name:     "Default schedule",
			raw:      "08:00,14:00,22:00",
			expected: []RefreshTime{{Hour: 8}, {Hour: 14}, {Hour: 22}},
		},
		{
			name:     "Whitespace and minutes",
			raw:      " 06:30 , 18:45 ",
			expected: []RefreshTime{{Hour: 6, Minute: 30}, {Hour: 18, Minute: 45}},
		},
		{
			name:     "Malformed entries skipped",
			raw:      "8am,25:00,14:99,22:00",
			expected: []RefreshTime{{Hour: 22}},
		},
		{
			name:     "All garbage falls back to defaults",
			raw:      "whenever",
			expected: []RefreshTime{{Hour: 8}, {Hour: 14}, {Hour: 22}},
		},
		{
			name:     "Empty falls back to defaults",
			raw:      "",
			expected: []RefreshTime{{Hour: 8}, {Hour: 14}, {Hour: 22}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{RefreshTimes: tc.raw}
			got := cfg.GetRefreshTimes()
			if len(got) != len(tc.expected) {
				t.Fatalf("got %v, want %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("times[%d] = %v, want %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestRefreshTime_At(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 42, 13, 0, time.UTC)
	got := RefreshTime{Hour: 8, Minute: 30}.At(now)
	want := time.Date(2025, 6, 10, 8, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At = %s, want %s", got, want)
	}
}

func TestConfig_DemoFallbackEnabled(t *testing.T) {
	if (&Config{Fallback: FallbackEmpty}).DemoFallbackEnabled() {
		t.Error("empty policy should not enable demo data")
	}
	if !(&Config{Fallback: FallbackDemo}).DemoFallbackEnabled() {
		t.Error("demo policy should enable demo data")
	}
}
