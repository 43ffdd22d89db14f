package nhlapi

import (
	"testing"
	"time"
)

func TestCurrentSeason(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"MidSeason", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "20252026"},
		{"SeptemberStillPriorSeason", time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC), "20242025"},
		{"OctoberRollsOver", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), "20252026"},
		{"June", time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), "20242025"},
		{"December", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), "20252026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentSeason(tt.now); got != tt.want {
				t.Errorf("CurrentSeason(%s): want %s, got %s", tt.now.Format("2006-01-02"), tt.want, got)
			}
		})
	}
}

func TestFormatSeason(t *testing.T) {
	if got := FormatSeason("20242025"); got != "2024-2025" {
		t.Errorf("want 2024-2025, got %q", got)
	}
	// Anything that is not an 8-digit identifier passes through.
	if got := FormatSeason("2024"); got != "2024" {
		t.Errorf("want passthrough, got %q", got)
	}
}
