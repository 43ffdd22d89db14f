package server

import (
	"context"
	"errors"
	"testing"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

func standingsFixture() []nhlapi.TeamRecord {
	return []nhlapi.TeamRecord{
		{Abbrev: "TOR", Division: "Atlantic", DivisionAbbrev: "A", Conference: "Eastern", ConferenceAbbrev: "E", Points: 90},
		{Abbrev: "BOS", Division: "Atlantic", DivisionAbbrev: "A", Conference: "Eastern", ConferenceAbbrev: "E", Points: 88},
		{Abbrev: "NYR", Division: "Metropolitan", DivisionAbbrev: "M", Conference: "Eastern", ConferenceAbbrev: "E", Points: 85},
		{Abbrev: "COL", Division: "Central", DivisionAbbrev: "C", Conference: "Western", ConferenceAbbrev: "W", Points: 95},
		{Abbrev: "VGK", Division: "Pacific", DivisionAbbrev: "P", Conference: "Western", ConferenceAbbrev: "W", Points: 92},
	}
}

func TestStandingsTable(t *testing.T) {
	newCore := func() (*Core, *fakeUpstream) {
		fake := &fakeUpstream{
			standings: func(string) ([]nhlapi.TeamRecord, error) { return standingsFixture(), nil },
		}
		return NewCore(fake, nil), fake
	}

	t.Run("NoFilterReturnsEverything", func(t *testing.T) {
		core, fake := newCore()
		out, err := core.StandingsTable(context.Background(), StandingsArgs{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 5 {
			t.Errorf("count: want 5, got %d", out.Count)
		}
		if fake.calls != 1 {
			t.Errorf("upstream fetches: want 1, got %d", fake.calls)
		}
	})

	t.Run("DivisionFilterIsCaseInsensitive", func(t *testing.T) {
		core, _ := newCore()
		out, err := core.StandingsTable(context.Background(), StandingsArgs{Division: "atlantic"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 2 {
			t.Fatalf("count: want 2, got %d", out.Count)
		}
		for _, row := range out.Standings {
			if row.Division != "Atlantic" {
				t.Errorf("unexpected row %s in %s", row.Abbrev, row.Division)
			}
		}
	})

	t.Run("DivisionAbbrevAlsoMatches", func(t *testing.T) {
		core, _ := newCore()
		out, err := core.StandingsTable(context.Background(), StandingsArgs{Division: "M"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 1 || out.Standings[0].Abbrev != "NYR" {
			t.Errorf("want just NYR, got %+v", out.Standings)
		}
	})

	t.Run("ConferenceFilter", func(t *testing.T) {
		core, _ := newCore()
		out, err := core.StandingsTable(context.Background(), StandingsArgs{Conference: "Western"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 2 {
			t.Errorf("count: want 2, got %d", out.Count)
		}
	})

	t.Run("FiltersIntersect", func(t *testing.T) {
		// Atlantic teams are never Western: the intersection is empty,
		// not the union.
		core, _ := newCore()
		out, err := core.StandingsTable(context.Background(), StandingsArgs{Division: "Atlantic", Conference: "Western"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 0 || len(out.Standings) != 0 {
			t.Errorf("want empty standings, got %+v", out.Standings)
		}
	})

	t.Run("BothFiltersTogether", func(t *testing.T) {
		core, _ := newCore()
		out, err := core.StandingsTable(context.Background(), StandingsArgs{Division: "Central", Conference: "Western"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 1 || out.Standings[0].Abbrev != "COL" {
			t.Errorf("want just COL, got %+v", out.Standings)
		}
	})

	t.Run("UpstreamFailurePropagates", func(t *testing.T) {
		fake := &fakeUpstream{
			standings: func(string) ([]nhlapi.TeamRecord, error) {
				return nil, &nhlapi.UpstreamError{Operation: "standings", Status: 502, Err: errors.New("unexpected status")}
			},
		}
		core := NewCore(fake, nil)
		_, err := core.StandingsTable(context.Background(), StandingsArgs{})
		var upErr *nhlapi.UpstreamError
		if !errors.As(err, &upErr) {
			t.Fatalf("want UpstreamError, got %v", err)
		}
	})
}
