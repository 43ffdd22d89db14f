package server

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

func TestTeamStreak(t *testing.T) {
	coreWith := func(games []nhlapi.GameSummary) (*Core, *fakeUpstream) {
		fake := &fakeUpstream{
			clubSchedule: func(team, season string) ([]nhlapi.GameSummary, error) {
				if team != "TOR" {
					t.Errorf("team: want TOR, got %q", team)
				}
				return games, nil
			},
		}
		return NewCore(fake, nil), fake
	}

	t.Run("WinStreak", func(t *testing.T) {
		core, _ := coreWith([]nhlapi.GameSummary{
			game(1, "2026-01-01", "TOR", 1, "BOS", 4, nhlapi.GameStateOfficial, "REG"),
			game(2, "2026-01-03", "MTL", 2, "TOR", 3, nhlapi.GameStateOfficial, "REG"),
			game(3, "2026-01-05", "TOR", 5, "NYR", 2, nhlapi.GameStateFinal, "REG"),
			game(4, "2026-01-07", "TOR", 2, "OTT", 1, nhlapi.GameStateFinal, "OT"),
			game(5, "2026-01-09", "DET", 0, "TOR", 3, nhlapi.GameStateFuture, ""),
		})
		out, err := core.TeamStreak(context.Background(), TeamStreakArgs{TeamAbbrev: "TOR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.StreakType != StreakWin {
			t.Errorf("streak type: want win, got %q", out.StreakType)
		}
		if out.Length != 3 {
			t.Errorf("streak length: want 3, got %d", out.Length)
		}
		if len(out.RecentGames) != 4 {
			t.Fatalf("recent games: want 4 completed, got %d", len(out.RecentGames))
		}
		// Most recent first.
		if out.RecentGames[0].Opponent != "OTT" || out.RecentGames[0].Score != "2-1" {
			t.Errorf("most recent game wrong: %+v", out.RecentGames[0])
		}
	})

	t.Run("OTLossBreaksWinStreak", func(t *testing.T) {
		core, _ := coreWith([]nhlapi.GameSummary{
			game(1, "2026-01-01", "TOR", 4, "BOS", 1, nhlapi.GameStateOfficial, "REG"),
			game(2, "2026-01-03", "TOR", 2, "MTL", 3, nhlapi.GameStateOfficial, "OT"),
			game(3, "2026-01-05", "TOR", 3, "NYR", 2, nhlapi.GameStateOfficial, "REG"),
		})
		out, err := core.TeamStreak(context.Background(), TeamStreakArgs{TeamAbbrev: "TOR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.StreakType != StreakWin || out.Length != 1 {
			t.Errorf("want 1-game win streak, got %d-game %s streak", out.Length, out.StreakType)
		}
		if out.RecentGames[1].Result != StreakOTLoss {
			t.Errorf("second game: want ot_loss, got %q", out.RecentGames[1].Result)
		}
	})

	t.Run("LossStreakCountsShootoutLossesSeparately", func(t *testing.T) {
		core, _ := coreWith([]nhlapi.GameSummary{
			game(1, "2026-01-01", "BOS", 5, "TOR", 1, nhlapi.GameStateOfficial, "REG"),
			game(2, "2026-01-03", "TOR", 2, "MTL", 4, nhlapi.GameStateOfficial, "REG"),
			game(3, "2026-01-05", "NYR", 3, "TOR", 2, nhlapi.GameStateOfficial, "SO"),
		})
		out, err := core.TeamStreak(context.Background(), TeamStreakArgs{TeamAbbrev: "TOR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.StreakType != StreakOTLoss || out.Length != 1 {
			t.Errorf("want 1-game ot_loss streak, got %d-game %s streak", out.Length, out.StreakType)
		}
	})

	t.Run("NoCompletedGamesIsNotAnError", func(t *testing.T) {
		core, _ := coreWith([]nhlapi.GameSummary{
			game(1, "2026-10-08", "TOR", 0, "BOS", 0, nhlapi.GameStateFuture, ""),
		})
		out, err := core.TeamStreak(context.Background(), TeamStreakArgs{TeamAbbrev: "TOR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.StreakType != StreakNone || out.Length != 0 {
			t.Errorf("want none/0, got %s/%d", out.StreakType, out.Length)
		}
	})

	t.Run("EmptyScheduleIsNotAnError", func(t *testing.T) {
		core, _ := coreWith(nil)
		out, err := core.TeamStreak(context.Background(), TeamStreakArgs{TeamAbbrev: "TOR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.StreakType != StreakNone || out.Length != 0 {
			t.Errorf("want none/0, got %s/%d", out.StreakType, out.Length)
		}
	})

	t.Run("RecentGamesCappedAtTen", func(t *testing.T) {
		games := make([]nhlapi.GameSummary, 0, 14)
		for i := 0; i < 14; i++ {
			date := fmt.Sprintf("2026-01-%02d", i+1)
			games = append(games, game(i+1, date, "TOR", 3, "BOS", 1, nhlapi.GameStateOfficial, "REG"))
		}
		core, _ := coreWith(games)
		out, err := core.TeamStreak(context.Background(), TeamStreakArgs{TeamAbbrev: "TOR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.RecentGames) != 10 {
			t.Errorf("recent games: want 10, got %d", len(out.RecentGames))
		}
		if out.Length != 14 {
			t.Errorf("streak counts past the echo cap: want 14, got %d", out.Length)
		}
	})

	t.Run("UnknownTeamNeverFetches", func(t *testing.T) {
		fake := &fakeUpstream{}
		core := NewCore(fake, nil)
		_, err := core.TeamStreak(context.Background(), TeamStreakArgs{TeamAbbrev: "ZZZ"})
		var argErr *InvalidArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("want InvalidArgumentError, got %v", err)
		}
		if fake.calls != 0 {
			t.Errorf("upstream fetches: want 0, got %d", fake.calls)
		}
	})
}
