package server

import (
	"context"
	"fmt"
	"sort"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

// Streak outcome types.
const (
	StreakWin    = "win"
	StreakLoss   = "loss"
	StreakOTLoss = "ot_loss"
	StreakNone   = "none"
)

// recentGamesShown caps the recent-results echo in the streak output.
const recentGamesShown = 10

// TeamStreakArgs are the input arguments for the get_team_streak tool.
type TeamStreakArgs struct {
	TeamAbbrev string `json:"teamAbbrev" jsonschema:"Team abbreviation, e.g. TOR, NYR (required)"`
}

// RecentResult is one completed game in the streak output, most recent
// first.
type RecentResult struct {
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	Result   string `json:"result"`
	Score    string `json:"score"`
}

// StreakInfo is the output of the get_team_streak tool.
type StreakInfo struct {
	TeamAbbrev  string         `json:"team_abbrev"`
	StreakType  string         `json:"streak_type"`
	Length      int            `json:"length"`
	RecentGames []RecentResult `json:"recent_games"`
}

// TeamStreak scans the team's completed results most-recent-first and
// counts the trailing run of identical outcomes. A team with no completed
// games gets streak type "none" and length 0, never an error.
func (c *Core) TeamStreak(ctx context.Context, args TeamStreakArgs) (*StreakInfo, error) {
	team, err := normalizeTeam("teamAbbrev", args.TeamAbbrev)
	if err != nil {
		return nil, err
	}

	schedule, err := c.upstream.ClubSchedule(ctx, team, "")
	if err != nil {
		return nil, err
	}

	completed := make([]nhlapi.GameSummary, 0, len(schedule))
	for _, g := range schedule {
		if nhlapi.GameComplete(g.State) {
			completed = append(completed, g)
		}
	}
	sort.Slice(completed, func(i, j int) bool {
		if completed[i].Date != completed[j].Date {
			return completed[i].Date > completed[j].Date
		}
		return completed[i].GameID > completed[j].GameID
	})

	out := &StreakInfo{TeamAbbrev: team, StreakType: StreakNone, RecentGames: make([]RecentResult, 0, recentGamesShown)}
	counting := true
	for _, g := range completed {
		outcome, recent := classifyResult(g, team)
		if len(out.RecentGames) < recentGamesShown {
			out.RecentGames = append(out.RecentGames, recent)
		} else if !counting {
			break
		}
		if !counting {
			continue
		}
		if out.Length == 0 {
			out.StreakType = outcome
			out.Length = 1
		} else if outcome == out.StreakType {
			out.Length++
		} else {
			counting = false
		}
	}
	return out, nil
}

// classifyResult reports the team's outcome for one completed game: a win,
// a regulation loss, or an overtime/shootout loss.
func classifyResult(g nhlapi.GameSummary, team string) (string, RecentResult) {
	teamScore, oppScore := g.HomeTeam.Score, g.AwayTeam.Score
	opponent := g.AwayTeam.Abbrev
	if g.AwayTeam.Abbrev == team {
		teamScore, oppScore = oppScore, teamScore
		opponent = g.HomeTeam.Abbrev
	}

	outcome := StreakWin
	if teamScore < oppScore {
		outcome = StreakLoss
		if g.LastPeriodType == "OT" || g.LastPeriodType == "SO" {
			outcome = StreakOTLoss
		}
	}
	return outcome, RecentResult{
		Date:     g.Date,
		Opponent: opponent,
		Result:   outcome,
		Score:    fmt.Sprintf("%d-%d", teamScore, oppScore),
	}
}
