package server

import (
	"context"
	"sort"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

// CompareTeamsArgs are the input arguments for the compare_teams tool.
type CompareTeamsArgs struct {
	Team1  string `json:"team1" jsonschema:"First team abbreviation, e.g. TOR (required)"`
	Team2  string `json:"team2" jsonschema:"Second team abbreviation, e.g. MTL (required)"`
	Season string `json:"season,omitempty" jsonschema:"Season in YYYYYYYY format (optional, defaults to current)"`
}

// HeadToHeadResult is the output of the compare_teams tool.
type HeadToHeadResult struct {
	Team1     string               `json:"team1"`
	Team2     string               `json:"team2"`
	Season    string               `json:"season,omitempty"`
	Team1Wins int                  `json:"team1_wins"`
	Team2Wins int                  `json:"team2_wins"`
	Games     []nhlapi.GameSummary `json:"games"`
}

// CompareTeams fetches both clubs' season schedules, keeps mutual
// matchups, and tallies completed-game wins. Swapping team1 and team2
// yields the same game set with the tallies exchanged.
func (c *Core) CompareTeams(ctx context.Context, args CompareTeamsArgs) (*HeadToHeadResult, error) {
	team1, err := normalizeTeam("team1", args.Team1)
	if err != nil {
		return nil, err
	}
	team2, err := normalizeTeam("team2", args.Team2)
	if err != nil {
		return nil, err
	}
	if team1 == team2 {
		return nil, invalidArg("team2", "must differ from team1")
	}
	if err := validateSeason("season", args.Season); err != nil {
		return nil, err
	}

	schedule1, err := c.upstream.ClubSchedule(ctx, team1, args.Season)
	if err != nil {
		return nil, err
	}
	schedule2, err := c.upstream.ClubSchedule(ctx, team2, args.Season)
	if err != nil {
		return nil, err
	}

	// Merge on game id: a matchup appears in both schedules.
	seen := make(map[int]struct{})
	matchups := make([]nhlapi.GameSummary, 0, 4)
	for _, g := range append(schedule1, schedule2...) {
		if !isMatchup(g, team1, team2) {
			continue
		}
		if _, dup := seen[g.GameID]; dup {
			continue
		}
		seen[g.GameID] = struct{}{}
		matchups = append(matchups, g)
	}

	sort.Slice(matchups, func(i, j int) bool {
		if matchups[i].Date != matchups[j].Date {
			return matchups[i].Date < matchups[j].Date
		}
		return matchups[i].GameID < matchups[j].GameID
	})

	out := &HeadToHeadResult{Team1: team1, Team2: team2, Season: args.Season, Games: matchups}
	for _, g := range matchups {
		if !nhlapi.GameComplete(g.State) {
			continue
		}
		team1Score, team2Score := g.HomeTeam.Score, g.AwayTeam.Score
		if g.AwayTeam.Abbrev == team1 {
			team1Score, team2Score = team2Score, team1Score
		}
		if team1Score > team2Score {
			out.Team1Wins++
		} else if team2Score > team1Score {
			out.Team2Wins++
		}
	}
	return out, nil
}

func isMatchup(g nhlapi.GameSummary, team1, team2 string) bool {
	home, away := g.HomeTeam.Abbrev, g.AwayTeam.Abbrev
	return (home == team1 && away == team2) || (home == team2 && away == team1)
}
