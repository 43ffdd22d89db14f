package server

import (
	"context"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

// CompareSeasonsArgs are the input arguments for the compare_seasons tool.
type CompareSeasonsArgs struct {
	Seasons    []string `json:"seasons" jsonschema:"Seasons to compare in YYYYYYYY format, e.g. [\"20232024\",\"20242025\"] (required)"`
	TeamAbbrev string   `json:"teamAbbrev,omitempty" jsonschema:"Team abbreviation to compare (optional; league-wide when omitted)"`
}

// ListSeasonsArgs are the input arguments for the list_seasons tool.
type ListSeasonsArgs struct{}

// TeamSeasonSnapshot is one team's record in one season.
type TeamSeasonSnapshot struct {
	Abbrev       string `json:"abbrev"`
	GamesPlayed  int    `json:"games_played"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	OTLosses     int    `json:"ot_losses"`
	Points       int    `json:"points"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	GoalDiff     int    `json:"goal_diff"`
}

// LeagueSeasonSnapshot is the league-wide aggregate for one season.
type LeagueSeasonSnapshot struct {
	Teams           int     `json:"teams"`
	TotalGoals      int     `json:"total_goals"`
	TotalGames      int     `json:"total_games"`
	AvgGoalsPerGame float64 `json:"avg_goals_per_game"`
}

// SeasonSnapshot is one season's entry in a comparison. Exactly one of
// Team and League is set, depending on whether the call was team-scoped.
type SeasonSnapshot struct {
	Season string                `json:"season"`
	Label  string                `json:"label"`
	Team   *TeamSeasonSnapshot   `json:"team,omitempty"`
	League *LeagueSeasonSnapshot `json:"league,omitempty"`
}

// SeasonComparison is the output of the compare_seasons tool. Snapshots
// are raw per-season values; computing deltas is left to the caller.
type SeasonComparison struct {
	TeamAbbrev     string                    `json:"team_abbrev,omitempty"`
	Seasons        []string                  `json:"seasons"`
	PerSeasonStats map[string]SeasonSnapshot `json:"per_season_stats"`
}

// ListSeasonsResult is the output of the list_seasons tool.
type ListSeasonsResult struct {
	Count   int                 `json:"count"`
	Seasons []nhlapi.SeasonInfo `json:"seasons"`
}

// CompareSeasons issues one standings fetch per requested season and
// assembles a per-season table. A failed fetch for any season fails the
// whole call; there are no partial results.
func (c *Core) CompareSeasons(ctx context.Context, args CompareSeasonsArgs) (*SeasonComparison, error) {
	if len(args.Seasons) == 0 {
		return nil, invalidArg("seasons", "is required")
	}
	for _, season := range args.Seasons {
		if err := validateSeason("seasons", season); err != nil {
			return nil, err
		}
	}
	team := ""
	if args.TeamAbbrev != "" {
		var err error
		team, err = normalizeTeam("teamAbbrev", args.TeamAbbrev)
		if err != nil {
			return nil, err
		}
	}

	out := &SeasonComparison{
		TeamAbbrev:     team,
		Seasons:        args.Seasons,
		PerSeasonStats: make(map[string]SeasonSnapshot, len(args.Seasons)),
	}
	for _, season := range args.Seasons {
		rows, err := c.upstream.StandingsBySeason(ctx, season)
		if err != nil {
			return nil, err
		}
		snapshot := SeasonSnapshot{Season: season, Label: nhlapi.FormatSeason(season)}
		if team != "" {
			for _, row := range rows {
				if row.Abbrev != team {
					continue
				}
				snapshot.Team = &TeamSeasonSnapshot{
					Abbrev:       row.Abbrev,
					GamesPlayed:  row.GamesPlayed,
					Wins:         row.Wins,
					Losses:       row.Losses,
					OTLosses:     row.OTLosses,
					Points:       row.Points,
					GoalsFor:     row.GoalsFor,
					GoalsAgainst: row.GoalsAgainst,
					GoalDiff:     row.GoalDiff,
				}
				break
			}
		} else {
			league := &LeagueSeasonSnapshot{Teams: len(rows)}
			for _, row := range rows {
				league.TotalGoals += row.GoalsFor
				league.TotalGames += row.GamesPlayed
			}
			if league.TotalGames > 0 {
				league.AvgGoalsPerGame = float64(league.TotalGoals) / float64(league.TotalGames)
			}
			snapshot.League = league
		}
		out.PerSeasonStats[season] = snapshot
	}
	return out, nil
}

// ListSeasons returns every season the stats API knows about.
func (c *Core) ListSeasons(ctx context.Context, _ ListSeasonsArgs) (*ListSeasonsResult, error) {
	seasons, err := c.upstream.Seasons(ctx)
	if err != nil {
		return nil, err
	}
	return &ListSeasonsResult{Count: len(seasons), Seasons: seasons}, nil
}
