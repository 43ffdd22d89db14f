package server

import (
	"context"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

// TeamStatsArgs are the input arguments for the get_team_stats tool.
type TeamStatsArgs struct {
	TeamAbbrev string `json:"teamAbbrev" jsonschema:"Team abbreviation, e.g. TOR, NYR, BOS (required)"`
	Season     string `json:"season,omitempty" jsonschema:"Season in YYYYYYYY format, e.g. 20242025 (optional, defaults to current)"`
}

// TeamStatsResult is the output of the get_team_stats tool: the team's
// standings record extended with per-player season aggregates.
type TeamStatsResult struct {
	TeamAbbrev string                     `json:"team_abbrev"`
	Season     string                     `json:"season"`
	Record     *nhlapi.TeamRecord         `json:"record,omitempty"`
	Skaters    []nhlapi.SkaterSeasonStats `json:"skaters"`
	Goalies    []nhlapi.GoalieSeasonStats `json:"goalies"`
}

// TeamStats merges the team's standings row with its club-stats player
// lines. The record is omitted when the standings snapshot has no row for
// the team (e.g. a franchise that did not play that season).
func (c *Core) TeamStats(ctx context.Context, args TeamStatsArgs) (*TeamStatsResult, error) {
	team, err := normalizeTeam("teamAbbrev", args.TeamAbbrev)
	if err != nil {
		return nil, err
	}
	if err := validateSeason("season", args.Season); err != nil {
		return nil, err
	}

	stats, err := c.upstream.ClubStats(ctx, team, args.Season)
	if err != nil {
		return nil, err
	}

	var rows []nhlapi.TeamRecord
	if args.Season == "" {
		rows, err = c.upstream.Standings(ctx, "")
	} else {
		rows, err = c.upstream.StandingsBySeason(ctx, args.Season)
	}
	if err != nil {
		return nil, err
	}

	out := &TeamStatsResult{
		TeamAbbrev: team,
		Season:     stats.Season,
		Skaters:    stats.Skaters,
		Goalies:    stats.Goalies,
	}
	for i := range rows {
		if rows[i].Abbrev == team {
			out.Record = &rows[i]
			break
		}
	}
	return out, nil
}
