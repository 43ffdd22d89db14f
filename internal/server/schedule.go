package server

import (
	"context"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

// ScheduleArgs are the input arguments for the get_schedule tool.
type ScheduleArgs struct {
	Date       string `json:"date,omitempty" jsonschema:"Date in YYYY-MM-DD format (optional, defaults to the current week)"`
	TeamAbbrev string `json:"teamAbbrev,omitempty" jsonschema:"Team abbreviation for a full-season team schedule, e.g. TOR (optional)"`
}

// ScheduleResult is the output of the get_schedule tool.
type ScheduleResult struct {
	TeamAbbrev string               `json:"team_abbrev,omitempty"`
	Count      int                  `json:"count"`
	Games      []nhlapi.GameSummary `json:"games"`
}

// Schedule returns a team's full-season schedule when teamAbbrev is given,
// otherwise the league schedule for the week containing date.
func (c *Core) Schedule(ctx context.Context, args ScheduleArgs) (*ScheduleResult, error) {
	if err := validateDate("date", args.Date); err != nil {
		return nil, err
	}

	if args.TeamAbbrev != "" {
		team, err := normalizeTeam("teamAbbrev", args.TeamAbbrev)
		if err != nil {
			return nil, err
		}
		games, err := c.upstream.ClubSchedule(ctx, team, "")
		if err != nil {
			return nil, err
		}
		return &ScheduleResult{TeamAbbrev: team, Count: len(games), Games: games}, nil
	}

	games, err := c.upstream.WeekSchedule(ctx, args.Date)
	if err != nil {
		return nil, err
	}
	return &ScheduleResult{Count: len(games), Games: games}, nil
}
