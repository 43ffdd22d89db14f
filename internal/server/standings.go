package server

import (
	"context"
	"strings"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

// StandingsArgs are the input arguments for the get_standings tool.
type StandingsArgs struct {
	Date       string `json:"date,omitempty" jsonschema:"Date in YYYY-MM-DD format (optional, defaults to current standings)"`
	Division   string `json:"division,omitempty" jsonschema:"Filter by division (Atlantic, Metropolitan, Central, Pacific)"`
	Conference string `json:"conference,omitempty" jsonschema:"Filter by conference (Eastern, Western)"`
}

// StandingsResult is the output of the get_standings tool.
type StandingsResult struct {
	Count     int                 `json:"count"`
	Standings []nhlapi.TeamRecord `json:"standings"`
}

// StandingsTable fetches the full standings and applies the requested
// filters locally. Division and conference filters intersect; a division
// that does not belong to the conference yields an empty table.
func (c *Core) StandingsTable(ctx context.Context, args StandingsArgs) (*StandingsResult, error) {
	if err := validateDate("date", args.Date); err != nil {
		return nil, err
	}
	rows, err := c.upstream.Standings(ctx, args.Date)
	if err != nil {
		return nil, err
	}

	filtered := make([]nhlapi.TeamRecord, 0, len(rows))
	for _, row := range rows {
		if args.Division != "" && !matchesGroup(args.Division, row.Division, row.DivisionAbbrev) {
			continue
		}
		if args.Conference != "" && !matchesGroup(args.Conference, row.Conference, row.ConferenceAbbrev) {
			continue
		}
		filtered = append(filtered, row)
	}
	return &StandingsResult{Count: len(filtered), Standings: filtered}, nil
}

// matchesGroup compares a filter against a division/conference by full
// name or upstream abbreviation, case-insensitively.
func matchesGroup(filter, name, abbrev string) bool {
	return strings.EqualFold(filter, name) || strings.EqualFold(filter, abbrev)
}
