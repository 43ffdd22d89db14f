package server

import (
	"context"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

// PlayoffBracketArgs are the input arguments for the get_playoff_bracket
// tool.
type PlayoffBracketArgs struct {
	Season string `json:"season,omitempty" jsonschema:"Postseason year (e.g. 2025) or season (e.g. 20242025); optional, defaults to the current year"`
}

// Playoffs returns the playoff bracket for the requested postseason.
func (c *Core) Playoffs(ctx context.Context, args PlayoffBracketArgs) (*nhlapi.Bracket, error) {
	year, err := normalizeBracketYear(args.Season)
	if err != nil {
		return nil, err
	}
	return c.upstream.PlayoffBracket(ctx, year)
}
