package server

import (
	"context"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

// LiveGamesArgs are the input arguments for the get_live_games tool.
type LiveGamesArgs struct {
	Date string `json:"date,omitempty" jsonschema:"Date in YYYY-MM-DD format (optional, defaults to today)"`
}

// LiveGamesResult is the output of the get_live_games tool.
type LiveGamesResult struct {
	Count int                  `json:"count"`
	Games []nhlapi.GameSummary `json:"games"`
}

// LiveGames returns the scoreboard for one date. An empty upstream games
// list is a valid result, not an error.
func (c *Core) LiveGames(ctx context.Context, args LiveGamesArgs) (*LiveGamesResult, error) {
	if err := validateDate("date", args.Date); err != nil {
		return nil, err
	}
	games, err := c.upstream.Scoreboard(ctx, args.Date)
	if err != nil {
		return nil, err
	}
	return &LiveGamesResult{Count: len(games), Games: games}, nil
}
