package server

import (
	"context"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

// GameDetailsArgs are the input arguments for the get_game_details tool.
type GameDetailsArgs struct {
	GameID int `json:"gameId" jsonschema:"The NHL game id (required)"`
}

// GameBoxscoreArgs are the input arguments for the get_game_boxscore tool.
type GameBoxscoreArgs struct {
	GameID int `json:"gameId" jsonschema:"The NHL game id (required)"`
}

// GameDetails returns the extended game record with play-by-play.
func (c *Core) GameDetails(ctx context.Context, args GameDetailsArgs) (*nhlapi.GameDetails, error) {
	if args.GameID <= 0 {
		return nil, invalidArg("gameId", "is required")
	}
	return c.upstream.GameDetails(ctx, args.GameID)
}

// GameBoxscore returns the condensed boxscore for one game.
func (c *Core) GameBoxscore(ctx context.Context, args GameBoxscoreArgs) (*nhlapi.GameBoxscore, error) {
	if args.GameID <= 0 {
		return nil, invalidArg("gameId", "is required")
	}
	return c.upstream.Boxscore(ctx, args.GameID)
}
