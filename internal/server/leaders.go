package server

import (
	"context"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

// PlayerStatsArgs are the input arguments for the get_player_stats tool.
type PlayerStatsArgs struct {
	Category string `json:"category,omitempty" jsonschema:"Category to sort by: points, goals, assists, plusMinus, shots, shootingPctg (defaults to points)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Number of players to return (defaults to 20)"`
	Season   string `json:"season,omitempty" jsonschema:"Season in YYYYYYYY format (optional, defaults to current)"`
}

// GoalieStatsArgs are the input arguments for the get_goalie_stats tool.
type GoalieStatsArgs struct {
	Limit  int    `json:"limit,omitempty" jsonschema:"Number of goalies to return (defaults to 20)"`
	Season string `json:"season,omitempty" jsonschema:"Season in YYYYYYYY format (optional, defaults to current)"`
}

// PlayerStatsResult is the output of the get_player_stats tool.
type PlayerStatsResult struct {
	Category string                  `json:"category"`
	Season   string                  `json:"season,omitempty"`
	Leaders  []nhlapi.PlayerStatLine `json:"leaders"`
}

// GoalieStatsResult is the output of the get_goalie_stats tool.
type GoalieStatsResult struct {
	Season  string                  `json:"season,omitempty"`
	Leaders []nhlapi.GoalieStatLine `json:"leaders"`
}

// PlayerStats returns the top skaters for one category, at most limit
// entries in upstream sort order.
func (c *Core) PlayerStats(ctx context.Context, args PlayerStatsArgs) (*PlayerStatsResult, error) {
	category, err := normalizeCategory(args.Category)
	if err != nil {
		return nil, err
	}
	limit, err := normalizeLimit(args.Limit)
	if err != nil {
		return nil, err
	}
	if err := validateSeason("season", args.Season); err != nil {
		return nil, err
	}
	leaders, err := c.upstream.SkaterLeaders(ctx, category, limit, args.Season)
	if err != nil {
		return nil, err
	}
	if len(leaders) > limit {
		leaders = leaders[:limit]
	}
	return &PlayerStatsResult{Category: category, Season: args.Season, Leaders: leaders}, nil
}

// GoalieStats returns the top goalies by save percentage, at most limit
// entries.
func (c *Core) GoalieStats(ctx context.Context, args GoalieStatsArgs) (*GoalieStatsResult, error) {
	limit, err := normalizeLimit(args.Limit)
	if err != nil {
		return nil, err
	}
	if err := validateSeason("season", args.Season); err != nil {
		return nil, err
	}
	leaders, err := c.upstream.GoalieLeaders(ctx, limit, args.Season)
	if err != nil {
		return nil, err
	}
	if len(leaders) > limit {
		leaders = leaders[:limit]
	}
	return &GoalieStatsResult{Season: args.Season, Leaders: leaders}, nil
}
