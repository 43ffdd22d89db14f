// Package server is the MCP-facing layer: it owns the tool registry and
// turns tool calls into upstream fetches plus response reshaping.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Upstream is the slice of the NHL API client the tool handlers use.
type Upstream interface {
	Scoreboard(ctx context.Context, date string) ([]nhlapi.GameSummary, error)
	GameDetails(ctx context.Context, gameID int) (*nhlapi.GameDetails, error)
	Boxscore(ctx context.Context, gameID int) (*nhlapi.GameBoxscore, error)
	Standings(ctx context.Context, date string) ([]nhlapi.TeamRecord, error)
	StandingsBySeason(ctx context.Context, season string) ([]nhlapi.TeamRecord, error)
	ClubStats(ctx context.Context, teamAbbrev, season string) (*nhlapi.TeamSeasonStats, error)
	SkaterLeaders(ctx context.Context, category string, limit int, season string) ([]nhlapi.PlayerStatLine, error)
	GoalieLeaders(ctx context.Context, limit int, season string) ([]nhlapi.GoalieStatLine, error)
	WeekSchedule(ctx context.Context, date string) ([]nhlapi.GameSummary, error)
	ClubSchedule(ctx context.Context, teamAbbrev, season string) ([]nhlapi.GameSummary, error)
	PlayoffBracket(ctx context.Context, year string) (*nhlapi.Bracket, error)
	Seasons(ctx context.Context) ([]nhlapi.SeasonInfo, error)
}

// Core executes tool calls against an Upstream. It holds no mutable state,
// so concurrent calls need no locking.
type Core struct {
	upstream Upstream
	logger   *slog.Logger
}

func NewCore(upstream Upstream, logger *slog.Logger) *Core {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Core{upstream: upstream, logger: logger}
}

// ToolInfo describes one registered tool for the /tools listing.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ServerOptions struct {
	// Name is the MCP server implementation name. Default: "nhl-mcp".
	Name string
	// Version is the MCP server implementation version. Default: "0.1.0".
	Version string
}

// toolError converts err into a structured tool-error result. Handler
// errors never propagate to the protocol layer as faults.
func toolError(tool string, err error) *mcp.CallToolResult {
	payload := map[string]any{
		"tool":       tool,
		"error_kind": errorKind(err),
		"message":    err.Error(),
	}
	b, _ := json.MarshalIndent(payload, "", "  ")
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}
}

func toolJSON(out any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}, nil
}

// addTool registers one tool with typed arguments, uniform error
// conversion, and per-call logging.
func addTool[In any](srv *mcp.Server, core *Core, registry *[]ToolInfo, tool *mcp.Tool, fn func(context.Context, In) (any, error)) {
	*registry = append(*registry, ToolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(srv, tool, func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		start := time.Now()
		out, err := fn(ctx, in)
		if err == nil {
			var res *mcp.CallToolResult
			res, err = toolJSON(out)
			if err == nil {
				core.logger.InfoContext(ctx, "tool call",
					"tool", tool.Name,
					"outcome", "success",
					"duration_ms", time.Since(start).Milliseconds(),
				)
				return res, nil, nil
			}
		}
		core.logger.InfoContext(ctx, "tool call",
			"tool", tool.Name,
			"outcome", errorKind(err),
			"error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return toolError(tool.Name, err), nil, nil
	})
}

func newServer(core *Core, opts ...ServerOptions) (*mcp.Server, []ToolInfo) {
	name := "nhl-mcp"
	version := "0.1.0"
	if len(opts) > 0 {
		if opts[0].Name != "" {
			name = opts[0].Name
		}
		if opts[0].Version != "" {
			version = opts[0].Version
		}
	}
	srv := mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil)

	registry := make([]ToolInfo, 0, 16)

	addTool(srv, core, &registry, &mcp.Tool{
		Name:        "get_live_games",
		Description: "Get NHL game scores and status for today or a specific date, including period and venue.",
	}, func(ctx context.Context, args LiveGamesArgs) (any, error) {
		return core.LiveGames(ctx, args)
	})

	addTool(srv, core, &registry, &mcp.Tool{
		Name:        "get_game_details",
		Description: "Get detailed information about a specific game including ordered play-by-play events.",
	}, func(ctx context.Context, args GameDetailsArgs) (any, error) {
		return core.GameDetails(ctx, args)
	})

	addTool(srv, core, &registry, &mcp.Tool{
		Name:        "get_game_boxscore",
		Description: "Get the boxscore for a specific game: score, shots on goal, and game state.",
	}, func(ctx context.Context, args GameBoxscoreArgs) (any, error) {
		return core.GameBoxscore(ctx, args)
	})

	addTool(srv, core, &registry, &mcp.Tool{
		Name:        "get_standings",
		Description: "Get NHL standings with wins, losses, points, and goal differential. Filter by division and/or conference.",
	}, func(ctx context.Context, args StandingsArgs) (any, error) {
		return core.StandingsTable(ctx, args)
	})

	addTool(srv, core, &registry, &mcp.Tool{
		Name:        "get_team_stats",
		Description: "Get a team's season record plus per-player season stats for skaters and goalies.",
	}, func(ctx context.Context, args TeamStatsArgs) (any, error) {
		return core.TeamStats(ctx, args)
	})

	addTool(srv, core, &registry, &mcp.Tool{
		Name:        "get_player_stats",
		Description: "Get top NHL skaters by category: points, goals, assists, plusMinus, shots, or shootingPctg.",
	}, func(ctx context.Context, args PlayerStatsArgs) (any, error) {
		return core.PlayerStats(ctx, args)
	})

	addTool(srv, core, &registry, &mcp.Tool{
		Name:        "get_goalie_stats",
		Description: "Get top NHL goalies by save percentage, with wins, GAA, and shutouts.",
	}, func(ctx context.Context, args GoalieStatsArgs) (any, error) {
		return core.GoalieStats(ctx, args)
	})

	addTool(srv, core, &registry, &mcp.Tool{
		Name:        "get_schedule",
		Description: "Get the NHL schedule for a week or a specific team's full season.",
	}, func(ctx context.Context, args ScheduleArgs) (any, error) {
		return core.Schedule(ctx, args)
	})

	addTool(srv, core, &registry, &mcp.Tool{
		Name:        "get_playoff_bracket",
		Description: "Get the playoff bracket with series matchups and games-won counts.",
	}, func(ctx context.Context, args PlayoffBracketArgs) (any, error) {
		return core.Playoffs(ctx, args)
	})

	addTool(srv, core, &registry, &mcp.Tool{
		Name:        "compare_teams",
		Description: "Compare two teams head-to-head: season series win tally and the list of mutual matchups.",
	}, func(ctx context.Context, args CompareTeamsArgs) (any, error) {
		return core.CompareTeams(ctx, args)
	})

	addTool(srv, core, &registry, &mcp.Tool{
		Name:        "get_team_streak",
		Description: "Get a team's current winning or losing streak from its recent results.",
	}, func(ctx context.Context, args TeamStreakArgs) (any, error) {
		return core.TeamStreak(ctx, args)
	})

	addTool(srv, core, &registry, &mcp.Tool{
		Name:        "compare_seasons",
		Description: "Compare team or league statistics across multiple seasons, one snapshot per season.",
	}, func(ctx context.Context, args CompareSeasonsArgs) (any, error) {
		return core.CompareSeasons(ctx, args)
	})

	addTool(srv, core, &registry, &mcp.Tool{
		Name:        "list_seasons",
		Description: "List every NHL season known to the stats API with start and end dates.",
	}, func(ctx context.Context, args ListSeasonsArgs) (any, error) {
		return core.ListSeasons(ctx, args)
	})

	return srv, registry
}

// NewMCPServer builds the MCP server with every tool registered.
func NewMCPServer(core *Core, opts ...ServerOptions) *mcp.Server {
	srv, _ := newServer(core, opts...)
	return srv
}

// RunStdio serves MCP over stdin/stdout until ctx is done.
func RunStdio(ctx context.Context, core *Core, opts ...ServerOptions) error {
	srv := NewMCPServer(core, opts...)
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("run mcp stdio server: %w", err)
	}
	return nil
}

// NewHTTPHandler returns a handler serving MCP over streamable HTTP at
// mcpPath, plus /health and /tools convenience endpoints.
func NewHTTPHandler(core *Core, mcpPath string, opts ...ServerOptions) http.Handler {
	srv, registry := newServer(core, opts...)
	if mcpPath == "" {
		mcpPath = "/mcp"
	}

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return srv
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/tools", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		_, _ = w.Write(b)
	})
	mux.Handle(mcpPath, handler)
	return mux
}
