package nhlapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SkaterCategories maps the tool-facing skater category names to the stats
// API sort property for /skater/summary.
var SkaterCategories = map[string]string{
	"points":       "points",
	"goals":        "goals",
	"assists":      "assists",
	"plusMinus":    "plusMinus",
	"shots":        "shots",
	"shootingPctg": "shootingPct",
}

// Scoreboard returns the games for date (YYYY-MM-DD; empty means today).
//
// GET /score/{date}
func (c *Client) Scoreboard(ctx context.Context, date string) ([]GameSummary, error) {
	if date == "" {
		date = c.today()
	}
	var resp struct {
		Games []wireGame `json:"games"`
	}
	if err := c.getJSON(ctx, "scoreboard", c.webURL("/score/%s", date), nil, &resp); err != nil {
		return nil, err
	}
	out := make([]GameSummary, 0, len(resp.Games))
	for _, g := range resp.Games {
		out = append(out, g.toSummary())
	}
	return out, nil
}

// GameDetails returns the extended game record with ordered play-by-play.
//
// GET /gamecenter/{gameId}/play-by-play
func (c *Client) GameDetails(ctx context.Context, gameID int) (*GameDetails, error) {
	var resp struct {
		wireGame
		Plays []wirePlay `json:"plays"`
	}
	err := c.getJSON(ctx, "game_details", c.webURL("/gamecenter/%d/play-by-play", gameID), nil, &resp)
	if err != nil {
		return nil, err
	}
	if resp.ID == 0 {
		// Upstream sometimes answers unknown ids with an empty 200 body.
		return nil, upstreamErr("game_details", 0, fmt.Errorf("game %d: %w", gameID, ErrNotFound))
	}
	details := &GameDetails{GameSummary: resp.toSummary()}
	details.Plays = make([]PlayEvent, 0, len(resp.Plays))
	for _, p := range resp.Plays {
		details.Plays = append(details.Plays, PlayEvent{
			EventID:       p.EventID,
			Period:        p.PeriodDescriptor.Number,
			PeriodType:    p.PeriodDescriptor.PeriodType,
			TimeInPeriod:  p.TimeInPeriod,
			TimeRemaining: p.TimeRemaining,
			Type:          p.TypeDescKey,
			Description:   p.Details.Description,
		})
	}
	return details, nil
}

// Boxscore returns the condensed boxscore for a game.
//
// GET /gamecenter/{gameId}/boxscore
func (c *Client) Boxscore(ctx context.Context, gameID int) (*GameBoxscore, error) {
	var resp struct {
		ID               int                  `json:"id"`
		GameDate         string               `json:"gameDate"`
		Venue            wireText             `json:"venue"`
		GameState        string               `json:"gameState"`
		PeriodDescriptor wirePeriodDescriptor `json:"periodDescriptor"`
		HomeTeam         wireTeam             `json:"homeTeam"`
		AwayTeam         wireTeam             `json:"awayTeam"`
	}
	err := c.getJSON(ctx, "boxscore", c.webURL("/gamecenter/%d/boxscore", gameID), nil, &resp)
	if err != nil {
		return nil, err
	}
	if resp.ID == 0 {
		return nil, upstreamErr("boxscore", 0, fmt.Errorf("game %d: %w", gameID, ErrNotFound))
	}
	return &GameBoxscore{
		GameID: resp.ID,
		Date:   resp.GameDate,
		Venue:  resp.Venue.Default,
		State:  resp.GameState,
		Period: resp.PeriodDescriptor.Number,
		HomeTeam: TeamGameStats{
			Abbrev: resp.HomeTeam.Abbrev,
			Name:   resp.HomeTeam.Name.Default,
			Score:  resp.HomeTeam.Score,
			SOG:    resp.HomeTeam.SOG,
		},
		AwayTeam: TeamGameStats{
			Abbrev: resp.AwayTeam.Abbrev,
			Name:   resp.AwayTeam.Name.Default,
			Score:  resp.AwayTeam.Score,
			SOG:    resp.AwayTeam.SOG,
		},
	}, nil
}

// Standings returns the league standings as of date (empty means today).
//
// GET /standings/{date}
func (c *Client) Standings(ctx context.Context, date string) ([]TeamRecord, error) {
	if date == "" {
		date = c.today()
	}
	return c.standings(ctx, "standings", date)
}

// StandingsBySeason returns the end-of-season standings snapshot for a
// season identifier like "20232024".
//
// GET /standings/{season}
func (c *Client) StandingsBySeason(ctx context.Context, season string) ([]TeamRecord, error) {
	return c.standings(ctx, "standings_by_season", season)
}

func (c *Client) standings(ctx context.Context, op, key string) ([]TeamRecord, error) {
	var resp struct {
		Standings []wireStandingsRow `json:"standings"`
	}
	if err := c.getJSON(ctx, op, c.webURL("/standings/%s", key), nil, &resp); err != nil {
		return nil, err
	}
	out := make([]TeamRecord, 0, len(resp.Standings))
	for _, row := range resp.Standings {
		out = append(out, row.toRecord())
	}
	return out, nil
}

// ClubStats returns a team's season aggregates with per-player lines.
// Season empty means the current season.
//
// GET /club-stats/{team}/{season}/2
func (c *Client) ClubStats(ctx context.Context, teamAbbrev, season string) (*TeamSeasonStats, error) {
	if season == "" {
		season = c.currentSeason()
	}
	var resp struct {
		Skaters []wireClubSkater `json:"skaters"`
		Goalies []wireClubGoalie `json:"goalies"`
	}
	err := c.getJSON(ctx, "club_stats", c.webURL("/club-stats/%s/%s/2", teamAbbrev, season), nil, &resp)
	if err != nil {
		return nil, err
	}
	out := &TeamSeasonStats{TeamAbbrev: teamAbbrev, Season: season}
	out.Skaters = make([]SkaterSeasonStats, 0, len(resp.Skaters))
	for _, s := range resp.Skaters {
		out.Skaters = append(out.Skaters, SkaterSeasonStats{
			PlayerID:    s.PlayerID,
			Name:        joinName(s.FirstName, s.LastName),
			Position:    s.PositionCode,
			GamesPlayed: s.GamesPlayed,
			Goals:       s.Goals,
			Assists:     s.Assists,
			Points:      s.Points,
			PlusMinus:   s.PlusMinus,
		})
	}
	out.Goalies = make([]GoalieSeasonStats, 0, len(resp.Goalies))
	for _, g := range resp.Goalies {
		out.Goalies = append(out.Goalies, GoalieSeasonStats{
			PlayerID:    g.PlayerID,
			Name:        joinName(g.FirstName, g.LastName),
			GamesPlayed: g.GamesPlayed,
			Wins:        g.Wins,
			Losses:      g.Losses,
			SavePct:     g.SavePercentage,
			GAA:         g.GoalsAgainstAverage,
			Shutouts:    g.Shutouts,
		})
	}
	return out, nil
}

// SkaterLeaders returns the top skaters sorted by category, truncated to
// limit. Season empty means the current season.
//
// GET {stats}/skater/summary
func (c *Client) SkaterLeaders(ctx context.Context, category string, limit int, season string) ([]PlayerStatLine, error) {
	property, ok := SkaterCategories[category]
	if !ok {
		property = "points"
	}
	if season == "" {
		season = c.currentSeason()
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("start", "0")
	query.Set("sort", fmt.Sprintf(`[{"property":%q,"direction":"DESC"}]`, property))
	query.Set("cayenneExp", fmt.Sprintf("seasonId=%s and gameTypeId=2", season))

	var resp struct {
		Data []wireSkaterSummary `json:"data"`
	}
	if err := c.getJSON(ctx, "skater_leaders", c.statsURL("/skater/summary"), query, &resp); err != nil {
		return nil, err
	}
	out := make([]PlayerStatLine, 0, len(resp.Data))
	for _, s := range resp.Data {
		line := PlayerStatLine{
			PlayerID:    s.PlayerID,
			Name:        s.SkaterFullName,
			Team:        s.TeamAbbrevs,
			Position:    s.PositionCode,
			GamesPlayed: s.GamesPlayed,
			Goals:       s.Goals,
			Assists:     s.Assists,
			Points:      s.Points,
		}
		switch category {
		case "goals":
			line.Value = float64(s.Goals)
		case "assists":
			line.Value = float64(s.Assists)
		case "plusMinus":
			line.Value = float64(s.PlusMinus)
		case "shots":
			line.Value = float64(s.Shots)
		case "shootingPctg":
			line.Value = s.ShootingPct
		default:
			line.Value = float64(s.Points)
		}
		out = append(out, line)
	}
	return out, nil
}

// GoalieLeaders returns the top goalies by save percentage, truncated to
// limit. Season empty means the current season.
//
// GET {stats}/goalie/summary
func (c *Client) GoalieLeaders(ctx context.Context, limit int, season string) ([]GoalieStatLine, error) {
	if season == "" {
		season = c.currentSeason()
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("start", "0")
	query.Set("sort", `[{"property":"savePct","direction":"DESC"}]`)
	query.Set("cayenneExp", fmt.Sprintf("seasonId=%s and gameTypeId=2", season))

	var resp struct {
		Data []wireGoalieSummary `json:"data"`
	}
	if err := c.getJSON(ctx, "goalie_leaders", c.statsURL("/goalie/summary"), query, &resp); err != nil {
		return nil, err
	}
	out := make([]GoalieStatLine, 0, len(resp.Data))
	for _, g := range resp.Data {
		out = append(out, GoalieStatLine{
			PlayerID:    g.PlayerID,
			Name:        g.GoalieFullName,
			Team:        g.TeamAbbrevs,
			GamesPlayed: g.GamesPlayed,
			Wins:        g.Wins,
			Losses:      g.Losses,
			SavePct:     g.SavePct,
			GAA:         g.GoalsAgainstAvg,
			Shutouts:    g.Shutouts,
		})
	}
	return out, nil
}

// WeekSchedule returns the scheduled games for the week containing date
// (empty means today).
//
// GET /schedule/{date}
func (c *Client) WeekSchedule(ctx context.Context, date string) ([]GameSummary, error) {
	if date == "" {
		date = c.today()
	}
	var resp struct {
		GameWeek []struct {
			Date  string     `json:"date"`
			Games []wireGame `json:"games"`
		} `json:"gameWeek"`
	}
	if err := c.getJSON(ctx, "week_schedule", c.webURL("/schedule/%s", date), nil, &resp); err != nil {
		return nil, err
	}
	var out []GameSummary
	for _, day := range resp.GameWeek {
		for _, g := range day.Games {
			summary := g.toSummary()
			if summary.Date == "" {
				summary.Date = day.Date
			}
			out = append(out, summary)
		}
	}
	return out, nil
}

// ClubSchedule returns a team's full-season schedule with results for
// completed games. Season empty means the current season.
//
// GET /club-schedule-season/{team}/{season}
func (c *Client) ClubSchedule(ctx context.Context, teamAbbrev, season string) ([]GameSummary, error) {
	if season == "" {
		season = c.currentSeason()
	}
	var resp struct {
		Games []wireGame `json:"games"`
	}
	err := c.getJSON(ctx, "club_schedule", c.webURL("/club-schedule-season/%s/%s", teamAbbrev, season), nil, &resp)
	if err != nil {
		return nil, err
	}
	out := make([]GameSummary, 0, len(resp.Games))
	for _, g := range resp.Games {
		out = append(out, g.toSummary())
	}
	return out, nil
}

// PlayoffBracket returns the playoff bracket for a postseason year like
// "2025" (empty means the current year).
//
// GET /playoff-bracket/{year}
func (c *Client) PlayoffBracket(ctx context.Context, year string) (*Bracket, error) {
	if year == "" {
		year = strconv.Itoa(c.now().Year())
	}
	var resp struct {
		Series []wireBracketSeries `json:"series"`
	}
	if err := c.getJSON(ctx, "playoff_bracket", c.webURL("/playoff-bracket/%s", year), nil, &resp); err != nil {
		return nil, err
	}
	out := &Bracket{Year: year}
	out.Series = make([]BracketSeries, 0, len(resp.Series))
	for _, s := range resp.Series {
		out.Series = append(out.Series, BracketSeries{
			SeriesLetter:   s.SeriesLetter,
			Round:          s.RoundNumber,
			Label:          s.SeriesLabel,
			TopSeed:        s.TopSeedTeam.Abbrev,
			BottomSeed:     s.BottomSeedTeam.Abbrev,
			TopSeedWins:    s.TopSeedWins,
			BottomSeedWins: s.BottomSeedWins,
		})
	}
	return out, nil
}

// Seasons returns every NHL season known to the stats API, oldest first.
//
// GET {stats}/season
func (c *Client) Seasons(ctx context.Context) ([]SeasonInfo, error) {
	var resp struct {
		Data []struct {
			ID        int    `json:"id"`
			StartDate string `json:"startDate"`
			EndDate   string `json:"endDate"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "seasons", c.statsURL("/season"), nil, &resp); err != nil {
		return nil, err
	}
	out := make([]SeasonInfo, 0, len(resp.Data))
	for _, s := range resp.Data {
		out = append(out, SeasonInfo{ID: s.ID, StartDate: s.StartDate, EndDate: s.EndDate})
	}
	return out, nil
}
