package nhlapi

// Game states as reported by the web API.
const (
	GameStateFuture    = "FUT"
	GameStatePre       = "PRE"
	GameStateLive      = "LIVE"
	GameStateCritical  = "CRIT"
	GameStateFinal     = "FINAL"
	GameStateOfficial  = "OFF"
	GameStatePostponed = "PPD"
)

// GameComplete reports whether a game state means the result is final.
func GameComplete(state string) bool {
	return state == GameStateFinal || state == GameStateOfficial
}

// TeamScore is one side of a game.
type TeamScore struct {
	ID     int    `json:"id"`
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	SOG    int    `json:"sog,omitempty"`
}

// GameSummary is one game from a scoreboard or schedule response.
type GameSummary struct {
	GameID         int       `json:"game_id"`
	Season         int       `json:"season"`
	GameType       int       `json:"game_type"`
	Date           string    `json:"date"`
	Venue          string    `json:"venue,omitempty"`
	StartTimeUTC   string    `json:"start_time_utc"`
	State          string    `json:"state"`
	Period         int       `json:"period,omitempty"`
	PeriodType     string    `json:"period_type,omitempty"`
	LastPeriodType string    `json:"last_period_type,omitempty"`
	HomeTeam       TeamScore `json:"home_team"`
	AwayTeam       TeamScore `json:"away_team"`
}

// PlayEvent is one play-by-play entry, in game order.
type PlayEvent struct {
	EventID       int    `json:"event_id"`
	Period        int    `json:"period"`
	PeriodType    string `json:"period_type,omitempty"`
	TimeInPeriod  string `json:"time_in_period"`
	TimeRemaining string `json:"time_remaining,omitempty"`
	Type          string `json:"type"`
	Description   string `json:"description,omitempty"`
}

// GameDetails is the extended game record returned by the gamecenter
// play-by-play endpoint.
type GameDetails struct {
	GameSummary
	Plays []PlayEvent `json:"plays"`
}

// TeamGameStats is one side of a boxscore.
type TeamGameStats struct {
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	SOG    int    `json:"sog"`
}

// GameBoxscore is the condensed boxscore record.
type GameBoxscore struct {
	GameID   int           `json:"game_id"`
	Date     string        `json:"date"`
	Venue    string        `json:"venue,omitempty"`
	State    string        `json:"state"`
	Period   int           `json:"period,omitempty"`
	HomeTeam TeamGameStats `json:"home_team"`
	AwayTeam TeamGameStats `json:"away_team"`
}

// TeamRecord is one row of a standings response.
type TeamRecord struct {
	Abbrev           string  `json:"abbrev"`
	Name             string  `json:"name"`
	Division         string  `json:"division"`
	DivisionAbbrev   string  `json:"division_abbrev"`
	Conference       string  `json:"conference"`
	ConferenceAbbrev string  `json:"conference_abbrev"`
	GamesPlayed      int     `json:"games_played"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	OTLosses         int     `json:"ot_losses"`
	Points           int     `json:"points"`
	RegulationWins   int     `json:"regulation_wins"`
	GoalsFor         int     `json:"goals_for"`
	GoalsAgainst     int     `json:"goals_against"`
	GoalDiff         int     `json:"goal_diff"`
	WinPct           float64 `json:"win_pct"`
}

// PlayerStatLine is one skater from a stats-leaders response, carrying the
// value for the requested category alongside the core counting stats.
type PlayerStatLine struct {
	PlayerID    int     `json:"player_id"`
	Name        string  `json:"name"`
	Team        string  `json:"team"`
	Position    string  `json:"position"`
	GamesPlayed int     `json:"games_played"`
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	Points      int     `json:"points"`
	Value       float64 `json:"value"`
}

// GoalieStatLine is one goalie from a stats-leaders response.
type GoalieStatLine struct {
	PlayerID    int     `json:"player_id"`
	Name        string  `json:"name"`
	Team        string  `json:"team"`
	GamesPlayed int     `json:"games_played"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	SavePct     float64 `json:"save_pct"`
	GAA         float64 `json:"gaa"`
	Shutouts    int     `json:"shutouts"`
}

// SkaterSeasonStats is one skater row from a club-stats response.
type SkaterSeasonStats struct {
	PlayerID    int    `json:"player_id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	GamesPlayed int    `json:"games_played"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	Points      int    `json:"points"`
	PlusMinus   int    `json:"plus_minus"`
}

// GoalieSeasonStats is one goalie row from a club-stats response.
type GoalieSeasonStats struct {
	PlayerID    int     `json:"player_id"`
	Name        string  `json:"name"`
	GamesPlayed int     `json:"games_played"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	SavePct     float64 `json:"save_pct"`
	GAA         float64 `json:"gaa"`
	Shutouts    int     `json:"shutouts"`
}

// TeamSeasonStats is the club-stats response for one team and season.
type TeamSeasonStats struct {
	TeamAbbrev string              `json:"team_abbrev"`
	Season     string              `json:"season"`
	Skaters    []SkaterSeasonStats `json:"skaters"`
	Goalies    []GoalieSeasonStats `json:"goalies"`
}

// BracketSeries is one playoff series.
type BracketSeries struct {
	SeriesLetter   string `json:"series_letter"`
	Round          int    `json:"round"`
	Label          string `json:"label,omitempty"`
	TopSeed        string `json:"top_seed"`
	BottomSeed     string `json:"bottom_seed"`
	TopSeedWins    int    `json:"top_seed_wins"`
	BottomSeedWins int    `json:"bottom_seed_wins"`
}

// Bracket is the playoff bracket for one postseason.
type Bracket struct {
	Year   string          `json:"year"`
	Series []BracketSeries `json:"series"`
}

// SeasonInfo is one season from the stats API season list.
type SeasonInfo struct {
	ID        int    `json:"id"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// wireText is the localized-string wrapper the web API uses for names.
type wireText struct {
	Default string `json:"default"`
}

type wireTeam struct {
	ID     int      `json:"id"`
	Abbrev string   `json:"abbrev"`
	Name   wireText `json:"name"`
	Score  int      `json:"score"`
	SOG    int      `json:"sog"`
}

type wirePeriodDescriptor struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType"`
}

type wireGame struct {
	ID               int                  `json:"id"`
	Season           int                  `json:"season"`
	GameType         int                  `json:"gameType"`
	GameDate         string               `json:"gameDate"`
	Venue            wireText             `json:"venue"`
	StartTimeUTC     string               `json:"startTimeUTC"`
	GameState        string               `json:"gameState"`
	Period           int                  `json:"period"`
	PeriodDescriptor wirePeriodDescriptor `json:"periodDescriptor"`
	HomeTeam         wireTeam             `json:"homeTeam"`
	AwayTeam         wireTeam             `json:"awayTeam"`
	GameOutcome      struct {
		LastPeriodType string `json:"lastPeriodType"`
	} `json:"gameOutcome"`
}

func (g wireGame) toSummary() GameSummary {
	return GameSummary{
		GameID:         g.ID,
		Season:         g.Season,
		GameType:       g.GameType,
		Date:           g.GameDate,
		Venue:          g.Venue.Default,
		StartTimeUTC:   g.StartTimeUTC,
		State:          g.GameState,
		Period:         g.Period,
		PeriodType:     g.PeriodDescriptor.PeriodType,
		LastPeriodType: g.GameOutcome.LastPeriodType,
		HomeTeam: TeamScore{
			ID:     g.HomeTeam.ID,
			Abbrev: g.HomeTeam.Abbrev,
			Name:   g.HomeTeam.Name.Default,
			Score:  g.HomeTeam.Score,
		},
		AwayTeam: TeamScore{
			ID:     g.AwayTeam.ID,
			Abbrev: g.AwayTeam.Abbrev,
			Name:   g.AwayTeam.Name.Default,
			Score:  g.AwayTeam.Score,
		},
	}
}

type wireStandingsRow struct {
	TeamAbbrev       wireText `json:"teamAbbrev"`
	TeamName         wireText `json:"teamName"`
	DivisionName     string   `json:"divisionName"`
	DivisionAbbrev   string   `json:"divisionAbbrev"`
	ConferenceName   string   `json:"conferenceName"`
	ConferenceAbbrev string   `json:"conferenceAbbrev"`
	GamesPlayed      int      `json:"gamesPlayed"`
	Wins             int      `json:"wins"`
	Losses           int      `json:"losses"`
	OTLosses         int      `json:"otLosses"`
	Points           int      `json:"points"`
	RegulationWins   int      `json:"regulationWins"`
	GoalFor          int      `json:"goalFor"`
	GoalAgainst      int      `json:"goalAgainst"`
	GoalDifferential int      `json:"goalDifferential"`
	WinPctg          float64  `json:"winPctg"`
}

func (r wireStandingsRow) toRecord() TeamRecord {
	return TeamRecord{
		Abbrev:           r.TeamAbbrev.Default,
		Name:             r.TeamName.Default,
		Division:         r.DivisionName,
		DivisionAbbrev:   r.DivisionAbbrev,
		Conference:       r.ConferenceName,
		ConferenceAbbrev: r.ConferenceAbbrev,
		GamesPlayed:      r.GamesPlayed,
		Wins:             r.Wins,
		Losses:           r.Losses,
		OTLosses:         r.OTLosses,
		Points:           r.Points,
		RegulationWins:   r.RegulationWins,
		GoalsFor:         r.GoalFor,
		GoalsAgainst:     r.GoalAgainst,
		GoalDiff:         r.GoalDifferential,
		WinPct:           r.WinPctg,
	}
}

type wirePlay struct {
	EventID          int                  `json:"eventId"`
	PeriodDescriptor wirePeriodDescriptor `json:"periodDescriptor"`
	TimeInPeriod     string               `json:"timeInPeriod"`
	TimeRemaining    string               `json:"timeRemaining"`
	TypeDescKey      string               `json:"typeDescKey"`
	Details          struct {
		Description string `json:"description"`
	} `json:"details"`
}

type wireSkaterSummary struct {
	PlayerID       int     `json:"playerId"`
	SkaterFullName string  `json:"skaterFullName"`
	TeamAbbrevs    string  `json:"teamAbbrevs"`
	PositionCode   string  `json:"positionCode"`
	GamesPlayed    int     `json:"gamesPlayed"`
	Goals          int     `json:"goals"`
	Assists        int     `json:"assists"`
	Points         int     `json:"points"`
	PlusMinus      int     `json:"plusMinus"`
	Shots          int     `json:"shots"`
	ShootingPct    float64 `json:"shootingPct"`
}

type wireGoalieSummary struct {
	PlayerID        int     `json:"playerId"`
	GoalieFullName  string  `json:"goalieFullName"`
	TeamAbbrevs     string  `json:"teamAbbrevs"`
	GamesPlayed     int     `json:"gamesPlayed"`
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	SavePct         float64 `json:"savePct"`
	GoalsAgainstAvg float64 `json:"goalsAgainstAverage"`
	Shutouts        int     `json:"shutouts"`
}

type wireClubSkater struct {
	PlayerID     int      `json:"playerId"`
	FirstName    wireText `json:"firstName"`
	LastName     wireText `json:"lastName"`
	PositionCode string   `json:"positionCode"`
	GamesPlayed  int      `json:"gamesPlayed"`
	Goals        int      `json:"goals"`
	Assists      int      `json:"assists"`
	Points       int      `json:"points"`
	PlusMinus    int      `json:"plusMinus"`
}

type wireClubGoalie struct {
	PlayerID            int      `json:"playerId"`
	FirstName           wireText `json:"firstName"`
	LastName            wireText `json:"lastName"`
	GamesPlayed         int      `json:"gamesPlayed"`
	Wins                int      `json:"wins"`
	Losses              int      `json:"losses"`
	SavePercentage      float64  `json:"savePercentage"`
	GoalsAgainstAverage float64  `json:"goalsAgainstAverage"`
	Shutouts            int      `json:"shutouts"`
}

type wireBracketTeam struct {
	ID     int      `json:"id"`
	Abbrev string   `json:"abbrev"`
	Name   wireText `json:"name"`
}

type wireBracketSeries struct {
	SeriesLetter   string          `json:"seriesLetter"`
	RoundNumber    int             `json:"roundNumber"`
	SeriesLabel    string          `json:"seriesLabel"`
	TopSeedTeam    wireBracketTeam `json:"topSeedTeam"`
	BottomSeedTeam wireBracketTeam `json:"bottomSeedTeam"`
	TopSeedWins    int             `json:"topSeedWins"`
	BottomSeedWins int             `json:"bottomSeedWins"`
}

func joinName(first, last wireText) string {
	if first.Default == "" {
		return last.Default
	}
	if last.Default == "" {
		return first.Default
	}
	return first.Default + " " + last.Default
}
