package server

import (
	"strconv"
	"strings"
	"time"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

// teamAbbrevs is the set of current NHL club codes. Anything else is a
// client-input error, never an upstream fetch.
var teamAbbrevs = map[string]struct{}{
	"ANA": {}, "BOS": {}, "BUF": {}, "CAR": {}, "CBJ": {}, "CGY": {},
	"CHI": {}, "COL": {}, "DAL": {}, "DET": {}, "EDM": {}, "FLA": {},
	"LAK": {}, "MIN": {}, "MTL": {}, "NJD": {}, "NSH": {}, "NYI": {},
	"NYR": {}, "OTT": {}, "PHI": {}, "PIT": {}, "SEA": {}, "SJS": {},
	"STL": {}, "TBL": {}, "TOR": {}, "UTA": {}, "VAN": {}, "VGK": {},
	"WPG": {}, "WSH": {},
}

const defaultLeaderLimit = 20

// normalizeTeam upper-cases value and checks it against the known club
// codes.
func normalizeTeam(field, value string) (string, error) {
	abbrev := strings.ToUpper(strings.TrimSpace(value))
	if abbrev == "" {
		return "", invalidArg(field, "is required")
	}
	if _, ok := teamAbbrevs[abbrev]; !ok {
		return "", invalidArg(field, "unknown team abbreviation %q", value)
	}
	return abbrev, nil
}

// validateDate checks YYYY-MM-DD form. Empty is allowed; the upstream
// client substitutes today.
func validateDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return invalidArg(field, "must be a date in YYYY-MM-DD form, got %q", value)
	}
	return nil
}

// validateSeason checks the YYYYYYYY season identifier form, e.g.
// "20242025". Empty is allowed; the upstream client substitutes the
// current season.
func validateSeason(field, value string) error {
	if value == "" {
		return nil
	}
	if len(value) != 8 {
		return invalidArg(field, "must be a season in YYYYYYYY form, got %q", value)
	}
	start, err := strconv.Atoi(value[:4])
	if err != nil {
		return invalidArg(field, "must be a season in YYYYYYYY form, got %q", value)
	}
	end, err := strconv.Atoi(value[4:])
	if err != nil {
		return invalidArg(field, "must be a season in YYYYYYYY form, got %q", value)
	}
	if end != start+1 {
		return invalidArg(field, "season years must be consecutive, got %q", value)
	}
	return nil
}

// normalizeCategory defaults empty to "points" and rejects categories the
// stats API cannot sort by.
func normalizeCategory(value string) (string, error) {
	if value == "" {
		return "points", nil
	}
	if _, ok := nhlapi.SkaterCategories[value]; !ok {
		return "", invalidArg("category", "unknown category %q", value)
	}
	return value, nil
}

// normalizeLimit defaults zero to 20 and rejects negatives.
func normalizeLimit(value int) (int, error) {
	if value < 0 {
		return 0, invalidArg("limit", "must be positive, got %d", value)
	}
	if value == 0 {
		return defaultLeaderLimit, nil
	}
	return value, nil
}

// normalizeBracketYear accepts a postseason year ("2025") or a full season
// identifier ("20242025", mapping to its end year). Empty is allowed.
func normalizeBracketYear(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if len(value) == 8 {
		if err := validateSeason("season", value); err != nil {
			return "", err
		}
		return value[4:], nil
	}
	if len(value) != 4 {
		return "", invalidArg("season", "must be a year (YYYY) or season (YYYYYYYY), got %q", value)
	}
	if _, err := strconv.Atoi(value); err != nil {
		return "", invalidArg("season", "must be a year (YYYY) or season (YYYYYYYY), got %q", value)
	}
	return value, nil
}
