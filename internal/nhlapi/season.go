package nhlapi

import (
	"fmt"
	"time"
)

// CurrentSeason returns the season identifier (e.g. "20242025") containing
// now. The NHL season rolls over in October.
func CurrentSeason(now time.Time) string {
	year := now.Year()
	if now.Month() >= time.October {
		return fmt.Sprintf("%d%d", year, year+1)
	}
	return fmt.Sprintf("%d%d", year-1, year)
}

// FormatSeason renders "20242025" as "2024-2025". Inputs that are not an
// 8-digit season identifier are returned unchanged.
func FormatSeason(season string) string {
	if len(season) != 8 {
		return season
	}
	return season[:4] + "-" + season[4:]
}

// currentSeason is CurrentSeason on the client's clock.
func (c *Client) currentSeason() string {
	return CurrentSeason(c.now())
}
