// Package alias maps informal team names to canonical franchise names.
package alias

import (
	"fmt"
	"strings"
)

var teamNames = map[string]string{
	"diamondbacks": "Arizona Diamondbacks",
	"braves":       "Atlanta Braves",
	"orioles":      "Baltimore Orioles",
	"redsox":       "Boston Red Sox",
	"whitesox":     "Chicago White Sox",
	"cubs":         "Chicago Cubs",
	"reds":         "Cincinnati Reds",
	"guardians":    "Cleveland Guardians",
	"rockies":      "Colorado Rockies",
	"tigers":       "Detroit Tigers",
	"astros":       "Houston Astros",
	"royals":       "Kansas City Royals",
	"angels":       "Los Angeles Angels",
	"dodgers":      "Los Angeles Dodgers",
	"marlins":      "Miami Marlins",
	"brewers":      "Milwaukee Brewers",
	"twins":        "Minnesota Twins",
	"yankees":      "New York Yankees",
	"mets":         "New York Mets",
	"athletics":    "Oakland Athletics",
	"phillies":     "Philadelphia Phillies",
	"pirates":      "Pittsburgh Pirates",
	"padres":       "San Diego Padres",
	"giants":       "San Francisco Giants",
	"mariners":     "Seattle Mariners",
	"cardinals":    "St. Louis Cardinals",
	"rays":         "Tampa Bay Rays",
	"rangers":      "Texas Rangers",
	"bluejays":     "Toronto Blue Jays",
	"nationals":    "Washington Nationals",
}

// Resolve returns the canonical franchise name for an informal team name.
// Lookup is case-insensitive and ignores spaces ("Red Sox", "redsox").
// Unrecognized names are an explicit error.
func Resolve(name string) (string, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	canonical, ok := teamNames[key]
	if !ok {
		return "", fmt.Errorf("unrecognized team name %q", name)
	}
	return canonical, nil
}
