// Package names repairs pitcher names that arrive from schedule feeds with
// U+FFFD replacement characters in place of accented letters, by matching
// against the team's pitching roster.
package names

import (
	"context"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dugoutlabs/pennant/pkg/logger"
)

const replacementChar = "�"

// RosterSource provides team resolution and pitching rosters.
type RosterSource interface {
	LookupTeam(ctx context.Context, name string) (int, error)
	PitchingRoster(ctx context.Context, teamID int) ([]string, error)
}

// Fixer repairs mangled names, caching results so each distinct name costs
// at most one roster fetch per run.
type Fixer struct {
	source RosterSource
	cache  map[string]string
	log    *logrus.Entry
}

func NewFixer(source RosterSource) *Fixer {
	return &Fixer{
		source: source,
		cache:  make(map[string]string),
		log:    logger.WithComponent("names"),
	}
}

// Fix returns the repaired player name, or the input unchanged when the
// name is already clean or no roster match is found. Failures are never
// fatal.
func (f *Fixer) Fix(ctx context.Context, team, player string) string {
	if fixed, ok := f.cache[player]; ok {
		return fixed
	}
	if !strings.Contains(player, replacementChar) {
		f.cache[player] = player
		return player
	}

	fixed := player
	if match, ok := f.rosterMatch(ctx, team, player); ok {
		fixed = match
		f.log.WithFields(logrus.Fields{
			"from": player,
			"to":   fixed,
		}).Debug("Repaired pitcher name")
	}
	f.cache[player] = fixed
	return fixed
}

func (f *Fixer) rosterMatch(ctx context.Context, team, player string) (string, bool) {
	if f.source == nil {
		return "", false
	}
	teamID, err := f.source.LookupTeam(ctx, team)
	if err != nil {
		f.log.WithField("team", team).WithError(err).Warn("Team lookup failed while fixing name")
		return "", false
	}
	roster, err := f.source.PitchingRoster(ctx, teamID)
	if err != nil {
		f.log.WithField("team", team).WithError(err).Warn("Roster fetch failed while fixing name")
		return "", false
	}

	// The replacement characters stand for unknown letters: match roster
	// names containing every intact fragment, in order.
	fragments := splitFragments(player)
	for _, name := range roster {
		if matchesFragments(foldAccents(strings.ToLower(name)), fragments) {
			return name, true
		}
	}
	return "", false
}

func splitFragments(player string) []string {
	var fragments []string
	for _, part := range strings.Split(strings.ToLower(player), replacementChar) {
		if part != "" {
			fragments = append(fragments, part)
		}
	}
	return fragments
}

func matchesFragments(candidate string, fragments []string) bool {
	rest := candidate
	for _, frag := range fragments {
		idx := strings.Index(rest, frag)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(frag):]
	}
	return len(fragments) > 0
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}
