package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// StatusScheduled marks a game that has not been played yet. Any other
// status value (Completed, Final, etc.) counts as a completed game.
const StatusScheduled = "Scheduled"

// Game is one row of the season schedule/results log. Immutable once read.
type Game struct {
	Date        time.Time
	Home        string
	Away        string
	Status      string
	HomeScore   int
	AwayScore   int
	HomeStarter string // empty when no starter is listed
	AwayStarter string
}

// Completed reports whether the game has a recorded outcome.
func (g Game) Completed() bool {
	return g.Status != StatusScheduled
}

// HomeWin returns 1 if the home team outscored the away team, else 0.
// Only meaningful for completed games.
func (g Game) HomeWin() int {
	if g.HomeScore > g.AwayScore {
		return 1
	}
	return 0
}

var requiredColumns = []string{"Date", "Home", "Away", "Status"}

var dateLayouts = []string{"2006-01-02", "01/02/2006", "2006-01-02 15:04:05"}

// LoadCSV reads a schedule file and returns its games sorted ascending by
// date. Ties on date keep the file's row order so that repeated runs over
// the same input process games in an identical sequence.
func LoadCSV(path string) ([]Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule: %w", err)
	}
	defer f.Close()

	games, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule %s: %w", path, err)
	}
	return games, nil
}

// Parse reads schedule rows from r. Columns are addressed by header name so
// column order in the source file does not matter. A missing required
// column or an unparseable date is fatal; missing scores or starters are
// tolerated and left at their zero values.
func Parse(r io.Reader) ([]Game, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("schedule is missing required column %q", name)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var games []Game
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line+1, err)
		}
		line++

		date, err := parseDate(field(record, "Date"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		g := Game{
			Date:        date,
			Home:        field(record, "Home"),
			Away:        field(record, "Away"),
			Status:      field(record, "Status"),
			HomeStarter: field(record, "Home Starter"),
			AwayStarter: field(record, "Away Starter"),
		}
		// Scores are absent on scheduled games and occasionally on bad
		// feed rows; either way they parse to zero rather than aborting.
		g.HomeScore = parseScore(field(record, "Home Score"))
		g.AwayScore = parseScore(field(record, "Away Score"))

		games = append(games, g)
	}

	// Stable keeps source order for same-day games, which downstream
	// processing relies on for determinism.
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Date.Before(games[j].Date)
	})

	return games, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

func parseScore(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
