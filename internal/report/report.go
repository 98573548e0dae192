// Package report renders console tables for predictions and standings.
// Rendering only; no prediction logic lives here.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/dugoutlabs/pennant/internal/odds"
	"github.com/dugoutlabs/pennant/internal/simulator"
)

// Prediction is one model-scored matchup ready for display.
type Prediction struct {
	Date        time.Time
	HomeTeam    string
	AwayTeam    string
	HomeStarter string
	AwayStarter string
	HomeWinProb float64
}

// Winner returns the predicted winner's name.
func (p Prediction) Winner() string {
	if p.HomeWinProb >= 0.5 {
		return p.HomeTeam
	}
	return p.AwayTeam
}

// Loser returns the predicted loser's name.
func (p Prediction) Loser() string {
	if p.HomeWinProb >= 0.5 {
		return p.AwayTeam
	}
	return p.HomeTeam
}

// WinnerProb returns the predicted winner's win probability.
func (p Prediction) WinnerProb() float64 {
	if p.HomeWinProb >= 0.5 {
		return p.HomeWinProb
	}
	return 1 - p.HomeWinProb
}

var (
	headerBlue    = color.New(color.FgBlue, color.Bold)
	headerYellow  = color.New(color.FgYellow, color.Bold)
	headerGreen   = color.New(color.FgGreen, color.Bold)
	headerMagenta = color.New(color.FgMagenta, color.Bold)
	emphasis      = color.New(color.FgHiMagenta, color.Bold)
	bold          = color.New(color.Bold)
)

var dayColWidths = []int{25, 25, 25, 7, 7}

// Day renders the per-day predictions table with a box-drawing frame.
func Day(w io.Writer, date time.Time, preds []Prediction) {
	if len(preds) == 0 {
		fmt.Fprintf(w, "No games found on %s.\n", humanDate(date))
		return
	}

	totalWidth := len(dayColWidths) + 1
	for _, cw := range dayColWidths {
		totalWidth += cw
	}

	fmt.Fprintf(w, "\nMLB Predictions for %s\n", bold.Sprint(humanDate(date)))
	fmt.Fprintln(w, "╔"+strings.Repeat("═", totalWidth)+"╗")
	fmt.Fprintf(w, "║ %s %s %s %s %s ║\n",
		headerBlue.Sprintf("%-*s", dayColWidths[0], "Home Team"),
		headerYellow.Sprintf("%-*s", dayColWidths[1], "Away Team"),
		headerGreen.Sprintf("%-*s", dayColWidths[2], "Predicted Winner"),
		headerMagenta.Sprintf("%*s", dayColWidths[3], "Win %"),
		headerMagenta.Sprintf("%*s", dayColWidths[4], "Odds"),
	)
	fmt.Fprintln(w, "╠"+strings.Repeat("═", totalWidth)+"╣")

	for _, p := range preds {
		fmt.Fprintf(w, "║ %-*s %-*s %-*s %*.1f%% %*d ║\n",
			dayColWidths[0], p.HomeTeam,
			dayColWidths[1], p.AwayTeam,
			dayColWidths[2], p.Winner(),
			dayColWidths[3]-1, p.WinnerProb()*100,
			dayColWidths[4], odds.American(p.WinnerProb()),
		)
	}

	fmt.Fprintln(w, "╚"+strings.Repeat("═", totalWidth)+"╝")
}

// Matchup renders the single-game prediction summary.
func Matchup(w io.Writer, p Prediction) {
	winner, loser := p.Winner(), p.Loser()
	fmt.Fprintf(w, "\n%s %s\n", emphasis.Sprint("Predicted winner:"), winner)
	fmt.Fprintf(w, "\nThe %s have a %s chance to win against the %s on %s.\n",
		winner,
		emphasis.Sprintf("%.1f%%", p.WinnerProb()*100),
		loser,
		humanDate(p.Date),
	)
	fmt.Fprintf(w, "Pitching Matchup: %s (%s) vs %s (%s).\n",
		p.HomeStarter, p.HomeTeam, p.AwayStarter, p.AwayTeam)
	fmt.Fprintf(w, "Fair odds for the %s: %s\n",
		winner, emphasis.Sprintf("%+d", odds.American(p.WinnerProb())))
}

// Standings renders the projected final standings table.
func Standings(w io.Writer, standings []simulator.TeamStanding) {
	fmt.Fprintf(w, "\n%s\n", emphasis.Sprint("Predicted Final Standings:"))
	fmt.Fprintf(w, "%4s  %-25s %14s %9s\n", "rank", "team", "predicted_wins", "avg_rank")
	for _, s := range standings {
		fmt.Fprintf(w, "%4d  %-25s %14.2f %9.2f\n", s.Rank, s.Team, s.PredictedWins, s.AvgRank)
	}
}

func humanDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
