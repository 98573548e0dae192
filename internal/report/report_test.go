package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dugoutlabs/pennant/internal/simulator"
)

func samplePrediction() Prediction {
	return Prediction{
		Date:        time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
		HomeTeam:    "Seattle Mariners",
		AwayTeam:    "Texas Rangers",
		HomeStarter: "Logan Gilbert",
		AwayStarter: "Nathan Eovaldi",
		HomeWinProb: 0.62,
	}
}

func TestPrediction_WinnerSides(t *testing.T) {
	p := samplePrediction()
	assert.Equal(t, "Seattle Mariners", p.Winner())
	assert.Equal(t, "Texas Rangers", p.Loser())
	assert.InDelta(t, 0.62, p.WinnerProb(), 1e-9)

	p.HomeWinProb = 0.3
	assert.Equal(t, "Texas Rangers", p.Winner())
	assert.InDelta(t, 0.7, p.WinnerProb(), 1e-9)
}

func TestDay_EmptyReportsNothingToDo(t *testing.T) {
	var buf bytes.Buffer
	Day(&buf, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), nil)
	assert.Contains(t, buf.String(), "No games found on Friday, July 4, 2025.")
}

func TestDay_RendersTable(t *testing.T) {
	var buf bytes.Buffer
	Day(&buf, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), []Prediction{samplePrediction()})

	out := buf.String()
	assert.Contains(t, out, "Seattle Mariners")
	assert.Contains(t, out, "62.0%")
	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "╝")
}

func TestMatchup_MentionsBothStarters(t *testing.T) {
	var buf bytes.Buffer
	Matchup(&buf, samplePrediction())

	out := buf.String()
	assert.Contains(t, out, "Logan Gilbert")
	assert.Contains(t, out, "Nathan Eovaldi")
	assert.Contains(t, out, "62.0%")
	assert.Contains(t, out, "Friday, July 4, 2025")
}

func TestStandings_RendersRows(t *testing.T) {
	var buf bytes.Buffer
	Standings(&buf, []simulator.TeamStanding{
		{Rank: 1, Team: "Seattle Mariners", PredictedWins: 94.12, AvgRank: 1.34},
		{Rank: 2, Team: "Texas Rangers", PredictedWins: 88.5, AvgRank: 2.01},
	})

	out := buf.String()
	assert.Contains(t, out, "Predicted Final Standings:")
	assert.Contains(t, out, "94.12")
	assert.Contains(t, out, "Texas Rangers")
}
