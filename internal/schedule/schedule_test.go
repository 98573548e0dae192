package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SortsByDateKeepingSourceOrderOnTies(t *testing.T) {
	input := strings.Join([]string{
		"Date,Home,Away,Status,Home Score,Away Score,Home Starter,Away Starter",
		"2025-04-03,Boston Red Sox,New York Yankees,Completed,4,2,Lucas Giolito,Carlos Rodon",
		"2025-04-01,Chicago Cubs,St. Louis Cardinals,Completed,7,5,Shota Imanaga,Sonny Gray",
		"2025-04-01,Seattle Mariners,Texas Rangers,Completed,1,0,Logan Gilbert,Nathan Eovaldi",
		"2025-04-02,Chicago Cubs,St. Louis Cardinals,Scheduled,,,,",
	}, "\n")

	games, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, games, 4)

	// Ascending dates, with the two 04-01 games in file order.
	assert.Equal(t, "Chicago Cubs", games[0].Home)
	assert.Equal(t, "Seattle Mariners", games[1].Home)
	assert.Equal(t, "Chicago Cubs", games[2].Home)
	assert.Equal(t, "Boston Red Sox", games[3].Home)
}

func TestParse_ColumnOrderIndependent(t *testing.T) {
	input := strings.Join([]string{
		"Status,Away,Home,Date,Away Score,Home Score",
		"Completed,Texas Rangers,Houston Astros,2025-05-10,3,6",
	}, "\n")

	games, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, games, 1)

	g := games[0]
	assert.Equal(t, "Houston Astros", g.Home)
	assert.Equal(t, "Texas Rangers", g.Away)
	assert.Equal(t, 6, g.HomeScore)
	assert.Equal(t, 3, g.AwayScore)
	assert.True(t, g.Completed())
	assert.Equal(t, 1, g.HomeWin())
	assert.Empty(t, g.HomeStarter)
}

func TestParse_MissingRequiredColumnFails(t *testing.T) {
	input := "Date,Home,Status\n2025-04-01,Chicago Cubs,Completed\n"

	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Away"`)
}

func TestParse_UnparseableDateFails(t *testing.T) {
	input := strings.Join([]string{
		"Date,Home,Away,Status",
		"not-a-date,Chicago Cubs,St. Louis Cardinals,Completed",
	}, "\n")

	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparseable date")
}

func TestParse_MissingScoresTolerated(t *testing.T) {
	input := strings.Join([]string{
		"Date,Home,Away,Status,Home Score,Away Score",
		"2025-06-01,Miami Marlins,Atlanta Braves,Scheduled,,",
	}, "\n")

	games, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.False(t, games[0].Completed())
	assert.Zero(t, games[0].HomeScore)
	assert.Zero(t, games[0].AwayScore)
}
