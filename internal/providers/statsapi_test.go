package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/people/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("names") != "Logan Gilbert" {
			w.Write([]byte(`{"people":[]}`))
			return
		}
		w.Write([]byte(`{"people":[{"id":669302,"fullName":"Logan Gilbert"}]}`))
	})

	mux.HandleFunc("/api/v1/people/669302/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"stats":[
			{"group":{"displayName":"hitting"},"type":{"displayName":"season"},"splits":[]},
			{"group":{"displayName":"pitching"},"type":{"displayName":"season"},"splits":[
				{"season":"2024","stat":{"era":"3.75","whip":"1.12"}},
				{"season":"2025","stat":{"era":"3.21","whip":"1.05","strikeOuts":104}}
			]}
		]}`))
	})

	mux.HandleFunc("/api/v1/teams", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"teams":[{"id":136,"name":"Seattle Mariners"},{"id":140,"name":"Texas Rangers"}]}`))
	})

	mux.HandleFunc("/api/v1/teams/136/roster", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"roster":[
			{"person":{"id":669302,"fullName":"Logan Gilbert"}},
			{"person":{"id":682243,"fullName":"Luis Castillo"}}
		]}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T) *StatsAPIClient {
	return NewStatsAPIClient(newTestServer(t).URL, 5*time.Second, 1000, 5)
}

func TestPitcherStat_ParsesSeasonSplit(t *testing.T) {
	c := newTestClient(t)

	era, err := c.PitcherStat(context.Background(), "Logan Gilbert", "era", "2025")
	require.NoError(t, err)
	assert.Equal(t, 3.21, era)

	whip, err := c.PitcherStat(context.Background(), "Logan Gilbert", "whip", "2025")
	require.NoError(t, err)
	assert.Equal(t, 1.05, whip)

	// Numeric (non-string) stat values parse too.
	so, err := c.PitcherStat(context.Background(), "Logan Gilbert", "strikeOuts", "2025")
	require.NoError(t, err)
	assert.Equal(t, 104.0, so)
}

func TestPitcherStat_WrongSeasonFails(t *testing.T) {
	c := newTestClient(t)

	_, err := c.PitcherStat(context.Background(), "Logan Gilbert", "era", "2023")
	assert.Error(t, err)
}

func TestLookupPlayer_NotFound(t *testing.T) {
	c := newTestClient(t)

	_, err := c.LookupPlayer(context.Background(), "No Such Pitcher")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLookupTeamAndRoster(t *testing.T) {
	c := newTestClient(t)

	id, err := c.LookupTeam(context.Background(), "Seattle Mariners")
	require.NoError(t, err)
	assert.Equal(t, 136, id)

	roster, err := c.PitchingRoster(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Logan Gilbert", "Luis Castillo"}, roster)

	_, err = c.LookupTeam(context.Background(), "Montreal Expos")
	assert.Error(t, err)
}

func TestGetJSON_ServerErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c := NewStatsAPIClient(server.URL, time.Second, 1000, 5)
	_, err := c.LookupPlayer(context.Background(), "Anyone")
	assert.Error(t, err)
}
