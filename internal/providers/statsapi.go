package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/dugoutlabs/pennant/pkg/logger"
)

// StatsAPIClient talks to the MLB Stats API. All calls are rate limited and
// wrapped in a circuit breaker so a flapping upstream degrades to cached
// unknowns instead of hammering the service.
type StatsAPIClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	log        *logrus.Entry
}

// NewStatsAPIClient creates a client against baseURL (no trailing slash).
func NewStatsAPIClient(baseURL string, timeout time.Duration, rps float64, breakerThreshold int) *StatsAPIClient {
	log := logger.WithComponent("statsapi")

	settings := gobreaker.Settings{
		Name:        "mlb-statsapi",
		MaxRequests: uint32(breakerThreshold),
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"service": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Info("Circuit breaker state changed")
		},
	}

	return &StatsAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		breaker: gobreaker.NewCircuitBreaker(settings),
		log:     log,
	}
}

type peopleSearchResponse struct {
	People []struct {
		ID       int    `json:"id"`
		FullName string `json:"fullName"`
	} `json:"people"`
}

type statsResponse struct {
	Stats []struct {
		Group struct {
			DisplayName string `json:"displayName"`
		} `json:"group"`
		Type struct {
			DisplayName string `json:"displayName"`
		} `json:"type"`
		Splits []struct {
			Season string                     `json:"season"`
			Stat   map[string]json.RawMessage `json:"stat"`
		} `json:"splits"`
	} `json:"stats"`
}

type teamsResponse struct {
	Teams []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"teams"`
}

type rosterResponse struct {
	Roster []struct {
		Person struct {
			ID       int    `json:"id"`
			FullName string `json:"fullName"`
		} `json:"person"`
	} `json:"roster"`
}

// LookupPlayer resolves a player name to its MLB person id, taking the
// first match the way the upstream search does.
func (c *StatsAPIClient) LookupPlayer(ctx context.Context, name string) (int, error) {
	var resp peopleSearchResponse
	query := url.Values{"names": {name}}
	if err := c.getJSON(ctx, "/api/v1/people/search", query, &resp); err != nil {
		return 0, err
	}
	if len(resp.People) == 0 {
		return 0, fmt.Errorf("player %q not found", name)
	}
	return resp.People[0].ID, nil
}

// PitcherStat fetches one season pitching stat for the named player. It
// implements statcache.Lookup.
func (c *StatsAPIClient) PitcherStat(ctx context.Context, player, stat, season string) (float64, error) {
	playerID, err := c.LookupPlayer(ctx, player)
	if err != nil {
		return 0, err
	}

	var resp statsResponse
	query := url.Values{
		"stats":  {"season"},
		"group":  {"pitching"},
		"season": {season},
	}
	path := fmt.Sprintf("/api/v1/people/%d/stats", playerID)
	if err := c.getJSON(ctx, path, query, &resp); err != nil {
		return 0, err
	}

	for _, group := range resp.Stats {
		if !strings.EqualFold(group.Group.DisplayName, "pitching") ||
			!strings.EqualFold(group.Type.DisplayName, "season") {
			continue
		}
		for _, split := range group.Splits {
			if split.Season != season {
				continue
			}
			raw, ok := split.Stat[stat]
			if !ok {
				continue
			}
			return parseStatValue(raw)
		}
	}
	return 0, fmt.Errorf("no %s pitching stat %q for %s", season, stat, player)
}

// LookupTeam resolves a canonical team name to its MLB team id.
func (c *StatsAPIClient) LookupTeam(ctx context.Context, name string) (int, error) {
	var resp teamsResponse
	query := url.Values{"sportId": {"1"}}
	if err := c.getJSON(ctx, "/api/v1/teams", query, &resp); err != nil {
		return 0, err
	}
	for _, team := range resp.Teams {
		if strings.EqualFold(team.Name, name) {
			return team.ID, nil
		}
	}
	return 0, fmt.Errorf("team %q not found", name)
}

// PitchingRoster returns the full names of a team's pitching roster.
func (c *StatsAPIClient) PitchingRoster(ctx context.Context, teamID int) ([]string, error) {
	var resp rosterResponse
	query := url.Values{"rosterType": {"pitching"}}
	path := fmt.Sprintf("/api/v1/teams/%d/roster", teamID)
	if err := c.getJSON(ctx, path, query, &resp); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(resp.Roster))
	for _, entry := range resp.Roster {
		names = append(names, entry.Person.FullName)
	}
	return names, nil
}

func (c *StatsAPIClient) getJSON(ctx context.Context, path string, query url.Values, dest interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	body, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
		}

		var decoded json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return decoded, nil
	})
	if err != nil {
		c.log.WithField("path", path).WithError(err).Debug("Stats API request failed")
		return err
	}

	if err := json.Unmarshal(body.(json.RawMessage), dest); err != nil {
		return fmt.Errorf("failed to unmarshal response from %s: %w", path, err)
	}
	return nil
}

// parseStatValue handles the API's habit of returning numeric stats as
// strings ("3.21") alongside plain numbers.
func parseStatValue(raw json.RawMessage) (float64, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		v, err := strconv.ParseFloat(asString, 64)
		if err != nil {
			return 0, fmt.Errorf("non-numeric stat value %q", asString)
		}
		return v, nil
	}
	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err != nil {
		return 0, fmt.Errorf("unexpected stat value %s", string(raw))
	}
	return asNumber, nil
}
