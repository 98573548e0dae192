// Package simulator Monte-Carlo samples the remainder of the season from
// model-predicted win probabilities and aggregates projected standings.
package simulator

import (
	"errors"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dugoutlabs/pennant/internal/features"
	"github.com/dugoutlabs/pennant/pkg/logger"
)

// ErrNoScheduledGames is returned when the feature table holds nothing left
// to simulate.
var ErrNoScheduledGames = errors.New("no upcoming games to simulate")

// Config controls a simulation run.
type Config struct {
	Trials  int   // number of independent season trials (default 1000)
	Workers int   // 0 = NumCPU
	Seed    int64 // 0 = time-based
}

// TeamStanding is one line of the projected final standings.
type TeamStanding struct {
	Rank          int
	Team          string
	PredictedWins float64
	AvgRank       float64
}

// Simulator runs independent season trials across a worker pool. Trials
// share only read-only inputs, so their order is irrelevant to the
// aggregate statistics.
type Simulator struct {
	cfg Config
	log *logrus.Entry
}

// New creates a simulator, applying defaults for zero config values.
func New(cfg Config) *Simulator {
	if cfg.Trials <= 0 {
		cfg.Trials = 1000
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Simulator{
		cfg: cfg,
		log: logger.WithComponent("simulator"),
	}
}

// Run projects final standings. rows is the full feature table; probs holds
// the model's home-win probability for each scheduled row, aligned with the
// scheduled subset of rows in order.
func (s *Simulator) Run(rows []features.Row, probs []float64) ([]TeamStanding, error) {
	teams, index := teamOrder(rows)

	baseWins := make([]int, len(teams))
	type matchup struct {
		home, away int
		prob       float64
	}
	var remaining []matchup

	scheduled := 0
	for _, r := range rows {
		if r.Scheduled() {
			if scheduled >= len(probs) {
				return nil, errors.New("fewer probabilities than scheduled games")
			}
			remaining = append(remaining, matchup{
				home: index[r.HomeTeam],
				away: index[r.AwayTeam],
				prob: probs[scheduled],
			})
			scheduled++
			continue
		}
		// A home win credits the home team, a home loss the away team.
		if r.Target == 1 {
			baseWins[index[r.HomeTeam]]++
		} else {
			baseWins[index[r.AwayTeam]]++
		}
	}
	if len(remaining) == 0 {
		return nil, ErrNoScheduledGames
	}

	runID := uuid.New().String()
	s.log.WithFields(logrus.Fields{
		"run_id":  runID,
		"trials":  s.cfg.Trials,
		"workers": s.cfg.Workers,
		"games":   len(remaining),
		"teams":   len(teams),
	}).Info("Starting season simulation")

	type trialResult struct {
		wins  []int
		ranks []int
	}

	trialsChan := make(chan int, s.cfg.Trials)
	resultsChan := make(chan trialResult, s.cfg.Trials)

	var wg sync.WaitGroup
	for w := 0; w < s.cfg.Workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(s.cfg.Seed + int64(workerID)))
			for range trialsChan {
				wins := make([]int, len(teams))
				copy(wins, baseWins)
				for _, m := range remaining {
					if rng.Float64() < m.prob {
						wins[m.home]++
					} else {
						wins[m.away]++
					}
				}
				resultsChan <- trialResult{wins: wins, ranks: rankByWins(wins)}
			}
		}(w)
	}

	for i := 0; i < s.cfg.Trials; i++ {
		trialsChan <- i
	}
	close(trialsChan)
	wg.Wait()
	close(resultsChan)

	winSums := make([]float64, len(teams))
	rankSums := make([]float64, len(teams))
	for res := range resultsChan {
		for i := range teams {
			winSums[i] += float64(res.wins[i])
			rankSums[i] += float64(res.ranks[i])
		}
	}

	standings := make([]TeamStanding, len(teams))
	n := float64(s.cfg.Trials)
	for i, team := range teams {
		standings[i] = TeamStanding{
			Team:          team,
			PredictedWins: round2(winSums[i] / n),
			AvgRank:       round2(rankSums[i] / n),
		}
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].PredictedWins > standings[j].PredictedWins
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}

	s.log.WithField("run_id", runID).Info("Season simulation complete")
	return standings, nil
}

// teamOrder lists teams in first-appearance order over the feature table,
// which is the stable tie-break order for per-trial ranking.
func teamOrder(rows []features.Row) ([]string, map[string]int) {
	var teams []string
	index := make(map[string]int)
	add := func(name string) {
		if _, ok := index[name]; !ok {
			index[name] = len(teams)
			teams = append(teams, name)
		}
	}
	for _, r := range rows {
		add(r.HomeTeam)
		add(r.AwayTeam)
	}
	return teams, index
}

// rankByWins assigns 1-based ranks by win total descending; ties keep team
// input order.
func rankByWins(wins []int) []int {
	order := make([]int, len(wins))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return wins[order[a]] > wins[order[b]]
	})
	ranks := make([]int, len(wins))
	for pos, team := range order {
		ranks[team] = pos + 1
	}
	return ranks
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
