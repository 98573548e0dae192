// Package features implements the chronological feature-engineering pass:
// a single forward scan over the time-ordered game log that maintains
// running per-team state and emits, for every game, a feature row computed
// strictly from information available before that game was played.
package features

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dugoutlabs/pennant/internal/schedule"
	"github.com/dugoutlabs/pennant/pkg/logger"
)

// TargetUnplayed is the sentinel target for games without a recorded
// outcome. It is not a class label.
const TargetUnplayed = -1

// Row is the feature record emitted for one game. Produced once by the
// engine and read-only afterward.
type Row struct {
	Date        time.Time
	HomeTeam    string
	AwayTeam    string
	HomeStarter string
	AwayStarter string

	HomeWinPct        float64
	AwayWinPct        float64
	HomeLast10WinPct  float64
	AwayLast10WinPct  float64
	HomeRunsPG        float64
	AwayRunsPG        float64
	HomeRunsAllowedPG float64
	AwayRunsAllowedPG float64
	HomePitcherERA    float64
	AwayPitcherERA    float64
	HomePitcherWHIP   float64
	AwayPitcherWHIP   float64

	// Informational echo of the input; never used as predictors.
	HomeScore int
	AwayScore int

	// Target is 1 if the home team won, 0 if it lost, TargetUnplayed for
	// scheduled games.
	Target int
}

// Scheduled reports whether the row belongs to a not-yet-played game.
func (r Row) Scheduled() bool {
	return r.Target == TargetUnplayed
}

// StatSource supplies pitcher season stats. The boolean is false when the
// stat could not be resolved, in which case the engine substitutes the
// league-average default.
type StatSource interface {
	PitcherStat(ctx context.Context, player, stat string) (float64, bool)
}

// Engine runs the forward pass. It owns the per-team state for the
// duration of one run; construct a fresh engine per pass.
type Engine struct {
	stats  StatSource
	states map[string]*TeamState
	log    *logrus.Entry
}

// NewEngine creates an engine with empty team state. stats may be nil, in
// which case all pitcher stats fall back to defaults.
func NewEngine(stats StatSource) *Engine {
	return &Engine{
		stats:  stats,
		states: make(map[string]*TeamState),
		log:    logger.WithComponent("features"),
	}
}

// State returns the current running state for a team, or nil if the team
// has not appeared yet.
func (e *Engine) State(team string) *TeamState {
	return e.states[team]
}

// Run scans games in order and returns one Row per game, in input order.
// Games must already be sorted ascending by date with ties in source order;
// schedule.LoadCSV guarantees this.
//
// Each game is handled as an explicit two-phase step: snapshot the pre-game
// state of both sides into a Row, then — only for completed games — apply
// the result to both states. The snapshot never sees the game's own
// outcome, which is the no-leakage property everything downstream depends
// on.
func (e *Engine) Run(ctx context.Context, games []schedule.Game) []Row {
	rows := make([]Row, 0, len(games))
	completed := 0

	for _, g := range games {
		rows = append(rows, e.snapshot(ctx, g))
		if g.Completed() {
			e.apply(g)
			completed++
		}
	}

	e.log.WithFields(logrus.Fields{
		"games":     len(games),
		"completed": completed,
		"teams":     len(e.states),
	}).Info("Feature pass complete")

	return rows
}

// snapshot computes a game's feature row from the current (pre-game) state.
// It performs no mutation of team state.
func (e *Engine) snapshot(ctx context.Context, g schedule.Game) Row {
	home := e.state(g.Home)
	away := e.state(g.Away)

	row := Row{
		Date:        g.Date,
		HomeTeam:    g.Home,
		AwayTeam:    g.Away,
		HomeStarter: g.HomeStarter,
		AwayStarter: g.AwayStarter,

		HomeWinPct:        home.WinPct(),
		AwayWinPct:        away.WinPct(),
		HomeLast10WinPct:  home.FormPct(),
		AwayLast10WinPct:  away.FormPct(),
		HomeRunsPG:        home.RunsPerGame(),
		AwayRunsPG:        away.RunsPerGame(),
		HomeRunsAllowedPG: home.RunsAllowedPerGame(),
		AwayRunsAllowedPG: away.RunsAllowedPerGame(),

		HomeScore: g.HomeScore,
		AwayScore: g.AwayScore,
		Target:    TargetUnplayed,
	}

	row.HomePitcherERA, row.HomePitcherWHIP = e.pitcherStats(ctx, g.HomeStarter)
	row.AwayPitcherERA, row.AwayPitcherWHIP = e.pitcherStats(ctx, g.AwayStarter)

	if g.Completed() {
		row.Target = g.HomeWin()
	}
	return row
}

// apply advances both teams' running state with a completed game's result.
func (e *Engine) apply(g schedule.Game) {
	homeWon := g.HomeWin() == 1
	e.state(g.Home).record(homeWon, g.HomeScore, g.AwayScore)
	e.state(g.Away).record(!homeWon, g.AwayScore, g.HomeScore)
}

func (e *Engine) state(team string) *TeamState {
	s, ok := e.states[team]
	if !ok {
		s = &TeamState{}
		e.states[team] = s
	}
	return s
}

// pitcherStats resolves a starter's ERA and WHIP. An unlisted starter or an
// unresolved lookup both land on the league-average defaults; a lookup miss
// must never fail the pass.
func (e *Engine) pitcherStats(ctx context.Context, starter string) (era, whip float64) {
	era, whip = DefaultERA, DefaultWHIP
	if starter == "" || e.stats == nil {
		return era, whip
	}
	if v, ok := e.stats.PitcherStat(ctx, starter, "era"); ok {
		era = v
	}
	if v, ok := e.stats.PitcherStat(ctx, starter, "whip"); ok {
		whip = v
	}
	return era, whip
}
