package features

// Neutral priors used before a team or pitcher has any recorded history.
const (
	NeutralWinPct      = 0.5
	DefaultRunsPerGame = 4.5
	DefaultERA         = 4.25
	DefaultWHIP        = 1.35

	// FormWindow bounds the recent-results window.
	FormWindow = 10
)

// TeamState is the running record of one team, advanced only by completed
// games in chronological order. The zero value is a valid "never seen"
// state.
type TeamState struct {
	Games       int
	Wins        int
	RunsScored  int
	RunsAllowed int
	last10      []int
}

// WinPct returns the team's overall win percentage, or the neutral prior
// when no games have been played.
func (s *TeamState) WinPct() float64 {
	if s.Games == 0 {
		return NeutralWinPct
	}
	return float64(s.Wins) / float64(s.Games)
}

// FormPct returns the win percentage over the recent-results window, or the
// neutral prior when the window is empty.
func (s *TeamState) FormPct() float64 {
	if len(s.last10) == 0 {
		return NeutralWinPct
	}
	sum := 0
	for _, r := range s.last10 {
		sum += r
	}
	return float64(sum) / float64(len(s.last10))
}

// RunsPerGame returns average runs scored per game, defaulting to the
// league-average prior when no games have been played.
func (s *TeamState) RunsPerGame() float64 {
	if s.Games == 0 {
		return DefaultRunsPerGame
	}
	return float64(s.RunsScored) / float64(s.Games)
}

// RunsAllowedPerGame returns average runs allowed per game, defaulting to
// the league-average prior when no games have been played.
func (s *TeamState) RunsAllowedPerGame() float64 {
	if s.Games == 0 {
		return DefaultRunsPerGame
	}
	return float64(s.RunsAllowed) / float64(s.Games)
}

// Form returns a copy of the recent-results window, oldest first.
func (s *TeamState) Form() []int {
	out := make([]int, len(s.last10))
	copy(out, s.last10)
	return out
}

// record applies one completed game from this team's perspective. The
// window evicts its oldest entry once it exceeds FormWindow.
func (s *TeamState) record(won bool, scored, allowed int) {
	s.Games++
	result := 0
	if won {
		s.Wins++
		result = 1
	}
	s.RunsScored += scored
	s.RunsAllowed += allowed

	s.last10 = append(s.last10, result)
	if len(s.last10) > FormWindow {
		s.last10 = s.last10[1:]
	}
}
