// Package odds converts win probabilities to moneyline-style fair odds
// (no bookmaker margin).
package odds

// American converts a win probability to fair American odds. Favorites
// (p >= 0.5) get negative lines. Degenerate probabilities are clamped to
// sentinel lines rather than dividing by zero.
func American(prob float64) int {
	if prob <= 0 {
		return 99999
	}
	if prob >= 1 {
		return -99999
	}
	if prob >= 0.5 {
		return int(-(prob / (1 - prob)) * 100)
	}
	return int(((1 - prob) / prob) * 100)
}
