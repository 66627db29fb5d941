package rivals

import (
	"github.com/talgya/touchline/internal/game"
)

// Threat is the coarse rival-vs-player comparison the UI shows.
type Threat uint8

const (
	ThreatLow Threat = iota
	ThreatMedium
	ThreatHigh
)

// String returns the threat's display name.
func (t Threat) String() string {
	switch t {
	case ThreatLow:
		return "low"
	case ThreatMedium:
		return "medium"
	case ThreatHigh:
		return "high"
	default:
		return "unknown"
	}
}

// threatMargin is the score delta separating the threat bands.
const threatMargin = 10

// ThreatLevel compares a rival's combined quality+reputation score against
// the player scout's, each normalized to 0–200. A pure read, not a state
// transition.
func ThreatLevel(rival game.RivalScout, scout game.Scout) Threat {
	rivalScore := rival.Quality*20 + rival.Reputation
	playerScore := scout.Level*20 + scout.Reputation
	delta := rivalScore - playerScore

	switch {
	case delta > threatMargin:
		return ThreatHigh
	case delta < -threatMargin:
		return ThreatLow
	default:
		return ThreatMedium
	}
}

// CheckRivalPresence returns the rivals last seen at a fixture, in
// directory order — the player-facing "rival spotted in the stands" signal.
func CheckRivalPresence(state *game.GameState, fixtureID game.FixtureID) []game.RivalScout {
	var out []game.RivalScout
	if fixtureID == 0 {
		return out
	}
	for _, r := range state.Rivals {
		if r.LastSeenAtFixture == fixtureID {
			out = append(out, r)
		}
	}
	return out
}
