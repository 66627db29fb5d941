package negotiation

import (
	"github.com/talgya/touchline/internal/game"
)

// Conviction is the four-tier confidence label attached to a scout's
// recommendation, derived from observation count × average confidence.
type Conviction uint8

const (
	ConvictionNote Conviction = iota
	ConvictionRecommend
	ConvictionStrongRecommend
	ConvictionTablePound
)

// String returns the conviction's display name.
func (c Conviction) String() string {
	switch c {
	case ConvictionNote:
		return "note"
	case ConvictionRecommend:
		return "recommend"
	case ConvictionStrongRecommend:
		return "strongRecommend"
	case ConvictionTablePound:
		return "tablePound"
	default:
		return "unknown"
	}
}

// ConvictionFor derives the conviction tier from a report's observation
// count and average confidence.
func ConvictionFor(observations int, avgConfidence float64) Conviction {
	score := float64(observations) * avgConfidence
	switch {
	case score < 1.5:
		return ConvictionNote
	case score < 3:
		return ConvictionRecommend
	case score < 5:
		return ConvictionStrongRecommend
	default:
		return ConvictionTablePound
	}
}

// Club acceptance tuning.
const (
	acceptFloor = 0.05
	acceptCeil  = 0.95

	repWeight = 0.15 // × scout reputation / 100

	topClubRep     = 75
	weakClubRep    = 40
	topClubFactor  = 0.6
	weakClubFactor = 1.3

	alignmentWindow  = 10
	alignmentBonus   = 0.10
	misalignmentGap  = 25
	misalignmentCost = 0.15

	firstTeamBonus = 0.05
)

// CalculateFreeAgentAcceptance answers whether the scout's own club will
// act on a free-agent recommendation: a probability built from the report's
// conviction, the scout's standing, the club's selectivity, and how well
// the player fits the club's level. Clamped to [0.05, 0.95] — no
// recommendation is a sure thing, none is hopeless.
func CalculateFreeAgentAcceptance(report game.ScoutReport, scout game.Scout, club game.Club, playerAbility int) float64 {
	var prob float64
	switch ConvictionFor(report.Observations, report.AvgConfidence) {
	case ConvictionNote:
		prob = 0.15
	case ConvictionRecommend:
		prob = 0.35
	case ConvictionStrongRecommend:
		prob = 0.55
	case ConvictionTablePound:
		prob = 0.75
	}

	prob += float64(scout.Reputation) / 100 * repWeight

	// Big clubs ignore most recommendations; struggling clubs grab at them.
	if club.Reputation > topClubRep {
		prob *= topClubFactor
	} else if club.Reputation < weakClubRep {
		prob *= weakClubFactor
	}

	gap := playerAbility - club.Reputation
	if gap >= -alignmentWindow && gap <= alignmentWindow {
		prob += alignmentBonus
	} else if gap < -misalignmentGap {
		prob -= misalignmentCost
	}

	if scout.Specialization == game.SpecFirstTeam {
		prob += firstTeamBonus
	}

	if prob < acceptFloor {
		prob = acceptFloor
	}
	if prob > acceptCeil {
		prob = acceptCeil
	}
	return prob
}
