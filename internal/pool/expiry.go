// Package pool owns the free-agent pool lifecycle: season-boundary contract
// expiry, the weekly decay/competition/expiry tick, and mid-season trickle
// releases. The pool is the single writer of FreeAgent.Status; everything
// here is a pure transformation of (state, rng) into new values.
package pool

import (
	"fmt"

	"github.com/talgya/touchline/internal/game"
	"github.com/talgya/touchline/internal/inbox"
	"github.com/talgya/touchline/internal/rng"
)

// Contract expiry tuning.
const (
	renewHighAbility = 0.70 // ability > 70
	renewMidAbility  = 0.50 // ability 50–70
	renewLowAbility  = 0.30 // ability < 50

	renewRepBonus   = 0.15 // club reputation > 75
	renewRepPenalty = 0.10 // club reputation < 30
	renewFormWeight = 0.05 // per unit of form, form in [-1, 1]

	renewFloor = 0.05
	renewCeil  = 0.95

	retireAge    = 34 // retirement considered above this age
	retireChance = 0.60

	// notableAbility and notableClubRep gate informational messages.
	notableAbility = 65
	notableClubRep = 75
)

// MaxWeeksForAbility returns how long an agent of a given ability tier
// stays in the pool before dropping out. Better players give up on the
// market sooner.
func MaxWeeksForAbility(ability int) int {
	switch {
	case ability >= 80:
		return 4
	case ability >= 65:
		return 8
	case ability >= 50:
		return 16
	default:
		return 20
	}
}

// WageExpectation derives a released player's weekly wage ask from ability
// and age. Veterans discount, youngsters have no track record to charge for.
func WageExpectation(ability, age int) int {
	w := 200 + ability*ability/4
	if age > 32 {
		w = w * 8 / 10
	} else if age < 23 {
		w = w * 9 / 10
	}
	if w < game.MinWage {
		w = game.MinWage
	}
	return w
}

// BonusExpectation derives the signing-bonus ask from the wage ask.
func BonusExpectation(ability, age int) int {
	return WageExpectation(ability, age) * 3 * ability / 100
}

// Renewal records a contract extension decided at the season boundary.
type Renewal struct {
	PlayerID game.PlayerID
	Seasons  int
}

// ExpiryResult is the outcome of one season-boundary pass.
type ExpiryResult struct {
	Players  []game.Player // full player collection with decisions applied
	Renewals []Renewal
	Released []game.FreeAgent
	Retired  []game.PlayerID
	Messages []inbox.Message
}

// ProcessContractExpiries decides renew / retire / release for every player
// whose contract has lapsed. Players without a club or with time left on
// their deal are skipped, never errored. RNG draws follow player-collection
// order.
func ProcessContractExpiries(state *game.GameState, r *rng.Source) ExpiryResult {
	res := ExpiryResult{
		Players: append([]game.Player(nil), state.Players...),
	}

	for i := range res.Players {
		p := res.Players[i]
		if p.ClubID == 0 || p.Retired || p.ContractExpiry > state.Season {
			continue
		}

		club, ok := state.ClubByID(p.ClubID)
		if !ok {
			continue
		}

		if r.Chance(renewalProbability(p, club)) {
			seasons := r.NextInt(1, 3)
			res.Players[i].ContractExpiry = state.Season + seasons
			res.Renewals = append(res.Renewals, Renewal{PlayerID: p.ID, Seasons: seasons})
			continue
		}

		// Old and fading players hang up their boots instead of chasing
		// one more contract.
		if p.Age > retireAge && p.CurrentAbility < 50 && r.Chance(retireChance) {
			res.Players[i].Retired = true
			res.Players[i].ClubID = 0
			res.Retired = append(res.Retired, p.ID)
			if notable(p, club) {
				res.Messages = append(res.Messages, inbox.New(
					state.Season, state.Week, inbox.KindRetirement,
					fmt.Sprintf("%s retires", p.Name),
					fmt.Sprintf("%s (%d) has retired after leaving %s.", p.Name, p.Age, club.Name),
					p.ID,
				))
			}
			continue
		}

		res.Players[i].ClubID = 0
		agent := NewFreeAgent(p, club.ID, state.Season)
		res.Released = append(res.Released, agent)
		if notable(p, club) {
			res.Messages = append(res.Messages, inbox.New(
				state.Season, state.Week, inbox.KindRelease,
				fmt.Sprintf("%s released by %s", p.Name, club.Name),
				fmt.Sprintf("%s (%d, ability %d) is out of contract and looking for a club.", p.Name, p.Age, p.CurrentAbility),
				p.ID,
			))
		}
	}

	return res
}

// NewFreeAgent creates a pool entry for a released player, snapshotting the
// scalar fields the economy needs.
func NewFreeAgent(p game.Player, releasedFrom game.ClubID, season int) game.FreeAgent {
	return game.FreeAgent{
		PlayerID:                p.ID,
		Country:                 p.Country,
		ReleasedFrom:            releasedFrom,
		ReleasedSeason:          season,
		Age:                     p.Age,
		CurrentAbility:          p.CurrentAbility,
		MaxWeeksInPool:          MaxWeeksForAbility(p.CurrentAbility),
		WageExpectation:         WageExpectation(p.CurrentAbility, p.Age),
		SigningBonusExpectation: BonusExpectation(p.CurrentAbility, p.Age),
		Status:                  game.StatusAvailable,
	}
}

func renewalProbability(p game.Player, club game.Club) float64 {
	var prob float64
	switch {
	case p.CurrentAbility > 70:
		prob = renewHighAbility
	case p.CurrentAbility >= 50:
		prob = renewMidAbility
	default:
		prob = renewLowAbility
	}

	if club.Reputation > 75 {
		prob += renewRepBonus
	} else if club.Reputation < 30 {
		prob -= renewRepPenalty
	}

	prob += renewFormWeight * p.Form

	if prob < renewFloor {
		prob = renewFloor
	}
	if prob > renewCeil {
		prob = renewCeil
	}
	return prob
}

func notable(p game.Player, club game.Club) bool {
	return p.CurrentAbility > notableAbility || club.Reputation > notableClubRep
}
