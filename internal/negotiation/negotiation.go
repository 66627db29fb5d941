// Package negotiation implements the bounded-round offer/counter-offer
// state machine between the player's club and a free agent, plus the
// conviction ladder that decides whether the club acts on the scout's
// recommendation at all.
package negotiation

import (
	"github.com/talgya/touchline/internal/game"
	"github.com/talgya/touchline/internal/rng"
)

// Status is a negotiation's state. Accepted and Rejected absorb; Advance on
// a terminal or pending record is a no-op.
type Status uint8

const (
	StatusPending Status = iota
	StatusCountered
	StatusAccepted
	StatusRejected
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCountered:
		return "countered"
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Negotiation tuning.
const (
	MaxRounds      = 3
	DeadlineWeeks  = 3
	MinCounterWage = 200

	wageWeight  = 0.7
	bonusWeight = 0.3

	baseThreshold    = 0.85
	lengthAdjust     = 0.05
	maxDesperation   = 0.15
	rejectBelow      = 0.50
	gapNarrowPerRnd  = 0.30
	counterJitterMax = 0.05 // fraction of the remaining gap
)

// Negotiation is one transient negotiation attempt with a free agent. It is
// caller-held; the simulation state never stores it.
type Negotiation struct {
	FreeAgentID game.PlayerID `json:"free_agent_id"`

	OfferedWage    int `json:"offered_wage"`
	OfferedBonus   int `json:"offered_bonus"`
	ContractLength int `json:"contract_length"` // seasons

	Round  int    `json:"round"` // 1..MaxRounds
	Status Status `json:"status"`

	CounterWage  int `json:"counter_wage,omitempty"`
	CounterBonus int `json:"counter_bonus,omitempty"`

	Deadline int `json:"deadline"` // absolute week; expiry is the caller's check
}

// Initiate opens a negotiation with an opening offer and evaluates it
// immediately as round 1.
func Initiate(agent game.FreeAgent, wage, bonus, length, week int, r *rng.Source) Negotiation {
	n := Negotiation{
		FreeAgentID:    agent.PlayerID,
		OfferedWage:    wage,
		OfferedBonus:   bonus,
		ContractLength: length,
		Round:          1,
		Status:         StatusPending,
		Deadline:       week + DeadlineWeeks,
	}
	evaluateOffer(&n, agent, r)
	return n
}

// Advance submits a revised offer against a counter. Calls on anything but
// a countered negotiation return the record unchanged; a negotiation at the
// round limit force-rejects.
func Advance(n Negotiation, agent game.FreeAgent, wage, bonus, length int, r *rng.Source) Negotiation {
	if n.Status != StatusCountered {
		return n
	}
	if n.Round >= MaxRounds {
		n.Status = StatusRejected
		return n
	}

	n.Round++
	n.OfferedWage = wage
	n.OfferedBonus = bonus
	n.ContractLength = length
	evaluateOffer(&n, agent, r)
	return n
}

// Expired reports whether the caller-tracked week has passed the deadline.
// The state machine does not enforce this itself.
func Expired(n Negotiation, week int) bool {
	return week > n.Deadline
}

// PreferredLength returns the contract length an agent wants, by age
// bracket: the young want security, veterans want one last deal.
func PreferredLength(age int) int {
	switch {
	case age < 26:
		return 3
	case age <= 30:
		return 2
	default:
		return 1
	}
}

// evaluateOffer scores the current offer and moves the negotiation to
// accepted, rejected, or countered.
func evaluateOffer(n *Negotiation, agent game.FreeAgent, r *rng.Source) {
	satisfaction := satisfactionFor(n.OfferedWage, n.OfferedBonus, agent)
	threshold := acceptThreshold(n.ContractLength, agent)

	switch {
	case satisfaction >= threshold:
		n.Status = StatusAccepted
	case satisfaction < rejectBelow || n.Round >= MaxRounds:
		n.Status = StatusRejected
	default:
		n.Status = StatusCountered
		n.CounterWage = counter(n.OfferedWage, agent.WageExpectation, n.Round, r)
		if n.CounterWage < MinCounterWage {
			n.CounterWage = MinCounterWage
		}
		n.CounterBonus = counter(n.OfferedBonus, agent.SigningBonusExpectation, n.Round, r)
		if n.CounterBonus < 0 {
			n.CounterBonus = 0
		}
	}
}

func satisfactionFor(wage, bonus int, agent game.FreeAgent) float64 {
	var s float64
	if agent.WageExpectation > 0 {
		s += wageWeight * float64(wage) / float64(agent.WageExpectation)
	} else {
		s += wageWeight
	}
	if agent.SigningBonusExpectation > 0 {
		s += bonusWeight * float64(bonus) / float64(agent.SigningBonusExpectation)
	} else {
		s += bonusWeight
	}
	return s
}

func acceptThreshold(offeredLength int, agent game.FreeAgent) float64 {
	threshold := baseThreshold

	pref := PreferredLength(agent.Age)
	diff := offeredLength - pref
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff == 0:
		threshold -= lengthAdjust
	case diff >= 2:
		threshold += lengthAdjust
	}

	// Desperation: the longer an agent has sat unsigned, the lower the bar.
	if agent.MaxWeeksInPool > 0 {
		desperation := maxDesperation * float64(agent.WeeksInPool) / float64(agent.MaxWeeksInPool)
		if desperation > maxDesperation {
			desperation = maxDesperation
		}
		threshold -= desperation
	}

	return threshold
}

// counter narrows the gap between offer and expectation by 0.30 per round,
// with small symmetric jitter so counters don't read as a formula.
func counter(offered, expectation, round int, r *rng.Source) int {
	gap := float64(expectation - offered)
	if gap <= 0 {
		return expectation
	}
	narrowed := gap * gapNarrowPerRnd * float64(round)
	jitter := r.NextFloat(-counterJitterMax, counterJitterMax) * gap
	return expectation - int(narrowed+jitter)
}

// ProcessFreeAgentSigning commits an accepted negotiation: the player joins
// the scout's club on the agreed wage, the contract runs for the agreed
// length, and the pool entry is closed out as signed. Returns the input
// state unchanged when the negotiation isn't accepted or the player is
// unknown.
func ProcessFreeAgentSigning(state *game.GameState, n Negotiation) (game.GameState, bool) {
	if n.Status != StatusAccepted {
		return *state, false
	}
	if _, ok := state.PlayerByID(n.FreeAgentID); !ok {
		return *state, false
	}

	out := state.Clone()
	for i := range out.Players {
		if out.Players[i].ID != n.FreeAgentID {
			continue
		}
		out.Players[i].ClubID = out.Scout.ClubID
		out.Players[i].Wage = n.OfferedWage
		out.Players[i].ContractExpiry = out.Season + n.ContractLength
	}
	for i := range out.Pool.Agents {
		if out.Pool.Agents[i].PlayerID != n.FreeAgentID {
			continue
		}
		if out.Pool.Agents[i].Status == game.StatusAvailable {
			out.Pool.Agents[i].Status = game.StatusSigned
			out.Pool.Agents[i].SignedBy = out.Scout.ClubID
			out.Pool.TotalSignedThisSeason++
		}
	}
	return out, true
}
