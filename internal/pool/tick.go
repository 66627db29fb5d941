package pool

import (
	"fmt"

	"github.com/talgya/touchline/internal/game"
	"github.com/talgya/touchline/internal/inbox"
	"github.com/talgya/touchline/internal/rng"
)

// Weekly tick tuning.
const (
	wageDecayFactor  = 0.97  // 3% per week
	bonusDecayFactor = 0.955 // 4.5% per week

	interestBase       = 0.02
	interestCAMult     = 0.0015
	interestUrgency    = 0.06 // applies once weeksInPool > 3
	urgencyAfterWeeks  = 3
	npcAcceptance      = 0.15
	overflowThreshold  = 200 // available agents before the market overheats
	overflowMultiplier = 2.0

	retirementAge = 32 // unsigned agents older than this retire at expiry

	// trickleChance is the per-week probability of an unplanned mid-season
	// release for a depth-quality contracted player.
	trickleChance    = 0.0008
	trickleMaxCA     = 60
	trickleMinAge    = 25
	clubRepTolerance = 30
)

// Signing records one NPC club signing a pooled agent.
type Signing struct {
	PlayerID game.PlayerID
	ClubID   game.ClubID
	Wage     int
}

// TickResult is the outcome of one weekly pool tick.
type TickResult struct {
	Pool              game.FreeAgentPool
	NPCSignings       []Signing
	RemovedPlayerIDs  []game.PlayerID
	MidSeasonReleases []game.PlayerID
	Messages          []inbox.Message
}

// Tick advances every available agent one week: age the entry, decay its
// expectations, expire it, or roll NPC competition against it; then run the
// mid-season trickle pass over contracted players. RNG draws occur in
// pool-array order, then trickle-candidate order, so identical seeds
// reproduce identical outcomes.
func Tick(state *game.GameState, r *rng.Source) TickResult {
	res := TickResult{Pool: state.Pool.Clone()}

	overflow := 1.0
	if state.Pool.AvailableCount() > overflowThreshold {
		overflow = overflowMultiplier
	}

	for i := range res.Pool.Agents {
		a := &res.Pool.Agents[i]
		if a.Status != game.StatusAvailable {
			continue
		}

		a.WeeksInPool++
		decayExpectations(a)

		if a.WeeksInPool >= a.MaxWeeksInPool {
			expireAgent(a, &res)
			continue
		}

		rollInterest(state, a, r, overflow)
		rollAcceptances(state, a, r, overflow, &res)
	}

	trickleReleases(state, r, &res)
	return res
}

// decayExpectations walks an agent's asks down toward the floor. The longer
// nobody calls, the cheaper the deal.
func decayExpectations(a *game.FreeAgent) {
	a.WageExpectation = int(float64(a.WageExpectation) * wageDecayFactor)
	if a.WageExpectation < game.MinWage {
		a.WageExpectation = game.MinWage
	}
	a.SigningBonusExpectation = int(float64(a.SigningBonusExpectation) * bonusDecayFactor)
	if a.SigningBonusExpectation < 0 {
		a.SigningBonusExpectation = 0
	}
}

func expireAgent(a *game.FreeAgent, res *TickResult) {
	if a.Age > retirementAge {
		a.Status = game.StatusRetired
		res.Pool.TotalRetiredThisSeason++
	} else {
		a.Status = game.StatusDroppedOut
	}
	res.RemovedPlayerIDs = append(res.RemovedPlayerIDs, a.PlayerID)
}

// rollInterest may add one new NPC interest record, bounded at
// game.MaxLiveInterests concurrent live interests.
func rollInterest(state *game.GameState, a *game.FreeAgent, r *rng.Source, overflow float64) {
	urgency := 0.0
	if a.WeeksInPool > urgencyAfterWeeks {
		urgency = interestUrgency
	}
	prob := (interestBase + float64(a.CurrentAbility)*interestCAMult + urgency) * overflow

	if !r.Chance(prob) {
		return
	}
	if a.LiveInterests() >= game.MaxLiveInterests {
		return
	}

	eligible := eligibleClubs(state, a)
	if len(eligible) == 0 {
		return
	}
	club := rng.Pick(r, eligible)
	a.NPCInterest = append(a.NPCInterest, game.NPCInterest{
		ClubID:    club.ID,
		OfferWeek: state.AbsoluteWeek(),
	})
}

// eligibleClubs returns the NPC clubs that could plausibly sign an agent:
// not the club that released them, not the player's own club, enough budget
// for the ask, and a reputation within tolerance of the agent's ability.
func eligibleClubs(state *game.GameState, a *game.FreeAgent) []game.Club {
	var out []game.Club
	for _, c := range state.Clubs {
		if c.ID == a.ReleasedFrom || c.ID == state.Scout.ClubID {
			continue
		}
		if c.Budget < a.WageExpectation {
			continue
		}
		diff := c.Reputation - a.CurrentAbility
		if diff < -clubRepTolerance || diff > clubRepTolerance {
			continue
		}
		if a.HasInterestFrom(c.ID) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// rollAcceptances gives each live interest a weekly acceptance trial; the
// first success signs the agent.
func rollAcceptances(state *game.GameState, a *game.FreeAgent, r *rng.Source, overflow float64, res *TickResult) {
	for j := range a.NPCInterest {
		in := &a.NPCInterest[j]
		if in.Accepted {
			continue
		}
		if !r.Chance(npcAcceptance * overflow) {
			continue
		}

		in.Accepted = true
		a.Status = game.StatusSigned
		a.SignedBy = in.ClubID
		res.Pool.TotalSignedThisSeason++
		res.NPCSignings = append(res.NPCSignings, Signing{
			PlayerID: a.PlayerID,
			ClubID:   in.ClubID,
			Wage:     a.WageExpectation,
		})
		res.RemovedPlayerIDs = append(res.RemovedPlayerIDs, a.PlayerID)

		// Only agents the player had already found warrant a note; the
		// rest of the market moves invisibly.
		if a.DiscoveredByScout {
			clubName := "an NPC club"
			if club, ok := state.ClubByID(in.ClubID); ok {
				clubName = club.Name
			}
			playerName := fmt.Sprintf("player %d", a.PlayerID)
			if p, ok := state.PlayerByID(a.PlayerID); ok {
				playerName = p.Name
			}
			res.Messages = append(res.Messages, inbox.New(
				state.Season, state.Week, inbox.KindNPCSigning,
				fmt.Sprintf("%s signs for %s", playerName, clubName),
				fmt.Sprintf("%s has agreed terms with %s. The trail has gone cold.", playerName, clubName),
				a.PlayerID,
			))
		}
		return
	}
}

// trickleReleases runs the independent mid-season pass: any contracted
// depth player may be cut without warning at a very low weekly rate.
func trickleReleases(state *game.GameState, r *rng.Source, res *TickResult) {
	for _, p := range state.Players {
		if p.ClubID == 0 || p.Retired {
			continue
		}
		if p.CurrentAbility > trickleMaxCA || p.Age < trickleMinAge {
			continue
		}
		if state.Pool.Contains(p.ID) {
			continue
		}
		if !r.Chance(trickleChance) {
			continue
		}
		res.Pool.Agents = append(res.Pool.Agents, NewFreeAgent(p, p.ClubID, state.Season))
		res.Pool.TotalReleasedThisSeason++
		res.MidSeasonReleases = append(res.MidSeasonReleases, p.ID)
	}
}
