// Package engine drives the weekly simulation: one call advances the whole
// economy a week, threading a single RNG and a single snapshot through the
// contract expiry processor, the pool tick, the discovery engine, and the
// rival directory, in that fixed order.
package engine

import (
	"log/slog"

	"github.com/talgya/touchline/internal/discovery"
	"github.com/talgya/touchline/internal/game"
	"github.com/talgya/touchline/internal/inbox"
	"github.com/talgya/touchline/internal/pool"
	"github.com/talgya/touchline/internal/rivals"
	"github.com/talgya/touchline/internal/rng"
)

// npcContractSeasons is the contract length NPC and rival clubs hand out.
const npcContractSeasons = 2

// WeekReport summarizes everything that happened in one simulated week.
type WeekReport struct {
	Season int
	Week   int

	Renewals          []pool.Renewal
	Released          []game.PlayerID
	Retired           []game.PlayerID
	NPCSignings       []pool.Signing
	MidSeasonReleases []game.PlayerID
	RemovedPlayerIDs  []game.PlayerID
	NewDiscoveries    []game.PlayerID
	RivalSignings     []rivals.Signing
	RivalActivities   []rivals.Activity

	Messages []inbox.Message
}

// AdvanceWeek produces the next weekly snapshot. The input state is never
// mutated; identical (state, seed) pairs produce identical outputs.
func AdvanceWeek(state *game.GameState, r *rng.Source) (game.GameState, WeekReport) {
	cur := state.Clone()
	report := WeekReport{Season: cur.Season, Week: cur.Week}

	// Terminal entries from last week have been read by everyone who
	// cares; drop them from the active pool now.
	prunePool(&cur.Pool)

	// Season boundary: reset the season counters and process lapsed
	// contracts before anything else moves.
	if cur.Week == 1 {
		cur.Pool.TotalReleasedThisSeason = 0
		cur.Pool.TotalSignedThisSeason = 0
		cur.Pool.TotalRetiredThisSeason = 0

		exp := pool.ProcessContractExpiries(&cur, r)
		cur.Players = exp.Players
		cur.Pool.Agents = append(cur.Pool.Agents, exp.Released...)
		cur.Pool.TotalReleasedThisSeason += len(exp.Released)
		cur.Pool.TotalRetiredThisSeason += len(exp.Retired)
		report.Renewals = exp.Renewals
		report.Retired = exp.Retired
		for _, a := range exp.Released {
			report.Released = append(report.Released, a.PlayerID)
		}
		report.Messages = append(report.Messages, exp.Messages...)

		slog.Info("season boundary processed",
			"season", cur.Season,
			"renewals", len(exp.Renewals),
			"released", len(exp.Released),
			"retired", len(exp.Retired),
		)
	}

	// Pool tick: decay, NPC competition, expiry, trickle releases.
	tick := pool.Tick(&cur, r)
	cur.Pool = tick.Pool
	report.NPCSignings = tick.NPCSignings
	report.MidSeasonReleases = tick.MidSeasonReleases
	report.RemovedPlayerIDs = tick.RemovedPlayerIDs
	report.Messages = append(report.Messages, tick.Messages...)

	for _, id := range tick.MidSeasonReleases {
		setPlayerClub(&cur, id, 0, 0, 0)
	}
	for _, s := range tick.NPCSignings {
		setPlayerClub(&cur, s.PlayerID, s.ClubID, s.Wage, cur.Season+npcContractSeasons)
	}

	// Discovery: the player's scout sweeps the post-tick pool.
	disc := discovery.DiscoverFreeAgents(&cur, r)
	cur.Pool = disc.Pool
	report.NewDiscoveries = disc.NewDiscoveries
	report.Messages = append(report.Messages, disc.Messages...)

	// Rival directory: each rival advances against this week's snapshot.
	dir := rivals.ProcessWeek(&cur, r)
	cur.Rivals = dir.Rivals
	report.RivalActivities = dir.Activities
	report.Messages = append(report.Messages, dir.Messages...)

	for _, s := range dir.Signings {
		// A player can only be signed once per week: an NPC club or an
		// earlier rival in directory order wins the race. Losing bids
		// vanish without a trace, so the player is never told about a
		// signing that did not happen.
		if signedThisWeek(&report, s.PlayerID) {
			continue
		}
		report.RivalSignings = append(report.RivalSignings, s)
		report.RivalActivities = append(report.RivalActivities, rivals.Activity{
			RivalID: s.RivalID, PlayerID: s.PlayerID, Week: cur.AbsoluteWeek(), Kind: "signing",
		})
		report.Messages = append(report.Messages, rivals.SigningMessage(&cur, s))
		applyRivalSigning(&cur, s)
	}

	// A player signed anywhere this week is off every rival's board.
	for _, s := range report.NPCSignings {
		clearRivalTarget(&cur, s.PlayerID)
	}
	for _, s := range report.RivalSignings {
		clearRivalTarget(&cur, s.PlayerID)
	}

	cur.Week++
	if cur.Week > game.WeeksPerSeason {
		cur.Week = 1
		cur.Season++
	}

	return cur, report
}

// signedThisWeek reports whether a player was already signed by an NPC
// club or a rival earlier in this week's resolution.
func signedThisWeek(report *WeekReport, id game.PlayerID) bool {
	for _, s := range report.NPCSignings {
		if s.PlayerID == id {
			return true
		}
	}
	for _, s := range report.RivalSignings {
		if s.PlayerID == id {
			return true
		}
	}
	return false
}

// prunePool removes terminal entries, keeping the active pool to agents
// still on the market.
func prunePool(p *game.FreeAgentPool) {
	kept := p.Agents[:0]
	for _, a := range p.Agents {
		if a.Status == game.StatusAvailable {
			kept = append(kept, a)
		}
	}
	p.Agents = kept
}

func setPlayerClub(state *game.GameState, id game.PlayerID, club game.ClubID, wage, expiry int) {
	for i := range state.Players {
		if state.Players[i].ID != id {
			continue
		}
		state.Players[i].ClubID = club
		if club != 0 {
			state.Players[i].Wage = wage
			state.Players[i].ContractExpiry = expiry
		}
		return
	}
}

func applyRivalSigning(state *game.GameState, s rivals.Signing) {
	wage := 0
	if a, ok := state.Pool.Agent(s.PlayerID); ok {
		wage = a.WageExpectation
	} else if p, ok := state.PlayerByID(s.PlayerID); ok {
		wage = p.Wage
	}
	setPlayerClub(state, s.PlayerID, s.ClubID, wage, state.Season+npcContractSeasons)

	for i := range state.Pool.Agents {
		a := &state.Pool.Agents[i]
		if a.PlayerID == s.PlayerID && a.Status == game.StatusAvailable {
			a.Status = game.StatusSigned
			a.SignedBy = s.ClubID
			state.Pool.TotalSignedThisSeason++
		}
	}
}

// clearRivalTarget strips a signed player from every rival's book.
func clearRivalTarget(state *game.GameState, id game.PlayerID) {
	for i := range state.Rivals {
		rv := &state.Rivals[i]
		kept := rv.TargetPlayerIDs[:0]
		for _, t := range rv.TargetPlayerIDs {
			if t != id {
				kept = append(kept, t)
			}
		}
		rv.TargetPlayerIDs = kept
		delete(rv.ScoutingProgress, id)
		if rv.CurrentTarget == id {
			rv.CurrentTarget = 0
			rv.ReportDeadline = 0
		}
	}
}
