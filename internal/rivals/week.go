// Package rivals implements the autonomous rival scouts that compete with
// the player for the same pool of players: personality-driven target
// selection, match-by-match scouting progress, report submission, signing
// resolution, and the poach/threat bookkeeping the player sees.
package rivals

import (
	"fmt"

	"github.com/talgya/touchline/internal/game"
	"github.com/talgya/touchline/internal/inbox"
	"github.com/talgya/touchline/internal/rng"
)

// Weekly step tuning.
const (
	signingBase         = 0.25
	signingQualityStep  = 0.05 // × (quality − 1), 0–0.2
	signingProgressMax  = 0.10 // × progress/completion
	discoveryChance     = 0.20
	poachWarningChance  = 0.10
	hotProspectAbility  = 75 // 3× selection bias above this
	hotProspectWeight   = 3.0
	maxReputationDrift  = 2
	slowProgressPerWeek = 1 // quality < 4
	fastProgressPerWeek = 2 // quality ≥ 4
)

// Signing records a rival's club signing a player away from the market.
type Signing struct {
	PlayerID game.PlayerID
	ClubID   game.ClubID
	RivalID  game.RivalID
}

// Activity is a visible rival action for the week log.
type Activity struct {
	RivalID  game.RivalID
	PlayerID game.PlayerID
	Week     int
	Kind     string // "report", "signing"
}

// WeekResult is the outcome of one rival's weekly step. Signing is a
// claim, not a fact: the caller resolves same-week races against NPC
// clubs and earlier rivals, and announces only the signings that stand.
type WeekResult struct {
	Rival      game.RivalScout
	Signing    *Signing
	Activities []Activity
	Messages   []inbox.Message
}

// DirectoryResult aggregates the weekly step over every rival, in
// directory order.
type DirectoryResult struct {
	Rivals     []game.RivalScout
	Signings   []Signing
	Activities []Activity
	Messages   []inbox.Message
}

// ProcessWeek advances every rival one week against the same prior
// snapshot, in directory order, drawing RNG strictly in that order.
func ProcessWeek(state *game.GameState, r *rng.Source) DirectoryResult {
	res := DirectoryResult{Rivals: make([]game.RivalScout, len(state.Rivals))}
	for i := range state.Rivals {
		wr := ProcessRivalScoutWeek(state, state.Rivals[i], r)
		res.Rivals[i] = wr.Rival
		if wr.Signing != nil {
			res.Signings = append(res.Signings, *wr.Signing)
		}
		res.Activities = append(res.Activities, wr.Activities...)
		res.Messages = append(res.Messages, wr.Messages...)
	}
	return res
}

// ProcessRivalScoutWeek runs one rival's weekly state machine: acquire a
// target, attend a fixture, resolve a report/signing, discover a new
// target, recompute the poach intersection, and drift reputation. A target
// discovered this week does count toward this week's poach check — the
// discovery step deliberately runs before the bookkeeping step.
func ProcessRivalScoutWeek(state *game.GameState, rival game.RivalScout, r *rng.Source) WeekResult {
	res := WeekResult{Rival: rival.Clone()}
	rv := &res.Rival
	week := state.AbsoluteWeek()

	// 1. Target acquisition (idle only).
	if rv.CurrentTarget == 0 {
		acquireTarget(state, rv, r, week)
	}

	// 2. Match attendance: progress accrues only when the target's club
	// actually plays this week.
	attendFixture(state, rv)

	// 3. Report and signing resolution.
	if rv.CurrentTarget != 0 {
		progress := rv.ScoutingProgress[rv.CurrentTarget]
		if progress >= game.ScoutingCompletion || (rv.ReportDeadline != 0 && week >= rv.ReportDeadline) {
			resolveReport(state, rv, r, week, progress, &res)
		}
	}

	// 4. Discovery of a new target.
	if r.Chance(discoveryChance) && len(rv.TargetPlayerIDs) < game.MaxRivalTargets {
		discoverTarget(state, rv, r)
	}

	// 5. Poach bookkeeping against the player's reported players.
	updateCompetition(state, rv, r, &res)

	// 6. Reputation drift.
	rv.Reputation += r.NextInt(0, maxReputationDrift)
	if rv.Reputation > 100 {
		rv.Reputation = 100
	}

	return res
}

// acquireTarget selects the rival's next focus from its target list by
// personality policy. Target IDs that no longer resolve are skipped.
func acquireTarget(state *game.GameState, rv *game.RivalScout, r *rng.Source, week int) {
	var candidates []game.Player
	for _, id := range rv.TargetPlayerIDs {
		p, ok := state.PlayerByID(id)
		if !ok || p.Retired {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return
	}

	var pick game.Player
	switch rv.Personality {
	case game.PersonalityAggressive:
		pick = bestBy(candidates, func(p game.Player) float64 {
			return float64(p.CurrentAbility)
		})
	case game.PersonalityMethodical:
		pick = bestBy(candidates, func(p game.Player) float64 {
			return float64(p.PotentialAbility - p.CurrentAbility)
		})
	case game.PersonalityLucky:
		pick = bestBy(candidates, func(p game.Player) float64 {
			return float64(p.PotentialAbility) - 1.5*float64(p.CurrentAbility)
		})
	default: // connected: weighted random, biased by ability
		weighted := make([]rng.Weighted[game.Player], len(candidates))
		for i, p := range candidates {
			weighted[i] = rng.Weighted[game.Player]{Item: p, Weight: float64(p.CurrentAbility) + 1}
		}
		pick = rng.PickWeighted(r, weighted)
	}

	rv.CurrentTarget = pick.ID
	rv.ReportDeadline = week + deadlineWeeks(rv.Aggressiveness)
}

// deadlineWeeks maps aggressiveness to a 2–4 week report deadline; pushier
// scouts file sooner.
func deadlineWeeks(aggressiveness float64) int {
	weeks := 4 - int(aggressiveness*2)
	if weeks < 2 {
		weeks = 2
	}
	if weeks > 4 {
		weeks = 4
	}
	return weeks
}

func bestBy(players []game.Player, score func(game.Player) float64) game.Player {
	best := players[0]
	bestScore := score(best)
	for _, p := range players[1:] {
		if s := score(p); s > bestScore {
			best = p
			bestScore = s
		}
	}
	return best
}

// attendFixture marks the rival present at the target's fixture this week
// and increments scouting progress, capped at the completion threshold.
func attendFixture(state *game.GameState, rv *game.RivalScout) {
	rv.LastSeenAtFixture = 0
	if rv.CurrentTarget == 0 {
		return
	}
	target, ok := state.PlayerByID(rv.CurrentTarget)
	if !ok || target.ClubID == 0 {
		return
	}
	fixture, ok := state.ClubFixtureForWeek(target.ClubID, state.Week)
	if !ok {
		return
	}

	rv.LastSeenAtFixture = fixture.ID
	step := slowProgressPerWeek
	if rv.Quality >= 4 {
		step = fastProgressPerWeek
	}
	progress := rv.ScoutingProgress[rv.CurrentTarget] + step
	if progress > game.ScoutingCompletion {
		progress = game.ScoutingCompletion
	}
	if rv.ScoutingProgress == nil {
		rv.ScoutingProgress = make(map[game.PlayerID]int)
	}
	rv.ScoutingProgress[rv.CurrentTarget] = progress
}

// resolveReport submits the report and rolls the signing trial. Filing
// closes the file: the target leaves the rival's book whether or not the
// trial lands, so a failed bid never loops into a weekly re-report. The
// signing announcement is NOT emitted here — a same-week race can still
// void the signing, and only the caller knows who won.
func resolveReport(state *game.GameState, rv *game.RivalScout, r *rng.Source, week, progress int, res *WeekResult) {
	targetID := rv.CurrentTarget
	targetName := fmt.Sprintf("player %d", targetID)
	if p, ok := state.PlayerByID(targetID); ok {
		targetName = p.Name
	}

	res.Activities = append(res.Activities, Activity{
		RivalID: rv.ID, PlayerID: targetID, Week: week, Kind: "report",
	})
	res.Messages = append(res.Messages, inbox.New(
		state.Season, state.Week, inbox.KindRivalReport,
		fmt.Sprintf("%s files a report on %s", rv.Name, targetName),
		fmt.Sprintf("Word is %s has finished their assessment of %s.", rv.Name, targetName),
		targetID,
	))

	chance := signingBase +
		float64(rv.Quality-1)*signingQualityStep +
		float64(progress)/float64(game.ScoutingCompletion)*signingProgressMax
	if r.Chance(chance) {
		res.Signing = &Signing{PlayerID: targetID, ClubID: rv.ClubID, RivalID: rv.ID}
	}

	rv.TargetPlayerIDs = removeID(rv.TargetPlayerIDs, targetID)
	delete(rv.ScoutingProgress, targetID)
	rv.CurrentTarget = 0
	rv.ReportDeadline = 0
}

// SigningMessage builds the inbox announcement for a signing that
// survived same-week conflict resolution.
func SigningMessage(state *game.GameState, s Signing) inbox.Message {
	rivalName := fmt.Sprintf("rival %d", s.RivalID)
	for _, rv := range state.Rivals {
		if rv.ID == s.RivalID {
			rivalName = rv.Name
			break
		}
	}
	playerName := fmt.Sprintf("player %d", s.PlayerID)
	if p, ok := state.PlayerByID(s.PlayerID); ok {
		playerName = p.Name
	}
	clubName := "their club"
	if c, ok := state.ClubByID(s.ClubID); ok {
		clubName = c.Name
	}
	return inbox.New(
		state.Season, state.Week, inbox.KindRivalSigning,
		fmt.Sprintf("%s lands %s for %s", rivalName, playerName, clubName),
		fmt.Sprintf("%s beat you to it: %s has signed for %s.", rivalName, playerName, clubName),
		s.PlayerID,
	)
}

// discoverTarget adds one new weighted-random target, biased 3× toward
// hot prospects.
func discoverTarget(state *game.GameState, rv *game.RivalScout, r *rng.Source) {
	var weighted []rng.Weighted[game.PlayerID]
	for _, p := range state.Players {
		if p.Retired || p.ClubID == rv.ClubID || rv.HasTarget(p.ID) {
			continue
		}
		w := 1.0
		if p.CurrentAbility >= hotProspectAbility {
			w = hotProspectWeight
		}
		weighted = append(weighted, rng.Weighted[game.PlayerID]{Item: p.ID, Weight: w})
	}
	if len(weighted) == 0 {
		return
	}
	rv.TargetPlayerIDs = append(rv.TargetPlayerIDs, rng.PickWeighted(r, weighted))
}

// updateCompetition recomputes the target/report intersection and may fire
// a poach warning naming one shared player.
func updateCompetition(state *game.GameState, rv *game.RivalScout, r *rng.Source, res *WeekResult) {
	reported := make(map[game.PlayerID]bool)
	for _, id := range state.Scout.ReportedPlayerIDs() {
		reported[id] = true
	}

	rv.CompetingForPlayers = rv.CompetingForPlayers[:0]
	for _, id := range rv.TargetPlayerIDs {
		if reported[id] {
			rv.CompetingForPlayers = append(rv.CompetingForPlayers, id)
		}
	}

	if len(rv.CompetingForPlayers) == 0 {
		return
	}
	if !r.Chance(poachWarningChance) {
		return
	}

	shared := rng.Pick(r, rv.CompetingForPlayers)
	name := fmt.Sprintf("player %d", shared)
	if p, ok := state.PlayerByID(shared); ok {
		name = p.Name
	}
	res.Messages = append(res.Messages, inbox.New(
		state.Season, state.Week, inbox.KindPoachWarning,
		fmt.Sprintf("%s is circling %s", rv.Name, name),
		fmt.Sprintf("%s has been asking around about %s — one of your reported players.", rv.Name, name),
		shared,
	))
}

func removeID(ids []game.PlayerID, id game.PlayerID) []game.PlayerID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
