package worldgen

import (
	"github.com/talgya/touchline/internal/game"
	"github.com/talgya/touchline/internal/rng"
)

// aggressivenessFor maps personality to the 0–1 aggressiveness scalar that
// drives report deadlines.
func aggressivenessFor(p game.Personality, r *rng.Source) float64 {
	switch p {
	case game.PersonalityAggressive:
		return r.NextFloat(0.7, 1.0)
	case game.PersonalityMethodical:
		return r.NextFloat(0.1, 0.4)
	case game.PersonalityConnected:
		return r.NextFloat(0.4, 0.7)
	default: // lucky
		return r.NextFloat(0.3, 0.6)
	}
}

func budgetTierFor(club game.Club) game.BudgetTier {
	switch {
	case club.Budget >= 4000:
		return game.BudgetHigh
	case club.Budget >= 1800:
		return game.BudgetMedium
	default:
		return game.BudgetLow
	}
}

// GenerateRivals creates the rival directory: each rival employed by a
// distinct NPC club, with exactly one nemesis — the highest quality,
// reputation breaking ties. A world with no eligible employer (for example
// a single-club league) yields no rivals rather than an error.
func GenerateRivals(r *rng.Source, count int, state *game.GameState) []game.RivalScout {
	var employers []game.Club
	for _, c := range state.Clubs {
		if c.ID != state.Scout.ClubID {
			employers = append(employers, c)
		}
	}
	if len(employers) == 0 || count <= 0 {
		return nil
	}
	rng.Shuffle(r, employers)
	if count > len(employers) {
		count = len(employers)
	}

	personalities := []game.Personality{
		game.PersonalityAggressive, game.PersonalityMethodical,
		game.PersonalityConnected, game.PersonalityLucky,
	}
	specs := []game.Specialization{
		game.SpecFirstTeam, game.SpecRegional, game.SpecData, game.SpecYouth,
	}

	rivalsList := make([]game.RivalScout, 0, count)
	for i := 0; i < count; i++ {
		personality := rng.Pick(r, personalities)
		employer := employers[i]

		// Every rival opens the game with a couple of names on the board.
		var candidates []game.PlayerID
		for _, p := range state.Players {
			if p.ClubID != employer.ID {
				candidates = append(candidates, p.ID)
			}
		}
		rng.Shuffle(r, candidates)
		targets := candidates
		if len(targets) > 2 {
			targets = append([]game.PlayerID(nil), candidates[:2]...)
		}

		rivalsList = append(rivalsList, game.RivalScout{
			ID:               game.RivalID(i + 1),
			Name:             playerName(r),
			Quality:          r.NextInt(1, 5),
			Specialization:   rng.Pick(r, specs),
			ClubID:           employer.ID,
			Reputation:       r.NextInt(20, 70),
			Personality:      personality,
			Aggressiveness:   aggressivenessFor(personality, r),
			BudgetTier:       budgetTierFor(employer),
			TargetPlayerIDs:  targets,
			ScoutingProgress: make(map[game.PlayerID]int),
		})
	}

	// Exactly one nemesis: highest quality, reputation tiebreak.
	nemesis := 0
	for i := 1; i < len(rivalsList); i++ {
		a, b := rivalsList[i], rivalsList[nemesis]
		if a.Quality > b.Quality || (a.Quality == b.Quality && a.Reputation > b.Reputation) {
			nemesis = i
		}
	}
	rivalsList[nemesis].IsNemesis = true

	return rivalsList
}
