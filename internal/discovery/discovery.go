// Package discovery decides which free agents become visible to the
// player's scout each week. Visibility is gated by country familiarity and
// shaped by the scout's specialization; a warm contact in the right country
// can short-circuit the whole ladder.
package discovery

import (
	"fmt"

	"github.com/talgya/touchline/internal/game"
	"github.com/talgya/touchline/internal/inbox"
	"github.com/talgya/touchline/internal/rng"
)

// Discovery tuning.
const (
	contactMinRelationship = 30
	contactBase            = 0.02
	contactRelWeight       = 0.08 // × bestRelationship/100

	baseFirstTeam = 0.10
	baseRegional  = 0.12
	baseData      = 0.08
	baseYouth     = 0.06

	firstTeamContactBonus = 0.08
	regionalTerritory     = 0.20
	dataBonus             = 0.05
	youthScale            = 0.5
)

// Result is the outcome of one weekly discovery pass.
type Result struct {
	Pool           game.FreeAgentPool
	NewDiscoveries []game.PlayerID
	Messages       []inbox.Message
}

// DiscoverFreeAgents runs one discovery trial per undiscovered available
// agent, in pool order. Agents already discovered, or no longer available,
// are never touched.
func DiscoverFreeAgents(state *game.GameState, r *rng.Source) Result {
	res := Result{Pool: state.Pool.Clone()}

	for i := range res.Pool.Agents {
		a := &res.Pool.Agents[i]
		if a.Status != game.StatusAvailable || a.DiscoveredByScout {
			continue
		}

		// Contact path first: a well-connected insider bypasses
		// familiarity entirely.
		if best, ok := bestTipContact(state, a.Country); ok {
			p := contactBase + float64(best.Relationship)/100*contactRelWeight
			if r.Chance(p) {
				markDiscovered(state, a, game.SourceContact, best.Name, &res)
				continue
			}
		}

		fam := state.Scout.Familiarity(a.Country)
		if fam < game.BasicFamiliarity {
			continue // invisible until the scout knows the territory
		}

		prob, source := discoveryProbability(state, a.Country, fam)
		if r.Chance(prob) {
			markDiscovered(state, a, source, "", &res)
		}
	}

	return res
}

// bestTipContact returns the strongest qualifying contact in a country:
// agents, journalists, and scouts with relationship ≥ 30.
func bestTipContact(state *game.GameState, country string) (game.Contact, bool) {
	var best game.Contact
	found := false
	for _, c := range state.ContactsInCountry(country) {
		switch c.Type {
		case game.ContactAgent, game.ContactJournalist, game.ContactScout:
		default:
			continue
		}
		if c.Relationship < contactMinRelationship {
			continue
		}
		if !found || c.Relationship > best.Relationship {
			best = c
			found = true
		}
	}
	return best, found
}

// discoveryProbability computes the familiarity-path probability and the
// source tag a success would carry.
func discoveryProbability(state *game.GameState, country string, fam int) (float64, game.DiscoverySource) {
	scout := state.Scout
	var base float64
	source := game.SourceNetwork

	switch scout.Specialization {
	case game.SpecRegional:
		base = baseRegional
	case game.SpecData:
		base = baseData
		source = game.SourceData
	case game.SpecYouth:
		base = baseYouth
		source = game.SourceYouth
	default:
		base = baseFirstTeam
	}

	prob := base * (0.5 + float64(fam)/200)

	switch scout.Specialization {
	case game.SpecFirstTeam:
		if hasInsideContact(state, country) {
			prob += firstTeamContactBonus
		}
	case game.SpecRegional:
		if scout.CoversTerritory(country) {
			prob += regionalTerritory
			source = game.SourceTerritory
		}
	case game.SpecData:
		prob += dataBonus
	case game.SpecYouth:
		prob *= youthScale
	}

	return prob, source
}

// hasInsideContact reports whether the scout has an agent or sporting
// director in the country; first-team scouts lean on those relationships.
func hasInsideContact(state *game.GameState, country string) bool {
	for _, c := range state.ContactsInCountry(country) {
		if c.Type == game.ContactAgent || c.Type == game.ContactSportingDirector {
			return true
		}
	}
	return false
}

func markDiscovered(state *game.GameState, a *game.FreeAgent, source game.DiscoverySource, contactName string, res *Result) {
	a.DiscoveredByScout = true
	a.DiscoverySource = source
	res.NewDiscoveries = append(res.NewDiscoveries, a.PlayerID)

	name := fmt.Sprintf("player %d", a.PlayerID)
	if p, ok := state.PlayerByID(a.PlayerID); ok {
		name = p.Name
	}
	res.Messages = append(res.Messages, inbox.New(
		state.Season, state.Week, inbox.KindDiscovery,
		fmt.Sprintf("Free agent found: %s", name),
		sourceBody(source, name, a.Country, contactName),
		a.PlayerID,
	))
}

// sourceBody renders the source-specific message template.
func sourceBody(source game.DiscoverySource, name, country, contactName string) string {
	switch source {
	case game.SourceContact:
		return fmt.Sprintf("%s passed word that %s is available on a free in %s.", contactName, name, country)
	case game.SourceTerritory:
		return fmt.Sprintf("Your network in %s flagged %s as out of contract.", country, name)
	case game.SourceData:
		return fmt.Sprintf("The data desk surfaced %s (%s) in this week's free-agent sweep.", name, country)
	case game.SourceYouth:
		return fmt.Sprintf("Youth circuit chatter in %s points to %s being without a club.", country, name)
	default:
		return fmt.Sprintf("First-team sources report %s (%s) is looking for a new club.", name, country)
	}
}
