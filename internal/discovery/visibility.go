package discovery

import (
	"github.com/talgya/touchline/internal/game"
)

// VisibleFreeAgents is the read-only projection the presentation layer
// consumes: discovered agents always pass, undiscovered ones only when the
// scout's familiarity with their country has reached the basic tier.
func VisibleFreeAgents(pool game.FreeAgentPool, countryFamiliarity map[string]int) []game.FreeAgent {
	var out []game.FreeAgent
	for _, a := range pool.Agents {
		if a.Status != game.StatusAvailable {
			continue
		}
		if a.DiscoveredByScout || countryFamiliarity[a.Country] >= game.BasicFamiliarity {
			out = append(out, a)
		}
	}
	return out
}

// ProcessContactFreeAgentTip marks an agent discovered on the strength of a
// direct contact tip. Unknown player IDs leave the pool unchanged; callers
// get the untouched pool back rather than an error.
func ProcessContactFreeAgentTip(pool game.FreeAgentPool, playerID game.PlayerID, contact game.Contact) game.FreeAgentPool {
	for i, a := range pool.Agents {
		if a.PlayerID != playerID {
			continue
		}
		if a.Status != game.StatusAvailable || a.DiscoveredByScout {
			return pool
		}
		out := pool.Clone()
		out.Agents[i].DiscoveredByScout = true
		out.Agents[i].DiscoverySource = game.SourceContact
		return out
	}
	return pool
}
