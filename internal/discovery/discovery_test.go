package discovery_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/talgya/touchline/internal/discovery"
	"github.com/talgya/touchline/internal/game"
	"github.com/talgya/touchline/internal/rng"
)

func discoveryState(fam map[string]int, contacts ...game.Contact) game.GameState {
	return game.GameState{
		Season:   1,
		Week:     4,
		Contacts: contacts,
		Players:  []game.Player{{ID: 1, Name: "Mikkel Larsen", Country: "NED"}},
		Scout: game.Scout{
			ClubID:             1,
			Specialization:     game.SpecFirstTeam,
			CountryFamiliarity: fam,
		},
		Pool: game.FreeAgentPool{
			Agents: []game.FreeAgent{{
				PlayerID: 1, Country: "NED", Age: 27, CurrentAbility: 55,
				WeeksInPool: 1, MaxWeeksInPool: 16,
				Status: game.StatusAvailable,
			}},
		},
	}
}

func TestDiscoveryGating(t *testing.T) {
	Convey("Given a scout with no familiarity and no contacts in the country", t, func() {
		Convey("Then the agent is never discovered, whatever the dice say", func() {
			for seed := int64(0); seed < 1000; seed++ {
				state := discoveryState(map[string]int{"NED": 0})
				res := discovery.DiscoverFreeAgents(&state, rng.New(seed))
				So(len(res.NewDiscoveries), ShouldEqual, 0)
				a, _ := res.Pool.Agent(1)
				So(a.DiscoveredByScout, ShouldBeFalse)
			}
		})
	})

	Convey("Given familiarity just below the basic tier", t, func() {
		Convey("Then the familiarity path stays closed", func() {
			for seed := int64(0); seed < 1000; seed++ {
				state := discoveryState(map[string]int{"NED": game.BasicFamiliarity - 1})
				res := discovery.DiscoverFreeAgents(&state, rng.New(seed))
				So(len(res.NewDiscoveries), ShouldEqual, 0)
			}
		})
	})

	Convey("Given basic familiarity", t, func() {
		Convey("Then the agent is eventually discovered through the network", func() {
			found := false
			for seed := int64(0); seed < 500 && !found; seed++ {
				state := discoveryState(map[string]int{"NED": game.BasicFamiliarity})
				res := discovery.DiscoverFreeAgents(&state, rng.New(seed))
				if len(res.NewDiscoveries) == 0 {
					continue
				}
				found = true
				So(res.NewDiscoveries[0], ShouldEqual, game.PlayerID(1))
				a, _ := res.Pool.Agent(1)
				So(a.DiscoveredByScout, ShouldBeTrue)
				So(a.DiscoverySource, ShouldEqual, game.SourceNetwork)
				So(len(res.Messages), ShouldEqual, 1)
				So(res.Messages[0].Title, ShouldContainSubstring, "Mikkel Larsen")
			}
			So(found, ShouldBeTrue)
		})
	})
}

func TestContactBypass(t *testing.T) {
	Convey("Given zero familiarity but a warm agent contact in the country", t, func() {
		contact := game.Contact{ID: 5, Name: "Ruud Bakker", Type: game.ContactAgent, Country: "NED", Relationship: 90}

		Convey("Then the contact path can still discover the agent", func() {
			found := false
			for seed := int64(0); seed < 500 && !found; seed++ {
				state := discoveryState(map[string]int{"NED": 0}, contact)
				res := discovery.DiscoverFreeAgents(&state, rng.New(seed))
				if len(res.NewDiscoveries) == 0 {
					continue
				}
				found = true
				a, _ := res.Pool.Agent(1)
				So(a.DiscoverySource, ShouldEqual, game.SourceContact)
				So(res.Messages[0].Body, ShouldContainSubstring, "Ruud Bakker")
			}
			So(found, ShouldBeTrue)
		})
	})

	Convey("Given only a cold contact", t, func() {
		contact := game.Contact{ID: 5, Name: "Cold", Type: game.ContactAgent, Country: "NED", Relationship: 10}

		Convey("Then the contact path never opens", func() {
			for seed := int64(0); seed < 500; seed++ {
				state := discoveryState(map[string]int{"NED": 0}, contact)
				res := discovery.DiscoverFreeAgents(&state, rng.New(seed))
				So(len(res.NewDiscoveries), ShouldEqual, 0)
			}
		})
	})

	Convey("Given a sporting director contact", t, func() {
		contact := game.Contact{ID: 5, Name: "SD", Type: game.ContactSportingDirector, Country: "NED", Relationship: 90}

		Convey("Then they never tip directly, only boost the first-team path", func() {
			for seed := int64(0); seed < 500; seed++ {
				state := discoveryState(map[string]int{"NED": 0}, contact)
				res := discovery.DiscoverFreeAgents(&state, rng.New(seed))
				So(len(res.NewDiscoveries), ShouldEqual, 0)
			}
		})
	})
}

func TestRegionalTerritory(t *testing.T) {
	Convey("Given a regional scout whose territory covers the country", t, func() {
		Convey("Then discoveries carry the territory source", func() {
			found := false
			for seed := int64(0); seed < 500 && !found; seed++ {
				state := discoveryState(map[string]int{"NED": 50})
				state.Scout.Specialization = game.SpecRegional
				state.Scout.Territories = []string{"NED"}
				res := discovery.DiscoverFreeAgents(&state, rng.New(seed))
				if len(res.NewDiscoveries) == 0 {
					continue
				}
				found = true
				a, _ := res.Pool.Agent(1)
				So(a.DiscoverySource, ShouldEqual, game.SourceTerritory)
			}
			So(found, ShouldBeTrue)
		})
	})
}

func TestDiscoveryIdempotence(t *testing.T) {
	Convey("Given an already-discovered agent", t, func() {
		Convey("Then the pass never touches it again", func() {
			for seed := int64(0); seed < 200; seed++ {
				state := discoveryState(map[string]int{"NED": 80})
				state.Pool.Agents[0].DiscoveredByScout = true
				state.Pool.Agents[0].DiscoverySource = game.SourceData
				res := discovery.DiscoverFreeAgents(&state, rng.New(seed))
				So(len(res.NewDiscoveries), ShouldEqual, 0)
				a, _ := res.Pool.Agent(1)
				So(a.DiscoverySource, ShouldEqual, game.SourceData)
			}
		})
	})

	Convey("Given a signed agent", t, func() {
		Convey("Then it is skipped even with perfect familiarity", func() {
			for seed := int64(0); seed < 200; seed++ {
				state := discoveryState(map[string]int{"NED": 100})
				state.Pool.Agents[0].Status = game.StatusSigned
				res := discovery.DiscoverFreeAgents(&state, rng.New(seed))
				So(len(res.NewDiscoveries), ShouldEqual, 0)
			}
		})
	})

	Convey("Given identical seeds", t, func() {
		Convey("Then the pass is deterministic", func() {
			a := discoveryState(map[string]int{"NED": 60})
			b := discoveryState(map[string]int{"NED": 60})
			So(discovery.DiscoverFreeAgents(&a, rng.New(4)), ShouldResemble,
				discovery.DiscoverFreeAgents(&b, rng.New(4)))
		})
	})
}

func TestVisibleFreeAgents(t *testing.T) {
	Convey("Given a pool of mixed agents", t, func() {
		pool := game.FreeAgentPool{Agents: []game.FreeAgent{
			{PlayerID: 1, Country: "NED", Status: game.StatusAvailable},
			{PlayerID: 2, Country: "BRA", Status: game.StatusAvailable},
			{PlayerID: 3, Country: "BRA", Status: game.StatusAvailable, DiscoveredByScout: true},
			{PlayerID: 4, Country: "NED", Status: game.StatusSigned, DiscoveredByScout: true},
		}}
		fam := map[string]int{"NED": 40, "BRA": 5}

		Convey("Then familiarity or discovery grants visibility, but never to settled agents", func() {
			visible := discovery.VisibleFreeAgents(pool, fam)
			ids := make([]game.PlayerID, 0, len(visible))
			for _, a := range visible {
				ids = append(ids, a.PlayerID)
			}
			So(ids, ShouldResemble, []game.PlayerID{1, 3})
		})
	})
}

func TestProcessContactFreeAgentTip(t *testing.T) {
	Convey("Given a contact tip", t, func() {
		contact := game.Contact{ID: 5, Name: "Tipster", Type: game.ContactAgent, Country: "NED", Relationship: 70}
		base := game.FreeAgentPool{Agents: []game.FreeAgent{
			{PlayerID: 1, Country: "NED", Status: game.StatusAvailable},
			{PlayerID: 2, Country: "NED", Status: game.StatusAvailable, DiscoveredByScout: true, DiscoverySource: game.SourceData},
		}}

		Convey("Then a valid tip marks the agent found via the contact", func() {
			out := discovery.ProcessContactFreeAgentTip(base, 1, contact)
			a, _ := out.Agent(1)
			So(a.DiscoveredByScout, ShouldBeTrue)
			So(a.DiscoverySource, ShouldEqual, game.SourceContact)

			orig, _ := base.Agent(1)
			So(orig.DiscoveredByScout, ShouldBeFalse)
		})

		Convey("Then an unknown player leaves the pool unchanged", func() {
			out := discovery.ProcessContactFreeAgentTip(base, 99, contact)
			So(out, ShouldResemble, base)
		})

		Convey("Then an already-discovered agent keeps its original source", func() {
			out := discovery.ProcessContactFreeAgentTip(base, 2, contact)
			a, _ := out.Agent(2)
			So(a.DiscoverySource, ShouldEqual, game.SourceData)
		})
	})
}
