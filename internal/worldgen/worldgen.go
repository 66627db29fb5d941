// Package worldgen builds the initial simulated world: leagues, clubs, a
// player population whose talent distribution follows a seeded noise field
// over (country, cohort), a season fixture schedule, the scout's contact
// network, and the rival directory. Everything derives from one seed.
package worldgen

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/touchline/internal/game"
	"github.com/talgya/touchline/internal/rng"
)

// GenConfig holds world generation parameters.
type GenConfig struct {
	Seed           int64
	Countries      []string
	ClubsPerLeague int
	SquadSize      int
	Contacts       int
	Rivals         int
}

// DefaultGenConfig returns a world big enough to exercise the whole
// economy without drowning a test run.
func DefaultGenConfig(seed int64) GenConfig {
	return GenConfig{
		Seed:           seed,
		Countries:      []string{"ENG", "ESP", "ITA", "GER", "FRA", "BRA", "ARG", "NED"},
		ClubsPerLeague: 12,
		SquadSize:      20,
		Contacts:       14,
		Rivals:         6,
	}
}

// SmallTestConfig returns a tiny world for rapid iteration and tests.
func SmallTestConfig(seed int64) GenConfig {
	return GenConfig{
		Seed:           seed,
		Countries:      []string{"ENG", "ESP"},
		ClubsPerLeague: 4,
		SquadSize:      8,
		Contacts:       5,
		Rivals:         3,
	}
}

// Generate creates a complete starting snapshot, deterministic from the
// config seed.
func Generate(cfg GenConfig) game.GameState {
	r := rng.New(cfg.Seed)

	// The talent field shapes how gifted each country's cohorts are:
	// sampling a smooth noise surface instead of independent draws gives
	// countries recognizable golden generations.
	talent := opensimplex.NewNormalized(cfg.Seed + 1)

	state := game.GameState{
		Seed:   cfg.Seed,
		Season: 1,
		Week:   1,
	}

	var nextPlayer game.PlayerID = 1
	var nextClub game.ClubID = 1

	for li, country := range cfg.Countries {
		league := game.League{
			ID:      game.LeagueID(li + 1),
			Name:    country + " Premier Division",
			Country: country,
			Tier:    1,
		}
		state.Leagues = append(state.Leagues, league)

		for ci := 0; ci < cfg.ClubsPerLeague; ci++ {
			club := game.Club{
				ID:         nextClub,
				Name:       clubName(r),
				LeagueID:   league.ID,
				Country:    country,
				Reputation: r.NextInt(25, 90),
				Budget:     r.NextInt(800, 6000),
			}
			nextClub++
			state.Clubs = append(state.Clubs, club)

			for pi := 0; pi < cfg.SquadSize; pi++ {
				state.Players = append(state.Players,
					generatePlayer(r, talent, nextPlayer, club, li, pi))
				nextPlayer++
			}
		}
	}

	state.Scout = generateScout(r, cfg, &state)
	state.Contacts = generateContacts(r, cfg)
	state.Fixtures = generateFixtures(r, &state)
	state.Rivals = GenerateRivals(r, cfg.Rivals, &state)

	return state
}

// generatePlayer rolls one squad member. The noise field contributes the
// country/cohort talent baseline; the RNG adds individual spread.
func generatePlayer(r *rng.Source, talent opensimplex.Noise, id game.PlayerID, club game.Club, countryIdx, cohortIdx int) game.Player {
	base := talent.Eval2(float64(countryIdx)*0.7, float64(cohortIdx)*0.35) // 0..1

	ability := int(base*40) + r.NextInt(20, 55)
	if ability > 95 {
		ability = 95
	}
	potential := ability + r.NextInt(0, 25)
	if potential > 99 {
		potential = 99
	}

	age := int(r.Gaussian(26, 4.5))
	if age < 16 {
		age = 16
	}
	if age > 38 {
		age = 38
	}

	return game.Player{
		ID:               id,
		Name:             playerName(r),
		Age:              age,
		Country:          club.Country,
		CurrentAbility:   ability,
		PotentialAbility: potential,
		Form:             r.NextFloat(-1, 1),
		Wage:             200 + ability*ability/5,
		ClubID:           club.ID,
		ContractExpiry:   r.NextInt(1, 4),
	}
}

func generateScout(r *rng.Source, cfg GenConfig, state *game.GameState) game.Scout {
	home := cfg.Countries[0]
	scout := game.Scout{
		Name:           "You",
		Level:          2,
		Reputation:     r.NextInt(20, 45),
		Specialization: game.SpecFirstTeam,
		CountryFamiliarity: map[string]int{
			home: r.NextInt(55, 80),
		},
	}
	// Partial familiarity with neighbors, nothing further afield.
	for i, c := range cfg.Countries[1:] {
		if i < 2 {
			scout.CountryFamiliarity[c] = r.NextInt(15, 45)
		}
	}
	if len(state.Clubs) > 0 {
		scout.ClubID = state.Clubs[r.NextInt(0, len(state.Clubs)-1)].ID
	}
	return scout
}

func generateContacts(r *rng.Source, cfg GenConfig) []game.Contact {
	types := []game.ContactType{
		game.ContactAgent, game.ContactJournalist, game.ContactScout,
		game.ContactSportingDirector, game.ContactCoach,
	}
	contacts := make([]game.Contact, 0, cfg.Contacts)
	for i := 0; i < cfg.Contacts; i++ {
		contacts = append(contacts, game.Contact{
			ID:           game.ContactID(i + 1),
			Name:         playerName(r),
			Type:         rng.Pick(r, types),
			Country:      rng.Pick(r, cfg.Countries),
			Relationship: r.NextInt(10, 80),
		})
	}
	return contacts
}

// generateFixtures builds a single-round schedule per league: each week
// pairs clubs off after a seeded shuffle, so every club plays most weeks.
func generateFixtures(r *rng.Source, state *game.GameState) []game.Fixture {
	var fixtures []game.Fixture
	var nextID game.FixtureID = 1

	for _, league := range state.Leagues {
		var clubs []game.ClubID
		for _, c := range state.Clubs {
			if c.LeagueID == league.ID {
				clubs = append(clubs, c.ID)
			}
		}
		if len(clubs) < 2 {
			continue
		}

		for week := 1; week <= game.WeeksPerSeason; week++ {
			shuffled := append([]game.ClubID(nil), clubs...)
			rng.Shuffle(r, shuffled)
			for i := 0; i+1 < len(shuffled); i += 2 {
				fixtures = append(fixtures, game.Fixture{
					ID:     nextID,
					Week:   week,
					HomeID: shuffled[i],
					AwayID: shuffled[i+1],
				})
				nextID++
			}
		}
	}
	return fixtures
}
