package game

// WeeksPerSeason is the length of one season in weekly ticks.
const WeeksPerSeason = 38

// GameState is the complete simulated state for one weekly tick. Systems
// treat it as immutable: each takes the prior snapshot plus an RNG and
// returns new values, and the orchestrator assembles the next snapshot.
type GameState struct {
	Seed   int64 `json:"seed"`
	Season int   `json:"season"` // 1-based
	Week   int   `json:"week"`   // 1..WeeksPerSeason

	Players  []Player  `json:"players"`
	Clubs    []Club    `json:"clubs"`
	Leagues  []League  `json:"leagues"`
	Contacts []Contact `json:"contacts"`
	Fixtures []Fixture `json:"fixtures"`

	Scout  Scout         `json:"scout"`
	Pool   FreeAgentPool `json:"pool"`
	Rivals []RivalScout  `json:"rivals"`
}

// AbsoluteWeek returns the monotonic week index across seasons, used for
// negotiation deadlines and rival report deadlines.
func (s *GameState) AbsoluteWeek() int {
	return (s.Season-1)*WeeksPerSeason + s.Week
}

// PlayerByID looks up a player. The bool is false when the ID is unknown;
// callers skip rather than error on a miss.
func (s *GameState) PlayerByID(id PlayerID) (Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// ClubByID looks up a club.
func (s *GameState) ClubByID(id ClubID) (Club, bool) {
	for _, c := range s.Clubs {
		if c.ID == id {
			return c, true
		}
	}
	return Club{}, false
}

// LeagueByID looks up a league.
func (s *GameState) LeagueByID(id LeagueID) (League, bool) {
	for _, l := range s.Leagues {
		if l.ID == id {
			return l, true
		}
	}
	return League{}, false
}

// ContactByID looks up a contact.
func (s *GameState) ContactByID(id ContactID) (Contact, bool) {
	for _, c := range s.Contacts {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

// FixtureByID looks up a fixture.
func (s *GameState) FixtureByID(id FixtureID) (Fixture, bool) {
	for _, f := range s.Fixtures {
		if f.ID == id {
			return f, true
		}
	}
	return Fixture{}, false
}

// FixturesForWeek returns the fixtures scheduled for a season week slot,
// in schedule order.
func (s *GameState) FixturesForWeek(week int) []Fixture {
	var out []Fixture
	for _, f := range s.Fixtures {
		if f.Week == week {
			out = append(out, f)
		}
	}
	return out
}

// ClubFixtureForWeek returns the fixture a club plays in a season week
// slot, if any.
func (s *GameState) ClubFixtureForWeek(club ClubID, week int) (Fixture, bool) {
	for _, f := range s.Fixtures {
		if f.Week == week && f.Involves(club) {
			return f, true
		}
	}
	return Fixture{}, false
}

// ContactsInCountry returns the scout's contacts based in a country, in
// directory order.
func (s *GameState) ContactsInCountry(country string) []Contact {
	var out []Contact
	for _, c := range s.Contacts {
		if c.Country == country {
			out = append(out, c)
		}
	}
	return out
}

// Clone deep-copies the snapshot. Systems that need to return an updated
// state start from a clone so the caller's snapshot stays intact.
func (s *GameState) Clone() GameState {
	out := *s
	out.Players = append([]Player(nil), s.Players...)
	out.Clubs = append([]Club(nil), s.Clubs...)
	out.Leagues = append([]League(nil), s.Leagues...)
	out.Contacts = append([]Contact(nil), s.Contacts...)
	out.Fixtures = append([]Fixture(nil), s.Fixtures...)
	out.Pool = s.Pool.Clone()

	out.Rivals = make([]RivalScout, len(s.Rivals))
	for i, r := range s.Rivals {
		out.Rivals[i] = r.Clone()
	}

	out.Scout = s.Scout
	out.Scout.Territories = append([]string(nil), s.Scout.Territories...)
	out.Scout.Reports = append([]ScoutReport(nil), s.Scout.Reports...)
	out.Scout.CountryFamiliarity = make(map[string]int, len(s.Scout.CountryFamiliarity))
	for k, v := range s.Scout.CountryFamiliarity {
		out.Scout.CountryFamiliarity[k] = v
	}
	return out
}
