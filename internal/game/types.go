// Package game holds the simulated world's state model: the externally-owned
// records the economy reads (players, clubs, leagues, contacts, fixtures),
// the collections it owns (free agent pool, rival directory, the player's
// scout), and the GameState snapshot that ties them together. Behavior lives
// in the system packages (pool, discovery, negotiation, rivals, engine);
// this package is data plus lookup helpers.
package game

// Typed identifiers. Zero means "none" for optional references.
type (
	PlayerID  uint64
	ClubID    uint64
	LeagueID  uint64
	ContactID uint64
	FixtureID uint64
	RivalID   uint64
)

// Specialization is a scout's area of expertise. It gates how free agents
// are discovered and which bonuses apply.
type Specialization uint8

const (
	SpecFirstTeam Specialization = iota
	SpecRegional
	SpecData
	SpecYouth
)

// String returns the specialization's display name.
func (s Specialization) String() string {
	switch s {
	case SpecFirstTeam:
		return "first-team"
	case SpecRegional:
		return "regional"
	case SpecData:
		return "data"
	case SpecYouth:
		return "youth"
	default:
		return "unknown"
	}
}

// ContactType classifies a contact in the scout's network.
type ContactType uint8

const (
	ContactAgent ContactType = iota
	ContactJournalist
	ContactScout
	ContactSportingDirector
	ContactCoach
)

// Player is an externally-owned record. The economy reads it by ID and
// only ever writes the club assignment, wage, and contract fields when a
// signing is committed.
type Player struct {
	ID               PlayerID `json:"id"`
	Name             string   `json:"name"`
	Age              int      `json:"age"`
	Country          string   `json:"country"`
	CurrentAbility   int      `json:"current_ability"`   // 0–100
	PotentialAbility int      `json:"potential_ability"` // 0–100, ≥ current
	Form             float64  `json:"form"`              // -1.0 to 1.0
	Wage             int      `json:"wage"`
	ClubID           ClubID   `json:"club_id"`        // 0 = no club
	ContractExpiry   int      `json:"contract_expiry"` // season the contract lapses
	Retired          bool     `json:"retired"`
}

// Club is an externally-owned record.
type Club struct {
	ID         ClubID   `json:"id"`
	Name       string   `json:"name"`
	LeagueID   LeagueID `json:"league_id"`
	Country    string   `json:"country"`
	Reputation int      `json:"reputation"` // 0–100
	Budget     int      `json:"budget"`     // weekly wage headroom
}

// League is an externally-owned record.
type League struct {
	ID      LeagueID `json:"id"`
	Name    string   `json:"name"`
	Country string   `json:"country"`
	Tier    int      `json:"tier"`
}

// Contact is a member of the scout's network. Relationship is 0–100.
type Contact struct {
	ID           ContactID   `json:"id"`
	Name         string      `json:"name"`
	Type         ContactType `json:"type"`
	Country      string      `json:"country"`
	Relationship int         `json:"relationship"`
}

// Fixture is one scheduled match. The schedule is a weekly pattern reused
// every season, so Week is the 1..WeeksPerSeason slot, not an absolute week.
type Fixture struct {
	ID     FixtureID `json:"id"`
	Week   int       `json:"week"`
	HomeID ClubID    `json:"home_id"`
	AwayID ClubID    `json:"away_id"`
}

// Involves reports whether the given club plays in this fixture.
func (f Fixture) Involves(club ClubID) bool {
	return f.HomeID == club || f.AwayID == club
}

// ScoutReport records the player scout's accumulated observations of one
// player. Observations × AvgConfidence drives the conviction ladder.
type ScoutReport struct {
	PlayerID      PlayerID `json:"player_id"`
	Observations  int      `json:"observations"`
	AvgConfidence float64  `json:"avg_confidence"` // 0.0–1.0
	Week          int      `json:"week"`
	Season        int      `json:"season"`
}

// Scout is the human player's scout.
type Scout struct {
	Name           string         `json:"name"`
	ClubID         ClubID         `json:"club_id"`
	Level          int            `json:"level"` // 1–5
	Reputation     int            `json:"reputation"`
	Specialization Specialization `json:"specialization"`

	// Territories lists the country codes a regional scout covers.
	Territories []string `json:"territories,omitempty"`

	// CountryFamiliarity maps country code to a 0–100 familiarity scalar.
	CountryFamiliarity map[string]int `json:"country_familiarity"`

	// Reports are the scout's submitted player reports.
	Reports []ScoutReport `json:"reports,omitempty"`
}

// Familiarity returns the scout's familiarity with a country, zero when
// the country has never been covered.
func (s Scout) Familiarity(country string) int {
	return s.CountryFamiliarity[country]
}

// CoversTerritory reports whether a country lies in the scout's assigned
// territories.
func (s Scout) CoversTerritory(country string) bool {
	for _, t := range s.Territories {
		if t == country {
			return true
		}
	}
	return false
}

// ReportedPlayerIDs returns the IDs of every player the scout has reported,
// in report order.
func (s Scout) ReportedPlayerIDs() []PlayerID {
	ids := make([]PlayerID, 0, len(s.Reports))
	for _, r := range s.Reports {
		ids = append(ids, r.PlayerID)
	}
	return ids
}

// FamiliarityTier names the visibility tier a familiarity value grants.
type FamiliarityTier uint8

const (
	TierNone FamiliarityTier = iota
	TierRumor
	TierBasic
	TierStandard
	TierGood
	TierExpert
)

// BasicFamiliarity is the minimum familiarity for free-agent visibility.
const BasicFamiliarity = 20

// TierForFamiliarity maps a 0–100 familiarity scalar to its named tier.
func TierForFamiliarity(v int) FamiliarityTier {
	switch {
	case v < 1:
		return TierNone
	case v < 20:
		return TierRumor
	case v < 40:
		return TierBasic
	case v < 60:
		return TierStandard
	case v < 80:
		return TierGood
	default:
		return TierExpert
	}
}
