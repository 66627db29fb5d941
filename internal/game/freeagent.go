package game

// AgentStatus is a free agent's lifecycle state. Once an agent leaves
// StatusAvailable the record is frozen and scheduled for removal from the
// active pool.
type AgentStatus uint8

const (
	StatusAvailable AgentStatus = iota
	StatusSigned
	StatusRetired
	StatusDroppedOut
)

// String returns the status name used in messages and persistence logs.
func (s AgentStatus) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusSigned:
		return "signed"
	case StatusRetired:
		return "retired"
	case StatusDroppedOut:
		return "droppedOut"
	default:
		return "unknown"
	}
}

// DiscoverySource records how the player's scout first found an agent.
type DiscoverySource uint8

const (
	SourceNone DiscoverySource = iota
	SourceContact
	SourceNetwork   // first-team scouting network
	SourceTerritory // regional scout's assigned territory
	SourceData
	SourceYouth
)

// MinWage is the floor below which wage expectations never decay.
const MinWage = 200

// MaxLiveInterests caps concurrent unaccepted NPC interests per agent.
const MaxLiveInterests = 3

// NPCInterest is one NPC club's standing interest in a free agent.
type NPCInterest struct {
	ClubID    ClubID `json:"club_id"`
	OfferWeek int    `json:"offer_week"` // absolute week the interest arrived
	Accepted  bool   `json:"accepted"`
}

// FreeAgent is a released player awaiting a new club. Age and
// CurrentAbility are snapshotted at release and deliberately do not track
// later mutation of the player record.
type FreeAgent struct {
	PlayerID       PlayerID `json:"player_id"`
	Country        string   `json:"country"`
	ReleasedFrom   ClubID   `json:"released_from"`
	ReleasedSeason int      `json:"released_season"`

	Age            int `json:"age"`
	CurrentAbility int `json:"current_ability"`

	WeeksInPool    int `json:"weeks_in_pool"`
	MaxWeeksInPool int `json:"max_weeks_in_pool"`

	WageExpectation         int `json:"wage_expectation"`
	SigningBonusExpectation int `json:"signing_bonus_expectation"`

	DiscoveredByScout bool            `json:"discovered_by_scout"`
	DiscoverySource   DiscoverySource `json:"discovery_source"`

	NPCInterest []NPCInterest `json:"npc_interest,omitempty"`
	Status      AgentStatus   `json:"status"`
	SignedBy    ClubID        `json:"signed_by"` // set when an NPC club signs
}

// LiveInterests counts unaccepted NPC interests.
func (a FreeAgent) LiveInterests() int {
	n := 0
	for _, in := range a.NPCInterest {
		if !in.Accepted {
			n++
		}
	}
	return n
}

// HasInterestFrom reports whether a club already holds an interest record.
func (a FreeAgent) HasInterestFrom(club ClubID) bool {
	for _, in := range a.NPCInterest {
		if in.ClubID == club {
			return true
		}
	}
	return false
}

// FreeAgentPool is the authoritative collection of free agents. It is the
// single writer of FreeAgent.Status.
type FreeAgentPool struct {
	Agents []FreeAgent `json:"agents"`

	TotalReleasedThisSeason int `json:"total_released_this_season"`
	TotalSignedThisSeason   int `json:"total_signed_this_season"`
	TotalRetiredThisSeason  int `json:"total_retired_this_season"`
}

// Agent returns the pool entry for a player, with an explicit not-found flag.
func (p FreeAgentPool) Agent(id PlayerID) (FreeAgent, bool) {
	for _, a := range p.Agents {
		if a.PlayerID == id {
			return a, true
		}
	}
	return FreeAgent{}, false
}

// Contains reports whether a player is present in the pool, regardless of
// status.
func (p FreeAgentPool) Contains(id PlayerID) bool {
	_, ok := p.Agent(id)
	return ok
}

// AvailableCount counts agents still in StatusAvailable.
func (p FreeAgentPool) AvailableCount() int {
	n := 0
	for _, a := range p.Agents {
		if a.Status == StatusAvailable {
			n++
		}
	}
	return n
}

// Clone deep-copies the pool so a tick can build a new snapshot without
// touching its input.
func (p FreeAgentPool) Clone() FreeAgentPool {
	out := p
	out.Agents = make([]FreeAgent, len(p.Agents))
	for i, a := range p.Agents {
		out.Agents[i] = a
		if a.NPCInterest != nil {
			out.Agents[i].NPCInterest = append([]NPCInterest(nil), a.NPCInterest...)
		}
	}
	return out
}
