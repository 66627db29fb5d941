package game

// Personality drives a rival scout's target-selection policy.
type Personality uint8

const (
	PersonalityAggressive Personality = iota
	PersonalityMethodical
	PersonalityConnected
	PersonalityLucky
)

// String returns the personality's display name.
func (p Personality) String() string {
	switch p {
	case PersonalityAggressive:
		return "aggressive"
	case PersonalityMethodical:
		return "methodical"
	case PersonalityConnected:
		return "connected"
	case PersonalityLucky:
		return "lucky"
	default:
		return "unknown"
	}
}

// BudgetTier is a coarse label for a rival's employer spending power.
type BudgetTier uint8

const (
	BudgetLow BudgetTier = iota
	BudgetMedium
	BudgetHigh
)

const (
	// MaxRivalTargets caps a rival's concurrent target list.
	MaxRivalTargets = 8

	// ScoutingCompletion is the progress threshold at which a rival
	// submits a report on a target.
	ScoutingCompletion = 5
)

// RivalScout is an autonomous competitor for the same free agents and
// prospects the player scouts. Created once at game start and never
// destroyed; targets and reports cycle weekly.
type RivalScout struct {
	ID             RivalID        `json:"id"`
	Name           string         `json:"name"`
	Quality        int            `json:"quality"` // 1–5
	Specialization Specialization `json:"specialization"`
	ClubID         ClubID         `json:"club_id"` // employer, never the player's club
	Reputation     int            `json:"reputation"`
	Personality    Personality    `json:"personality"`
	IsNemesis      bool           `json:"is_nemesis"`
	Aggressiveness float64        `json:"aggressiveness"` // 0–1, personality-derived
	BudgetTier     BudgetTier     `json:"budget_tier"`

	TargetPlayerIDs []PlayerID `json:"target_player_ids,omitempty"` // ≤ MaxRivalTargets

	// ScoutingProgress tracks per-target progress toward a report,
	// 0..ScoutingCompletion.
	ScoutingProgress map[PlayerID]int `json:"scouting_progress,omitempty"`

	// CompetingForPlayers is derived each tick: the intersection of this
	// rival's targets and the player's reported players.
	CompetingForPlayers []PlayerID `json:"competing_for_players,omitempty"`

	CurrentTarget     PlayerID  `json:"current_target"`      // 0 = idle
	ReportDeadline    int       `json:"report_deadline"`     // absolute week, 0 = none
	LastSeenAtFixture FixtureID `json:"last_seen_at_fixture"` // 0 = none
}

// HasTarget reports whether a player is on the rival's target list.
func (r RivalScout) HasTarget(id PlayerID) bool {
	for _, t := range r.TargetPlayerIDs {
		if t == id {
			return true
		}
	}
	return false
}

// Clone deep-copies the rival so the weekly step never mutates its input.
func (r RivalScout) Clone() RivalScout {
	out := r
	out.TargetPlayerIDs = append([]PlayerID(nil), r.TargetPlayerIDs...)
	out.CompetingForPlayers = append([]PlayerID(nil), r.CompetingForPlayers...)
	out.ScoutingProgress = make(map[PlayerID]int, len(r.ScoutingProgress))
	for k, v := range r.ScoutingProgress {
		out.ScoutingProgress[k] = v
	}
	return out
}
