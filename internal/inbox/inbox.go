// Package inbox defines the informational messages the simulation emits
// toward the player. The core treats the inbox as a write-only sink: it
// generates messages but never reads them back.
package inbox

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/touchline/internal/game"
)

// Kind categorizes a message for the presentation layer.
type Kind string

const (
	KindRelease      Kind = "release"
	KindRetirement   Kind = "retirement"
	KindNPCSigning   Kind = "npc_signing"
	KindDiscovery    Kind = "discovery"
	KindRivalReport  Kind = "rival_report"
	KindRivalSigning Kind = "rival_signing"
	KindPoachWarning Kind = "poach_warning"
)

// namespace scopes deterministic message IDs to this module.
var namespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("touchline/inbox"))

// Message is one inbox entry.
type Message struct {
	ID      string        `json:"id"`
	Season  int           `json:"season"`
	Week    int           `json:"week"`
	Kind    Kind          `json:"kind"`
	Title   string        `json:"title"`
	Body    string        `json:"body"`
	Read    bool          `json:"read"`
	Related game.PlayerID `json:"related,omitempty"`
}

// New builds a message. The ID is a UUIDv5 over (season, week, kind,
// subject) so the same simulated week always produces the same IDs — a
// random ID here would break byte-identical replays.
func New(season, week int, kind Kind, title, body string, related game.PlayerID) Message {
	name := fmt.Sprintf("%d/%d/%s/%s/%d", season, week, kind, title, related)
	return Message{
		ID:      uuid.NewSHA1(namespace, []byte(name)).String(),
		Season:  season,
		Week:    week,
		Kind:    kind,
		Title:   title,
		Body:    body,
		Related: related,
	}
}
