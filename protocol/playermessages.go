package protocol

import (
	"github.com/minaorangina/matatu/deck"
)

// InboundMessage is an intent from a client to a session
type InboundMessage struct {
	Command  Cmd       `json:"command"`
	Decision []int     `json:"decision,omitempty"`
	Suit     deck.Suit `json:"suit,omitempty"`
}

// Penalty describes a pending forced draw
type Penalty struct {
	Kind   string `json:"kind"`
	Amount int    `json:"amount"`
	Target string `json:"target,omitempty"`
}

// Requirement is what the next card must satisfy beyond a plain match
type Requirement struct {
	Suit    deck.Suit  `json:"suit,omitempty"`
	Color   deck.Color `json:"color,omitempty"`
	AnyCard bool       `json:"anyCard,omitempty"`
}

// Cleared reports whether no requirement is active
func (r Requirement) Cleared() bool {
	return r.Suit == deck.NullSuit && r.Color == deck.NullColor && !r.AnyCard
}

// Result is the end of a game as shown to a client
type Result struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// Count is a scored hand from a count round
type Count struct {
	Sum        int    `json:"sum"`
	Eliminated bool   `json:"eliminated"`
	Reason     string `json:"reason"`
}

// OutboundMessage is a notification from a session to its client
type OutboundMessage struct {
	Command     Cmd          `json:"command"`
	Seat        string       `json:"seat,omitempty"`
	Hand        []deck.Card  `json:"hand,omitempty"`
	HandSize    int          `json:"handSize,omitempty"`
	Moves       []int        `json:"moves,omitempty"`
	Card        *deck.Card   `json:"card,omitempty"`
	DeckCount   int          `json:"deckCount"`
	Reference   deck.Suit    `json:"referenceSuit,omitempty"`
	Penalty     *Penalty     `json:"penalty,omitempty"`
	Requirement *Requirement `json:"requirement,omitempty"`
	Message     string       `json:"message,omitempty"`
	Persistent  bool         `json:"persistent,omitempty"`
	Recent      []deck.Card  `json:"recent,omitempty"`
	Counts      []Count      `json:"counts,omitempty"`
	Result      *Result      `json:"result,omitempty"`
	Error       string       `json:"error,omitempty"`
}
