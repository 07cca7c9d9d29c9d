package protocol

import (
	"fmt"
	"strings"
)

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	// inbound intents
	Start
	PlayCard
	DrawCard
	ChooseSuit
	SkipTurn
	// outbound notifications
	HandChanged
	DiscardChanged
	DeckCountChanged
	PenaltyChanged
	RequirementChanged
	TurnChanged
	Status
	RequestSuit
	RecentPlays
	GameOver
	Error
)

var cmdNames = map[Cmd]string{
	Null:               "Null",
	Start:              "Start",
	PlayCard:           "PlayCard",
	DrawCard:           "DrawCard",
	ChooseSuit:         "ChooseSuit",
	SkipTurn:           "SkipTurn",
	HandChanged:        "HandChanged",
	DiscardChanged:     "DiscardChanged",
	DeckCountChanged:   "DeckCountChanged",
	PenaltyChanged:     "PenaltyChanged",
	RequirementChanged: "RequirementChanged",
	TurnChanged:        "TurnChanged",
	Status:             "Status",
	RequestSuit:        "RequestSuit",
	RecentPlays:        "RecentPlays",
	GameOver:           "GameOver",
	Error:              "Error",
}

var nameToCmd = func() map[string]Cmd {
	m := map[string]Cmd{}
	for cmd, name := range cmdNames {
		m[strings.ToLower(name)] = cmd
	}
	return m
}()

func (c Cmd) String() string {
	if name, ok := cmdNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Cmd(%d)", int(c))
}

// Inbound reports whether the command is an intent a client may send
func (c Cmd) Inbound() bool {
	return c >= Start && c <= SkipTurn
}

func (c Cmd) MarshalText() ([]byte, error) {
	if _, ok := cmdNames[c]; !ok {
		return nil, fmt.Errorf("unknown command %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	cmd, ok := nameToCmd[strings.ToLower(string(text))]
	if !ok {
		return fmt.Errorf("unknown command %q", string(text))
	}
	*c = cmd
	return nil
}
