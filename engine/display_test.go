package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/minaorangina/matatu/deck"
	utils "github.com/minaorangina/matatu/internal"
	"github.com/minaorangina/matatu/protocol"
)

func TestSendText(t *testing.T) {
	t.Run("send simple text", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		SendText(buffer, "Hello")

		utils.AssertEqual(t, buffer.String(), "Hello")
	})

	t.Run("send formatted text", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		SendText(buffer, "Hello, %s", "human")

		utils.AssertEqual(t, buffer.String(), "Hello, human")
	})

	t.Run("send built text verbatim", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		SendText(buffer, "%s", "100% sure")

		utils.AssertEqual(t, buffer.String(), "100% sure")
	})
}

func TestTextNotifier(t *testing.T) {
	top := card(deck.Ace, deck.Diamonds)

	cases := []struct {
		name string
		msg  protocol.OutboundMessage
		want []string
	}{
		{
			"hand with playable cards starred",
			protocol.OutboundMessage{
				Command: protocol.HandChanged,
				Seat:    "player",
				Hand:    []deck.Card{card(deck.Nine, deck.Hearts), card(deck.Ten, deck.Clubs)},
				Moves:   []int{1},
			},
			[]string{"  0: 9♥\n", "* 1: T♣\n"},
		},
		{
			"opponent hand is hidden",
			protocol.OutboundMessage{Command: protocol.HandChanged, Seat: "ai", HandSize: 4},
			[]string{"AI holds 4 cards."},
		},
		{
			"top card",
			protocol.OutboundMessage{Command: protocol.DiscardChanged, Card: &top, DeckCount: 30, Reference: deck.Clubs},
			[]string{"Top card: A♦", "Deck: 30", "Ref 7: ♣"},
		},
		{
			"suit requirement",
			protocol.OutboundMessage{Command: protocol.RequirementChanged, Requirement: &protocol.Requirement{Suit: deck.Spades}},
			[]string{"Next card must be: Spades"},
		},
		{
			"penalty",
			protocol.OutboundMessage{Command: protocol.PenaltyChanged, Penalty: &protocol.Penalty{Kind: "joker", Amount: 5, Target: "player"}},
			[]string{"Penalty: 5 (joker) against player"},
		},
		{
			"count",
			protocol.OutboundMessage{
				Command: protocol.Status,
				Message: "Count round. P:9,AI:26. Neither elim.",
				Counts:  []protocol.Count{{Sum: 9, Reason: "Sum≤30 (9)"}, {Sum: 26, Reason: "Sum≤30 (26)"}},
			},
			[]string{"You: 9 (Sum≤30 (9))", "AI: 26", "Count round."},
		},
		{
			"game over",
			protocol.OutboundMessage{
				Command: protocol.GameOver,
				Hand:    []deck.Card{card(deck.King, deck.Spades)},
				Result:  &protocol.Result{Title: "AI Wins!", Reason: "played last card (9♥)."},
			},
			[]string{"*** AI Wins! ***", "played last card (9♥).", "AI held: K♠"},
		},
		{
			"error",
			protocol.OutboundMessage{Command: protocol.Error, Error: "This card is not playable."},
			[]string{"! This card is not playable."},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buffer := &bytes.Buffer{}

			TextNotifier{Out: buffer}.Notify(c.msg)

			for _, w := range c.want {
				if !strings.Contains(buffer.String(), w) {
					t.Errorf("%q does not contain %q", buffer.String(), w)
				}
			}
			if strings.Contains(buffer.String(), "%!") {
				t.Errorf("%q has a formatting error", buffer.String())
			}
		})
	}

	t.Run("cleared requirement prints nothing", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		TextNotifier{Out: buffer}.Notify(protocol.OutboundMessage{Command: protocol.RequirementChanged, Requirement: &protocol.Requirement{}})
		utils.AssertEqual(t, buffer.String(), "")
	})
}
