package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/matatu/deck"
	"github.com/minaorangina/matatu/protocol"
)

const (
	handText        = "\nYour hand:\n"
	opponentText    = "AI holds %d cards.\n"
	topCardText     = "Top card: %s    Deck: %d    Ref 7: %s\n"
	penaltyText     = "Penalty: %d (%s) against %s\n"
	requirementText = "Next card must be: %s\n"
	recentText      = "Recent: %s\n"
	requestSuitText = "%s\nType s <hearts|diamonds|clubs|spades>\n"
	countText       = "You: %d (%s)    AI: %d (%s)\n"
	gameOverText    = "\n*** %s ***\n%s\nAI held: %s\nType n for a new game or q to quit.\n"
	errorText       = "! %s\n"
	helpText        = "Commands: p <n> play card n, d draw, s <suit> choose suit, k skip, n new game, q quit\n"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// TextNotifier renders notifications for a terminal
type TextNotifier struct {
	Out io.Writer
}

func (n TextNotifier) Notify(msg protocol.OutboundMessage) {
	switch msg.Command {
	case protocol.HandChanged:
		if msg.Seat == "ai" {
			SendText(n.Out, opponentText, msg.HandSize)
			return
		}
		SendText(n.Out, handText)
		SendText(n.Out, "%s", buildHandDisplayText(msg.Hand, msg.Moves))

	case protocol.DiscardChanged:
		top := "-"
		if msg.Card != nil {
			top = msg.Card.Short()
		}
		SendText(n.Out, topCardText, top, msg.DeckCount, msg.Reference.Symbol())

	case protocol.PenaltyChanged:
		if msg.Penalty != nil && msg.Penalty.Amount > 0 {
			SendText(n.Out, penaltyText, msg.Penalty.Amount, msg.Penalty.Kind, msg.Penalty.Target)
		}

	case protocol.RequirementChanged:
		if msg.Requirement != nil && !msg.Requirement.Cleared() {
			SendText(n.Out, requirementText, buildRequirementText(*msg.Requirement))
		}

	case protocol.RecentPlays:
		if len(msg.Recent) > 0 {
			SendText(n.Out, recentText, shortCards(msg.Recent))
		}

	case protocol.Status:
		if len(msg.Counts) == 2 {
			SendText(n.Out, countText,
				msg.Counts[0].Sum, msg.Counts[0].Reason,
				msg.Counts[1].Sum, msg.Counts[1].Reason)
		}
		SendText(n.Out, "%s\n", msg.Message)

	case protocol.RequestSuit:
		SendText(n.Out, requestSuitText, msg.Message)

	case protocol.GameOver:
		if msg.Result != nil {
			SendText(n.Out, gameOverText, msg.Result.Title, msg.Result.Reason, shortCards(msg.Hand))
		}

	case protocol.Error:
		SendText(n.Out, errorText, msg.Error)
	}
}

// buildHandDisplayText lists the hand, starring the cards that can be played
func buildHandDisplayText(hand []deck.Card, moves []int) string {
	playable := map[int]bool{}
	for _, m := range moves {
		playable[m] = true
	}

	var b strings.Builder
	for i, c := range hand {
		mark := " "
		if playable[i] {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %d: %s\n", mark, i, c.Short())
	}
	return b.String()
}

func buildRequirementText(r protocol.Requirement) string {
	parts := []string{}
	if r.AnyCard {
		parts = append(parts, "any card")
	}
	if r.Suit != deck.NullSuit {
		parts = append(parts, r.Suit.String())
	}
	if r.Color != deck.NullColor {
		parts = append(parts, r.Color.String()+" or an ace")
	}
	return strings.Join(parts, ", ")
}

func shortCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return "nothing"
	}
	names := []string{}
	for _, c := range cards {
		names = append(names, c.Short())
	}
	return strings.Join(names, " ")
}

func HelpText() string {
	return helpText
}
