package game

import "github.com/minaorangina/matatu/deck"

// IsPlayable reports whether actor may play c right now.
// The first rule that applies decides.
func (t *Table) IsPlayable(c deck.Card, actor Seat) bool {
	if t.PlayAnyCardNext && actor == t.CurrentPlayer {
		return true
	}

	if t.pendingAgainst(actor) {
		return isCounter(c, t.Pending)
	}

	if t.RequiredColor != deck.NullColor {
		return c.Color == t.RequiredColor || c.IsAce()
	}

	top, ok := t.Top()
	if !ok {
		return true
	}

	// suit pinned by an ace
	if top.IsAce() && !top.IsAceOfSpades() && t.CurrentSuit != deck.NullSuit {
		return c.Suit == t.CurrentSuit || c.IsAceOfSpades() || c.IsJoker()
	}

	if c.IsJoker() {
		// a joker's color is its joker color, so this covers joker on joker too
		return c.Color == top.Color
	}

	if c.IsAce() {
		return true
	}

	return c.Suit == t.CurrentSuit || c.Rank == t.CurrentRank
}

// LegalMoves returns the indices of every playable card in actor's hand
func (t *Table) LegalMoves(actor Seat) []int {
	moves := []int{}
	for i, c := range t.Hands[actor] {
		if t.IsPlayable(c, actor) {
			moves = append(moves, i)
		}
	}
	return moves
}

// CanPlay reports whether actor has at least one playable card
func (t *Table) CanPlay(actor Seat) bool {
	return len(t.LegalMoves(actor)) > 0
}
