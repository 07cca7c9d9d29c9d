package game

import (
	"math/rand"

	"github.com/minaorangina/matatu/deck"
)

// ChooseMove picks the opponent's card, or -1 when nothing is playable.
func ChooseMove(t *Table, seat Seat) int {
	hand := t.Hands[seat]
	moves := t.LegalMoves(seat)
	if len(moves) == 0 {
		return -1
	}

	if len(hand) == 1 {
		return moves[0]
	}

	if idx, ok := firstWhere(hand, moves, t.IsReferenceSeven); ok {
		rest := removeCard(hand, idx)
		if deck.Points(rest) < referenceSevenLimit && len(t.Hands[seat.Other()]) <= 3 {
			return idx
		}
		moves = excludeIndex(moves, idx)
		if len(moves) == 0 {
			return -1
		}
	}

	preferences := []func(deck.Card) bool{
		deck.Card.IsJoker,
		func(c deck.Card) bool { return c.Rank == deck.Three },
		func(c deck.Card) bool { return c.Rank == deck.Two },
		func(c deck.Card) bool { return c.Rank == deck.Eight || c.Rank == deck.Jack },
		func(c deck.Card) bool { return c.IsAce() && !c.IsAceOfSpades() },
		deck.Card.IsAceOfSpades,
		func(c deck.Card) bool {
			return t.CurrentSuit != deck.NullSuit && c.Suit == t.CurrentSuit
		},
		func(c deck.Card) bool {
			return t.CurrentRank != deck.NullRank && !c.IsJoker() && c.Rank == t.CurrentRank
		},
	}

	for _, pred := range preferences {
		if idx, ok := firstWhere(hand, moves, pred); ok {
			return idx
		}
	}

	return moves[0]
}

// FindCounterCard picks a card to answer the pending penalty, or -1
func FindCounterCard(t *Table, seat Seat) int {
	if !t.pendingAgainst(seat) {
		return -1
	}

	hand := t.Hands[seat]
	moves := t.LegalMoves(seat)
	if len(moves) == 0 {
		return -1
	}

	if idx, ok := firstWhere(hand, moves, deck.Card.IsAceOfSpades); ok {
		return idx
	}

	strength := t.Pending.Kind.Strength()
	passBack := func(c deck.Card) bool {
		return penaltyKindOf(c).Strength() >= strength
	}
	if idx, ok := firstWhere(hand, moves, passBack); ok {
		return idx
	}

	return moves[0]
}

// SelectSuitForAce picks the suit the hand holds most of, ignoring
// jokers and aces. A tie, or nothing to count, is settled at random.
func SelectSuitForAce(hand []deck.Card, rng *rand.Rand) deck.Suit {
	counts := map[deck.Suit]int{}
	for _, c := range hand {
		if c.IsJoker() || c.IsAce() || c.Suit == deck.NullSuit {
			continue
		}
		counts[c.Suit]++
	}

	best, most, tied := deck.NullSuit, 0, false
	for _, s := range deck.Suits {
		switch n := counts[s]; {
		case n > most:
			best, most, tied = s, n, false
		case n == most && n > 0:
			tied = true
		}
	}

	if best == deck.NullSuit || tied {
		return deck.RandomSuit(rng)
	}
	return best
}
