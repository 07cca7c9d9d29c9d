package game

import (
	"github.com/minaorangina/matatu/deck"
)

// removeCard returns a new slice without the card at idx
func removeCard(cards []deck.Card, idx int) []deck.Card {
	rest := make([]deck.Card, 0, len(cards)-1)
	rest = append(rest, cards[:idx]...)
	return append(rest, cards[idx+1:]...)
}

func excludeIndex(s []int, target int) []int {
	out := []int{}
	for _, i := range s {
		if i != target {
			out = append(out, i)
		}
	}
	return out
}

func cardSliceToSet(s []deck.Card) map[deck.Card]struct{} {
	set := map[deck.Card]struct{}{}
	for _, key := range s {
		set[key] = struct{}{}
	}
	return set
}

func cardsUnique(cards []deck.Card) bool {
	return len(cardSliceToSet(cards)) == len(cards)
}

func containsCard(s []deck.Card, targets ...deck.Card) bool {
	for _, c := range s {
		for _, tg := range targets {
			if c == tg {
				return true
			}
		}
	}
	return false
}

// firstWhere returns the first index in moves whose card satisfies pred
func firstWhere(hand []deck.Card, moves []int, pred func(deck.Card) bool) (int, bool) {
	for _, i := range moves {
		if pred(hand[i]) {
			return i, true
		}
	}
	return -1, false
}
