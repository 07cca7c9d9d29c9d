package deck

import (
	"math/rand"
)

// Size is the number of cards in a full deck, Jokers included.
const Size = 54

// Deck represents a deck of cards. The top of the deck is the end of the slice.
type Deck []Card

// New creates a full deck of cards, including one red and one black Joker
func New() Deck {
	cards := make(Deck, 0, Size)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	cards = append(cards, NewJoker(Red), NewJoker(Black))
	return cards
}

// Shuffle shuffles the deck of cards in place (Fisher-Yates)
func (d *Deck) Shuffle(rng *rand.Rand) {
	actualDeck := (*d)
	for i := len(actualDeck) - 1; i > 0; i-- {
		randomNumber := rng.Intn(i + 1)
		actualDeck[i], actualDeck[randomNumber] = actualDeck[randomNumber], actualDeck[i]
	}
}

// Deal deals n number of cards from the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := make([]Card, n)
	copy(subSlice, (*d)[startingIndex:numCardsInDeck])
	*d = (*d)[:startingIndex]
	return subSlice
}

// Draw removes the top card. ok is false if the deck is empty.
func (d *Deck) Draw() (card Card, ok bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	card = (*d)[len(*d)-1]
	*d = (*d)[:len(*d)-1]
	return card, true
}

// PutBottom places a card underneath the rest of the deck.
func (d *Deck) PutBottom(c Card) {
	*d = append(Deck{c}, (*d)...)
}
