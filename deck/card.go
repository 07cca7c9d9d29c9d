package deck

import (
	"fmt"
	"strings"
)

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{"", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace", "Joker"}

var rankShortNames = []string{"", "2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A", "JK"}

const (
	NullRank Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Joker
)

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"", "Hearts", "Diamonds", "Clubs", "Spades"}

var suitSymbols = []string{"", "♥", "♦", "♣", "♠"}

const (
	NullSuit Suit = iota
	Hearts
	Diamonds
	Clubs
	Spades
)

// Suits lists the four real suits in a fixed order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Color is the color of a card. Jokers carry their own.
type Color int

var colorNames = []string{"", "red", "black"}

const (
	NullColor Color = iota
	Red
	Black
)

// Card represents a playing card.
// Jokers have no suit; their Color is the Joker's color.
type Card struct {
	Rank  Rank  `json:"rank"`
	Suit  Suit  `json:"suit"`
	Color Color `json:"color"`
}

// NewCard constructs a suited card. It panics on an out of range rank or suit.
func NewCard(rank Rank, suit Suit) Card {
	if rank < Two || rank > Ace || suit < Hearts || suit > Spades {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return Card{Rank: rank, Suit: suit, Color: suit.Color()}
}

// NewJoker constructs a Joker of the given color.
func NewJoker(color Color) Card {
	if color != Red && color != Black {
		panic(fmt.Sprintf("joker color out of range: %d", color))
	}
	return Card{Rank: Joker, Color: color}
}

func (c Card) IsJoker() bool {
	return c.Rank == Joker
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

func (c Card) IsAceOfSpades() bool {
	return c.Rank == Ace && c.Suit == Spades
}

// Points returns the value of a card when hands are counted.
func (c Card) Points() int {
	switch c.Rank {
	case Two:
		return 20
	case Three:
		return 30
	case Jack:
		return 13
	case Queen:
		return 12
	case King:
		return 14
	case Ace:
		if c.Suit == Spades {
			return 60
		}
		return 11
	case Joker:
		return 50
	case NullRank:
		return 0
	}
	// Four to Ten score their face value
	return int(c.Rank) + 1
}

func (c Card) String() string {
	if c.IsJoker() {
		return strings.Title(c.Color.String()) + " Joker"
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short is the compact form used in logs and the terminal client, e.g. "7♥".
func (c Card) Short() string {
	if c.IsJoker() {
		return rankShortNames[Joker] + "(" + c.Color.String() + ")"
	}
	return rankShortNames[c.Rank] + c.Suit.Symbol()
}

// Points sums the counting value of a set of cards.
func Points(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return sum
}

func (r Rank) String() string {
	if r < 0 || int(r) >= len(rankNames) {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	for i, name := range rankNames {
		if strings.EqualFold(name, string(text)) {
			*r = Rank(i)
			return nil
		}
	}
	return fmt.Errorf("unknown rank %q", text)
}

func (s Suit) String() string {
	if s < 0 || int(s) >= len(suitNames) {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Symbol returns the suit pip, e.g. "♠".
func (s Suit) Symbol() string {
	if s < 0 || int(s) >= len(suitSymbols) {
		return ""
	}
	return suitSymbols[s]
}

// Color returns the color of cards of this suit.
func (s Suit) Color() Color {
	switch s {
	case Hearts, Diamonds:
		return Red
	case Clubs, Spades:
		return Black
	}
	return NullColor
}

func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	for i, name := range suitNames {
		if strings.EqualFold(name, string(text)) {
			*s = Suit(i)
			return nil
		}
	}
	return fmt.Errorf("unknown suit %q", text)
}

// ParseSuit accepts a suit name or its first letter, case insensitive.
func ParseSuit(s string) (Suit, error) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		for _, suit := range Suits {
			if strings.EqualFold(suit.String()[:1], s) {
				return suit, nil
			}
		}
	}
	var suit Suit
	if err := suit.UnmarshalText([]byte(s)); err != nil || suit == NullSuit {
		return NullSuit, fmt.Errorf("unknown suit %q", s)
	}
	return suit, nil
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	for i, name := range colorNames {
		if strings.EqualFold(name, string(text)) {
			*c = Color(i)
			return nil
		}
	}
	return fmt.Errorf("unknown color %q", text)
}
