package game

import (
	"fmt"
	"math/rand"

	"github.com/minaorangina/matatu/deck"
	"github.com/minaorangina/matatu/internal/logging"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	ErrNotYourTurn               = errors.New("not your turn")
	ErrGameNotInProgress         = errors.New("game is not in progress")
	ErrGameAlreadyStarted        = errors.New("game has already started")
	ErrInvalidCardIndex          = errors.New("invalid card index")
	ErrIllegalMove               = errors.New("card is not playable")
	ErrReferenceSevenBlocked     = errors.New("reference seven needs the rest of the hand to be worth less than 30")
	ErrSuitRequired              = errors.New("an ace needs a suit")
	ErrNoCardsAvailable          = errors.New("no cards left to draw")
	ErrNoPendingPenalty          = errors.New("no penalty to draw")
	ErrInitialDiscardSetupFailed = errors.New("could not find a valid starting card")
	ErrDeckIntegrity             = errors.New("deck integrity violated")
)

const (
	handSize = 7
	// MaxPlayAgain caps how many times in a row the opponent may repeat its turn
	MaxPlayAgain = 5
	// referenceSevenLimit is the hand value at which the reference seven is locked
	referenceSevenLimit = 30
	maxRecentCards      = 5
)

// Table is the authoritative state of one game
type Table struct {
	Deck            deck.Deck
	Discard         []deck.Card
	Hands           map[Seat][]deck.Card
	CurrentPlayer   Seat
	ReferenceSuit   deck.Suit
	CurrentSuit     deck.Suit
	CurrentRank     deck.Rank
	RequiredColor   deck.Color
	PlayAnyCardNext bool
	Pending         Penalty
	JokerFollowUp   bool
	Status          Status
	Reason          string
	HasDrawn        bool
	PlayAgainCount  int
	RecentCards     []deck.Card

	rng    *rand.Rand
	logger zerolog.Logger
}

// TableOpts describes a table part-way through a game
type TableOpts struct {
	Deck            deck.Deck
	Discard         []deck.Card
	HumanHand       []deck.Card
	OpponentHand    []deck.Card
	CurrentPlayer   Seat
	ReferenceSuit   deck.Suit
	CurrentSuit     deck.Suit
	CurrentRank     deck.Rank
	RequiredColor   deck.Color
	PlayAnyCardNext bool
	Pending         Penalty
	JokerFollowUp   bool
	Status          Status
	Rand            *rand.Rand
	Logger          *zerolog.Logger
}

// NewTable returns a table ready for Start.
// A nil rng is replaced by a crypto-seeded one.
func NewTable(rng *rand.Rand, logger *zerolog.Logger) *Table {
	if rng == nil {
		rng = deck.NewRand()
	}
	t := &Table{
		Hands:  map[Seat][]deck.Card{Human: {}, Opponent: {}},
		rng:    rng,
		logger: logging.Named("game::table"),
	}
	if logger != nil {
		t.logger = *logger
	}
	return t
}

// ExistingTable constructs a table mid-game.
// A zero status is taken to mean the game is in progress, and the current
// suit and rank default to the top of the discard pile.
func ExistingTable(opts TableOpts) *Table {
	t := NewTable(opts.Rand, opts.Logger)

	t.Deck = append(deck.Deck{}, opts.Deck...)
	t.Discard = append([]deck.Card{}, opts.Discard...)
	t.Hands[Human] = append([]deck.Card{}, opts.HumanHand...)
	t.Hands[Opponent] = append([]deck.Card{}, opts.OpponentHand...)
	t.CurrentPlayer = opts.CurrentPlayer
	t.ReferenceSuit = opts.ReferenceSuit
	t.CurrentSuit = opts.CurrentSuit
	t.CurrentRank = opts.CurrentRank
	t.RequiredColor = opts.RequiredColor
	t.PlayAnyCardNext = opts.PlayAnyCardNext
	t.Pending = opts.Pending
	t.JokerFollowUp = opts.JokerFollowUp
	t.Status = opts.Status

	if t.Status == NotStarted {
		t.Status = InProgress
	}

	if top, ok := t.Top(); ok && t.CurrentSuit == deck.NullSuit && t.CurrentRank == deck.NullRank {
		t.CurrentSuit = top.Suit
		t.CurrentRank = top.Rank
	}

	return t
}

// Start shuffles, picks the reference suit, deals 7 cards each,
// turns the first discard and picks who goes first.
func (t *Table) Start() error {
	if t.Status != NotStarted {
		return ErrGameAlreadyStarted
	}

	t.Deck = deck.New()
	t.Deck.Shuffle(t.rng)
	t.ReferenceSuit = deck.RandomSuit(t.rng)
	t.logger.Debug().Msgf("reference suit is %s", t.ReferenceSuit)

	for i := 0; i < handSize; i++ {
		for _, seat := range []Seat{Human, Opponent} {
			if c, ok := t.Deck.Draw(); ok {
				t.Hands[seat] = append(t.Hands[seat], c)
			}
		}
	}

	if err := t.setupInitialDiscard(); err != nil {
		t.Status = Errored
		t.Reason = "Could not find valid starting card."
		return err
	}

	t.CurrentPlayer = Seat(t.rng.Intn(2))
	t.Status = InProgress
	t.logger.Info().
		Str("reference", t.ReferenceSuit.String()).
		Str("starter", t.CurrentPlayer.String()).
		Msg("game started")

	return nil
}

// isSpecialStarter reports whether a card may not open the discard pile
func (t *Table) isSpecialStarter(c deck.Card) bool {
	switch c.Rank {
	case deck.Two, deck.Three, deck.Eight, deck.Jack, deck.Ace, deck.Joker:
		return true
	}
	return t.IsReferenceSeven(c)
}

func (t *Table) setupInitialDiscard() error {
	maxAttempts := len(t.Deck) + 5

	for attempt := 0; attempt < maxAttempts; attempt++ {
		c, ok := t.Deck.Draw()
		if !ok {
			break
		}

		if !t.isSpecialStarter(c) {
			t.Discard = append(t.Discard, c)
			t.CurrentSuit = c.Suit
			t.CurrentRank = c.Rank
			t.RequiredColor = deck.NullColor
			t.logger.Debug().Msgf("initial discard is %s", c)
			return nil
		}

		t.Deck.PutBottom(c)
		t.Deck.Shuffle(t.rng)
	}

	return errors.Wrapf(ErrInitialDiscardSetupFailed, "after %d attempts", maxAttempts)
}

// Top returns the top of the discard pile
func (t *Table) Top() (deck.Card, bool) {
	if len(t.Discard) == 0 {
		return deck.Card{}, false
	}
	return t.Discard[len(t.Discard)-1], true
}

// Hand returns a copy of a seat's hand
func (t *Table) Hand(seat Seat) []deck.Card {
	return append([]deck.Card{}, t.Hands[seat]...)
}

// IsReferenceSeven reports whether c is the seven that starts a count
func (t *Table) IsReferenceSeven(c deck.Card) bool {
	return c.Rank == deck.Seven && c.Suit == t.ReferenceSuit && t.ReferenceSuit != deck.NullSuit
}

// Draw moves the top of the deck into a seat's hand, reshuffling the
// discard pile into the deck first if needed.
func (t *Table) Draw(seat Seat) (deck.Card, error) {
	if len(t.Deck) == 0 {
		if err := t.reshuffleDiscard(); err != nil {
			return deck.Card{}, err
		}
	}

	c, ok := t.Deck.Draw()
	if !ok {
		return deck.Card{}, ErrNoCardsAvailable
	}
	t.Hands[seat] = append(t.Hands[seat], c)

	return c, nil
}

// reshuffleDiscard keeps the top discard in place and shuffles the rest
// into the deck
func (t *Table) reshuffleDiscard() error {
	if len(t.Discard) <= 1 {
		return ErrNoCardsAvailable
	}

	top := t.Discard[len(t.Discard)-1]
	rest := t.Discard[:len(t.Discard)-1]

	t.Deck = append(t.Deck, rest...)
	t.Deck.Shuffle(t.rng)
	t.Discard = []deck.Card{top}
	t.logger.Debug().Msgf("reshuffled %d cards into the deck", len(t.Deck))

	return nil
}

func (t *Table) addRecent(c deck.Card) {
	t.RecentCards = append([]deck.Card{c}, t.RecentCards...)
	if len(t.RecentCards) > maxRecentCards {
		t.RecentCards = t.RecentCards[:maxRecentCards]
	}
}

// EndTurn hands the turn to the other seat and resets turn-local state
func (t *Table) EndTurn() {
	if t.Status != InProgress {
		return
	}

	t.HasDrawn = false
	t.PlayAgainCount = 0
	t.PlayAnyCardNext = false
	t.JokerFollowUp = false
	t.CurrentPlayer = t.CurrentPlayer.Other()
}

// CheckIntegrity verifies that every card of the deck is in exactly one place
func (t *Table) CheckIntegrity() error {
	seen := map[deck.Card]int{}

	count := func(cards []deck.Card) {
		for _, c := range cards {
			seen[c]++
		}
	}
	count(t.Deck)
	count(t.Discard)
	count(t.Hands[Human])
	count(t.Hands[Opponent])

	for _, c := range deck.New() {
		switch n := seen[c]; {
		case n == 0:
			return errors.Wrapf(ErrDeckIntegrity, "%s is missing", c)
		case n > 1:
			return errors.Wrapf(ErrDeckIntegrity, "%s appears %d times", c, n)
		}
		delete(seen, c)
	}

	for c := range seen {
		return errors.Wrapf(ErrDeckIntegrity, "unknown card %+v", c)
	}

	return nil
}

// CardCount is the number of cards across deck, discard and both hands
func (t *Table) CardCount() int {
	return len(t.Deck) + len(t.Discard) + len(t.Hands[Human]) + len(t.Hands[Opponent])
}

// Finish records why the game ended. A status that is not a result is
// replaced by one inferred from hand sizes.
func (t *Table) Finish(reason string) Status {
	switch t.Status {
	case HumanWin, OpponentWin, Draw:
	default:
		t.logger.Warn().Msgf("finishing with unclear status %s", t.Status)

		human, opponent := len(t.Hands[Human]), len(t.Hands[Opponent])
		switch {
		case human == 0:
			t.Status = HumanWin
		case opponent == 0:
			t.Status = OpponentWin
		case human < opponent:
			t.Status = HumanWin
		case opponent < human:
			t.Status = OpponentWin
		default:
			t.Status = Draw
		}
		reason += " (Status fallback)"
	}

	t.Reason = reason
	return t.Status
}

func (t *Table) String() string {
	return fmt.Sprintf("%s to play, %d in deck, %d/%d in hand, pending %s(%d)",
		t.CurrentPlayer, len(t.Deck), len(t.Hands[Human]), len(t.Hands[Opponent]),
		t.Pending.Kind, t.Pending.Amount)
}
