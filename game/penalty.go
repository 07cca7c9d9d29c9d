package game

import (
	"fmt"

	"github.com/minaorangina/matatu/deck"
)

// PenaltyKind is the card that created a forced draw
type PenaltyKind int

const (
	NoPenalty PenaltyKind = iota
	PenaltyTwo
	PenaltyThree
	PenaltyJoker
)

var penaltyKindNames = map[PenaltyKind]string{
	NoPenalty:    "none",
	PenaltyTwo:   "2",
	PenaltyThree: "3",
	PenaltyJoker: "joker",
}

func (k PenaltyKind) String() string {
	if name, ok := penaltyKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PenaltyKind(%d)", int(k))
}

// Strength orders penalties: 2 < 3 < joker. It doubles as the draw amount.
func (k PenaltyKind) Strength() int {
	switch k {
	case PenaltyTwo:
		return 2
	case PenaltyThree:
		return 3
	case PenaltyJoker:
		return 5
	}
	return 0
}

// penaltyKindOf returns the penalty a card creates, if any
func penaltyKindOf(c deck.Card) PenaltyKind {
	switch c.Rank {
	case deck.Two:
		return PenaltyTwo
	case deck.Three:
		return PenaltyThree
	case deck.Joker:
		return PenaltyJoker
	}
	return NoPenalty
}

// Penalty is a forced draw owed by the seat opposite Issuer
type Penalty struct {
	Kind   PenaltyKind
	Amount int
	Suit   deck.Suit
	Color  deck.Color
	Issuer Seat
}

func (p Penalty) Active() bool {
	return p.Kind != NoPenalty
}

// Target is the seat that must counter or draw
func (p Penalty) Target() Seat {
	return p.Issuer.Other()
}

func newPenalty(c deck.Card, issuer Seat) Penalty {
	kind := penaltyKindOf(c)
	return Penalty{
		Kind:   kind,
		Amount: kind.Strength(),
		Suit:   c.Suit,
		Color:  c.Color,
		Issuer: issuer,
	}
}

// pendingAgainst reports whether seat owes the pending penalty
func (t *Table) pendingAgainst(seat Seat) bool {
	return t.Pending.Active() && t.Pending.Target() == seat
}

// isCounter decides legality while a penalty binds the actor
func isCounter(c deck.Card, p Penalty) bool {
	if c.IsAceOfSpades() {
		return true
	}

	switch p.Kind {
	case PenaltyJoker:
		if c.IsJoker() {
			return true
		}
		return (c.Rank == deck.Two || c.Rank == deck.Three) && c.Color == p.Color

	case PenaltyTwo, PenaltyThree:
		kind := penaltyKindOf(c)
		if kind == p.Kind {
			return true
		}
		if kind == PenaltyTwo || kind == PenaltyThree {
			// crossing between 2 and 3 needs the suit of the penalty card
			return c.Suit == p.Suit
		}
		if kind == PenaltyJoker {
			return c.Color == p.Color
		}
	}

	return false
}

// applyOrUpdatePenalty resolves a penalty card, or an A♠ played against a
// pending penalty, for seat.
func (t *Table) applyOrUpdatePenalty(c deck.Card, seat Seat, followUp bool) (Outcome, error) {
	current := t.Pending

	if c.IsAceOfSpades() && t.pendingAgainst(seat) {
		t.logger.Debug().Msgf("A♠ blocks the %d card penalty", current.Amount)
		t.Pending = Penalty{}
		return BlockedPenalty, nil
	}

	played := newPenalty(c, seat)

	if !current.Active() {
		t.Pending = played
		return Normal, nil
	}

	if current.Issuer == seat {
		if !followUp {
			// only reachable if a seat acts twice without a follow-up
			t.logger.Error().Msgf("%s added %s to its own penalty outside a follow-up", seat, c)
		}
		stacked := played
		stacked.Amount = current.Amount + played.Amount
		if current.Kind.Strength() > played.Kind.Strength() {
			stacked.Kind = current.Kind
		}
		t.Pending = stacked
		return Normal, nil
	}

	if played.Kind.Strength() >= current.Kind.Strength() {
		t.Pending = played
		return PassBack, nil
	}

	diff := current.Amount - played.Amount
	t.Pending = Penalty{}
	t.logger.Debug().Msgf("%s countered with %s and draws %d", seat, c, diff)
	for i := 0; i < diff; i++ {
		if _, err := t.Draw(seat); err != nil {
			return Normal, err
		}
	}
	return Normal, nil
}

// AbsorbPenalty makes the current player draw the pending penalty and
// passes the turn. It returns the number of cards actually drawn; running
// out of cards stops the draw but still passes the turn.
func (t *Table) AbsorbPenalty() (int, error) {
	if t.Status != InProgress {
		return 0, ErrGameNotInProgress
	}
	seat := t.CurrentPlayer
	if !t.pendingAgainst(seat) {
		return 0, ErrNoPendingPenalty
	}

	amount := t.Pending.Amount
	t.Pending = Penalty{}

	drawn := 0
	var err error
	for ; drawn < amount; drawn++ {
		if _, err = t.Draw(seat); err != nil {
			break
		}
	}

	t.logger.Debug().Msgf("%s drew %d of %d penalty cards", seat, drawn, amount)
	t.EndTurn()

	return drawn, err
}
