package game

import (
	"fmt"

	"github.com/minaorangina/matatu/deck"
)

// Play plays the card at idx from seat's hand.
// chosenSuit is only read for an ace that sets the suit.
func (t *Table) Play(seat Seat, idx int, chosenSuit deck.Suit) (Outcome, error) {
	if t.Status != InProgress {
		return Normal, ErrGameNotInProgress
	}
	if seat != t.CurrentPlayer {
		return Normal, ErrNotYourTurn
	}

	hand := t.Hands[seat]
	if idx < 0 || idx >= len(hand) {
		t.logger.Error().Msgf("%s tried to play card %d of %d", seat, idx, len(hand))
		return Normal, ErrInvalidCardIndex
	}

	card := hand[idx]
	if !t.IsPlayable(card, seat) {
		return Normal, ErrIllegalMove
	}

	rest := removeCard(hand, idx)
	if t.IsReferenceSeven(card) && deck.Points(rest) >= referenceSevenLimit {
		return Normal, ErrReferenceSevenBlocked
	}

	if t.NeedsSuit(seat, idx) && chosenSuit == deck.NullSuit && len(rest) > 0 {
		return Normal, ErrSuitRequired
	}

	blocking := card.IsAceOfSpades() && t.pendingAgainst(seat)
	followUp := t.JokerFollowUp

	t.Hands[seat] = rest
	t.Discard = append(t.Discard, card)
	t.addRecent(card)
	t.CurrentRank = card.Rank
	t.RequiredColor = deck.NullColor
	t.PlayAnyCardNext = false
	t.JokerFollowUp = false
	t.HasDrawn = false

	outcome := Normal
	if penaltyKindOf(card) != NoPenalty || blocking {
		var err error
		outcome, err = t.applyOrUpdatePenalty(card, seat, followUp)
		if err != nil {
			t.logger.Warn().Err(err).Msgf("%s could not draw the whole reduction", seat)
		}
	}

	switch outcome {
	case Normal:
		if (card.Rank == deck.Eight || card.Rank == deck.Jack) && !followUp {
			outcome = PlayAgain
		} else if t.IsReferenceSeven(card) {
			t.logger.Info().Msgf("%s played the reference seven", seat)
			t.Status = Counting
		}
	case PassBack, BlockedPenalty:
	default:
		panic(fmt.Sprintf("unknown outcome %d", outcome))
	}

	switch {
	case outcome == BlockedPenalty:
		t.CurrentSuit = deck.NullSuit
		t.CurrentRank = deck.NullRank
		t.RequiredColor = deck.NullColor
		t.PlayAnyCardNext = true
	case card.IsAce():
		t.CurrentSuit = chosenSuit
	case card.IsJoker():
		t.RequiredColor = card.Color
		t.CurrentSuit = deck.NullSuit
		t.JokerFollowUp = outcome == Normal
	default:
		t.CurrentSuit = card.Suit
	}

	if len(rest) == 0 {
		t.Status = winFor(seat)
		t.Finish(fmt.Sprintf("played last card (%s).", card.Short()))
	}

	return outcome, nil
}

// NeedsSuit reports whether playing the card at idx asks for a suit.
// An ace of spades that blocks a penalty does not.
func (t *Table) NeedsSuit(seat Seat, idx int) bool {
	hand := t.Hands[seat]
	if idx < 0 || idx >= len(hand) {
		return false
	}
	c := hand[idx]
	return c.IsAce() && !(c.IsAceOfSpades() && t.pendingAgainst(seat))
}

// ResolveTurn moves the turn on after card was played with outcome.
// forfeited is set when the opponent hit the play-again cap.
func (t *Table) ResolveTurn(card deck.Card, outcome Outcome) (next Seat, forfeited bool) {
	if t.Status != InProgress {
		return t.CurrentPlayer, false
	}

	seat := t.CurrentPlayer

	switch outcome {
	case PlayAgain:
		if seat == Opponent {
			t.PlayAgainCount++
			if t.PlayAgainCount >= MaxPlayAgain {
				t.logger.Warn().Msgf("%s hit the play again limit", seat)
				t.EndTurn()
				return t.CurrentPlayer, true
			}
		}
		return seat, false

	case PassBack:
		t.EndTurn()

	case BlockedPenalty:
		t.EndTurn()
		t.PlayAnyCardNext = true

	case Normal:
		if card.IsJoker() && t.JokerFollowUp {
			return seat, false
		}
		t.EndTurn()

	default:
		panic(fmt.Sprintf("unknown outcome %d", outcome))
	}

	return t.CurrentPlayer, false
}
