package game

import (
	"fmt"

	"github.com/minaorangina/matatu/deck"
)

const eliminationLimit = 30

// HandResult is a hand scored for the count
type HandResult struct {
	Sum        int    `json:"sum"`
	Eliminated bool   `json:"eliminated"`
	Reason     string `json:"reason"`
}

// CountResult is the outcome of a count round
type CountResult struct {
	Human    HandResult `json:"player"`
	Opponent HandResult `json:"ai"`
	Status   Status     `json:"-"`
	Reason   string     `json:"reason"`
}

// EvaluateHand scores a hand and decides whether it is eliminated.
// Jokers and aces always eliminate. A lone 3, or a 2 with at most 10
// points beside it, survives whatever the sum.
func EvaluateHand(hand []deck.Card) HandResult {
	var (
		sum, sumOther             int
		hasJoker, hasAce, hasAceS bool
		hasTwo                    bool
	)

	for _, c := range hand {
		p := c.Points()
		sum += p

		switch {
		case c.IsJoker():
			hasJoker = true
		case c.IsAceOfSpades():
			hasAceS = true
		case c.IsAce():
			hasAce = true
		}

		if c.Rank == deck.Two {
			hasTwo = true
		} else {
			sumOther += p
		}
	}

	switch {
	case hasJoker:
		return HandResult{sum, true, "Has Joker"}
	case hasAceS:
		return HandResult{sum, true, "Has A♠"}
	case hasAce:
		return HandResult{sum, true, "Has Ace"}
	case len(hand) == 1 && hand[0].Rank == deck.Three:
		return HandResult{sum, false, "Only 3"}
	case hasTwo && sumOther <= 10:
		return HandResult{sum, false, fmt.Sprintf("Has 2, other≤10 (%d)", sumOther)}
	case sum > eliminationLimit:
		return HandResult{sum, true, fmt.Sprintf("Sum>30 (%d)", sum)}
	}

	return HandResult{sum, false, fmt.Sprintf("Sum≤30 (%d)", sum)}
}

// Count scores both hands and ends the game
func (t *Table) Count() CountResult {
	human := EvaluateHand(t.Hands[Human])
	opponent := EvaluateHand(t.Hands[Opponent])

	var (
		status Status
		note   string
	)

	switch {
	case human.Eliminated && opponent.Eliminated:
		status, note = OpponentWin, "Both elim."
		if human.Sum <= opponent.Sum {
			status = HumanWin
		}
	case human.Eliminated:
		status, note = OpponentWin, "P elim."
	case opponent.Eliminated:
		status, note = HumanWin, "AI elim."
	default:
		note = "Neither elim."
		switch {
		case human.Sum < opponent.Sum:
			status = HumanWin
		case opponent.Sum < human.Sum:
			status = OpponentWin
		default:
			status = Draw
		}
	}

	result := CountResult{
		Human:    human,
		Opponent: opponent,
		Status:   status,
		Reason:   fmt.Sprintf("Count round. P:%d,AI:%d. %s", human.Sum, opponent.Sum, note),
	}

	t.logger.Info().
		Int("player", human.Sum).
		Int("ai", opponent.Sum).
		Str("result", status.String()).
		Msg("count round")

	if t.Status != Counting {
		t.logger.Warn().Msgf("count requested while %s", t.Status)
		return result
	}

	t.Status = status
	t.Finish(result.Reason)

	return result
}
