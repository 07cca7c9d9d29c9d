package game

import (
	"testing"

	"github.com/minaorangina/matatu/deck"
	utils "github.com/minaorangina/matatu/internal"
)

func TestIsPlayable(t *testing.T) {
	fiveOfHearts := []deck.Card{card(deck.Five, deck.Hearts)}

	jokerPenalty := Penalty{Kind: PenaltyJoker, Amount: 5, Color: deck.Red, Issuer: Opponent}
	twoPenalty := Penalty{Kind: PenaltyTwo, Amount: 2, Suit: deck.Hearts, Color: deck.Red, Issuer: Opponent}
	threePenalty := Penalty{Kind: PenaltyThree, Amount: 3, Suit: deck.Clubs, Color: deck.Black, Issuer: Opponent}

	cases := []struct {
		name  string
		opts  TableOpts
		card  deck.Card
		actor Seat
		want  bool
	}{
		{
			name:  "standard suit match",
			opts:  TableOpts{Discard: fiveOfHearts},
			card:  card(deck.Nine, deck.Hearts),
			actor: Human,
			want:  true,
		},
		{
			name:  "standard rank match",
			opts:  TableOpts{Discard: fiveOfHearts},
			card:  card(deck.Five, deck.Clubs),
			actor: Human,
			want:  true,
		},
		{
			name:  "no match",
			opts:  TableOpts{Discard: fiveOfHearts},
			card:  card(deck.Nine, deck.Clubs),
			actor: Human,
			want:  false,
		},
		{
			name:  "any ace",
			opts:  TableOpts{Discard: fiveOfHearts},
			card:  card(deck.Ace, deck.Clubs),
			actor: Human,
			want:  true,
		},
		{
			name:  "joker matching top color",
			opts:  TableOpts{Discard: fiveOfHearts},
			card:  redJoker,
			actor: Human,
			want:  true,
		},
		{
			name:  "joker against top color",
			opts:  TableOpts{Discard: fiveOfHearts},
			card:  blackJoker,
			actor: Human,
			want:  false,
		},
		{
			name:  "joker on a joker of another color",
			opts:  TableOpts{Discard: []deck.Card{redJoker}},
			card:  blackJoker,
			actor: Human,
			want:  false,
		},
		{
			name:  "empty discard pile",
			opts:  TableOpts{},
			card:  card(deck.Nine, deck.Clubs),
			actor: Human,
			want:  true,
		},
		{
			name:  "play any card for the current player",
			opts:  TableOpts{Discard: fiveOfHearts, PlayAnyCardNext: true},
			card:  card(deck.Nine, deck.Clubs),
			actor: Human,
			want:  true,
		},
		{
			name:  "play any card only for the current player",
			opts:  TableOpts{Discard: fiveOfHearts, PlayAnyCardNext: true},
			card:  card(deck.Nine, deck.Clubs),
			actor: Opponent,
			want:  false,
		},
		{
			name:  "any joker counters a joker penalty",
			opts:  TableOpts{Discard: []deck.Card{redJoker}, Pending: jokerPenalty},
			card:  blackJoker,
			actor: Human,
			want:  true,
		},
		{
			name:  "same color 2 counters a joker penalty",
			opts:  TableOpts{Discard: []deck.Card{redJoker}, Pending: jokerPenalty},
			card:  card(deck.Two, deck.Diamonds),
			actor: Human,
			want:  true,
		},
		{
			name:  "other color 3 does not counter a joker penalty",
			opts:  TableOpts{Discard: []deck.Card{redJoker}, Pending: jokerPenalty},
			card:  card(deck.Three, deck.Spades),
			actor: Human,
			want:  false,
		},
		{
			name:  "ace of spades counters anything",
			opts:  TableOpts{Discard: []deck.Card{redJoker}, Pending: jokerPenalty},
			card:  card(deck.Ace, deck.Spades),
			actor: Human,
			want:  true,
		},
		{
			name:  "other aces do not counter",
			opts:  TableOpts{Discard: []deck.Card{redJoker}, Pending: jokerPenalty},
			card:  card(deck.Ace, deck.Hearts),
			actor: Human,
			want:  false,
		},
		{
			name:  "plain card under a penalty",
			opts:  TableOpts{Discard: []deck.Card{card(deck.Two, deck.Hearts)}, Pending: twoPenalty},
			card:  card(deck.Five, deck.Hearts),
			actor: Human,
			want:  false,
		},
		{
			name:  "any 2 counters a 2",
			opts:  TableOpts{Discard: []deck.Card{card(deck.Two, deck.Hearts)}, Pending: twoPenalty},
			card:  card(deck.Two, deck.Clubs),
			actor: Human,
			want:  true,
		},
		{
			name:  "same suit 3 counters a 2",
			opts:  TableOpts{Discard: []deck.Card{card(deck.Two, deck.Hearts)}, Pending: twoPenalty},
			card:  card(deck.Three, deck.Hearts),
			actor: Human,
			want:  true,
		},
		{
			name:  "other suit 3 does not counter a 2",
			opts:  TableOpts{Discard: []deck.Card{card(deck.Two, deck.Hearts)}, Pending: twoPenalty},
			card:  card(deck.Three, deck.Diamonds),
			actor: Human,
			want:  false,
		},
		{
			name:  "same color joker counters a 2",
			opts:  TableOpts{Discard: []deck.Card{card(deck.Two, deck.Hearts)}, Pending: twoPenalty},
			card:  redJoker,
			actor: Human,
			want:  true,
		},
		{
			name:  "other color joker does not counter a 2",
			opts:  TableOpts{Discard: []deck.Card{card(deck.Two, deck.Hearts)}, Pending: twoPenalty},
			card:  blackJoker,
			actor: Human,
			want:  false,
		},
		{
			name:  "same suit 2 counters a 3",
			opts:  TableOpts{Discard: []deck.Card{card(deck.Three, deck.Clubs)}, Pending: threePenalty},
			card:  card(deck.Two, deck.Clubs),
			actor: Human,
			want:  true,
		},
		{
			name:  "other suit 2 does not counter a 3",
			opts:  TableOpts{Discard: []deck.Card{card(deck.Three, deck.Clubs)}, Pending: threePenalty},
			card:  card(deck.Two, deck.Spades),
			actor: Human,
			want:  false,
		},
		{
			name: "a penalty does not bind the seat that issued it",
			opts: TableOpts{
				Discard:       []deck.Card{redJoker},
				CurrentPlayer: Opponent,
				RequiredColor: deck.Red,
				JokerFollowUp: true,
				Pending:       jokerPenalty,
			},
			card:  card(deck.Nine, deck.Diamonds),
			actor: Opponent,
			want:  true,
		},
		{
			name:  "required color match",
			opts:  TableOpts{Discard: []deck.Card{redJoker}, RequiredColor: deck.Red},
			card:  card(deck.Nine, deck.Diamonds),
			actor: Human,
			want:  true,
		},
		{
			name:  "required color mismatch",
			opts:  TableOpts{Discard: []deck.Card{redJoker}, RequiredColor: deck.Red},
			card:  card(deck.Nine, deck.Clubs),
			actor: Human,
			want:  false,
		},
		{
			name:  "aces beat a required color",
			opts:  TableOpts{Discard: []deck.Card{redJoker}, RequiredColor: deck.Red},
			card:  card(deck.Ace, deck.Clubs),
			actor: Human,
			want:  true,
		},
		{
			name: "pinned suit match",
			opts: TableOpts{
				Discard:     []deck.Card{card(deck.Ace, deck.Hearts)},
				CurrentSuit: deck.Clubs,
				CurrentRank: deck.Ace,
			},
			card:  card(deck.Nine, deck.Clubs),
			actor: Human,
			want:  true,
		},
		{
			name: "pinned suit ignores the ace's own suit",
			opts: TableOpts{
				Discard:     []deck.Card{card(deck.Ace, deck.Hearts)},
				CurrentSuit: deck.Clubs,
				CurrentRank: deck.Ace,
			},
			card:  card(deck.Nine, deck.Hearts),
			actor: Human,
			want:  false,
		},
		{
			name: "pinned suit lets the ace of spades through",
			opts: TableOpts{
				Discard:     []deck.Card{card(deck.Ace, deck.Hearts)},
				CurrentSuit: deck.Clubs,
				CurrentRank: deck.Ace,
			},
			card:  card(deck.Ace, deck.Spades),
			actor: Human,
			want:  true,
		},
		{
			name: "pinned suit blocks other aces",
			opts: TableOpts{
				Discard:     []deck.Card{card(deck.Ace, deck.Hearts)},
				CurrentSuit: deck.Clubs,
				CurrentRank: deck.Ace,
			},
			card:  card(deck.Ace, deck.Diamonds),
			actor: Human,
			want:  false,
		},
		{
			name: "pinned suit lets any joker through",
			opts: TableOpts{
				Discard:     []deck.Card{card(deck.Ace, deck.Hearts)},
				CurrentSuit: deck.Clubs,
				CurrentRank: deck.Ace,
			},
			card:  redJoker,
			actor: Human,
			want:  true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			table := ExistingTable(c.opts)
			utils.AssertEqual(t, table.IsPlayable(c.card, c.actor), c.want)
		})
	}
}

func TestSuitLockIsStable(t *testing.T) {
	t.Log("Given a hearts ace on top with clubs chosen")
	table := ExistingTable(TableOpts{
		Discard:     []deck.Card{card(deck.Nine, deck.Hearts), card(deck.Ace, deck.Hearts)},
		CurrentSuit: deck.Clubs,
		CurrentRank: deck.Ace,
		HumanHand:   []deck.Card{card(deck.Nine, deck.Diamonds), card(deck.King, deck.Hearts), card(deck.Four, deck.Spades)},
	})

	t.Log("When legality is checked again and again")
	for i := 0; i < 5; i++ {
		t.Log("Then no card of another suit becomes playable")
		utils.AssertDeepEqual(t, table.LegalMoves(Human), []int{})
	}
}

func TestLegalMoves(t *testing.T) {
	table := ExistingTable(TableOpts{
		Discard:   []deck.Card{card(deck.Five, deck.Hearts)},
		HumanHand: []deck.Card{card(deck.Nine, deck.Clubs), card(deck.Nine, deck.Hearts), card(deck.Ace, deck.Spades), blackJoker},
	})

	utils.AssertDeepEqual(t, table.LegalMoves(Human), []int{1, 2})
	utils.AssertTrue(t, table.CanPlay(Human))
	utils.AssertFalse(t, table.CanPlay(Opponent))
}
