package game

import (
	"testing"

	"github.com/minaorangina/matatu/deck"
	utils "github.com/minaorangina/matatu/internal"
)

func TestEvaluateHand(t *testing.T) {
	cases := []struct {
		name string
		hand []deck.Card
		want HandResult
	}{
		{
			name: "a lone 3 survives",
			hand: []deck.Card{card(deck.Three, deck.Clubs)},
			want: HandResult{30, false, "Only 3"},
		},
		{
			name: "a 2 with little beside it survives",
			hand: []deck.Card{card(deck.Two, deck.Diamonds), card(deck.Four, deck.Clubs)},
			want: HandResult{24, false, "Has 2, other≤10 (4)"},
		},
		{
			name: "two kings stay under the limit",
			hand: []deck.Card{card(deck.King, deck.Spades), card(deck.King, deck.Hearts)},
			want: HandResult{28, false, "Sum≤30 (28)"},
		},
		{
			name: "two kings and a queen go over",
			hand: []deck.Card{card(deck.King, deck.Spades), card(deck.King, deck.Hearts), card(deck.Queen, deck.Diamonds)},
			want: HandResult{40, true, "Sum>30 (40)"},
		},
		{
			name: "exactly 30 survives",
			hand: []deck.Card{card(deck.Ten, deck.Spades), card(deck.Ten, deck.Hearts), card(deck.Ten, deck.Clubs)},
			want: HandResult{30, false, "Sum≤30 (30)"},
		},
		{
			name: "a joker always eliminates",
			hand: []deck.Card{redJoker, card(deck.Three, deck.Clubs)},
			want: HandResult{80, true, "Has Joker"},
		},
		{
			name: "a joker beats the 2 exemption",
			hand: []deck.Card{card(deck.Two, deck.Clubs), blackJoker},
			want: HandResult{70, true, "Has Joker"},
		},
		{
			name: "the ace of spades eliminates",
			hand: []deck.Card{card(deck.Ace, deck.Spades), card(deck.Ace, deck.Hearts)},
			want: HandResult{71, true, "Has A♠"},
		},
		{
			name: "any ace eliminates",
			hand: []deck.Card{card(deck.Ace, deck.Hearts)},
			want: HandResult{11, true, "Has Ace"},
		},
		{
			name: "a 2 with too much beside it falls back to the sum",
			hand: []deck.Card{card(deck.Two, deck.Diamonds), card(deck.Nine, deck.Clubs), card(deck.Four, deck.Clubs)},
			want: HandResult{33, true, "Sum>30 (33)"},
		},
		{
			name: "two 3s get no exemption",
			hand: []deck.Card{card(deck.Three, deck.Diamonds), card(deck.Three, deck.Clubs)},
			want: HandResult{60, true, "Sum>30 (60)"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := EvaluateHand(c.hand)
			utils.AssertEqual(t, got, c.want)

			t.Log("and evaluating again gives the same answer")
			utils.AssertEqual(t, EvaluateHand(c.hand), got)
		})
	}
}

func TestCount(t *testing.T) {
	kings := []deck.Card{card(deck.King, deck.Spades), card(deck.King, deck.Hearts)}
	small := []deck.Card{card(deck.Four, deck.Clubs), card(deck.Six, deck.Clubs)}
	smallToo := []deck.Card{card(deck.Four, deck.Diamonds), card(deck.Six, deck.Diamonds)}
	aceHand := []deck.Card{card(deck.Ace, deck.Hearts)}
	jokerHand := []deck.Card{redJoker}
	heavy := []deck.Card{card(deck.Queen, deck.Clubs), card(deck.Queen, deck.Diamonds), card(deck.Ten, deck.Hearts)}

	cases := []struct {
		name     string
		human    []deck.Card
		opponent []deck.Card
		status   Status
		reason   string
	}{
		{"neither eliminated, lower wins", small, kings, HumanWin, "Count round. P:10,AI:28. Neither elim."},
		{"neither eliminated, opponent lower", kings, small, OpponentWin, "Count round. P:28,AI:10. Neither elim."},
		{"neither eliminated, equal draws", small, smallToo, Draw, "Count round. P:10,AI:10. Neither elim."},
		{"only the human eliminated", aceHand, kings, OpponentWin, "Count round. P:11,AI:28. P elim."},
		{"only the opponent eliminated", kings, heavy, HumanWin, "Count round. P:28,AI:34. AI elim."},
		{"both eliminated, lower wins", aceHand, jokerHand, HumanWin, "Count round. P:11,AI:50. Both elim."},
		{"both eliminated, opponent lower", jokerHand, heavy, OpponentWin, "Count round. P:50,AI:34. Both elim."},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Log("Given a table in the counting stage")
			table := ExistingTable(TableOpts{
				Status:       Counting,
				HumanHand:    c.human,
				OpponentHand: c.opponent,
			})

			t.Log("When the hands are counted")
			result := table.Count()

			t.Log("Then the game ends with the expected result")
			utils.AssertEqual(t, result.Status, c.status)
			utils.AssertEqual(t, result.Reason, c.reason)
			utils.AssertEqual(t, table.Status, c.status)
			utils.AssertEqual(t, table.Reason, c.reason)
		})
	}

	t.Run("both eliminated on equal sums goes to the human", func(t *testing.T) {
		table := ExistingTable(TableOpts{
			Status:       Counting,
			HumanHand:    []deck.Card{card(deck.Ace, deck.Hearts)},
			OpponentHand: []deck.Card{card(deck.Ace, deck.Clubs)},
		})

		utils.AssertEqual(t, table.Count().Status, HumanWin)
	})

	t.Run("counting outside the counting stage changes nothing", func(t *testing.T) {
		table := ExistingTable(TableOpts{
			HumanHand:    small,
			OpponentHand: kings,
		})

		result := table.Count()

		utils.AssertEqual(t, result.Status, HumanWin)
		utils.AssertEqual(t, table.Status, InProgress)
	})
}
