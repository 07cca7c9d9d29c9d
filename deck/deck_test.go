package deck

import (
	"math/rand"
	"testing"

	utils "github.com/minaorangina/matatu/internal"
	"github.com/stretchr/testify/assert"
)

func TestDeck(t *testing.T) {
	t.Run("has every card exactly once", func(t *testing.T) {
		d := New()
		utils.AssertEqual(t, len(d), Size)

		seen := map[Card]struct{}{}
		for _, c := range d {
			seen[c] = struct{}{}
		}
		utils.AssertEqual(t, len(seen), Size)

		jokers := 0
		for _, c := range d {
			if c.IsJoker() {
				jokers++
			}
		}
		utils.AssertEqual(t, jokers, 2)
	})

	t.Run("shuffle keeps the same cards", func(t *testing.T) {
		d := New()
		d.Shuffle(rand.New(rand.NewSource(42)))

		assert.ElementsMatch(t, d, New())
		assert.NotEqual(t, d, New())
	})

	t.Run("shuffle is deterministic for a seed", func(t *testing.T) {
		a, b := New(), New()
		a.Shuffle(rand.New(rand.NewSource(7)))
		b.Shuffle(rand.New(rand.NewSource(7)))
		utils.AssertDeepEqual(t, a, b)
	})

	t.Run("shuffle can leave the last card in place", func(t *testing.T) {
		// Fisher-Yates must allow j == i, otherwise the permutation is biased
		stayed := false
		for seed := int64(0); seed < 500 && !stayed; seed++ {
			d := New()
			last := d[len(d)-1]
			d.Shuffle(rand.New(rand.NewSource(seed)))
			stayed = d[len(d)-1] == last
		}
		utils.AssertTrue(t, stayed)
	})
}

func TestDeal(t *testing.T) {
	d := New()
	top := d[len(d)-1]

	dealt := d.Deal(7)
	utils.AssertEqual(t, len(dealt), 7)
	utils.AssertEqual(t, len(d), Size-7)
	utils.AssertEqual(t, dealt[6], top)

	utils.AssertEqual(t, len(d.Deal(-1)), 0)
	utils.AssertEqual(t, len(d.Deal(Size)), 0)
	utils.AssertEqual(t, len(d), Size-7)
}

func TestDraw(t *testing.T) {
	d := Deck{NewCard(Four, Clubs), NewCard(Five, Hearts)}

	c, ok := d.Draw()
	utils.AssertTrue(t, ok)
	utils.AssertEqual(t, c, NewCard(Five, Hearts))

	d.PutBottom(NewCard(Six, Spades))
	utils.AssertDeepEqual(t, d, Deck{NewCard(Six, Spades), NewCard(Four, Clubs)})

	d.Draw()
	d.Draw()
	_, ok = d.Draw()
	utils.AssertFalse(t, ok)
}
