package handanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokerhand/pkg/deck"
)

func TestBestHand(t *testing.T) {
	tests := []struct {
		name     string
		pool     string
		expected []string
		category Category
	}{
		{
			name:     "higher straight flush beats the one using 5C",
			pool:     "6C 7C 8C 9C TC 5C JS",
			expected: []string{"6C", "7C", "8C", "9C", "TC"},
			category: StraightFlush,
		},
		{
			name:     "full house with the higher trips",
			pool:     "TD TC TH 7C 7D 8C 8S",
			expected: []string{"8C", "8S", "TC", "TD", "TH"},
			category: FullHouse,
		},
		{
			name:     "four of a kind with the best kicker",
			pool:     "JD TC TH 7C 7D 7S 7H",
			expected: []string{"7C", "7D", "7H", "7S", "JD"},
			category: FourOfAKind,
		},
		{
			name:     "flush over straight",
			pool:     "2H 5H 9H JH KH TD QC",
			expected: []string{"2H", "5H", "9H", "JH", "KH"},
			category: Flush,
		},
		{
			name:     "two pair keeps the best kicker",
			pool:     "AD AC KH KS 2D 3C QH",
			expected: []string{"AC", "AD", "KH", "KS", "QH"},
			category: TwoPair,
		},
		{
			name:     "the wheel is not a straight",
			pool:     "AD 2C 3H 4S 5D 9C JH",
			expected: []string{"4S", "5D", "9C", "AD", "JH"},
			category: HighCard,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pool := deck.CardsFromString(test.pool)
			hand, err := BestHand(pool)
			require.NoError(t, err)
			assert.Equal(t, test.expected, hand.SortedStrings())

			r, err := Evaluate(pool)
			require.NoError(t, err)
			assert.Equal(t, test.category, r.Category())
			assert.Equal(t, hand, r.Hand)
		})
	}
}

func TestBestHand_errors(t *testing.T) {
	a := assert.New(t)

	_, err := BestHand(deck.CardsFromString("6C 7C 8C 9C TC 5C"))
	a.ErrorIs(err, ErrInvalidHandSize)
	a.EqualError(err, "invalid hand size: expected 7 cards, got 6")

	_, err = BestHand(deck.CardsFromString("6C 7C 8C 9C TC 5C JS QS"))
	a.ErrorIs(err, ErrInvalidHandSize)

	_, err = BestHand(deck.CardsFromString("6C 7C 8C 9C TC 5C 6C"))
	a.ErrorIs(err, ErrDuplicateCard)
}

func TestBestHand_ties(t *testing.T) {
	// 2C/2D and 3D/3H make four equal straights, the earliest subset wins
	pool := deck.CardsFromString("2C 3D 4H 5S 6C 2D 3H")
	h1, err := BestHand(pool)
	require.NoError(t, err)
	assert.Equal(t, "2C 3D 4H 5S 6C", h1.String())

	for i := 0; i < 5; i++ {
		h2, err := BestHand(pool)
		require.NoError(t, err)
		assert.Equal(t, h1, h2)
	}
}

func TestBestHand_doesNotModifyInput(t *testing.T) {
	pool := deck.CardsFromString("JD TC TH 7C 7D 7S 7H")
	_, err := BestHand(pool)
	require.NoError(t, err)
	assert.Equal(t, "JD TC TH 7C 7D 7S 7H", deck.CardsToString(pool))
}

// subsets returns every five card subset of a seven card pool
func subsets(pool []deck.Card) [][]deck.Card {
	var out [][]deck.Card
	for skip1 := 0; skip1 < len(pool); skip1++ {
		for skip2 := skip1 + 1; skip2 < len(pool); skip2++ {
			hand := make([]deck.Card, 0, HandSize)
			for i, c := range pool {
				if i != skip1 && i != skip2 {
					hand = append(hand, c)
				}
			}

			out = append(out, hand)
		}
	}

	return out
}

func TestBestHand_properties(t *testing.T) {
	d := deck.New()
	for seed := int64(1); seed <= 200; seed++ {
		d.Shuffle(seed)
		pool := make([]deck.Card, PoolSize)
		for i := range pool {
			card, err := d.Draw()
			require.NoError(t, err)
			pool[i] = card
		}

		r, err := Evaluate(pool)
		require.NoError(t, err)
		require.Len(t, r.Hand, HandSize)
		_, dup := r.Hand.FirstDuplicate()
		assert.False(t, dup)
		assert.True(t, r.Key.Category >= HighCard && r.Key.Category <= StraightFlush)

		for _, c := range r.Hand {
			assert.True(t, deck.Hand(pool).HasCard(c), "seed %d: %s not in pool", seed, c)
		}

		all := subsets(pool)
		assert.Len(t, all, 21)
		for _, hand := range all {
			key, err := Classify(hand)
			require.NoError(t, err)
			assert.False(t, r.Key.Less(key), "seed %d: %s beats %s", seed, deck.CardsToString(hand), r.Hand)
		}

		// rebuild a pool from the best hand and any two of the discards
		var discards []deck.Card
		for _, c := range pool {
			if !r.Hand.HasCard(c) {
				discards = append(discards, c)
			}
		}

		rebuilt := append(r.Hand.Clone(), discards...)
		r2, err := Evaluate(rebuilt)
		require.NoError(t, err)
		assert.True(t, r.Key.Equal(r2.Key), "seed %d", seed)
	}
}
