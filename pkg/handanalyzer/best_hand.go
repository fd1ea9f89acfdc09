package handanalyzer

import (
	"pokerhand/pkg/deck"
)

// PoolSize is the number of cards a hand is selected from
const PoolSize = 7

// Result is the best hand found in a pool and its strength
type Result struct {
	Hand deck.Hand
	Key  RankKey
}

// Category is a shortcut for r.Key.Category
func (r Result) Category() Category {
	return r.Key.Category
}

// BestHand returns the strongest five card hand that can be made from seven cards
func BestHand(pool []deck.Card) (deck.Hand, error) {
	r, err := Evaluate(pool)
	if err != nil {
		return nil, err
	}

	return r.Hand, nil
}

// Evaluate is BestHand, but also returns the rank key of the selected hand
func Evaluate(pool []deck.Card) (Result, error) {
	if err := checkCards(pool, PoolSize); err != nil {
		return Result{}, err
	}

	return bestOfPool(pool), nil
}

// bestOfPool walks all 21 five card subsets in index order
// Only a strictly stronger hand replaces the current best, so ties keep the earliest subset
// pool must already be validated
func bestOfPool(pool []deck.Card) Result {
	var best Result
	found := false
	hand := make([]deck.Card, HandSize)

	n := len(pool)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						hand[0], hand[1], hand[2], hand[3], hand[4] = pool[a], pool[b], pool[c], pool[d], pool[e]

						h := analyze(hand)
						if !found || h.key.Compare(best.Key) > 0 {
							best = Result{
								Hand: deck.Hand(hand).Clone(),
								Key:  h.key,
							}
							found = true
						}
					}
				}
			}
		}
	}

	return best
}
