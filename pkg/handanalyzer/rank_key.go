package handanalyzer

import (
	"fmt"
	"strings"
)

// maxTiebreak is the longest tiebreak, two pair: (high pair, low pair, five ranks)
const maxTiebreak = 7

// RankKey orders hands by strength
// Tiebreaks are only compared between keys of the same category, every category has a fixed shape:
//
//	StraightFlush, Straight: (high card)
//	FourOfAKind:             (quads, kicker)
//	FullHouse:               (trips, pair)
//	Flush, HighCard:         (five ranks, descending)
//	ThreeOfAKind:            (trips, five ranks)
//	TwoPair:                 (high pair, low pair, five ranks)
//	OnePair:                 (pair, five ranks)
type RankKey struct {
	Category Category
	tiebreak [maxTiebreak]int
	n        int
}

func newRankKey(category Category, ranks ...int) RankKey {
	if len(ranks) > maxTiebreak {
		panic(fmt.Sprintf("tiebreak too long: %d", len(ranks)))
	}

	k := RankKey{Category: category, n: len(ranks)}
	copy(k.tiebreak[:], ranks)
	return k
}

// Tiebreak returns a copy of the tiebreak ranks
func (k RankKey) Tiebreak() []int {
	t := make([]int, k.n)
	copy(t, k.tiebreak[:k.n])
	return t
}

// Compare returns -1, 0, or 1 if k is weaker, equal, or stronger than other
func (k RankKey) Compare(other RankKey) int {
	if k.Category != other.Category {
		if k.Category < other.Category {
			return -1
		}

		return 1
	}

	// same category means same shape
	for i := 0; i < k.n; i++ {
		switch {
		case k.tiebreak[i] < other.tiebreak[i]:
			return -1
		case k.tiebreak[i] > other.tiebreak[i]:
			return 1
		}
	}

	return 0
}

// Less returns true if k is weaker than other
func (k RankKey) Less(other RankKey) bool {
	return k.Compare(other) < 0
}

// Equal returns true if k and other have the same strength
func (k RankKey) Equal(other RankKey) bool {
	return k.Compare(other) == 0
}

// String returns a debug form, i.e., "Full house (10, 8)"
func (k RankKey) String() string {
	ranks := make([]string, k.n)
	for i, r := range k.tiebreak[:k.n] {
		ranks[i] = fmt.Sprint(r)
	}

	return fmt.Sprintf("%s (%s)", k.Category, strings.Join(ranks, ", "))
}
