package handanalyzer

import (
	"sort"

	"pokerhand/pkg/deck"
)

// HandSize is the number of cards in a poker hand
const HandSize = 5

// HandAnalyzer analyzes an exact five card hand
type HandAnalyzer struct {
	cards deck.Hand // sorted by rank, descending
	ranks []int     // ranks of cards, descending

	flush    bool
	straight int
	quads    []int
	trips    []int
	pairs    []int
	singles  []int

	key RankKey
}

type sortByRank deck.Hand

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// New will return a new HandAnalyzer instance
// The hand must contain exactly five distinct cards
func New(hand []deck.Card) (*HandAnalyzer, error) {
	if err := checkCards(hand, HandSize); err != nil {
		return nil, err
	}

	return analyze(hand), nil
}

// analyze skips validation, callers must pass five distinct valid cards
func analyze(hand []deck.Card) *HandAnalyzer {
	// clone to prevent modifying original
	sortedCards := deck.Hand(hand).Clone()
	sort.Stable(sort.Reverse(sortByRank(sortedCards)))

	h := &HandAnalyzer{
		cards: sortedCards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// Classify returns the rank key of an exact five card hand
func Classify(hand []deck.Card) (RankKey, error) {
	h, err := New(hand)
	if err != nil {
		return RankKey{}, err
	}

	return h.GetRankKey(), nil
}

// analyzeHand will loop through the hand once and record the flush, straight, and rank groups
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	h.ranks = make([]int, len(h.cards))
	h.flush = true
	for i, card := range h.cards {
		h.ranks[i] = card.Rank
		if card.Suit != h.cards[0].Suit {
			h.flush = false
		}
	}

	h.checkStraight()
	h.checkPairs()
}

// checkStraight requires four descending steps of exactly one
// An ace is always high, A-2-3-4-5 is not a straight
func (h *HandAnalyzer) checkStraight() {
	streak := 0
	for i := 0; i+1 < len(h.ranks); i++ {
		if h.ranks[i] != h.ranks[i+1]+1 {
			return
		}

		streak++
	}

	if streak == HandSize-1 {
		h.straight = h.ranks[0]
	}
}

// checkPairs groups equal ranks, each group is appended in descending rank order
func (h *HandAnalyzer) checkPairs() {
	for i := 0; i < len(h.ranks); {
		j := i + 1
		for j < len(h.ranks) && h.ranks[j] == h.ranks[i] {
			j++
		}

		switch j - i {
		case 4:
			h.quads = append(h.quads, h.ranks[i])
		case 3:
			h.trips = append(h.trips, h.ranks[i])
		case 2:
			h.pairs = append(h.pairs, h.ranks[i])
		case 1:
			h.singles = append(h.singles, h.ranks[i])
		}

		i = j
	}
}

// kind returns the highest rank appearing exactly n times
func (h *HandAnalyzer) kind(n int) (int, bool) {
	var group []int
	switch n {
	case 4:
		group = h.quads
	case 3:
		group = h.trips
	case 2:
		group = h.pairs
	case 1:
		group = h.singles
	}

	if len(group) > 0 {
		return group[0], true
	}

	return 0, false
}

// GetRankKey returns the comparable strength of the hand
func (h *HandAnalyzer) GetRankKey() RankKey {
	return h.key
}

// GetCategory returns the category of the hand
func (h *HandAnalyzer) GetCategory() Category {
	return h.key.Category
}

// GetStraightFlush will return the high card of a straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.flush && h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetFourOfAKind will return the four of a kind rank and the kicker, if possible
func (h *HandAnalyzer) GetFourOfAKind() ([]int, bool) {
	quads, ok := h.kind(4)
	if !ok {
		return nil, false
	}

	kicker, _ := h.kind(1)
	return []int{quads, kicker}, true
}

// GetFullHouse will return the trips and pair ranks, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	trips, ok := h.kind(3)
	if !ok {
		return nil, false
	}

	pair, ok := h.kind(2)
	if !ok {
		return nil, false
	}

	return []int{trips, pair}, true
}

// GetFlush will return the ranks of a flush, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if h.flush {
		return h.GetHighCard()
	}

	return nil, false
}

// GetStraight will return the high card of a straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the three of a kind rank, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	return h.kind(3)
}

// GetTwoPair will return the two highest pairs, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) >= 2 {
		return []int{h.pairs[0], h.pairs[1]}, true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	return h.kind(2)
}

// GetHighCard will return every rank, highest first
func (h *HandAnalyzer) GetHighCard() ([]int, bool) {
	ranks := make([]int, len(h.ranks))
	copy(ranks, h.ranks)
	return ranks, true
}

// calculateHand will determine the category and tiebreak, first match wins
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	if high, ok := h.GetStraightFlush(); ok {
		h.key = newRankKey(StraightFlush, high)
	} else if quads, ok := h.GetFourOfAKind(); ok {
		h.key = newRankKey(FourOfAKind, quads...)
	} else if fullHouse, ok := h.GetFullHouse(); ok {
		h.key = newRankKey(FullHouse, fullHouse...)
	} else if flush, ok := h.GetFlush(); ok {
		h.key = newRankKey(Flush, flush...)
	} else if high, ok := h.GetStraight(); ok {
		h.key = newRankKey(Straight, high)
	} else if trips, ok := h.GetThreeOfAKind(); ok {
		h.key = newRankKey(ThreeOfAKind, append([]int{trips}, h.ranks...)...)
	} else if twoPair, ok := h.GetTwoPair(); ok {
		h.key = newRankKey(TwoPair, append(twoPair, h.ranks...)...)
	} else if pair, ok := h.GetPair(); ok {
		h.key = newRankKey(OnePair, append([]int{pair}, h.ranks...)...)
	} else {
		h.key = newRankKey(HighCard, h.ranks...)
	}
}
