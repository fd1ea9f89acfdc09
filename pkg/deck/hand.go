package deck

import "sort"

// Hand represents a collection of cards
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// FirstDuplicate returns the first card that appears more than once
func (h Hand) FirstDuplicate() (Card, bool) {
	seen := make(map[Card]bool, len(h))
	for _, c := range h {
		if seen[c] {
			return c, true
		}

		seen[c] = true
	}

	return Card{}, false
}

// Strings returns the token of every card
func (h Hand) Strings() []string {
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.String()
	}

	return s
}

// SortedStrings returns the tokens sorted lexically, i.e., ["7C", "8C", "JC", "TC"]
func (h Hand) SortedStrings() []string {
	s := h.Strings()
	sort.Strings(s)
	return s
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
