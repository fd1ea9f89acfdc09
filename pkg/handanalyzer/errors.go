package handanalyzer

import (
	"errors"
	"fmt"

	"pokerhand/pkg/deck"
)

// ErrInvalidHandSize is returned when Classify or BestHand receive the wrong number of cards
var ErrInvalidHandSize = errors.New("invalid hand size")

// ErrInvalidPool is returned when BestWildHand receives a malformed pool
var ErrInvalidPool = errors.New("invalid pool")

// ErrDuplicateCard is returned when the same card appears twice
var ErrDuplicateCard = errors.New("duplicate card")

// ErrInvalidCard is returned when a card has a rank or suit out of range
var ErrInvalidCard = errors.New("invalid card")

// SizeError is an error on the number of cards passed in
type SizeError struct {
	Kind error
	Want int
	Got  int
}

func (s SizeError) Error() string {
	return fmt.Sprintf("%v: expected %d cards, got %d", s.Kind, s.Want, s.Got)
}

// Unwrap returns ErrInvalidHandSize or ErrInvalidPool
func (s SizeError) Unwrap() error {
	return s.Kind
}

func checkCards(cards []deck.Card, want int) error {
	if len(cards) != want {
		return SizeError{Kind: ErrInvalidHandSize, Want: want, Got: len(cards)}
	}

	return checkDuplicates(cards)
}

func checkDuplicates(cards []deck.Card) error {
	for _, c := range cards {
		if !c.IsValid() {
			return fmt.Errorf("%w: %#v", ErrInvalidCard, c)
		}
	}

	if c, ok := deck.Hand(cards).FirstDuplicate(); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
	}

	return nil
}
