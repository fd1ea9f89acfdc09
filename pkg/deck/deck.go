package deck

import (
	"errors"
	"fmt"
	"time"

	"pokerhand/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a standard 52-card playing deck
// The jokers are not part of the deck, DealPool adds them on request
type Deck struct {
	Cards  []Card `json:"cards"`
	seed   int64
	rng    rng.Generator
	custom bool
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rng.NewSeeded(seed)
}

// SetGenerator replaces the random source, i.e., rng.Crypto{}
func (d *Deck) SetGenerator(g rng.Generator) {
	d.rng = g
	d.custom = true
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// You can manually specify the seed, or you can leave it as 0 for a time based seed.
// If a generator was set with SetGenerator, the seed is ignored
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck
	d.buildDeck()

	if !d.custom {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		d.SetSeed(seed)
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// DealPool draws size-jokers cards and appends the jokers (black first, then red)
// jokers must be between 0 and 2
func (d *Deck) DealPool(size, jokers int) ([]Token, error) {
	if jokers < 0 || jokers > 2 || jokers > size {
		return nil, fmt.Errorf("cannot deal %d jokers in a pool of %d", jokers, size)
	}

	if !d.CanDraw(size - jokers) {
		return nil, fmt.Errorf("%w: need %d cards, %d left", ErrEndOfDeck, size-jokers, d.CardsLeft())
	}

	pool := make([]Token, 0, size)
	for i := 0; i < size-jokers; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		pool = append(pool, card)
	}

	for _, joker := range []Joker{BlackJoker, RedJoker}[:jokers] {
		pool = append(pool, joker)
	}

	return pool, nil
}
