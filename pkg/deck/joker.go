package deck

import "fmt"

// Color is the color of a suit
type Color string

// color constants
const (
	Black Color = "black"
	Red   Color = "red"
)

// Joker is a wild card that can become any card of its color
type Joker struct {
	Color Color `json:"color"`
}

// the two jokers in a deck
var (
	BlackJoker = Joker{Color: Black}
	RedJoker   = Joker{Color: Red}
)

func (Joker) isToken() {}

func (j Joker) String() string {
	switch j.Color {
	case Black:
		return "?B"
	case Red:
		return "?R"
	default:
		panic(fmt.Sprintf("unknown joker color: %s", string(j.Color)))
	}
}

// Suits returns the suits the joker can represent
func (j Joker) Suits() []Suit {
	switch j.Color {
	case Black:
		return []Suit{Clubs, Spades}
	case Red:
		return []Suit{Diamonds, Hearts}
	default:
		panic(fmt.Sprintf("unknown joker color: %s", string(j.Color)))
	}
}

// Candidates returns every card the joker can become
// The order is rank ascending, then the order of Suits()
func (j Joker) Candidates() []Card {
	cards := make([]Card, 0, (MaxRank-MinRank+1)*len(j.Suits()))
	for rank := MinRank; rank <= MaxRank; rank++ {
		for _, suit := range Suits {
			if c := (Card{Rank: rank, Suit: suit}); j.CanBe(c) {
				cards = append(cards, c)
			}
		}
	}

	return cards
}

// CanBe returns true if the joker can stand in for the card
func (j Joker) CanBe(c Card) bool {
	return c.IsValid() && c.Suit.Color() == j.Color
}
