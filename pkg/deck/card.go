package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits is every suit in token order (C, D, H, S)
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// Color returns the color of the suit
func (s Suit) Color() Color {
	switch s {
	case Clubs, Spades:
		return Black
	case Diamonds, Hearts:
		return Red
	default:
		panic(fmt.Sprintf("unknown suit: %s", string(s)))
	}
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// rank bounds
const (
	MinRank = 2
	MaxRank = Ace
)

// rankChars maps a rank to its token character, index is the rank
const rankChars = "--23456789TJQKA"

// Card is an individual playing card
// Cards are values and can be compared with ==
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

func (Card) isToken() {}

// String returns the token form of the card, i.e., "TC" for the ten of clubs
func (c Card) String() string {
	return string(rankChars[c.Rank]) + string(suitChar(c.Suit))
}

// Symbol returns a human friendly version of the card, i.e., "10♣"
func (c Card) Symbol() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return rank + suit
}

// IsValid returns true if the rank and suit are in range
func (c Card) IsValid() bool {
	if c.Rank < MinRank || c.Rank > MaxRank {
		return false
	}

	switch c.Suit {
	case Clubs, Diamonds, Hearts, Spades:
		return true
	}

	return false
}

func suitChar(s Suit) byte {
	switch s {
	case Clubs:
		return 'C'
	case Diamonds:
		return 'D'
	case Hearts:
		return 'H'
	case Spades:
		return 'S'
	default:
		panic(fmt.Sprintf("unknown suit: %s", string(s)))
	}
}

var cardRx = regexp.MustCompile(`^([2-9TJQKA])([CDHS])\z`)

// ParseCard parses a single concrete card token in the format of <rank><suit>,
// i.e., "AS" or "TH"
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, &ParseError{Token: s}
	}

	var suit Suit
	switch match[2] {
	case "C":
		suit = Clubs
	case "D":
		suit = Diamonds
	case "H":
		suit = Hearts
	case "S":
		suit = Spades
	}

	return Card{
		Rank: strings.IndexByte(rankChars, match[1][0]),
		Suit: suit,
	}, nil
}

// ParseCards parses a list of concrete card tokens separated by whitespace or commas
func ParseCards(s string) ([]Card, error) {
	fields := splitTokens(s)
	cards := make([]Card, len(fields))
	for i, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsFromString will return a slice of cards
// This panics if a card cannot be parsed, it is meant for literals and tests
func CardsFromString(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse cards `%s`: %v", s, err))
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of "2C 3H 4S"
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
