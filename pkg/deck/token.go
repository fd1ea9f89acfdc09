package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is matched by every ParseError
var ErrParse = errors.New("could not parse token")

// ParseError is returned when a token is not a card or a joker
type ParseError struct {
	Token string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("could not parse token: %q", p.Token)
}

// Is allows errors.Is(err, ErrParse)
func (p *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Token is one entry of a pool, either a Card or a Joker
type Token interface {
	fmt.Stringer
	isToken()
}

// ParseToken parses a card ("TC") or a joker ("?B", "?R")
func ParseToken(s string) (Token, error) {
	switch s {
	case "?B":
		return BlackJoker, nil
	case "?R":
		return RedJoker, nil
	}

	card, err := ParseCard(s)
	if err != nil {
		return nil, err
	}

	return card, nil
}

// ParseTokens parses a list of tokens separated by whitespace or commas
func ParseTokens(s string) ([]Token, error) {
	fields := splitTokens(s)
	tokens := make([]Token, len(fields))
	for i, field := range fields {
		token, err := ParseToken(field)
		if err != nil {
			return nil, err
		}

		tokens[i] = token
	}

	return tokens, nil
}

// TokensFromString is ParseTokens, but panics on error
func TokensFromString(s string) []Token {
	tokens, err := ParseTokens(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse tokens `%s`: %v", s, err))
	}

	return tokens
}

// TokensToString converts tokens to "6C 7C ?B"
func TokensToString(tokens []Token) string {
	s := make([]string, len(tokens))
	for i, token := range tokens {
		s[i] = token.String()
	}

	return strings.Join(s, " ")
}

// SplitTokens separates the concrete cards from the jokers, keeping the order of each
func SplitTokens(tokens []Token) ([]Card, []Joker) {
	cards := make([]Card, 0, len(tokens))
	var jokers []Joker
	for _, token := range tokens {
		switch t := token.(type) {
		case Card:
			cards = append(cards, t)
		case Joker:
			jokers = append(jokers, t)
		}
	}

	return cards, jokers
}
