package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokerhand/pkg/deck"
	"pokerhand/pkg/handanalyzer"
)

func TestEvaluate(t *testing.T) {
	resolver := handanalyzer.NewResolver(handanalyzer.Options{Workers: 2})

	r, err := evaluate(resolver, "TD TC 5H 5C 7C ?R ?B")
	require.NoError(t, err)
	assert.Equal(t, "TD TC 5H 5C 7C ?R ?B", r.Pool)
	assert.Equal(t, handanalyzer.FourOfAKind, r.Result.Category())
	assert.Equal(t, []string{"7C", "TC", "TD", "TH", "TS"}, r.Result.Hand.SortedStrings())

	_, err = evaluate(resolver, "TD TC 5H 5C 7C ?R ?X")
	assert.ErrorIs(t, err, deck.ErrParse)

	_, err = evaluate(resolver, "TD TC 5H")
	assert.ErrorIs(t, err, handanalyzer.ErrInvalidPool)
}

func TestReadPools(t *testing.T) {
	pools, err := readPools([]string{"6C", "7C", "8C"}, strings.NewReader(""), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"6C 7C 8C"}, pools)

	in := strings.NewReader("6C 7C 8C 9C TC 5C JS\n\n  TD TC 5H 5C 7C ?R ?B  \n")
	pools, err = readPools(nil, in, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"6C 7C 8C 9C TC 5C JS", "TD TC 5H 5C 7C ?R ?B"}, pools)
}

func TestReadPools_random(t *testing.T) {
	*random = true
	*jokers = 1
	defer func() {
		*random = false
		*jokers = 0
	}()

	p1, err := readPools(nil, strings.NewReader(""), 99)
	require.NoError(t, err)
	require.Len(t, p1, 1)

	tokens, err := deck.ParseTokens(p1[0])
	require.NoError(t, err)
	assert.Len(t, tokens, handanalyzer.PoolSize)
	assert.Equal(t, deck.BlackJoker, tokens[6])

	p2, err := readPools(nil, strings.NewReader(""), 99)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)

	// no seed uses crypto/rand
	p3, err := readPools(nil, strings.NewReader(""), 0)
	require.NoError(t, err)
	require.Len(t, p3, 1)
	tokens, err = deck.ParseTokens(p3[0])
	require.NoError(t, err)
	assert.Len(t, tokens, handanalyzer.PoolSize)
	assert.Equal(t, deck.BlackJoker, tokens[6])

	_, err = handanalyzer.NewResolver(handanalyzer.Options{Workers: 1}).Evaluate(tokens)
	assert.NoError(t, err)
}

func TestRender(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	resolver := handanalyzer.NewResolver(handanalyzer.Options{Workers: 1})
	r, err := evaluate(resolver, "6C 7C 8C 9C TC 5C ?B")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, []row{r}))
	assert.Contains(t, buf.String(), "7C 8C 9C TC JC")
	assert.Contains(t, buf.String(), "Straight flush")
	assert.Contains(t, buf.String(), "7♣ 8♣ 9♣ 10♣ J♣")
}
