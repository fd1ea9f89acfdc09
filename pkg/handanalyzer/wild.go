package handanalyzer

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"pokerhand/pkg/deck"
)

// Options are options for creating a new Resolver
type Options struct {
	Workers int // Default: GOMAXPROCS. 1 or less evaluates sequentially
}

// DefaultOptions returns the default options for a Resolver
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Resolver finds the best hand in pools that contain jokers
// A Resolver holds no state between calls and is safe for concurrent use
type Resolver struct {
	workers int
}

// NewResolver returns a new Resolver
func NewResolver(opts Options) *Resolver {
	return &Resolver{
		workers: opts.Workers,
	}
}

// BestWildHand returns the strongest five card hand that can be made from seven tokens
// using a Resolver with the default options
func BestWildHand(pool []deck.Token) (deck.Hand, error) {
	return NewResolver(DefaultOptions()).BestWildHand(pool)
}

// BestWildHand returns the strongest five card hand that can be made from seven tokens
// Each joker is replaced by every card of its color that isn't already in the pool
func (r *Resolver) BestWildHand(pool []deck.Token) (deck.Hand, error) {
	result, err := r.Evaluate(pool)
	if err != nil {
		return nil, err
	}

	return result.Hand, nil
}

// Evaluate is BestWildHand, but also returns the rank key of the selected hand
func (r *Resolver) Evaluate(pool []deck.Token) (Result, error) {
	cards, jokers, err := splitPool(pool)
	if err != nil {
		return Result{}, err
	}

	if len(jokers) == 0 {
		return bestOfPool(cards), nil
	}

	combos := substitutions(cards, jokers)
	results := make([]Result, len(combos))

	if r.workers <= 1 {
		for i, combo := range combos {
			results[i] = bestOfPool(resolve(pool, combo))
		}
	} else {
		var g errgroup.Group
		g.SetLimit(r.workers)
		for i, combo := range combos {
			g.Go(func() error {
				results[i] = bestOfPool(resolve(pool, combo))
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	}

	// reduce in enumeration order so ties resolve the same way regardless of the workers
	best := results[0]
	for _, result := range results[1:] {
		if result.Key.Compare(best.Key) > 0 {
			best = result
		}
	}

	return best, nil
}

// splitPool validates the pool and separates the concrete cards from the jokers
func splitPool(pool []deck.Token) ([]deck.Card, []deck.Joker, error) {
	if len(pool) != PoolSize {
		return nil, nil, SizeError{Kind: ErrInvalidPool, Want: PoolSize, Got: len(pool)}
	}

	for _, token := range pool {
		switch token.(type) {
		case deck.Card, deck.Joker:
		case nil:
			return nil, nil, fmt.Errorf("%w: nil token", ErrInvalidPool)
		default:
			return nil, nil, fmt.Errorf("%w: unsupported token %T", ErrInvalidPool, token)
		}
	}

	cards, jokers := deck.SplitTokens(pool)

	seen := make(map[deck.Color]bool, 2)
	for _, joker := range jokers {
		if joker.Color != deck.Black && joker.Color != deck.Red {
			return nil, nil, fmt.Errorf("%w: unknown joker color %q", ErrInvalidPool, string(joker.Color))
		}

		if seen[joker.Color] {
			return nil, nil, fmt.Errorf("%w: more than one %s joker", ErrInvalidPool, joker.Color)
		}

		seen[joker.Color] = true
	}

	if err := checkDuplicates(cards); err != nil {
		return nil, nil, err
	}

	return cards, jokers, nil
}

// substitutions returns the cartesian product of the jokers' candidates
// A candidate is skipped if it is already in the pool or was picked by a previous joker
// The first joker varies slowest
func substitutions(cards deck.Hand, jokers []deck.Joker) [][]deck.Card {
	combos := [][]deck.Card{{}}
	for _, joker := range jokers {
		next := make([][]deck.Card, 0, len(combos)*(deck.MaxRank-deck.MinRank+1)*2)
		for _, combo := range combos {
			for _, candidate := range joker.Candidates() {
				if cards.HasCard(candidate) || deck.Hand(combo).HasCard(candidate) {
					continue
				}

				c := make([]deck.Card, len(combo), len(combo)+1)
				copy(c, combo)
				next = append(next, append(c, candidate))
			}
		}

		combos = next
	}

	return combos
}

// resolve replaces the jokers in pool, in order, with the cards in combo
func resolve(pool []deck.Token, combo []deck.Card) []deck.Card {
	cards := make(deck.Hand, 0, len(pool))
	next := 0
	for _, token := range pool {
		switch t := token.(type) {
		case deck.Card:
			cards.AddCard(t)
		case deck.Joker:
			cards.AddCard(combo[next])
			next++
		}
	}

	return cards
}
