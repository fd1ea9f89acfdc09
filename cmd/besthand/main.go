package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"pokerhand/internal/config"
	"pokerhand/internal/rng"
	"pokerhand/pkg/deck"
	"pokerhand/pkg/handanalyzer"
)

var random = flag.Bool("random", false, "deal a random pool instead of reading one")
var jokers = flag.Int("jokers", 0, "the number of jokers in a random pool (0-2)")
var seed = flag.Int64("seed", -1, "the seed of a random pool, defaults to the configured seed")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	resolver := handanalyzer.NewResolver(handanalyzer.Options{Workers: cfg.Workers})

	pools, err := readPools(flag.Args(), os.Stdin, cfg.Seed)
	if err != nil {
		logrus.WithError(err).Fatal("could not read pools")
	}

	rows := make([]row, 0, len(pools))
	failed := false
	for _, pool := range pools {
		r, err := evaluate(resolver, pool)
		if err != nil {
			logrus.WithError(err).WithField("pool", pool).Error("could not evaluate pool")
			failed = true
			continue
		}

		logrus.WithFields(logrus.Fields{
			"pool":     r.Pool,
			"hand":     r.Result.Hand.String(),
			"category": r.Result.Category().String(),
		}).Debug("evaluated pool")

		rows = append(rows, r)
	}

	if len(rows) > 0 {
		if err := render(os.Stdout, rows); err != nil {
			logrus.WithError(err).Fatal("could not render results")
		}
	}

	if failed {
		os.Exit(1)
	}
}

// readPools returns the pools to evaluate, one per line
// Arguments are joined into one pool, otherwise every non-empty line of in is a pool
// A random pool without a seed is shuffled with crypto/rand
func readPools(args []string, in io.Reader, configSeed int64) ([]string, error) {
	if *random {
		s := *seed
		if s < 0 {
			s = configSeed
		}

		d := deck.New()
		if s == 0 {
			d.SetGenerator(rng.Crypto{})
		}

		d.Shuffle(s)
		pool, err := d.DealPool(handanalyzer.PoolSize, *jokers)
		if err != nil {
			return nil, err
		}

		if s == 0 {
			logrus.Info("dealt a random pool from crypto/rand")
		} else {
			logrus.WithField("seed", d.GetSeed()).Info("dealt a random pool")
		}

		return []string{deck.TokensToString(pool)}, nil
	}

	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	var pools []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			pools = append(pools, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}

	return pools, nil
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetOutput(os.Stderr)
}
