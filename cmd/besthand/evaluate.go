package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"pokerhand/pkg/deck"
	"pokerhand/pkg/handanalyzer"
)

type row struct {
	Pool   string
	Result handanalyzer.Result
}

func evaluate(resolver *handanalyzer.Resolver, line string) (row, error) {
	tokens, err := deck.ParseTokens(line)
	if err != nil {
		return row{}, err
	}

	result, err := resolver.Evaluate(tokens)
	if err != nil {
		return row{}, err
	}

	return row{
		Pool:   deck.TokensToString(tokens),
		Result: result,
	}, nil
}

func render(w io.Writer, rows []row) error {
	data := pterm.TableData{{"Pool", "Best hand", "", "Category"}}
	for _, r := range rows {
		symbols := make([]string, len(r.Result.Hand))
		for i, c := range r.Result.Hand {
			symbols[i] = c.Symbol()
		}

		data = append(data, []string{
			r.Pool,
			r.Result.Hand.String(),
			strings.Join(symbols, " "),
			r.Result.Category().String(),
		})
	}

	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, s)
	return err
}
