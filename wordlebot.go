package doddle

import (
	"encoding/csv"
	"io"
	"strings"
)

// WriteWordleBotCSV writes benchmark as one row per game: the sequence of
// guesses made, in order, with the final guess being the solution itself.
func WriteWordleBotCSV(w io.Writer, benchmark *Benchmark) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for _, board := range benchmark.Scoreboards {
		row := make([]string, len(board.Rows))
		for i, r := range board.Rows {
			row[i] = r.Guess.String()
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// ReadWordleBotCSV parses a WordleBot-format CSV: each row is a
// comma-separated list of guesses with the final guess being the solution.
// Every scoreboard is rebuilt from first principles by scoring each guess
// against the row's final word and recomputing the surviving candidates at
// each step, rather than trusting any score baked into the file.
//
// Returns *InvalidWordleBotFileError if two rows share an identical prefix
// of scores but diverge on the next guess, since that violates solver
// determinism: the same state must always produce the same next guess.
func ReadWordleBotCSV(r io.Reader, dict *Dictionary, scorer *Scorer) (*Benchmark, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	seenNextGuess := map[string]string{}
	histogram := map[int]int{}
	boards := make([]*Scoreboard, 0, len(rows))

	for _, record := range rows {
		if len(record) == 0 {
			continue
		}

		solution := NewWord(record[len(record)-1])
		game := NewGame(dict, scorer, solution)

		var prefix []string
		for _, raw := range record {
			guess := NewWord(raw)

			key := strings.Join(prefix, "|")
			if existing, ok := seenNextGuess[key]; ok && existing != guess.String() {
				return nil, NewInvalidWordleBotFileError(key, existing, guess.String())
			}
			seenNextGuess[key] = guess.String()

			score := game.MakeGuess(guess)
			prefix = append(prefix, ToTernary(score, scorer.Size()))
		}

		boards = append(boards, &game.Scoreboard)
		histogram[game.Scoreboard.Len()]++
	}

	return &Benchmark{Histogram: histogram, Scoreboards: boards}, nil
}
