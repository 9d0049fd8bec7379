package doddle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmarkerRunBenchmark(t *testing.T) {
	words := []string{"STICK", "SNAKE", "FLAME", "TOWER", "MULCH", "VIVID"}
	dict, err := NewDictionary(words, words, nil)
	require.NoError(t, err)

	scorer := NewScorer(5)
	hist := NewHistogramBuilder(scorer, dict.AllWords, dict.CommonWords, true)
	solver := NewMinimaxSolver(hist)
	engine := NewEngine(solver, scorer)

	bm := NewBenchmarker(engine, dict, NopReporter{}, 2)
	result, err := bm.RunBenchmark(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, dict.CommonWords.Len(), result.NumGames())
	assert.Greater(t, result.Mean(), 0.0)
	assert.GreaterOrEqual(t, result.Std(), 0.0)
}

func TestBenchmarkOpeningGuessFallsBackToFirstRow(t *testing.T) {
	words := []string{"STICK", "SNAKE"}
	dict, err := NewDictionary(words, words, nil)
	require.NoError(t, err)
	scorer := NewScorer(5)

	game := NewGame(dict, scorer, NewWord("STICK"))
	game.MakeGuess(NewWord("SNAKE"))
	game.MakeGuess(NewWord("STICK"))

	bm := &Benchmark{
		Histogram:   map[int]int{game.Scoreboard.Len(): 1},
		Scoreboards: []*Scoreboard{&game.Scoreboard},
	}

	assert.Equal(t, "SNAKE", bm.OpeningGuess().String())
}

func TestNewBenchmarkerDefaultsWorkers(t *testing.T) {
	words := []string{"STICK", "SNAKE"}
	dict, err := NewDictionary(words, words, nil)
	require.NoError(t, err)
	scorer := NewScorer(5)
	hist := NewHistogramBuilder(scorer, dict.AllWords, dict.CommonWords, true)
	engine := NewEngine(NewMinimaxSolver(hist), scorer)

	bm := NewBenchmarker(engine, dict, nil, 0)
	assert.Equal(t, 8, bm.Workers)
	assert.IsType(t, NopReporter{}, bm.Reporter)
}
