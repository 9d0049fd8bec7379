package doddle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulScenarioWords() []string {
	return []string{
		"STICK", "SNAKE", "FLAME", "TOWER", "LATER", "RAISE", "MULCH", "VIVID",
		"FRAME", "TALON", "BATON", "TIDAL", "TUBAL", "DATUM", "GAMUT", "HABIT",
		"PATSY", "WAIST",
	}
}

func simulScenarioDictionary(t *testing.T) *Dictionary {
	words := simulScenarioWords()
	dict, err := NewDictionary(words, words, nil)
	require.NoError(t, err)
	return dict
}

func TestMinimaxSimulSolverBestGuess(t *testing.T) {
	dict := simulScenarioDictionary(t)
	scorer := NewScorer(5)
	hist := NewHistogramBuilder(scorer, dict.AllWords, dict.CommonWords, true)
	solver := NewMinimaxSimulSolver(hist)

	solns := []Word{NewWord("STICK"), NewWord("SNAKE"), NewWord("FLAME"), NewWord("TOWER")}
	game := NewSimultaneousGame(dict, scorer, solns)

	best := solver.BestGuess(dict.AllWords, game.ActiveCandidates())
	assert.Equal(t, "LATER", best.Word().String())
}

func TestEntropySimulSolverBestGuess(t *testing.T) {
	dict := simulScenarioDictionary(t)
	scorer := NewScorer(5)
	hist := NewHistogramBuilder(scorer, dict.AllWords, dict.CommonWords, true)
	solver := NewEntropySimulSolver(hist)

	solns := []Word{NewWord("STICK"), NewWord("SNAKE"), NewWord("FLAME"), NewWord("TOWER")}
	game := NewSimultaneousGame(dict, scorer, solns)

	best := solver.BestGuess(dict.AllWords, game.ActiveCandidates())
	assert.Equal(t, "RAISE", best.Word().String())
}

func TestSimulSolverSingletonBoardShortcutsToThatWord(t *testing.T) {
	dict := simulScenarioDictionary(t)
	scorer := NewScorer(5)
	hist := NewHistogramBuilder(scorer, dict.AllWords, dict.CommonWords, true)
	solver := NewMinimaxSimulSolver(hist)

	solved := dict.CommonWords.Filter(func(w Word) bool { return w.String() == "STICK" })
	stillOpen := dict.CommonWords.Filter(func(w Word) bool {
		return w.String() == "SNAKE" || w.String() == "FLAME"
	})

	best := solver.BestGuess(dict.AllWords, []WordSeries{solved, stillOpen})
	assert.Equal(t, "STICK", best.Word().String())
	assert.True(t, best.IsPotentialSoln())
}

func TestSimulSolverPanicsOnNoActiveBoards(t *testing.T) {
	dict := simulScenarioDictionary(t)
	scorer := NewScorer(5)
	hist := NewHistogramBuilder(scorer, dict.AllWords, dict.CommonWords, true)
	solver := NewMinimaxSimulSolver(hist)

	assert.Panics(t, func() { solver.BestGuess(dict.AllWords, nil) })
}
