package doddle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineRunConvergesWithinMaxIters(t *testing.T) {
	words := []string{"STICK", "SNAKE", "FLAME", "TOWER", "MULCH", "VIVID"}
	dict, err := NewDictionary(words, words, nil)
	require.NoError(t, err)

	scorer := NewScorer(5)
	hist := NewHistogramBuilder(scorer, dict.AllWords, dict.CommonWords, true)
	solver := NewMinimaxSolver(hist)

	game := NewGame(dict, scorer, NewWord("STICK"))
	engine := NewEngine(solver, scorer)

	board, err := engine.Run(context.Background(), game)
	require.NoError(t, err)
	assert.True(t, board.Won(scorer))
	assert.LessOrEqual(t, board.Len(), engineMaxIters)
}

// stuckSolver always proposes the same guess, regardless of the surviving
// candidate set — it never converges against an unmatched solution, and
// never cuts the candidate set down to nothing either, so the engine must
// exhaust its iteration budget.
type stuckSolver struct {
	guess Word
}

func (s stuckSolver) BestGuess(allWords, potentialSolns WordSeries) Guess {
	return MinimaxGuess{word: s.guess, isPotentialSoln: false, NumberOfBuckets: 1, SizeOfLargestBucket: potentialSolns.Len()}
}

func (s stuckSolver) Seed(size int) (Word, bool) { return s.guess, true }

func TestEngineRunFailsAfterMaxIters(t *testing.T) {
	words := []string{"STICK", "SNAKE", "FLAME", "TOWER", "MULCH", "VIVID"}
	dict, err := NewDictionary(words, words, nil)
	require.NoError(t, err)

	scorer := NewScorer(5)
	game := NewGame(dict, scorer, NewWord("STICK"))
	engine := NewEngine(stuckSolver{guess: NewWord("MULCH")}, scorer)

	_, err = engine.Run(context.Background(), game)
	require.Error(t, err)
	var target *FailedToFindASolutionError
	assert.ErrorAs(t, err, &target)
}

func TestEngineMaxItersOverride(t *testing.T) {
	words := []string{"STICK", "SNAKE", "FLAME", "TOWER", "MULCH"}
	dict, err := NewDictionary(words, words, nil)
	require.NoError(t, err)

	scorer := NewScorer(5)
	game := NewGame(dict, scorer, NewWord("STICK"))
	engine := NewEngine(stuckSolver{guess: NewWord("MULCH")}, scorer)
	engine.MaxIters = 3

	_, err = engine.Run(context.Background(), game)
	require.Error(t, err)
	assert.Equal(t, 3, game.Scoreboard.Len())
}
