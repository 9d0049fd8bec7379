package doddle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioDictionary() (allWords, candidates WordSeries) {
	cand := []string{
		"SNAKE", "SPACE", "SPADE", "SCALE", "SCARE", "SNARE", "SPARE", "SHADE",
		"SHAKE", "SHAME", "SHAPE", "SHAVE", "SHALE", "SHARE", "SHARK", "SKATE",
		"STAGE", "STAVE", "SLATE", "STALE",
	}
	extra := []string{"BLAST", "TRASH", "CARRY", "NYMPH", "PLANT"}

	candidates = NewWordSeries(cand)
	allWords = NewWordSeries(append(append([]string{}, cand...), extra...))
	return allWords, candidates
}

func TestMinimaxDepth1BestGuess(t *testing.T) {
	allWords, candidates := scenarioDictionary()
	scorer := NewScorer(5)
	hist := NewHistogramBuilder(scorer, allWords, candidates, true)
	solver := NewMinimaxSolver(hist)

	best := solver.BestGuess(allWords, candidates)
	assert.Equal(t, "TRASH", best.Word().String())
}

func TestEntropyDepth1BestGuess(t *testing.T) {
	allWords, candidates := scenarioDictionary()
	scorer := NewScorer(5)
	hist := NewHistogramBuilder(scorer, allWords, candidates, true)
	solver := NewEntropySolver(hist)

	best := solver.BestGuess(allWords, candidates)
	assert.Equal(t, "PLANT", best.Word().String())
}

func TestDeepMinimaxBestGuess(t *testing.T) {
	allWords, candidates := scenarioDictionary()
	scorer := NewScorer(5)
	hist := NewHistogramBuilder(scorer, allWords, candidates, true)
	inner := NewMinimaxSolver(hist)
	deep := NewDeepMinimaxSolver(hist, inner)

	best := deep.BestGuess(allWords, candidates)
	assert.Equal(t, "SHARK", best.Word().String())
}

func TestDeepEntropyBestGuess(t *testing.T) {
	allWords, candidates := scenarioDictionary()
	scorer := NewScorer(5)
	hist := NewHistogramBuilder(scorer, allWords, candidates, true)
	inner := NewEntropySolver(hist)
	deep := NewDeepEntropySolver(hist, inner)

	best := deep.BestGuess(allWords, candidates)
	assert.Equal(t, "NYMPH", best.Word().String())
}

func TestSolverDeterminism(t *testing.T) {
	allWords, candidates := scenarioDictionary()
	scorer := NewScorer(5)
	hist := NewHistogramBuilder(scorer, allWords, candidates, true)
	solver := NewMinimaxSolver(hist)

	first := solver.BestGuess(allWords, candidates)
	second := solver.BestGuess(allWords, candidates)
	assert.Equal(t, first.Word().String(), second.Word().String())
}

func TestSeedForSize(t *testing.T) {
	word, ok := seedForSize(5)
	require.True(t, ok)
	assert.Equal(t, "RAISE", word.String())

	_, ok = seedForSize(3)
	assert.False(t, ok)
}

func TestDeepMinimaxNeverWorseThanDepth1OnWorstCaseBucket(t *testing.T) {
	allWords, candidates := scenarioDictionary()
	scorer := NewScorer(5)
	hist := NewHistogramBuilder(scorer, allWords, candidates, true)

	shallow := NewMinimaxSolver(hist)
	deep := NewDeepMinimaxSolver(hist, shallow)

	shallowBest := shallow.MinimaxGuess(allWords, candidates)
	deepBest := deep.BestGuess(allWords, candidates).(MinimaxGuess)

	assert.LessOrEqual(t, deepBest.SizeOfLargestBucket, shallowBest.SizeOfLargestBucket)
}

func TestCombineMinimaxCarriesOuterWordAndInnerStats(t *testing.T) {
	outer := MinimaxGuess{word: NewWord("OUTER"), isPotentialSoln: true, NumberOfBuckets: 3, SizeOfLargestBucket: 5}
	inner := MinimaxGuess{word: NewWord("INNER"), isPotentialSoln: false, NumberOfBuckets: 7, SizeOfLargestBucket: 2}

	combined := CombineMinimax(outer, inner)

	assert.Equal(t, "OUTER", combined.Word().String())
	assert.True(t, combined.IsPotentialSoln())
	assert.Equal(t, inner.NumberOfBuckets, combined.NumberOfBuckets)
	assert.Equal(t, inner.SizeOfLargestBucket, combined.SizeOfLargestBucket)
}
