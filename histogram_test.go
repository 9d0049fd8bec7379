package doddle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionByScorePreservesTotalCount(t *testing.T) {
	scorer := NewScorer(5)
	candidates := NewWordSeries([]string{
		"SNAKE", "SPACE", "SPADE", "SCALE", "SCARE", "SNARE", "SPARE", "SHADE",
		"SHAKE", "SHAME", "SHAPE", "SHAVE", "SHALE", "SHARE", "SHARK", "SKATE",
		"STAGE", "STAVE", "SLATE", "STALE",
	})
	hist := NewHistogramBuilder(scorer, candidates, candidates, true)

	for _, guess := range candidates.Words() {
		partitioned := hist.PartitionByScore(candidates, guess)
		total := 0
		for _, bucket := range partitioned {
			total += bucket.Len()
		}
		assert.Equal(t, candidates.Len(), total, "guess %s must partition every candidate", guess)
	}
}

func TestStreamVisitsEveryAllowedWord(t *testing.T) {
	scorer := NewScorer(5)
	candidates := NewWordSeries([]string{"SNAKE", "SPACE", "SPADE"})
	allowed := NewWordSeries([]string{"SNAKE", "SPACE", "SPADE", "BLAST", "TRASH"})
	hist := NewHistogramBuilder(scorer, allowed, candidates, true)

	seen := map[string]bool{}
	hist.Stream(allowed, candidates, minimaxFactory, func(g Guess) {
		seen[g.Word().String()] = true
	})

	require.Len(t, seen, allowed.Len())
	for _, w := range allowed.Words() {
		assert.True(t, seen[w.String()])
	}
}

func TestScoreMatrixLazyVsEagerAgree(t *testing.T) {
	scorer := NewScorer(5)
	candidates := NewWordSeries([]string{"SNAKE", "SPACE", "SPADE", "BLAST"})

	lazy := NewScoreMatrix(scorer, candidates, candidates, true)
	lazy.Precompute(candidates)
	eager := NewScoreMatrix(scorer, candidates, candidates, false)

	for r := 0; r < candidates.Len(); r++ {
		for c := 0; c < candidates.Len(); c++ {
			assert.Equal(t, eager.at(r, c), lazy.at(r, c))
		}
	}
}
