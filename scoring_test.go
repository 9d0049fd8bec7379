package doddle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreWord(t *testing.T) {
	cases := []struct {
		name     string
		solution string
		guess    string
		want     string
	}{
		{"green-and-yellows", "SPEAR", "STRIP", "20101"},
		{"double-double", "GAMMA", "MUMMY", "00220"},
		{"swapped-pair", "ARGUE", "AGREE", "21102"},
		{"perfect", "SNAKE", "SNAKE", "22222"},
	}

	scorer := NewScorer(5)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			score := scorer.ScoreWord(NewWord(c.solution), NewWord(c.guess))
			assert.Equal(t, c.want, ToTernary(score, 5))
		})
	}
}

func TestScoreWordPerfectScoreIsAllGreens(t *testing.T) {
	scorer := NewScorer(5)
	score := scorer.ScoreWord(NewWord("SNAKE"), NewWord("SNAKE"))
	assert.True(t, scorer.IsPerfectScore(score))
	assert.Equal(t, scorer.PerfectScore(), score)
}

func TestScoreWordRangeInvariant(t *testing.T) {
	scorer := NewScorer(5)
	solutions := []string{"SNAKE", "SPACE", "SPADE", "STALE", "BLAST"}
	guesses := []string{"TRASH", "CARRY", "PLANT", "NYMPH", "SHARK"}

	for _, s := range solutions {
		for _, g := range guesses {
			score := scorer.ScoreWord(NewWord(s), NewWord(g))
			assert.GreaterOrEqual(t, score, 0)
			assert.Less(t, score, 243) // 3^5
		}
	}
}

func TestTernaryRoundTrip(t *testing.T) {
	for x := 0; x < 243; x++ {
		require.Equal(t, x, FromTernary(ToTernary(x, 5)))
	}
}

func TestParseScoreString(t *testing.T) {
	score, err := ParseScoreString("20101", 5)
	require.NoError(t, err)
	assert.Equal(t, FromTernary("20101"), score)

	_, err = ParseScoreString("201", 5)
	assert.Error(t, err)

	_, err = ParseScoreString("20103", 5)
	assert.Error(t, err)
}
