package doddle

import (
	"strconv"
	"strings"
)

// Scorer computes the ternary colour pattern between a solution and a guess,
// packed as a base-3 integer in [0, 3^L).
type Scorer struct {
	size   int
	powers []int
}

// NewScorer builds a Scorer for words of the given length.
func NewScorer(size int) *Scorer {
	powers := make([]int, size)
	p := 1
	for i := size - 1; i >= 0; i-- {
		powers[i] = p
		p *= 3
	}
	return &Scorer{size: size, powers: powers}
}

// Size returns the word length this Scorer was built for.
func (s *Scorer) Size() int { return s.size }

// PerfectScore is 3^L − 1, the packed score for "all greens".
func (s *Scorer) PerfectScore() int { return pow3(s.size) - 1 }

// IsPerfectScore reports whether score denotes a won game.
func (s *Scorer) IsPerfectScore(score int) bool { return score == s.PerfectScore() }

// ScoreWord returns the packed ternary score of guess against solution.
//
// The rule is two-pass: first every position where guess and solution match
// is marked green (digit 2) and both letters are consumed; then, for each
// remaining position in left-to-right order, the guessed letter is yellow
// (digit 1) iff the count of that letter among unconsumed solution positions
// exceeds the count of that letter already emitted as yellow earlier in the
// guess, otherwise it is grey (digit 0).
func (s *Scorer) ScoreWord(solution, guess Word) int {
	solVec, gVec := solution.Vector(), guess.Vector()

	matches := make([]bool, s.size)
	value := 0
	for i := 0; i < s.size; i++ {
		if solVec[i] == gVec[i] {
			matches[i] = true
			value += 2 * s.powers[i]
		}
	}

	for i := 0; i < s.size; i++ {
		if matches[i] {
			continue
		}

		letter := gVec[i]

		alreadyObserved := 0
		for j := 0; j < i; j++ {
			if !matches[j] && gVec[j] == letter {
				alreadyObserved++
			}
		}

		inSolution := 0
		for j := 0; j < s.size; j++ {
			if matches[j] {
				continue
			}
			if solVec[j] == letter {
				inSolution++
			}
		}

		if alreadyObserved < inSolution {
			value += s.powers[i]
		}
	}

	return value
}

func pow3(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 3
	}
	return p
}

// ToTernary renders a packed score as a zero-padded base-3 string of length
// size.
func ToTernary(score, size int) string {
	digits := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		digits[i] = byte('0' + score%3)
		score /= 3
	}
	return string(digits)
}

// FromTernary parses a base-3 string (as produced by ToTernary) back into a
// packed score.
func FromTernary(ternary string) int {
	value := 0
	for i := 0; i < len(ternary); i++ {
		value = value*3 + int(ternary[i]-'0')
	}
	return value
}

// FormatScore is a convenience wrapper matching the original source's display
// helpers: it renders score as a ternary string for the given word length.
func FormatScore(score, size int) string {
	return ToTernary(score, size)
}

// ParseScoreString validates and parses a bare ternary score string (the
// `solve` subcommand's user-input grammar) of the given length.
func ParseScoreString(s string, size int) (int, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) != size {
		return 0, NewInvalidInputError("score string must be length " + strconv.Itoa(size))
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] < '0' || trimmed[i] > '2' {
			return 0, NewInvalidInputError("score string must contain only digits 0-2")
		}
	}
	return FromTernary(trimmed), nil
}
