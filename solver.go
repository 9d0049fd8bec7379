package doddle

import (
	"math"
	"sort"
)

// seedsByLength is the precomputed-opener table shared by every heuristic:
// the first guess of a solve, chosen before any information has been
// gathered.
var seedsByLength = map[int]string{
	4: "OLEA",
	5: "RAISE",
	6: "TAILER",
	7: "TENAILS",
	8: "CENTRALS",
	9: "SECRETION",
}

// Solver proposes the best next guess given the universe of allowed guesses
// and the remaining candidate solutions.
type Solver interface {
	BestGuess(allWords, potentialSolns WordSeries) Guess
	Seed(size int) (Word, bool)
}

func seedForSize(size int) (Word, bool) {
	s, ok := seedsByLength[size]
	if !ok {
		return Word{}, false
	}
	return NewWord(s), true
}

// MinimaxSolver is the depth-1 minimax heuristic: minimise the worst-case
// remaining candidate count after one guess.
type MinimaxSolver struct {
	hist *HistogramBuilder
}

// NewMinimaxSolver builds a MinimaxSolver over the given HistogramBuilder.
func NewMinimaxSolver(hist *HistogramBuilder) *MinimaxSolver {
	return &MinimaxSolver{hist: hist}
}

func (s *MinimaxSolver) Seed(size int) (Word, bool) { return seedForSize(size) }

// BestGuess returns the minimax-optimal guess. If only one or two candidates
// remain, it returns the first candidate directly — guessing it cannot do
// worse than any alternative.
func (s *MinimaxSolver) BestGuess(allWords, potentialSolns WordSeries) Guess {
	return s.MinimaxGuess(allWords, potentialSolns)
}

// MinimaxGuess is BestGuess typed concretely as a MinimaxGuess, used by the
// deep solver and TreeBuilder, which need the bucket statistics directly.
func (s *MinimaxSolver) MinimaxGuess(allWords, potentialSolns WordSeries) MinimaxGuess {
	if potentialSolns.Len() <= 2 {
		return MinimaxGuess{word: potentialSolns.At(0), isPotentialSoln: true, NumberOfBuckets: 1, SizeOfLargestBucket: 1}
	}

	var best MinimaxGuess
	first := true
	s.hist.Stream(allWords, potentialSolns, minimaxFactory, func(g Guess) {
		mg := g.(MinimaxGuess)
		if first || mg.ImprovesUpon(best) {
			best = mg
			first = false
		}
	})
	return best
}

// AllMinimaxGuesses returns every MinimaxGuess candidate, used by the deep
// solver and TreeBuilder to rank the top-N guesses.
func (s *MinimaxSolver) AllMinimaxGuesses(allWords, potentialSolns WordSeries) []MinimaxGuess {
	if potentialSolns.Len() <= 2 {
		return []MinimaxGuess{{word: potentialSolns.At(0), isPotentialSoln: true, NumberOfBuckets: 1, SizeOfLargestBucket: 1}}
	}

	out := make([]MinimaxGuess, 0, allWords.Len())
	s.hist.Stream(allWords, potentialSolns, minimaxFactory, func(g Guess) {
		out = append(out, g.(MinimaxGuess))
	})
	return out
}

func minimaxFactory(word Word, isPotentialSoln bool, histogram []int) Guess {
	return NewMinimaxGuessFromHistogram(word, isPotentialSoln, histogram)
}

// DeepMinimaxSolver is the depth-2 (one-ply lookahead) minimax heuristic.
type DeepMinimaxSolver struct {
	hist      *HistogramBuilder
	inner     *MinimaxSolver
	cache     *guessCache
	nGuesses  int
	nBranches int
}

const (
	deepMinimaxNGuesses  = 50
	deepMinimaxNBranches = 10
)

// NewDeepMinimaxSolver builds a DeepMinimaxSolver that uses inner for its
// one-ply lookahead, keeping the top deepMinimaxNGuesses candidates and
// deepMinimaxNBranches branches per candidate at each ply.
func NewDeepMinimaxSolver(hist *HistogramBuilder, inner *MinimaxSolver) *DeepMinimaxSolver {
	return NewDeepMinimaxSolverWithConfig(hist, inner, deepMinimaxNGuesses, deepMinimaxNBranches)
}

// NewDeepMinimaxSolverWithConfig builds a DeepMinimaxSolver with an
// explicit ply-width budget, for callers overriding Config's NGuesses /
// NBranches.
func NewDeepMinimaxSolverWithConfig(hist *HistogramBuilder, inner *MinimaxSolver, nGuesses, nBranches int) *DeepMinimaxSolver {
	return &DeepMinimaxSolver{hist: hist, inner: inner, cache: newGuessCache(4096), nGuesses: nGuesses, nBranches: nBranches}
}

func (s *DeepMinimaxSolver) Seed(size int) (Word, bool) { return seedForSize(size) }

// BestGuess looks one ply ahead: it keeps the top N_GUESSES depth-1
// candidates, and for each partitions the candidate set by that guess's
// score, takes the N_BRANCHES largest partitions, solves each with the inner
// depth-1 solver, and keeps the *worst* of those inner guesses. The outer
// guess is then reported with the worst inner guess's bucket statistics (see
// DESIGN.md Open Questions for why — this reproduces a documented limitation
// of the reference solver rather than silently fixing it).
func (s *DeepMinimaxSolver) BestGuess(allWords, potentialSolns WordSeries) Guess {
	guesses := s.inner.AllMinimaxGuesses(allWords, potentialSolns)
	sort.Slice(guesses, func(i, j int) bool { return guesses[i].ImprovesUpon(guesses[j]) })
	if len(guesses) > s.nGuesses {
		guesses = guesses[:s.nGuesses]
	}

	var best MinimaxGuess
	haveBest := false

	for _, outer := range guesses {
		solnsByScore := s.hist.PartitionByScore(potentialSolns, outer.word)

		scores := make([]int, 0, len(solnsByScore))
		for score := range solnsByScore {
			scores = append(scores, score)
		}
		sort.Slice(scores, func(i, j int) bool {
			return solnsByScore[scores[i]].Len() > solnsByScore[scores[j]].Len()
		})
		if len(scores) > s.nBranches {
			scores = scores[:s.nBranches]
		}

		var worst MinimaxGuess
		haveWorst := false
		for _, score := range scores {
			nested := solnsByScore[score]
			innerGuess := s.solveInner(allWords, nested)
			if !haveWorst || worst.ImprovesUpon(innerGuess) {
				worst = innerGuess
				haveWorst = true
			}
		}

		combined := CombineMinimax(outer, worst)
		if !haveBest || combined.ImprovesUpon(best) {
			best = combined
			haveBest = true
		}
	}

	return best
}

func (s *DeepMinimaxSolver) solveInner(allWords, potentialSolns WordSeries) MinimaxGuess {
	key := fingerprint(potentialSolns)
	if cached, ok := s.cache.get(key); ok {
		return cached.(MinimaxGuess)
	}
	g := s.inner.MinimaxGuess(allWords, potentialSolns)
	s.cache.put(key, g)
	return g
}

// EntropySolver is the depth-1 Shannon-entropy heuristic: maximise expected
// information gain.
type EntropySolver struct {
	hist *HistogramBuilder
}

// NewEntropySolver builds an EntropySolver over the given HistogramBuilder.
func NewEntropySolver(hist *HistogramBuilder) *EntropySolver {
	return &EntropySolver{hist: hist}
}

func (s *EntropySolver) Seed(size int) (Word, bool) { return seedForSize(size) }

func (s *EntropySolver) BestGuess(allWords, potentialSolns WordSeries) Guess {
	return s.EntropyGuess(allWords, potentialSolns)
}

// EntropyGuess is BestGuess typed concretely, used by the deep solver and
// TreeBuilder.
func (s *EntropySolver) EntropyGuess(allWords, potentialSolns WordSeries) EntropyGuess {
	if potentialSolns.Len() <= 2 {
		return EntropyGuess{word: potentialSolns.At(0), isPotentialSoln: true, Entropy: 1, IsPerfectPartition: true}
	}

	var best EntropyGuess
	first := true
	s.hist.Stream(allWords, potentialSolns, entropyFactory, func(g Guess) {
		eg := g.(EntropyGuess)
		if first || eg.ImprovesUpon(best) {
			best = eg
			first = false
		}
	})
	return best
}

// AllEntropyGuesses returns every EntropyGuess candidate.
func (s *EntropySolver) AllEntropyGuesses(allWords, potentialSolns WordSeries) []EntropyGuess {
	if potentialSolns.Len() <= 2 {
		return []EntropyGuess{{word: potentialSolns.At(0), isPotentialSoln: true, Entropy: 1, IsPerfectPartition: true}}
	}

	out := make([]EntropyGuess, 0, allWords.Len())
	s.hist.Stream(allWords, potentialSolns, entropyFactory, func(g Guess) {
		out = append(out, g.(EntropyGuess))
	})
	return out
}

func entropyFactory(word Word, isPotentialSoln bool, histogram []int) Guess {
	return NewEntropyGuessFromHistogram(word, isPotentialSoln, histogram)
}

// DeepEntropySolver is the depth-2 (one-ply lookahead) entropy heuristic.
type DeepEntropySolver struct {
	hist     *HistogramBuilder
	inner    *EntropySolver
	cache    *guessCache
	nGuesses int
}

const deepEntropyNGuesses = 10

// NewDeepEntropySolver builds a DeepEntropySolver that uses inner for its
// one-ply lookahead, keeping the top deepEntropyNGuesses candidates at each
// ply.
func NewDeepEntropySolver(hist *HistogramBuilder, inner *EntropySolver) *DeepEntropySolver {
	return NewDeepEntropySolverWithConfig(hist, inner, deepEntropyNGuesses)
}

// NewDeepEntropySolverWithConfig builds a DeepEntropySolver with an
// explicit ply-width budget, for callers overriding Config's NGuesses.
func NewDeepEntropySolverWithConfig(hist *HistogramBuilder, inner *EntropySolver, nGuesses int) *DeepEntropySolver {
	return &DeepEntropySolver{hist: hist, inner: inner, cache: newGuessCache(4096), nGuesses: nGuesses}
}

func (s *DeepEntropySolver) Seed(size int) (Word, bool) { return seedForSize(size) }

// BestGuess keeps the top N_GUESSES depth-1 entropy candidates. For each, if
// it is a potential solution and perfectly partitions the candidate set, it
// wins deterministically next round and is returned immediately with an
// entropy of +Inf. Otherwise
// it accumulates the expected entropy reduction across its partitions using
// the inner depth-1 solver, and returns the candidate with the greatest
// total entropy.
func (s *DeepEntropySolver) BestGuess(allWords, potentialSolns WordSeries) Guess {
	guesses := s.inner.AllEntropyGuesses(allWords, potentialSolns)
	sort.Slice(guesses, func(i, j int) bool { return guesses[i].ImprovesUpon(guesses[j]) })
	if len(guesses) > s.nGuesses {
		guesses = guesses[:s.nGuesses]
	}

	var best EntropyGuess
	haveBest := false

	for _, outer := range guesses {
		solnsByScore := s.hist.PartitionByScore(potentialSolns, outer.word)

		if outer.isPotentialSoln {
			allSingletons := true
			for _, nested := range solnsByScore {
				if nested.Len() != 1 {
					allSingletons = false
					break
				}
			}
			if allSingletons {
				return outer.Add(math.Inf(1))
			}
		}

		total := potentialSolns.Len()
		avgReduction := 0.0
		for _, nested := range solnsByScore {
			probability := float64(nested.Len()) / float64(total)
			nestedGuess := s.solveInner(allWords, nested)
			avgReduction += nestedGuess.Entropy * probability
		}

		deep := outer.Add(avgReduction)
		if !haveBest || deep.ImprovesUpon(best) {
			best = deep
			haveBest = true
		}
	}

	return best
}

func (s *DeepEntropySolver) solveInner(allWords, potentialSolns WordSeries) EntropyGuess {
	key := fingerprint(potentialSolns)
	if cached, ok := s.cache.get(key); ok {
		return cached.(EntropyGuess)
	}
	g := s.inner.EntropyGuess(allWords, potentialSolns)
	s.cache.put(key, g)
	return g
}
