package doddle

// SimulSolver proposes the best next guess across several simultaneously
// active boards, each with its own surviving candidate set.
type SimulSolver interface {
	BestGuess(allWords WordSeries, boardSolns []WordSeries) Guess
	Seed(size int) (Word, bool)
}

// MinimaxSimulSolver picks the guess that minimises the combined worst-case
// outcome across every active board at once.
type MinimaxSimulSolver struct {
	hist *HistogramBuilder
}

// NewMinimaxSimulSolver builds a MinimaxSimulSolver over the given
// HistogramBuilder.
func NewMinimaxSimulSolver(hist *HistogramBuilder) *MinimaxSimulSolver {
	return &MinimaxSimulSolver{hist: hist}
}

func (s *MinimaxSimulSolver) Seed(size int) (Word, bool) { return seedForSize(size) }

// BestGuess scores every candidate guess against each board's surviving
// solutions, then combines the per-board MinimaxGuess summaries into a
// single MinimaxSimulGuess: PctLeft is the product, across boards, of that
// board's largest-bucket fraction (the expected fraction of candidates
// surviving on every board simultaneously, the quantity a simultaneous
// solver actually wants to minimise); Min/Sum/Max are the per-board largest
// bucket sizes reduced the obvious way. If any board has a single surviving
// candidate, that word is returned immediately without scoring the rest of
// the dictionary.
func (s *MinimaxSimulSolver) BestGuess(allWords WordSeries, boardSolns []WordSeries) Guess {
	if len(boardSolns) == 0 {
		panic("MinimaxSimulSolver.BestGuess: no active boards")
	}

	for _, solns := range boardSolns {
		if solns.Len() == 1 {
			return MinimaxSimulGuess{
				word:            solns.At(0),
				isPotentialSoln: true,
				PctLeft:         1,
				Min:             1,
				Sum:             1,
				Max:             1,
				NumBuckets:      1,
			}
		}
	}

	perBoard := make([]map[string]MinimaxGuess, len(boardSolns))
	for i, solns := range boardSolns {
		perBoard[i] = map[string]MinimaxGuess{}
		s.hist.Stream(allWords, solns, minimaxFactory, func(g Guess) {
			mg := g.(MinimaxGuess)
			perBoard[i][mg.word.String()] = mg
		})
	}

	var best MinimaxSimulGuess
	haveBest := false

	for _, word := range allWords.Words() {
		pctLeft := 1.0
		min, sum, max := -1, 0, -1
		buckets := 0
		isPotentialSoln := false

		for i, solns := range boardSolns {
			mg, ok := perBoard[i][word.String()]
			if !ok {
				continue
			}
			frac := float64(mg.SizeOfLargestBucket) / float64(solns.Len())
			pctLeft *= frac
			sum += mg.SizeOfLargestBucket
			if min == -1 || mg.SizeOfLargestBucket < min {
				min = mg.SizeOfLargestBucket
			}
			if mg.SizeOfLargestBucket > max {
				max = mg.SizeOfLargestBucket
			}
			buckets += mg.NumberOfBuckets
			if mg.isPotentialSoln {
				isPotentialSoln = true
			}
		}

		candidate := MinimaxSimulGuess{
			word:            word,
			isPotentialSoln: isPotentialSoln,
			PctLeft:         pctLeft,
			Min:             min,
			Sum:             sum,
			Max:             max,
			NumBuckets:      buckets,
		}
		if !haveBest || candidate.ImprovesUpon(best) {
			best = candidate
			haveBest = true
		}
	}

	return best
}

// EntropySimulSolver picks the guess that maximises total expected
// information gain summed across every active board. This supplements the
// reference source, which implements only a simultaneous minimax solver
// (see SPEC_FULL.md §4.6); it is built the same way, aggregating per-board
// EntropyGuess results instead of MinimaxGuess results.
type EntropySimulSolver struct {
	hist *HistogramBuilder
}

// NewEntropySimulSolver builds an EntropySimulSolver over the given
// HistogramBuilder.
func NewEntropySimulSolver(hist *HistogramBuilder) *EntropySimulSolver {
	return &EntropySimulSolver{hist: hist}
}

func (s *EntropySimulSolver) Seed(size int) (Word, bool) { return seedForSize(size) }

func (s *EntropySimulSolver) BestGuess(allWords WordSeries, boardSolns []WordSeries) Guess {
	if len(boardSolns) == 0 {
		panic("EntropySimulSolver.BestGuess: no active boards")
	}

	for _, solns := range boardSolns {
		if solns.Len() == 1 {
			return EntropySimulGuess{word: solns.At(0), isPotentialSoln: true, TotalEntropy: 0}
		}
	}

	perBoard := make([]map[string]EntropyGuess, len(boardSolns))
	for i, solns := range boardSolns {
		perBoard[i] = map[string]EntropyGuess{}
		s.hist.Stream(allWords, solns, entropyFactory, func(g Guess) {
			eg := g.(EntropyGuess)
			perBoard[i][eg.word.String()] = eg
		})
	}

	var best EntropySimulGuess
	haveBest := false

	for _, word := range allWords.Words() {
		total := 0.0
		isPotentialSoln := false
		for i := range boardSolns {
			eg, ok := perBoard[i][word.String()]
			if !ok {
				continue
			}
			total += eg.Entropy
			if eg.isPotentialSoln {
				isPotentialSoln = true
			}
		}

		candidate := EntropySimulGuess{word: word, isPotentialSoln: isPotentialSoln, TotalEntropy: total}
		if !haveBest || candidate.ImprovesUpon(best) {
			best = candidate
			haveBest = true
		}
	}

	return best
}
