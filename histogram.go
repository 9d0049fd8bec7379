package doddle

import "sync"

// ScoreMatrix is a dense |AllWords| x |CommonWords| matrix of ternary scores.
// Row r corresponds to the word at global index r in the owning dictionary's
// AllWords (the guess axis); column c corresponds to the word at global
// index c in CommonWords. Columns are filled lazily or eagerly via
// Precompute and, once filled, are immutable.
type ScoreMatrix struct {
	scorer      *Scorer
	allWords    WordSeries
	commonWords WordSeries

	rows, cols int
	storage    []int // row-major, rows x cols
	computed   []bool

	mu               sync.Mutex
	fullyInitialised bool
}

// NewScoreMatrix allocates a ScoreMatrix for the given dictionary words. If
// lazyEval is false, every column is computed immediately.
func NewScoreMatrix(scorer *Scorer, allWords, commonWords WordSeries, lazyEval bool) *ScoreMatrix {
	rows := maxIndex(allWords) + 1
	cols := maxIndex(commonWords) + 1

	storage := make([]int, rows*cols)
	for i := range storage {
		storage[i] = -1
	}

	m := &ScoreMatrix{
		scorer:      scorer,
		allWords:    allWords,
		commonWords: commonWords,
		rows:        rows,
		cols:        cols,
		storage:     storage,
		computed:    make([]bool, cols),
	}

	if !lazyEval {
		m.Precompute(commonWords)
	}

	return m
}

func maxIndex(ws WordSeries) int {
	max := -1
	for _, idx := range ws.Indices() {
		if idx > max {
			max = idx
		}
	}
	return max
}

// Precompute fills every not-yet-computed column belonging to subset
// (defaulting to every common word passed at construction when subset is the
// zero value). Idempotent: a column already marked computed is skipped.
func (m *ScoreMatrix) Precompute(subset WordSeries) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if subset.words == nil {
		subset = m.commonWords
	}

	if m.fullyInitialised {
		return
	}

	allDone := true
	for _, c := range subset.Indices() {
		if !m.computed[c] {
			allDone = false
			break
		}
	}
	if allDone {
		return
	}

	allWords := m.allWords.Words()
	allIndices := m.allWords.Indices()

	for i, soln := range subset.Words() {
		col := subset.Index(i)
		if m.computed[col] {
			continue
		}
		for r, guess := range allWords {
			row := allIndices[r]
			m.storage[row*m.cols+col] = m.scorer.ScoreWord(soln, guess)
		}
		m.computed[col] = true
	}

	full := true
	for _, c := range m.computed {
		if !c {
			full = false
			break
		}
	}
	m.fullyInitialised = full
}

// at returns the score stored for the guess at global row index row and the
// common word at global column index col (storage index row*cols+col).
func (m *ScoreMatrix) at(row, col int) int {
	return m.storage[row*m.cols+col]
}

// HistogramBuilder partitions candidate sets by guess score and streams
// per-guess histograms for bulk heuristic evaluation.
type HistogramBuilder struct {
	ScoreMatrix *ScoreMatrix
	scorer      *Scorer

	histPool sync.Pool
}

// NewHistogramBuilder builds a HistogramBuilder over the given dictionary
// words. lazyEval controls the underlying ScoreMatrix's eagerness.
func NewHistogramBuilder(scorer *Scorer, allWords, commonWords WordSeries, lazyEval bool) *HistogramBuilder {
	hb := &HistogramBuilder{
		ScoreMatrix: NewScoreMatrix(scorer, allWords, commonWords, lazyEval),
		scorer:      scorer,
	}
	size := pow3(scorer.Size())
	hb.histPool.New = func() interface{} {
		return make([]int, size)
	}
	return hb
}

// PartitionByScore buckets potentialSolns by the score guess would receive
// against each, returning a map from packed score to the WordSeries of
// candidates sharing that score.
func (hb *HistogramBuilder) PartitionByScore(potentialSolns WordSeries, guess Word) map[int]WordSeries {
	buckets := map[int][]int{} // score -> local positions
	for i, soln := range potentialSolns.Words() {
		score := hb.scorer.ScoreWord(soln, guess)
		buckets[score] = append(buckets[score], i)
	}

	result := make(map[int]WordSeries, len(buckets))
	for score, positions := range buckets {
		words := make([]Word, len(positions))
		index := make([]int, len(positions))
		for i, pos := range positions {
			words[i] = potentialSolns.At(pos)
			index[i] = potentialSolns.Index(pos)
		}
		result[score] = newWordSeriesFrom(words, index)
	}
	return result
}

// GuessFactory builds a heuristic-specific Guess from a word, whether it
// could itself be a solution, and the histogram of scores it produces
// against a fixed candidate set. The histogram slice is reused across calls
// within a single Stream and must not be retained by the factory.
type GuessFactory func(word Word, isPotentialSoln bool, histogram []int) Guess

// Stream lazily visits, for every word in allWords, a Guess built from
// (word, isPotentialSoln, histogram) via factory, calling visit once per
// guess. The histogram is a single pre-allocated vector of size 3^L,
// obtained from a pool and zeroed before each guess — the inner loop
// performs no allocation. visit's Guess argument, and the histogram factory
// saw it from, are only valid for the duration of the call.
func (hb *HistogramBuilder) Stream(allWords, potentialSolns WordSeries, factory GuessFactory, visit func(Guess)) {
	hb.ScoreMatrix.Precompute(potentialSolns)

	// isCommon is keyed by allWords' own global index, mirroring the
	// reference's all_words.find_index(potential_solns.words) step —
	// potentialSolns and allWords are independently built WordSeries and
	// do not share an index space on their own.
	isCommon := make(map[int]bool, potentialSolns.Len())
	for _, w := range potentialSolns.Words() {
		if pos, ok := allWords.FindIndex(w); ok {
			isCommon[allWords.Index(pos)] = true
		}
	}

	histogram := hb.histPool.Get().([]int)
	defer hb.histPool.Put(histogram)

	for i, word := range allWords.Words() {
		row := allWords.Index(i)
		for j := range histogram {
			histogram[j] = 0
		}
		for k := range potentialSolns.Words() {
			col := potentialSolns.Index(k)
			histogram[hb.ScoreMatrix.at(row, col)]++
		}
		visit(factory(word, isCommon[row], histogram))
	}
}

// AllGuesses materialises Stream's output into a slice. Prefer Stream
// directly when only the minimum (or a top-N) guess is needed, to avoid
// retaining every guess in memory at once.
func (hb *HistogramBuilder) AllGuesses(allWords, potentialSolns WordSeries, factory GuessFactory) []Guess {
	out := make([]Guess, 0, allWords.Len())
	hb.Stream(allWords, potentialSolns, factory, func(g Guess) {
		out = append(out, g)
	})
	return out
}
