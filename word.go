// Package doddle implements a Wordle-family decision engine: a ternary scoring
// kernel, score matrix, histogram-based partitioning, minimax/entropy solvers,
// a simultaneous multi-board solver, the game loop, and the tree/benchmark
// search machinery built on top of them.
package doddle

import (
	"sort"
	"strings"
)

// Word is an immutable, uppercase token of fixed length, along with a cached
// integer-vector view used by the scoring kernel.
type Word struct {
	value  string
	vector []int8
}

// NewWord upper-cases str and builds its vector view.
func NewWord(str string) Word {
	value := strings.ToUpper(str)
	return Word{value: value, vector: toVector(value)}
}

func toVector(word string) []int8 {
	vec := make([]int8, len(word))
	for i := 0; i < len(word); i++ {
		vec[i] = int8(word[i]) - 64
	}
	return vec
}

// String returns the word's uppercase text.
func (w Word) String() string { return w.value }

// Len returns the word's length.
func (w Word) Len() int { return len(w.vector) }

// Vector returns the word's integer-vector view, one entry per letter.
func (w Word) Vector() []int8 { return w.vector }

// Less reports whether w sorts lexicographically before other.
func (w Word) Less(other Word) bool { return w.value < other.value }

// Equal reports whether w and other hold the same text.
func (w Word) Equal(other Word) bool { return w.value == other.value }

// WordSeries is a sorted, indexable series of Words. Each element carries a
// stable integer index into the series it was originally built from, so that
// slices taken from a WordSeries can still address columns of a ScoreMatrix
// built against the parent series.
type WordSeries struct {
	words []Word
	index []int
}

// NewWordSeries builds a WordSeries from raw strings, sorting them and
// assigning each its position as its global index.
func NewWordSeries(words []string) WordSeries {
	sorted := make([]Word, len(words))
	for i, w := range words {
		sorted[i] = NewWord(w)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	index := make([]int, len(sorted))
	for i := range index {
		index[i] = i
	}

	return WordSeries{words: sorted, index: index}
}

func newWordSeriesFrom(words []Word, index []int) WordSeries {
	return WordSeries{words: words, index: index}
}

// Len returns the number of words in the series.
func (ws WordSeries) Len() int { return len(ws.words) }

// WordLength returns the letter length of words in the series, or 0 if empty.
func (ws WordSeries) WordLength() int {
	if ws.Len() == 0 {
		return 0
	}
	return ws.words[0].Len()
}

// At returns the word at local position i.
func (ws WordSeries) At(i int) Word { return ws.words[i] }

// Index returns the global index of the word at local position i.
func (ws WordSeries) Index(i int) int { return ws.index[i] }

// Words returns the series' underlying words. The returned slice must not be
// mutated.
func (ws WordSeries) Words() []Word { return ws.words }

// Indices returns the series' underlying global indices. The returned slice
// must not be mutated.
func (ws WordSeries) Indices() []int { return ws.index }

// Contains reports whether word is present in the series.
func (ws WordSeries) Contains(word string) bool {
	_, ok := ws.findIndex(strings.ToUpper(word))
	return ok
}

// FindIndex returns the local position of word in the series, and whether it
// was found.
func (ws WordSeries) FindIndex(word Word) (int, bool) {
	return ws.findIndex(word.value)
}

func (ws WordSeries) findIndex(value string) (int, bool) {
	pos := sort.Search(len(ws.words), func(i int) bool { return ws.words[i].value >= value })
	if pos < len(ws.words) && ws.words[pos].value == value {
		return pos, true
	}
	return -1, false
}

// Slice returns the sub-series for local positions [lo, hi).
func (ws WordSeries) Slice(lo, hi int) WordSeries {
	return newWordSeriesFrom(ws.words[lo:hi], ws.index[lo:hi])
}

// Filter returns the sub-series of elements for which keep reports true,
// preserving relative order.
func (ws WordSeries) Filter(keep func(Word) bool) WordSeries {
	words := make([]Word, 0, ws.Len())
	index := make([]int, 0, ws.Len())
	for i, w := range ws.words {
		if keep(w) {
			words = append(words, w)
			index = append(index, ws.index[i])
		}
	}
	return newWordSeriesFrom(words, index)
}

// Dictionary owns the two word series a solve is played against: AllWords,
// every guess the solver is willing to propose, and CommonWords, the subset
// that could plausibly be the hidden solution.
type Dictionary struct {
	AllWords    WordSeries
	CommonWords WordSeries
}

// NewDictionary builds a Dictionary from raw word lists. extras are merged
// into both AllWords and CommonWords (uppercased, de-duplicated), mirroring
// the reference loader's behaviour of adding user-supplied words so an
// unofficial word can still be solved rather than causing a later failure.
// Every word must share the same length, and both series must end up
// non-empty.
func NewDictionary(allWords, commonWords, extras []string) (*Dictionary, error) {
	merged := mergeUnique(commonWords, extras)
	all := mergeUnique(allWords, merged)

	common := NewWordSeries(merged)
	everything := NewWordSeries(all)

	if common.Len() == 0 || everything.Len() == 0 {
		return nil, NewInvalidInputError("dictionary must contain at least one word")
	}

	length := everything.WordLength()
	for _, w := range everything.Words() {
		if w.Len() != length {
			return nil, NewInvalidInputError("all_words contains a word of differing length: " + w.String())
		}
	}
	for _, w := range common.Words() {
		if w.Len() != length {
			return nil, NewInvalidInputError("common_words contains a word of differing length: " + w.String())
		}
	}

	return &Dictionary{AllWords: everything, CommonWords: common}, nil
}

func mergeUnique(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, w := range list {
			up := strings.ToUpper(w)
			if up == "" {
				continue
			}
			if _, ok := seen[up]; ok {
				continue
			}
			seen[up] = struct{}{}
			out = append(out, up)
		}
	}
	return out
}

// WordLength returns the shared letter length of the dictionary's words.
func (d *Dictionary) WordLength() int { return d.AllWords.WordLength() }
