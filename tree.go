package doddle

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"
)

const treeHolyGrail = 7920

// defaultTreeSeed is the opening guess TreeBuilder defaults to absent an
// explicit seed argument. It is specific to the entropy-tree-search tooling
// this type is grounded on and is unrelated to Solver.Seed's general
// opening table.
const defaultTreeSeed = "SALET"

// ScoreNode is one score branch of a decision tree: the packed score a
// guess received, and the guesses that follow for each candidate solution
// consistent with it.
type ScoreNode struct {
	Score    int
	Children []*GuessNode
}

// Add appends and returns a new child GuessNode for word.
func (n *ScoreNode) Add(word Word) *GuessNode {
	child := &GuessNode{Word: word}
	n.Children = append(n.Children, child)
	return child
}

// Count returns the number of root-to-WIN paths beneath n. A node at the
// winning score is itself one path and has no further children to recurse
// into.
func (n *ScoreNode) Count(winScore int) int {
	if n.Score == winScore {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += c.Count(winScore)
	}
	return total
}

// GuessCount returns the total number of guesses made across every
// root-to-WIN path beneath n.
func (n *ScoreNode) GuessCount(winScore int) int {
	total := 0
	for _, c := range n.Children {
		total += c.GuessCount(winScore)
	}
	return total
}

func (n *ScoreNode) display(prefix string, winScore, size int, out *[]string) {
	newPrefix := prefix + "," + strconv.Itoa(n.Score)
	if n.Score == winScore {
		*out = append(*out, newPrefix)
	}
	for _, c := range n.Children {
		c.display(newPrefix, winScore, size, out)
	}
}

// GuessNode is one guess branch of a decision tree: the word guessed, and
// the score branches that can follow it.
type GuessNode struct {
	Word     Word
	Children []*ScoreNode
}

// Add appends and returns a new child ScoreNode for score.
func (n *GuessNode) Add(score int) *ScoreNode {
	child := &ScoreNode{Score: score}
	n.Children = append(n.Children, child)
	return child
}

// Count returns the number of root-to-WIN paths beneath n.
func (n *GuessNode) Count(winScore int) int {
	total := 0
	for _, c := range n.Children {
		total += c.Count(winScore)
	}
	return total
}

// GuessCount returns n's own path count plus the guesses made further down
// the tree — the total number of guesses a full traversal of every path
// would make.
func (n *GuessNode) GuessCount(winScore int) int {
	total := n.Count(winScore)
	for _, c := range n.Children {
		total += c.GuessCount(winScore)
	}
	return total
}

// Display renders every root-to-WIN path as a comma-separated
// "word,score,word,score,...,score" line, where the final score is the
// winning (all-green) score.
func (n *GuessNode) Display(winScore, size int) []string {
	var out []string
	n.display("", winScore, size, &out)
	return out
}

func (n *GuessNode) display(prefix string, winScore, size int, out *[]string) {
	newPrefix := prefix
	if newPrefix != "" {
		newPrefix += ","
	}
	newPrefix += n.Word.String()
	for _, c := range n.Children {
		c.display(newPrefix, winScore, size, out)
	}
}

// TreeBuilder searches for a low-total-guess-count decision tree over a
// candidate solution set, built entirely from depth-1 entropy guesses: at
// each node it keeps the top N = max(1, PermutationLimit - 3*depth)
// candidates, recurses into each, and keeps whichever produces the smallest
// subtree.
type TreeBuilder struct {
	hist             *HistogramBuilder
	entropy          *EntropySolver
	scorer           *Scorer
	allWords         WordSeries
	PermutationLimit int
}

// NewTreeBuilder builds a TreeBuilder with the default permutation limit of
// 50, matching the widest scan the reference script performs before giving
// up.
func NewTreeBuilder(hist *HistogramBuilder, scorer *Scorer, allWords WordSeries) *TreeBuilder {
	return &TreeBuilder{
		hist:             hist,
		entropy:          NewEntropySolver(hist),
		scorer:           scorer,
		allWords:         allWords,
		PermutationLimit: 50,
	}
}

// Build grows a full decision tree rooted at seed over potentialSolns using
// tb.PermutationLimit, and returns the root GuessNode.
func (tb *TreeBuilder) Build(seed Word, potentialSolns WordSeries) *GuessNode {
	root := &GuessNode{Word: seed}
	tb.findBestTree(potentialSolns, root, 0)
	return root
}

// Search repeatedly widens the permutation limit from 1 up to
// tb.PermutationLimit, stopping as soon as it finds a tree whose total
// guess count is at most maxGuessCount (the reference script's
// HOLY_GRAIL=7920 default), or returning the best (lowest guess count) tree
// found once the limit is exhausted.
func (tb *TreeBuilder) Search(seed Word, potentialSolns WordSeries, maxGuessCount int) *GuessNode {
	limit := tb.PermutationLimit
	if limit <= 0 {
		limit = 50
	}

	var best *GuessNode
	bestCount := -1

	for n := 1; n <= limit; n++ {
		tb.PermutationLimit = n
		root := tb.Build(seed, potentialSolns)
		gc := root.GuessCount(tb.scorer.PerfectScore())
		if bestCount == -1 || gc < bestCount {
			best = root
			bestCount = gc
		}
		if gc <= maxGuessCount {
			break
		}
	}

	tb.PermutationLimit = limit
	return best
}

// SearchDefault runs Search with the reference script's HOLY_GRAIL ceiling.
func (tb *TreeBuilder) SearchDefault(seed Word, potentialSolns WordSeries) *GuessNode {
	return tb.Search(seed, potentialSolns, treeHolyGrail)
}

func (tb *TreeBuilder) findBestTree(potentialSolns WordSeries, parent *GuessNode, depth int) {
	winScore := tb.scorer.PerfectScore()
	nGuesses := tb.PermutationLimit - 3*depth
	if nGuesses < 1 {
		nGuesses = 1
	}

	solnsByScore := tb.hist.PartitionByScore(potentialSolns, parent.Word)

	scores := make([]int, 0, len(solnsByScore))
	for score := range solnsByScore {
		scores = append(scores, score)
	}
	sort.Ints(scores)

	for _, score := range scores {
		innerSolns := solnsByScore[score]
		scoreNode := parent.Add(score)
		if score == winScore {
			continue
		}

		switch innerSolns.Len() {
		case 1:
			scoreNode.Add(innerSolns.At(0)).Add(winScore)
			continue
		case 2:
			soln0, soln1 := innerSolns.At(0), innerSolns.At(1)
			score1 := tb.scorer.ScoreWord(soln1, soln0)
			scoreNode.Add(soln0).Add(winScore)
			scoreNode.Add(soln0).Add(score1).Add(soln1).Add(winScore)
			continue
		}

		guesses := tb.entropy.AllEntropyGuesses(tb.allWords, innerSolns)
		sort.Slice(guesses, func(i, j int) bool { return guesses[i].ImprovesUpon(guesses[j]) })
		if len(guesses) > nGuesses {
			guesses = guesses[:nGuesses]
		}

		naiveBest := guesses[0]
		if naiveBest.PerfectlyPartitions() {
			guessNode := scoreNode.Add(naiveBest.word)
			for _, soln := range innerSolns.Words() {
				s := tb.scorer.ScoreWord(soln, naiveBest.word)
				child := guessNode.Add(s)
				if s != winScore {
					child.Add(soln).Add(winScore)
				}
			}
			continue
		}

		var bestNode *GuessNode
		var bestGuess Word
		bestSize := -1
		for _, guess := range guesses {
			tmp := &GuessNode{Word: guess.word}
			tb.findBestTree(innerSolns, tmp, depth+1)
			gc := tmp.GuessCount(winScore)
			if bestSize == -1 || gc < bestSize {
				bestSize = gc
				bestGuess = guess.word
				bestNode = tmp
			}
		}

		guessNode := scoreNode.Add(bestGuess)
		guessNode.Children = bestNode.Children
	}
}

// DefaultSeed returns the tree-search tooling's default opener, unrelated
// to Solver.Seed's general opening table.
func DefaultSeed() Word {
	return NewWord(defaultTreeSeed)
}

// WriteCSV writes every root-to-WIN path in the tree rooted at root as one
// CSV row, alternating word and score fields.
func WriteCSV(w io.Writer, root *GuessNode, winScore, size int) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for _, line := range root.Display(winScore, size) {
		if err := cw.Write(strings.Split(line, ",")); err != nil {
			return err
		}
	}
	return cw.Error()
}
