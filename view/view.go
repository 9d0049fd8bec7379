// Package view renders doddle's core types for a terminal, an emoji share
// card, or a Graphviz digraph. None of it is load-bearing for the solver
// itself — every renderer's only contract with the core is a Scoreboard's
// rows and a round-count histogram.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coreyog/statux"
	"github.com/fatih/color"

	"github.com/coreyog/doddle"
)

// ScoreboardTable renders a full scoreboard as the teacher's terminal game
// renders a finished board: a divider-bounded header, one coloured row per
// guess.
func ScoreboardTable(solution doddle.Word, board *doddle.Scoreboard, size int) string {
	var b strings.Builder
	b.WriteString(header(size))
	for _, row := range board.Rows {
		b.WriteString(scoreboardRow(row.Round, solution, row.Guess, row.Score, row.CandidatesAfter, size))
		b.WriteByte('\n')
	}
	return b.String()
}

func header(size int) string {
	pad := strings.Repeat(" ", max0(size-5))
	dashes := strings.Repeat("-", max0(size-5))
	h := fmt.Sprintf("\n| # | Soln.%s | Guess%s | Score%s | Poss.%s |\n", pad, pad, pad, pad)
	h += fmt.Sprintf("|---|-------%s|-------%s|-------%s|-------%s|\n", dashes, dashes, dashes, dashes)
	return h
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func scoreboardRow(round int, solution, guess doddle.Word, score, numLeft, size int) string {
	ternary := doddle.ToTernary(score, size)

	padding := strings.Repeat(" ", max0(5-size))
	numLeftStr := " "
	if guess.String() != solution.String() {
		numLeftStr = strconv.Itoa(numLeft)
	}
	numLeftWidth := 5
	if size > numLeftWidth {
		numLeftWidth = size
	}
	paddedNumLeft := fmt.Sprintf("%*s", numLeftWidth, numLeftStr)

	prettyGuess := colorCode(guess.String(), ternary) + padding
	prettyScore := colorCode(ternary, ternary) + padding

	return fmt.Sprintf("|%2d | %s%s | %s | %s | %s |", round, solution.String(), padding, prettyGuess, prettyScore, paddedNumLeft)
}

// colorCode paints each character of word according to the corresponding
// ternary digit in score: 2 green, 1 yellow, 0 default.
func colorCode(word, score string) string {
	var b strings.Builder
	for i := 0; i < len(word) && i < len(score); i++ {
		switch score[i] {
		case '2':
			b.WriteString(color.GreenString(string(word[i])))
		case '1':
			b.WriteString(color.YellowString(string(word[i])))
		default:
			b.WriteByte(word[i])
		}
	}
	return b.String()
}

// scoreEmoji renders a ternary score string as the familiar Wordle share
// emoji row: ⬛🟨🟩 for digits 0/1/2.
func scoreEmoji(score string) string {
	var b strings.Builder
	for i := 0; i < len(score); i++ {
		switch score[i] {
		case '2':
			b.WriteRune('🟩')
		case '1':
			b.WriteRune('🟨')
		default:
			b.WriteRune('⬛')
		}
	}
	return b.String()
}

// EmojiScoreboard renders board as a share-card emoji grid.
func EmojiScoreboard(board *doddle.Scoreboard, size int) string {
	var lines []string
	for _, row := range board.Rows {
		lines = append(lines, scoreEmoji(doddle.ToTernary(row.Score, size)))
	}
	return strings.Join(lines, "\n")
}

// LiveBoard drives a statux-backed live redraw of an in-progress solve, one
// line per round plus a trailing status line, mirroring the teacher's
// terminal game renderer.
type LiveBoard struct {
	stat       *statux.Statux
	statusLine int
}

// NewLiveBoard allocates a live-updating board with room for maxRounds
// guesses plus one status line.
func NewLiveBoard(maxRounds int) (*LiveBoard, error) {
	stat, err := statux.New(maxRounds + 1)
	if err != nil {
		return nil, err
	}
	return &LiveBoard{stat: stat, statusLine: maxRounds}, nil
}

// Update rewrites the line for round (1-indexed) with guess's coloured
// rendering against score.
func (lb *LiveBoard) Update(round int, guess doddle.Word, score, size int) {
	ternary := doddle.ToTernary(score, size)
	_, _ = lb.stat.WriteString(round-1, "  "+colorCode(guess.String(), ternary))
}

// Status rewrites the trailing status line.
func (lb *LiveBoard) Status(text string) {
	_, _ = lb.stat.WriteString(lb.statusLine, text)
}

// Close finalises the live display, leaving its last frame on the
// terminal.
func (lb *LiveBoard) Close() {
	if !lb.stat.IsFinished() {
		lb.stat.Finish()
	}
}

var digitColor = map[byte]string{
	'0': "#787c7e",
	'1': "#c9b458",
	'2': "#6aaa64",
}

// WriteDigraphDOT renders a GuessNode decision tree as a Graphviz DOT
// digraph. Guess nodes are labelled with their word and score nodes with
// their ternary score string; no node carries a combined "score,guess"
// label. An edge into a score node is coloured by the lowest digit of that
// score (grey for 0, yellow for 1, green for 2); edges into guess nodes are
// not coloured.
func WriteDigraphDOT(w *strings.Builder, root *doddle.GuessNode, size int) {
	w.WriteString("digraph doddle {\n")
	w.WriteString("  node [shape=box fontname=monospace];\n")

	id := 0
	nextID := func() int {
		id++
		return id
	}

	rootID := nextID()
	fmt.Fprintf(w, "  n%d [label=%q];\n", rootID, root.Word.String())
	for _, child := range root.Children {
		writeScoreNodeDOT(w, child, rootID, size, nextID)
	}

	w.WriteString("}\n")
}

func writeScoreNodeDOT(w *strings.Builder, node *doddle.ScoreNode, parentID, size int, nextID func() int) {
	ternary := doddle.ToTernary(node.Score, size)
	thisID := nextID()
	fmt.Fprintf(w, "  n%d [label=%q];\n", thisID, ternary)
	fmt.Fprintf(w, "  n%d -> n%d [color=%q];\n", parentID, thisID, edgeColor(ternary))

	for _, child := range node.Children {
		writeGuessNodeDOT(w, child, thisID, size, nextID)
	}
}

func writeGuessNodeDOT(w *strings.Builder, node *doddle.GuessNode, parentID, size int, nextID func() int) {
	thisID := nextID()
	fmt.Fprintf(w, "  n%d [label=%q];\n", thisID, node.Word.String())
	fmt.Fprintf(w, "  n%d -> n%d;\n", parentID, thisID)

	for _, child := range node.Children {
		writeScoreNodeDOT(w, child, thisID, size, nextID)
	}
}

// BenchmarkReport renders a completed Benchmark as a bar chart of
// round-count frequencies followed by summary statistics, matching the
// reference BenchmarkPrinter's layout.
func BenchmarkReport(benchmark *doddle.Benchmark) string {
	return barChart(benchmark.Histogram) + "\n\n" + describe(benchmark)
}

func describe(benchmark *doddle.Benchmark) string {
	var guess string
	if len(benchmark.Guesses) > 0 {
		words := make([]string, len(benchmark.Guesses))
		for i, w := range benchmark.Guesses {
			words[i] = w.String()
		}
		guess = strings.Join(words, ",")
	} else {
		guess = benchmark.OpeningGuess().String()
	}

	return fmt.Sprintf(
		"Guess:    %s\nGames:    %d\nGuesses:  %d\nMean:     %.3f\nStd:      %.3f",
		guess, benchmark.NumGames(), benchmark.NumGuesses(), benchmark.Mean(), benchmark.Std(),
	)
}

const barChartWidth = 50

func barChart(histogram map[int]int) string {
	worst := 0
	largest := 0
	for k, v := range histogram {
		if k > worst {
			worst = k
		}
		if v > largest {
			largest = v
		}
	}
	if largest == 0 {
		return ""
	}
	increment := float64(largest) / float64(barChartWidth)

	stars := make([]string, worst)
	maxStars := 0
	for i := 0; i < worst; i++ {
		value := histogram[i+1]
		num := int(float64(value)/increment + 0.5)
		stars[i] = strings.Repeat("*", num)
		if num > maxStars {
			maxStars = num
		}
	}

	var rows []string
	for i, star := range stars {
		value := histogram[i+1]
		counts := fmt.Sprintf("(%d)", value)
		counts = fmt.Sprintf("%9s", counts)
		padded := star + strings.Repeat(" ", max0(maxStars-len(star)))
		rows = append(rows, fmt.Sprintf("%d | %s%s", i+1, padded, counts))
	}
	return strings.Join(rows, "\n")
}

func edgeColor(ternary string) string {
	if len(ternary) == 0 {
		return digitColor['0']
	}
	worst := byte('2')
	for i := 0; i < len(ternary); i++ {
		if ternary[i] < worst {
			worst = ternary[i]
		}
	}
	return digitColor[worst]
}
