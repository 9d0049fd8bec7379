// Command doddle is a thin terminal front-end over the doddle solver
// library: it wires a dictionary, a heuristic, and a renderer together, and
// gets out of the way.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-tty"

	"github.com/coreyog/doddle"
	"github.com/coreyog/doddle/dictionaries"
	"github.com/coreyog/doddle/view"
)

type commonOpts struct {
	Size   int    `short:"n" long:"size" description:"word length" default:"5"`
	Solver string `long:"solver" description:"minimax|entropy|deep-minimax|deep-entropy" default:"entropy"`
}

func (o *commonOpts) buildSolver() (*doddle.Dictionary, *doddle.Scorer, doddle.Solver, doddle.Config, error) {
	cfg := doddle.LoadConfig()

	all, common, err := dictionaries.Load(o.Size)
	if err != nil {
		return nil, nil, nil, cfg, err
	}
	dict, err := doddle.NewDictionary(all, common, nil)
	if err != nil {
		return nil, nil, nil, cfg, err
	}

	scorer := doddle.NewScorer(o.Size)
	hist := doddle.NewHistogramBuilder(scorer, dict.AllWords, dict.CommonWords, true)

	minimax := doddle.NewMinimaxSolver(hist)
	entropy := doddle.NewEntropySolver(hist)

	var solver doddle.Solver
	switch o.Solver {
	case "minimax":
		solver = minimax
	case "entropy":
		solver = entropy
	case "deep-minimax":
		solver = doddle.NewDeepMinimaxSolverWithConfig(hist, minimax, cfg.NGuesses, cfg.NBranches)
	case "deep-entropy":
		solver = doddle.NewDeepEntropySolverWithConfig(hist, entropy, cfg.NGuesses)
	default:
		return nil, nil, nil, cfg, doddle.NewSolverNotSupportedError(o.Solver, "minimax", "entropy", "deep-minimax", "deep-entropy")
	}

	return dict, scorer, solver, cfg, nil
}

// SolveCommand interactively solves an unknown word: doddle proposes a
// guess, the user reports the score they received back from the real game.
type SolveCommand struct {
	commonOpts
}

func (c *SolveCommand) Execute(_ []string) error {
	dict, scorer, solver, _, err := c.buildSolver()
	if err != nil {
		return err
	}

	candidates := dict.CommonWords
	ty, err := tty.Open()
	if err != nil {
		return err
	}
	defer ty.Close()

	for round := 1; round <= 20; round++ {
		var guess doddle.Word
		if round == 1 {
			if seed, ok := solver.Seed(c.Size); ok {
				guess = seed
			}
		}
		if guess.Len() == 0 {
			guess = solver.BestGuess(dict.AllWords, candidates).Word()
		}

		fmt.Printf("Guess %d: %s\n", round, guess)
		fmt.Print("Score (e.g. 20101, or WORD=20101 to override): ")

		line, err := readLine(ty)
		if err != nil {
			return err
		}

		if override, scoreStr, ok := strings.Cut(line, "="); ok {
			guess = doddle.NewWord(override)
			line = scoreStr
		}

		score, err := doddle.ParseScoreString(line, c.Size)
		if err != nil {
			return err
		}

		candidates = candidates.Filter(func(w doddle.Word) bool {
			return scorer.ScoreWord(w, guess) == score
		})

		if scorer.IsPerfectScore(score) {
			fmt.Println("Solved!")
			return nil
		}
		if candidates.Len() == 0 {
			return doddle.NewInvalidInputError("no remaining candidates are consistent with the scores given")
		}
	}

	return doddle.NewFailedToFindASolutionError(20)
}

func readLine(ty *tty.TTY) (string, error) {
	var b strings.Builder
	for {
		r, err := ty.ReadRune()
		if err != nil {
			return "", err
		}
		if r == '\r' || r == '\n' {
			return strings.TrimSpace(b.String()), nil
		}
		if r == 127 || r == 8 {
			s := b.String()
			if len(s) > 0 {
				b.Reset()
				b.WriteString(s[:len(s)-1])
			}
			continue
		}
		if unicode.IsPrint(r) {
			b.WriteRune(r)
			fmt.Print(string(r))
		}
	}
}

// HideCommand plays the solver against the first common word of the
// dictionary (in sorted order) and prints the finished scoreboard. The
// hidden word is not chosen at random or adversarially.
type HideCommand struct {
	commonOpts
}

func (c *HideCommand) Execute(_ []string) error {
	dict, scorer, solver, cfg, err := c.buildSolver()
	if err != nil {
		return err
	}

	words := dict.CommonWords.Words()
	solution := words[0]

	return runSolve(dict, scorer, solver, solution, nil, cfg)
}

// RunCommand plays a known solution (or several, simultaneously)
// end-to-end and prints the resulting scoreboard(s).
type RunCommand struct {
	commonOpts
	Answer string `long:"answer" description:"comma-separated solution word(s)" required:"true"`
	Guess  string `long:"guess" description:"comma-separated opening guess override(s)"`
	Depth  int    `long:"depth" description:"lookahead depth: 1 or 2" default:"1"`
}

func (c *RunCommand) Execute(_ []string) error {
	if c.Depth == 2 && (c.Solver == "minimax" || c.Solver == "entropy") {
		c.Solver = "deep-" + c.Solver
	}
	dict, scorer, solver, cfg, err := c.buildSolver()
	if err != nil {
		return err
	}

	answers := splitWords(c.Answer)
	var openers []doddle.Word
	if c.Guess != "" {
		openers = splitWords(c.Guess)
	}

	if len(answers) == 1 {
		return runSolve(dict, scorer, solver, answers[0], openers, cfg)
	}

	simul := buildSimulSolver(dict, scorer, c.Solver)
	game := doddle.NewSimultaneousGame(dict, scorer, answers)
	for _, g := range openers {
		game.MakeGuess(g)
	}

	engine := doddle.NewSimulEngine(simul)
	if cfg.MaxIters > 0 {
		engine.BaseMaxIters = cfg.MaxIters
	}
	boards, err := engine.Run(context.Background(), game)
	if err != nil {
		return err
	}

	for i, board := range boards {
		fmt.Println(view.ScoreboardTable(answers[i], board, c.Size))
	}
	return nil
}

func buildSimulSolver(dict *doddle.Dictionary, scorer *doddle.Scorer, kind string) doddle.SimulSolver {
	hist := doddle.NewHistogramBuilder(scorer, dict.AllWords, dict.CommonWords, true)
	if kind == "minimax" || kind == "deep-minimax" {
		return doddle.NewMinimaxSimulSolver(hist)
	}
	return doddle.NewEntropySimulSolver(hist)
}

func runSolve(dict *doddle.Dictionary, scorer *doddle.Scorer, solver doddle.Solver, solution doddle.Word, openers []doddle.Word, cfg doddle.Config) error {
	game := doddle.NewGame(dict, scorer, solution)
	for _, g := range openers {
		game.MakeGuess(g)
	}
	engine := doddle.NewEngine(solver, scorer)
	if cfg.MaxIters > 0 {
		engine.MaxIters = cfg.MaxIters
	}

	board, err := engine.Run(context.Background(), game)
	if err != nil {
		return err
	}

	fmt.Println(view.ScoreboardTable(solution, board, dict.WordLength()))
	return nil
}

// BenchmarkCommand runs the solver against every word in the dictionary and
// prints aggregate statistics.
type BenchmarkCommand struct {
	commonOpts
	Guess string `long:"guess" description:"comma-separated opening guess override(s)"`
	Simul int    `long:"simul" description:"number of simultaneous boards (0 = single-board benchmark)" default:"0"`
}

func (c *BenchmarkCommand) Execute(_ []string) error {
	dict, scorer, solver, cfg, err := c.buildSolver()
	if err != nil {
		return err
	}

	var openers []doddle.Word
	if c.Guess != "" {
		openers = splitWords(c.Guess)
	}

	if c.Simul <= 0 {
		engine := doddle.NewEngine(solver, scorer)
		if cfg.MaxIters > 0 {
			engine.MaxIters = cfg.MaxIters
		}
		bm := doddle.NewBenchmarker(engine, dict, doddle.NopReporter{}, cfg.WorkerPoolSize)
		result, err := bm.RunBenchmark(context.Background(), openers)
		if err != nil {
			return err
		}
		fmt.Println(view.BenchmarkReport(result))
		return nil
	}

	simul := buildSimulSolver(dict, scorer, c.Solver)
	engine := doddle.NewSimulEngine(simul)
	if cfg.MaxIters > 0 {
		engine.BaseMaxIters = cfg.MaxIters
	}
	sb := doddle.NewSimulBenchmarker(engine, dict, scorer, doddle.NopReporter{}, cfg.WorkerPoolSize)

	_, histogram, err := sb.RunBenchmark(context.Background(), openers, c.Simul, 1000)
	if err != nil {
		return err
	}
	fmt.Println(view.BenchmarkReport(&doddle.Benchmark{Histogram: histogram}))
	return nil
}

func splitWords(csv string) []doddle.Word {
	parts := strings.Split(csv, ",")
	out := make([]doddle.Word, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, doddle.NewWord(p))
	}
	return out
}

type topLevel struct {
	Solve     SolveCommand     `command:"solve" description:"interactively solve an unknown word"`
	Hide      HideCommand      `command:"hide" description:"doddle picks a word and solves it itself"`
	Run       RunCommand       `command:"run" description:"play a known solution (or several) to completion"`
	Benchmark BenchmarkCommand `command:"benchmark" description:"benchmark a solver across the whole dictionary"`
}

func main() {
	var top topLevel
	parser := flags.NewParser(&top, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
