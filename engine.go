package doddle

import "context"

const engineMaxIters = 20

// Engine drives a single Game to completion by repeatedly asking a Solver
// for the next guess. This is an idiomatic addition over the reference
// source, which calls its equivalent loop directly from script code: Run
// accepts a context.Context so a long-running deep solve can be cancelled
// from outside, same as every other blocking entry point in this package.
type Engine struct {
	Solver   Solver
	Scorer   *Scorer
	MaxIters int
}

// NewEngine builds an Engine driven by solver, scoring guesses with scorer,
// using the default iteration budget (engineMaxIters).
func NewEngine(solver Solver, scorer *Scorer) *Engine {
	return &Engine{Solver: solver, Scorer: scorer, MaxIters: engineMaxIters}
}

// Run plays game to completion, asking Solver for each guess in turn, and
// returns the completed Scoreboard. It fails with
// FailedToFindASolutionError if the game is not won within e.MaxIters
// rounds.
func (e *Engine) Run(ctx context.Context, game *Game) (*Scoreboard, error) {
	maxIters := e.MaxIters
	if maxIters <= 0 {
		maxIters = engineMaxIters
	}

	for i := 0; i < maxIters; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if game.Won() {
			return &game.Scoreboard, nil
		}

		guess := e.nextGuess(game)
		game.MakeGuess(guess)
	}

	if game.Won() {
		return &game.Scoreboard, nil
	}
	return nil, NewFailedToFindASolutionError(maxIters)
}

func (e *Engine) nextGuess(game *Game) Word {
	if game.Scoreboard.Len() == 0 {
		if seed, ok := e.Solver.Seed(game.Dictionary.WordLength()); ok {
			return seed
		}
	}
	return e.Solver.BestGuess(game.Dictionary.AllWords, game.Candidates).Word()
}

// SimulEngine drives a SimultaneousGame to completion, asking a SimulSolver
// for each shared guess.
type SimulEngine struct {
	Solver       SimulSolver
	BaseMaxIters int
}

// NewSimulEngine builds a SimulEngine driven by solver, using the default
// base iteration budget (engineMaxIters).
func NewSimulEngine(solver SimulSolver) *SimulEngine {
	return &SimulEngine{Solver: solver, BaseMaxIters: engineMaxIters}
}

// Run plays game to completion. The iteration budget grows with the number
// of boards (e.BaseMaxIters + len(boards)), since a shared guess stream
// needs more rounds to resolve every board than a single board would.
func (e *SimulEngine) Run(ctx context.Context, game *SimultaneousGame) ([]*Scoreboard, error) {
	base := e.BaseMaxIters
	if base <= 0 {
		base = engineMaxIters
	}
	maxIters := base + len(game.Boards())

	for i := 0; i < maxIters; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if game.Won() {
			return e.scoreboards(game), nil
		}

		guess := e.nextGuess(game)
		game.MakeGuess(guess)
	}

	if game.Won() {
		return e.scoreboards(game), nil
	}
	return nil, NewFailedToFindASolutionError(maxIters)
}

func (e *SimulEngine) nextGuess(game *SimultaneousGame) Word {
	active := game.ActiveBoards()
	if len(active) > 0 && active[0].Scoreboard.Len() == 0 {
		if seed, ok := e.Solver.Seed(game.Dictionary.WordLength()); ok {
			return seed
		}
	}
	return e.Solver.BestGuess(game.Dictionary.AllWords, game.ActiveCandidates()).Word()
}

func (e *SimulEngine) scoreboards(game *SimultaneousGame) []*Scoreboard {
	out := make([]*Scoreboard, len(game.Boards()))
	for i, b := range game.Boards() {
		out[i] = &b.Scoreboard
	}
	return out
}
