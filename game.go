package doddle

// ScoreboardRow records one round of a solve: the guess made, the packed
// score it received, and how many candidate solutions remained afterward.
type ScoreboardRow struct {
	Round           int
	Guess           Word
	Score           int
	CandidatesAfter int
}

// Scoreboard is the ordered history of a single board's guesses.
type Scoreboard struct {
	Rows []ScoreboardRow
}

// Append records a completed round.
func (sb *Scoreboard) Append(row ScoreboardRow) {
	sb.Rows = append(sb.Rows, row)
}

// Len returns the number of rounds played so far.
func (sb *Scoreboard) Len() int { return len(sb.Rows) }

// Won reports whether the final recorded row is a perfect score.
func (sb *Scoreboard) Won(scorer *Scorer) bool {
	if len(sb.Rows) == 0 {
		return false
	}
	return scorer.IsPerfectScore(sb.Rows[len(sb.Rows)-1].Score)
}

// Game plays a single board to completion: it holds the true solution, the
// dictionary the board was built from, and the narrowing set of candidates
// still consistent with every guess made so far.
type Game struct {
	Dictionary *Dictionary
	Scorer     *Scorer
	Solution   Word
	Candidates WordSeries
	Scoreboard Scoreboard
}

// NewGame starts a fresh game against solution, with every common word still
// a live candidate.
func NewGame(dict *Dictionary, scorer *Scorer, solution Word) *Game {
	return &Game{
		Dictionary: dict,
		Scorer:     scorer,
		Solution:   solution,
		Candidates: dict.CommonWords,
	}
}

// Won reports whether the game has already been solved.
func (g *Game) Won() bool {
	return g.Scoreboard.Won(g.Scorer)
}

// MakeGuess scores guess against the hidden solution, appends a row to the
// scoreboard, and narrows Candidates to the words consistent with that
// score. Returns the score received.
func (g *Game) MakeGuess(guess Word) int {
	score := g.Scorer.ScoreWord(g.Solution, guess)

	g.Candidates = g.Candidates.Filter(func(w Word) bool {
		return g.Scorer.ScoreWord(w, guess) == score
	})

	g.Scoreboard.Append(ScoreboardRow{
		Round:           g.Scoreboard.Len() + 1,
		Guess:           guess,
		Score:           score,
		CandidatesAfter: g.Candidates.Len(),
	})

	return score
}

// SimultaneousGame plays several boards against one shared guess stream: a
// single guess is scored independently against every still-unsolved board's
// solution, and each board narrows its own candidate set.
type SimultaneousGame struct {
	Dictionary *Dictionary
	Scorer     *Scorer
	boards     []*Game
}

// NewSimultaneousGame starts a fresh multi-board game, one Game per
// solution in solutions.
func NewSimultaneousGame(dict *Dictionary, scorer *Scorer, solutions []Word) *SimultaneousGame {
	boards := make([]*Game, len(solutions))
	for i, soln := range solutions {
		boards[i] = NewGame(dict, scorer, soln)
	}
	return &SimultaneousGame{Dictionary: dict, Scorer: scorer, boards: boards}
}

// Boards returns every board, solved or not.
func (sg *SimultaneousGame) Boards() []*Game { return sg.boards }

// ActiveBoards returns the boards not yet solved.
func (sg *SimultaneousGame) ActiveBoards() []*Game {
	active := make([]*Game, 0, len(sg.boards))
	for _, b := range sg.boards {
		if !b.Won() {
			active = append(active, b)
		}
	}
	return active
}

// Won reports whether every board has been solved.
func (sg *SimultaneousGame) Won() bool {
	for _, b := range sg.boards {
		if !b.Won() {
			return false
		}
	}
	return true
}

// MakeGuess scores guess against every board not yet solved, narrowing each
// board's own candidate set independently. Boards already solved are left
// untouched so their scoreboards stop growing once won.
func (sg *SimultaneousGame) MakeGuess(guess Word) {
	for _, b := range sg.boards {
		if b.Won() {
			continue
		}
		b.MakeGuess(guess)
	}
}

// ActiveCandidates returns the candidate WordSeries of every board not yet
// solved, in board order — the shape SimulSolver.BestGuess expects.
func (sg *SimultaneousGame) ActiveCandidates() []WordSeries {
	active := sg.ActiveBoards()
	out := make([]WordSeries, len(active))
	for i, b := range active {
		out[i] = b.Candidates
	}
	return out
}
