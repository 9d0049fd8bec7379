package doddle

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"sync"
)

// benchmarkChunkSize is the number of games handed to a single worker
// goroutine per batch, mirroring the reference benchmarker's process-pool
// chunksize. Goroutines share the parent's memory already, so this exists
// only to bound how often a worker goes back to the job channel, not to
// avoid IPC overhead.
const benchmarkChunkSize = 20

// BenchmarkReporter receives a completed round-count histogram as a
// benchmark run finishes, so progress can be surfaced without the core
// engine depending on any particular rendering.
type BenchmarkReporter interface {
	Display(histogram map[int]int)
}

// NopReporter discards every report. The zero value is ready to use.
type NopReporter struct{}

// Display implements BenchmarkReporter by doing nothing.
func (NopReporter) Display(map[int]int) {}

// Benchmark is the outcome of running an engine over every common word as
// its own solution: how many rounds each game took, and the completed
// scoreboards themselves.
type Benchmark struct {
	Guesses     []Word
	Histogram   map[int]int
	Scoreboards []*Scoreboard
}

// NumGames returns the total number of games played.
func (b *Benchmark) NumGames() int {
	total := 0
	for _, v := range b.Histogram {
		total += v
	}
	return total
}

// NumGuesses returns the total number of guesses made across every game.
func (b *Benchmark) NumGuesses() int {
	total := 0
	for k, v := range b.Histogram {
		total += k * v
	}
	return total
}

// Mean returns the average number of guesses per game.
func (b *Benchmark) Mean() float64 {
	return float64(b.NumGuesses()) / float64(b.NumGames())
}

// Std returns the population standard deviation of guesses per game.
func (b *Benchmark) Std() float64 {
	n := float64(b.NumGames())
	mean := b.Mean()

	meanXSquared := 0.0
	for k, v := range b.Histogram {
		meanXSquared += float64(k*k*v) / n
	}
	variance := meanXSquared - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// OpeningGuess returns the first opening guess this benchmark was run with,
// falling back to the first scoreboard's opening round if none were
// supplied explicitly.
func (b *Benchmark) OpeningGuess() Word {
	if len(b.Guesses) > 0 {
		return b.Guesses[0]
	}
	return b.Scoreboards[0].Rows[0].Guess
}

// Benchmarker runs an Engine against every common word in its dictionary,
// one game per word, and tallies how many rounds each took.
type Benchmarker struct {
	Engine   *Engine
	Dict     *Dictionary
	Reporter BenchmarkReporter
	Workers  int
}

// NewBenchmarker builds a Benchmarker. workers <= 0 defaults to 8.
func NewBenchmarker(engine *Engine, dict *Dictionary, reporter BenchmarkReporter, workers int) *Benchmarker {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if workers <= 0 {
		workers = 8
	}
	return &Benchmarker{Engine: engine, Dict: dict, Reporter: reporter, Workers: workers}
}

// RunBenchmark plays one game per common word, fanning work out across a
// fixed goroutine pool (Go's stand-in for the reference implementation's
// multi-process executor, since goroutines already share the parent's
// memory — see DESIGN.md).
func (bm *Benchmarker) RunBenchmark(ctx context.Context, openingGuesses []Word) (*Benchmark, error) {
	solutions := bm.Dict.CommonWords.Words()

	type result struct {
		soln  Word
		board *Scoreboard
		err   error
	}

	jobs := make(chan []Word, len(solutions))
	results := make(chan result, len(solutions))

	var wg sync.WaitGroup
	for w := 0; w < bm.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range jobs {
				for _, soln := range batch {
					board, err := bm.playOne(ctx, soln, openingGuesses)
					results <- result{soln: soln, board: board, err: err}
				}
			}
		}()
	}

	for start := 0; start < len(solutions); start += benchmarkChunkSize {
		end := start + benchmarkChunkSize
		if end > len(solutions) {
			end = len(solutions)
		}
		jobs <- solutions[start:end]
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	histogram := map[int]int{}
	boards := make([]*Scoreboard, 0, len(solutions))
	for r := range results {
		if r.err != nil {
			return nil, r.err
		}
		boards = append(boards, r.board)
		histogram[r.board.Len()]++
	}

	bm.Reporter.Display(histogram)
	return &Benchmark{Guesses: openingGuesses, Histogram: histogram, Scoreboards: boards}, nil
}

func (bm *Benchmarker) playOne(ctx context.Context, soln Word, openingGuesses []Word) (*Scoreboard, error) {
	game := NewGame(bm.Dict, bm.Engine.Scorer, soln)
	for _, g := range openingGuesses {
		game.MakeGuess(g)
	}
	return bm.Engine.Run(ctx, game)
}

// SimulBenchmarker runs a SimulEngine over randomly sampled tuples of
// simultaneous solutions.
type SimulBenchmarker struct {
	Engine   *SimulEngine
	Dict     *Dictionary
	Scorer   *Scorer
	Reporter BenchmarkReporter
	Workers  int
}

// NewSimulBenchmarker builds a SimulBenchmarker. workers <= 0 defaults to 8.
func NewSimulBenchmarker(engine *SimulEngine, dict *Dictionary, scorer *Scorer, reporter BenchmarkReporter, workers int) *SimulBenchmarker {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if workers <= 0 {
		workers = 8
	}
	return &SimulBenchmarker{Engine: engine, Dict: dict, Scorer: scorer, Reporter: reporter, Workers: workers}
}

// RunBenchmark plays numRuns simultaneous games, each over numSimul
// randomly sampled common words, using a fixed seed (13) so results are
// reproducible across runs — matching the reference benchmarker exactly.
func (sb *SimulBenchmarker) RunBenchmark(ctx context.Context, openingGuesses []Word, numSimul, numRuns int) ([]*SimultaneousGame, map[int]int, error) {
	rng := rand.New(rand.NewSource(13))
	common := sb.Dict.CommonWords.Words()

	tuples := make([][]Word, numRuns)
	for i := 0; i < numRuns; i++ {
		tuple := make([]Word, numSimul)
		for j := 0; j < numSimul; j++ {
			tuple[j] = common[rng.Intn(len(common))]
		}
		tuples[i] = tuple
	}

	type result struct {
		game *SimultaneousGame
		err  error
	}

	jobs := make(chan []Word, numRuns)
	results := make(chan result, numRuns)

	var wg sync.WaitGroup
	for w := 0; w < sb.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tuple := range jobs {
				game := NewSimultaneousGame(sb.Dict, sb.Scorer, tuple)
				for _, g := range openingGuesses {
					game.MakeGuess(g)
				}
				if _, err := sb.Engine.Run(ctx, game); err != nil {
					results <- result{err: err}
					continue
				}
				results <- result{game: game}
			}
		}()
	}

	for _, tuple := range tuples {
		jobs <- tuple
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	histogram := map[int]int{}
	games := make([]*SimultaneousGame, 0, numRuns)
	for r := range results {
		if r.err != nil {
			return nil, nil, r.err
		}
		games = append(games, r.game)
		rounds := maxRounds(r.game)
		histogram[rounds]++
	}

	sb.Reporter.Display(histogram)
	return games, histogram, nil
}

func maxRounds(game *SimultaneousGame) int {
	rounds := 0
	for _, b := range game.Boards() {
		if b.Scoreboard.Len() > rounds {
			rounds = b.Scoreboard.Len()
		}
	}
	return rounds
}

// histogramScores returns a benchmark histogram's keys in ascending order,
// a convenience for code that wants a deterministic sweep.
func histogramScores(histogram map[int]int) []int {
	scores := make([]int, 0, len(histogram))
	for k := range histogram {
		scores = append(scores, k)
	}
	sort.Ints(scores)
	return scores
}
