package doddle

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the tunable knobs of a solve: how many candidate guesses the
// deep solvers keep at each ply, how long the engine loop runs before
// giving up, and where dictionaries are loaded from. Defaults match the
// constants used throughout this package; every field can be overridden by
// a DODDLE_-prefixed environment variable (listed on LoadConfig),
// optionally loaded from a .env file.
type Config struct {
	NGuesses       int
	NBranches      int
	MaxIters       int
	WorkerPoolSize int
	DictionaryDir  string
	LogLevel       string
}

// DefaultConfig returns the built-in defaults, unaffected by environment
// variables.
func DefaultConfig() Config {
	return Config{
		NGuesses:       deepMinimaxNGuesses,
		NBranches:      deepMinimaxNBranches,
		MaxIters:       engineMaxIters,
		WorkerPoolSize: 8,
		DictionaryDir:  "dictionaries",
		LogLevel:       "info",
	}
}

// LoadConfig loads a .env file if present (a missing file is not an error)
// and overlays any of DODDLE_NGUESSES, DODDLE_NBRANCHES, DODDLE_MAXITERS,
// DODDLE_WORKERS, DODDLE_DICTIONARY_DIR, DODDLE_LOG_LEVEL found in the
// environment on top of DefaultConfig.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.NGuesses = envInt("DODDLE_NGUESSES", cfg.NGuesses)
	cfg.NBranches = envInt("DODDLE_NBRANCHES", cfg.NBranches)
	cfg.MaxIters = envInt("DODDLE_MAXITERS", cfg.MaxIters)
	cfg.WorkerPoolSize = envInt("DODDLE_WORKERS", cfg.WorkerPoolSize)
	cfg.DictionaryDir = envString("DODDLE_DICTIONARY_DIR", cfg.DictionaryDir)
	cfg.LogLevel = envString("DODDLE_LOG_LEVEL", cfg.LogLevel)
	return cfg
}

func envInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envString(key string, fallback string) string {
	if raw, ok := os.LookupEnv(key); ok && raw != "" {
		return raw
	}
	return fallback
}
