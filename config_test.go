package doddle

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigMatchesPackageConstants(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, deepMinimaxNGuesses, cfg.NGuesses)
	assert.Equal(t, deepMinimaxNBranches, cfg.NBranches)
	assert.Equal(t, engineMaxIters, cfg.MaxIters)
}

func TestLoadConfigOverlaysEnvironment(t *testing.T) {
	t.Setenv("DODDLE_NGUESSES", "7")
	t.Setenv("DODDLE_WORKERS", "3")
	t.Setenv("DODDLE_LOG_LEVEL", "debug")

	cfg := LoadConfig()
	assert.Equal(t, 7, cfg.NGuesses)
	assert.Equal(t, 3, cfg.WorkerPoolSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvIntIgnoresMalformedValue(t *testing.T) {
	t.Setenv("DODDLE_NBRANCHES", "not-a-number")
	cfg := LoadConfig()
	assert.Equal(t, deepMinimaxNBranches, cfg.NBranches)
}

func TestEnvStringFallsBackWhenUnset(t *testing.T) {
	os.Unsetenv("DODDLE_DICTIONARY_DIR")
	cfg := LoadConfig()
	assert.Equal(t, "dictionaries", cfg.DictionaryDir)
}
