package dictionaries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKnownSize(t *testing.T) {
	all, common, err := Load(5)
	require.NoError(t, err)
	assert.NotEmpty(t, all)
	assert.NotEmpty(t, common)
	assert.Contains(t, all, "SNAKE")
}

func TestLoadUnknownSizeErrors(t *testing.T) {
	_, _, err := Load(3)
	assert.Error(t, err)
}

func TestLoadEveryWordSharesLength(t *testing.T) {
	for _, size := range []int{4, 5, 6, 7, 8, 9} {
		all, common, err := Load(size)
		require.NoError(t, err)
		for _, w := range all {
			assert.Len(t, w, size)
		}
		for _, w := range common {
			assert.Len(t, w, size)
		}
	}
}
