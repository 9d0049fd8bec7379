package doddle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWordUppercases(t *testing.T) {
	w := NewWord("snake")
	assert.Equal(t, "SNAKE", w.String())
	assert.Equal(t, 5, w.Len())
}

func TestWordSeriesIsSortedAndIndexed(t *testing.T) {
	ws := NewWordSeries([]string{"SPADE", "BLAST", "SNAKE"})
	require.Equal(t, 3, ws.Len())
	assert.Equal(t, "BLAST", ws.At(0).String())
	assert.Equal(t, "SNAKE", ws.At(1).String())
	assert.Equal(t, "SPADE", ws.At(2).String())
}

func TestWordSeriesFindIndex(t *testing.T) {
	ws := NewWordSeries([]string{"SPADE", "BLAST", "SNAKE"})
	pos, ok := ws.FindIndex(NewWord("SNAKE"))
	require.True(t, ok)
	assert.Equal(t, "SNAKE", ws.At(pos).String())

	_, ok = ws.FindIndex(NewWord("TRASH"))
	assert.False(t, ok)
}

func TestWordSeriesFilterPreservesOrder(t *testing.T) {
	ws := NewWordSeries([]string{"SPADE", "BLAST", "SNAKE", "STALE"})
	filtered := ws.Filter(func(w Word) bool { return w.String()[0] == 'S' })

	got := make([]string, filtered.Len())
	for i, w := range filtered.Words() {
		got[i] = w.String()
	}
	assert.Equal(t, []string{"SNAKE", "SPADE", "STALE"}, got)
}

func TestNewDictionaryMergesExtras(t *testing.T) {
	dict, err := NewDictionary(
		[]string{"SNAKE", "SPACE"},
		[]string{"SNAKE"},
		[]string{"zzzzz"},
	)
	require.NoError(t, err)
	assert.True(t, dict.AllWords.Contains("ZZZZZ"))
	assert.True(t, dict.CommonWords.Contains("ZZZZZ"))
}

func TestNewDictionaryRejectsMixedLengths(t *testing.T) {
	_, err := NewDictionary(
		[]string{"SNAKE", "TOOLONGWORD"},
		[]string{"SNAKE"},
		nil,
	)
	assert.Error(t, err)
}

func TestNewDictionaryRejectsEmpty(t *testing.T) {
	_, err := NewDictionary(nil, nil, nil)
	assert.Error(t, err)
}
