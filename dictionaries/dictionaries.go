// Package dictionaries embeds the word lists doddle ships with, one JSON
// file per supported word length.
package dictionaries

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed *.json
var files embed.FS

type wordList struct {
	AllWords    []string `json:"all_words"`
	CommonWords []string `json:"common_words"`
}

// Load returns the embedded all-words and common-words lists for the given
// word length.
func Load(size int) (allWords, commonWords []string, err error) {
	raw, err := files.ReadFile(fmt.Sprintf("words%d.json", size))
	if err != nil {
		return nil, nil, fmt.Errorf("no built-in dictionary for word length %d: %w", size, err)
	}

	var wl wordList
	if err := json.Unmarshal(raw, &wl); err != nil {
		return nil, nil, fmt.Errorf("malformed dictionary for word length %d: %w", size, err)
	}

	return wl.AllWords, wl.CommonWords, nil
}
