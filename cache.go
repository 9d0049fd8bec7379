package doddle

import (
	"hash/fnv"
	"sort"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

// guessCache memoises a depth-1 best-guess lookup keyed by a fingerprint of
// the candidate subset it was computed over. The deep solvers repeatedly
// re-solve overlapping candidate subsets; caching the result only changes
// how often it is recomputed, never what is computed, so it cannot affect
// determinism. TreeBuilder does not use this cache.
type guessCache struct {
	lru *lru.LRU
}

// newGuessCache builds a bounded LRU cache holding up to size entries.
func newGuessCache(size int) *guessCache {
	inner, _ := lru.NewLRU(size, nil)
	return &guessCache{lru: inner}
}

// fingerprint returns a stable hash of a candidate set's global indices,
// independent of iteration order.
func fingerprint(ws WordSeries) uint64 {
	indices := append([]int(nil), ws.Indices()...)
	sort.Ints(indices)

	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, idx := range indices {
		for i := 0; i < 8; i++ {
			buf[i] = byte(idx >> (8 * i))
		}
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}

func (c *guessCache) get(key uint64) (Guess, bool) {
	if c == nil || c.lru == nil {
		return nil, false
	}
	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return v.(Guess), true
}

func (c *guessCache) put(key uint64, g Guess) {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Add(key, g)
}
