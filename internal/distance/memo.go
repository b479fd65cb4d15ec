package distance

import lru "github.com/hashicorp/golang-lru/v2"

// DefaultMemoSize is the number of redshifts WithMemo keeps.
const DefaultMemoSize = 4096

// memo holds the most recently used radial distances. The cache is safe
// for concurrent use.
type memo struct {
	cache *lru.Cache[float64, float64]
}

func newMemo(size int) *memo {
	if size < 1 {
		size = DefaultMemoSize
	}
	// New only fails for a non-positive size.
	cache, _ := lru.New[float64, float64](size)
	return &memo{cache: cache}
}

func (m *memo) get(z float64) (float64, bool) {
	return m.cache.Get(z)
}

func (m *memo) put(z, v float64) {
	m.cache.Add(z, v)
}

func (m *memo) len() int {
	return m.cache.Len()
}
