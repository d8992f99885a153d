// Package selector draws random entries from the categories a user picked.
package selector

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ukaji3/lunchroulette-go/pkg/roulette/models"
)

// DefaultSize is how many entries a draw returns when the pool allows it.
const DefaultSize = 2

// Selector draws distinct pool positions uniformly at random.
// It is safe for concurrent use.
type Selector struct {
	mu   sync.Mutex
	rng  *rand.Rand
	size int
}

// New returns a Selector drawing from rng.
func New(rng *rand.Rand) *Selector {
	return &Selector{rng: rng, size: DefaultSize}
}

// NewSeeded returns a Selector with a PCG source seeded from seed, so that
// the same seed, selection and index always give the same result.
func NewSeeded(seed uint64) *Selector {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewRandom returns a Selector seeded from the current time.
func NewRandom() *Selector {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// WithSize sets the number of entries per draw. Values below 1 are ignored.
func (s *Selector) WithSize(n int) *Selector {
	if n > 0 {
		s.size = n
	}
	return s
}

// Size returns the number of entries per draw.
func (s *Selector) Size() int {
	return s.size
}

// Draw flattens the selected categories of index into one pool and returns
// min(Size, len(pool)) entries at distinct positions. Duplicate labels in
// the pool are distinct positions and may both be drawn.
func (s *Selector) Draw(selected models.SelectionSet, index models.Index) models.DrawResult {
	result := models.DrawResult{Kind: index.Kind}

	if selected.Len() == 0 {
		result.Status = models.DrawNoSelection
		result.Items = []string{models.NoSelectionMessage}
		return result
	}

	pool := Pool(selected, index)
	result.PoolSize = len(pool)
	if len(pool) == 0 {
		result.Status = models.DrawNoData
		result.Items = []string{models.NoDataMessage(index.Kind)}
		return result
	}

	result.Status = models.DrawOK
	result.Items = s.sample(pool)
	return result
}

// Pool concatenates the entries of every selected category. Categories are
// visited in sorted order; missing categories contribute nothing.
func Pool(selected models.SelectionSet, index models.Index) []string {
	var pool []string
	for _, c := range selected.Sorted() {
		pool = append(pool, index.Lookup(c)...)
	}
	return pool
}

// sample runs a partial Fisher-Yates shuffle on pool (which it owns) and
// returns the shuffled prefix.
func (s *Selector) sample(pool []string) []string {
	k := min(s.size, len(pool))

	s.mu.Lock()
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	s.mu.Unlock()

	return pool[:k:k]
}
