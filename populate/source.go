// Package populate - randomness providers shared by both strategies.
//
// Goals:
//   - Determinism: the same seed yields the same graph.
//   - Injectability: tests can script exact draws through Source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; neither are the Sources built on it.
package populate

import (
	"math/rand"
	"time"
)

// defaultSeed is used by NewSeededSource when the caller passes 0.
const defaultSeed int64 = 1

// Source yields uniformly distributed integers in the closed range [lo, hi].
// Implementations may assume lo <= hi.
type Source interface {
	IntRange(lo, hi int) int
}

// randSource adapts *rand.Rand to Source.
type randSource struct {
	r *rand.Rand
}

// IntRange returns a uniform integer in [lo, hi].
func (s randSource) IntRange(lo, hi int) int {
	return lo + s.r.Intn(hi-lo+1)
}

// NewRandSource wraps r as a Source. Panics on nil.
func NewRandSource(r *rand.Rand) Source {
	if r == nil {
		panic("populate: NewRandSource(nil)")
	}
	return randSource{r: r}
}

// NewSeededSource returns a deterministic Source.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewSeededSource(seed int64) Source {
	if seed == 0 {
		seed = defaultSeed
	}
	return randSource{r: rand.New(rand.NewSource(seed))}
}

// newTimeSource is the fallback when no option selects a source.
func newTimeSource() Source {
	return randSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}
