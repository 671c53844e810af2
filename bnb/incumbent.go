// File: incumbent.go
// Role: best-clique cell shared by all branches.
// Concurrency:
//   - offer serializes writers under mu; the size is published atomically
//     so the bound test never takes the lock.
//   - readers load an immutable snapshot through an atomic pointer.

package bnb

import (
	"slices"
	"sync"
	"sync/atomic"
)

type incumbent struct {
	mu   sync.Mutex
	size atomic.Int64
	best atomic.Pointer[[]int] // vertex IDs, ascending; never mutated once stored
}

func (inc *incumbent) reset(ids []int) {
	inc.mu.Lock()
	defer inc.mu.Unlock()

	snap := slices.Clone(ids)
	slices.Sort(snap)
	inc.best.Store(&snap)
	inc.size.Store(int64(len(snap)))
}

// Size returns the current incumbent size without locking.
func (inc *incumbent) Size() int { return int(inc.size.Load()) }

// Snapshot returns a copy of the current incumbent.
func (inc *incumbent) Snapshot() []int {
	p := inc.best.Load()
	if p == nil {
		return []int{}
	}
	out := make([]int, len(*p))
	copy(out, *p)
	return out
}

// offer replaces the incumbent with ids if strictly larger. onImprove runs
// under the lock so improvements are observed in order.
func (inc *incumbent) offer(ids []int, onImprove func(snap []int)) bool {
	if len(ids) <= inc.Size() {
		return false
	}
	inc.mu.Lock()
	defer inc.mu.Unlock()

	if len(ids) <= inc.Size() {
		return false
	}
	snap := slices.Clone(ids)
	slices.Sort(snap)
	inc.best.Store(&snap)
	inc.size.Store(int64(len(snap)))
	if onImprove != nil {
		onImprove(snap)
	}

	return true
}
