package alloc

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

// LRU pools up to size released values in a bounded cache instead of
// letting the garbage collector reclaim them, using golang-lru (the same
// module the teacher's storage/netstore.go uses for its fetchers cache)
// as the free-list store: Put adds the value under a monotonically
// increasing key, Get evicts and reuses the oldest one. Useful for the
// interior-node (K=branchCap) and leaf-chunk (K=leafCap) allocation
// classes a Sequence churns through under heavy push/pop.
type LRU[T any] struct {
	mu      sync.Mutex
	next    uint64
	newFn   func() T
	resetFn func(T)
	cache   *lru.Cache
}

// NewLRU constructs a pool holding at most size recycled values. newFn
// builds a fresh value on a pool miss; resetFn (optional, may be nil)
// clears a value's state before it re-enters the pool.
func NewLRU[T any](size int, newFn func() T, resetFn func(T)) *LRU[T] {
	c, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return &LRU[T]{newFn: newFn, resetFn: resetFn, cache: c}
}

// Get returns a pooled value if one is available, else a fresh one.
func (l *LRU[T]) Get() T {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, v, ok := l.cache.RemoveOldest(); ok {
		return v.(T)
	}
	return l.newFn()
}

// Put returns x to the pool, evicting the oldest entry if the pool is
// already full.
func (l *LRU[T]) Put(x T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.resetFn != nil {
		l.resetFn(x)
	}
	l.next++
	l.cache.Add(l.next, x)
}
