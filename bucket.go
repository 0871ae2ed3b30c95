package cvec

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// bucket owns either nothing or a contiguous, never-relocated slice of
// entries. Its entry-array pointer is installed at most once, under initMu,
// by whichever goroutine first needs it; every other caller only ever reads
// it. This mirrors HashTrieMap's init/initSlow split: the lock is per-bucket
// and only ever taken on the cold, first-allocation path.
type bucket[T any] struct {
	//lint:ignore U1000 prevents false sharing between adjacent bucket descriptors
	pad [(CacheLineSize - unsafe.Sizeof(struct {
		initMu  sync.Mutex
		entries unsafe.Pointer
	}{})%CacheLineSize) % CacheLineSize]byte

	initMu  sync.Mutex
	entries atomic.Pointer[[]entry[T]]
}

// ensureAllocated returns the bucket's entry slice, allocating a zeroed
// slice of the given capacity on first call. Safe for concurrent use; at
// most one allocation per bucket ever survives.
func (b *bucket[T]) ensureAllocated(cap int) []entry[T] {
	if p := b.entries.Load(); p != nil {
		return *p
	}
	return b.ensureAllocatedSlow(cap)
}

//go:noinline
func (b *bucket[T]) ensureAllocatedSlow(cap int) []entry[T] {
	b.initMu.Lock()
	defer b.initMu.Unlock()

	if p := b.entries.Load(); p != nil {
		// Someone installed it while we waited for the lock.
		return *p
	}
	arr := make([]entry[T], cap)
	b.entries.Store(&arr)
	return arr
}

// get returns the bucket's entry slice, or nil if nothing has been
// allocated yet.
func (b *bucket[T]) get() []entry[T] {
	if p := b.entries.Load(); p != nil {
		return *p
	}
	return nil
}

// teardown drops every active entry's value and lets the slice become
// garbage. Called at most once, from Vector.Close, under the assumption
// that no other goroutine is concurrently pushing or reading.
func (b *bucket[T]) teardown() {
	arr := b.get()
	for i := range arr {
		arr[i].dropIfActive()
	}
}
