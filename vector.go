// Package cvec implements a concurrent, append-only, indexed vector.
//
// Once Push places a value at an index, that value lives at a stable index
// and a stable memory address for the remainder of the Vector's lifetime:
// the Vector never relocates its contents to grow. Growth happens by
// bringing new fixed-size buckets online, following a 1, 1, 2, 4, 8, ...
// doubling schedule, rather than by copying. This gives lock-free reads,
// lock-free writes to already-allocated buckets, and pointers returned from
// Get that remain valid for as long as the Vector itself does.
//
// The zero value is an empty Vector ready for use; New returns a pointer to
// one.
package cvec

import "sync/atomic"

// Vector is a concurrent append-only sequence of T. All methods are safe
// for concurrent use by multiple goroutines, except Close, which requires
// the caller to have quiesced all other access first.
type Vector[T any] struct {
	head    atomic.Uint64
	closed  atomic.Bool
	buckets [numBuckets]bucket[T]
}

// New constructs an empty Vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// FromSlice constructs a Vector by pushing each element of items, in order,
// into a fresh Vector.
func FromSlice[T any](items []T) *Vector[T] {
	v := New[T]()
	for _, item := range items {
		v.Push(item)
	}
	return v
}

// Push reserves the next index, installs value there, and returns the
// index. The returned index is unique and indices handed out across any
// number of concurrent callers form a dense prefix of the naturals.
func (v *Vector[T]) Push(value T) uint64 {
	if v.closed.Load() {
		panic("cvec: Push on a closed Vector")
	}
	i := v.head.Add(1) - 1
	b, off := decompose(i)
	arr := v.buckets[b].ensureAllocated(bucketCap(b))
	arr[off].publish(value)
	return i
}

// Get returns a pointer to the value at index i and true, or (nil, false)
// if i has not yet been reserved or its push has not yet published. The
// pointer, once returned non-nil, remains valid for the lifetime of the
// Vector.
func (v *Vector[T]) Get(i uint64) (*T, bool) {
	if v.closed.Load() {
		panic("cvec: Get on a closed Vector")
	}
	if i >= v.head.Load() {
		return nil, false
	}
	b, off := decompose(i)
	arr := v.buckets[b].get()
	if arr == nil {
		return nil, false
	}
	return arr[off].load()
}

// At is a convenience wrapper over Get that panics if index i is absent,
// the indexing-operator behavior a caller gets from vec[i] in a language
// with that operator.
func (v *Vector[T]) At(i uint64) *T {
	val, ok := v.Get(i)
	if !ok {
		panic("cvec: index out of range or not yet published")
	}
	return val
}

// Len returns the number of reserved indices. This may be larger than the
// number of currently visible (published) values by the number of pushes
// currently in flight; it never decreases.
func (v *Vector[T]) Len() uint64 {
	return v.head.Load()
}

// Reserve is a best-effort hint that allocates the buckets needed to hold
// at least `additional` more pushes without further bucket allocation.
// It never affects correctness, only cold-path latency of subsequent
// pushes.
func (v *Vector[T]) Reserve(additional uint64) {
	if additional == 0 {
		return
	}
	target := v.head.Load() + additional
	b, _ := decompose(target - 1)
	for bb := 0; bb <= b; bb++ {
		v.buckets[bb].ensureAllocated(bucketCap(bb))
	}
}

// Close tears down the Vector: every published value that implements
// Dropper receives exactly one Drop call. Close assumes unique ownership;
// it must not race with any other call into the Vector, and the Vector must
// not be used again afterward.
func (v *Vector[T]) Close() {
	if !v.closed.CompareAndSwap(false, true) {
		return
	}
	for b := range v.buckets {
		v.buckets[b].teardown()
	}
}
