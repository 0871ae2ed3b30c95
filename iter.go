package cvec

// ForwardIter walks a Vector's indices in ascending order, skipping any
// index whose push has been reserved but not yet published. It snapshots
// Len() at construction time and visits at most that many indices.
type ForwardIter[T any] struct {
	v         *Vector[T]
	limit     uint64
	idx       uint64
	bucket    int
	bucketCap int
	off       int
	arr       []entry[T]
}

// Iter returns a ForwardIter over v's current contents.
func (v *Vector[T]) Iter() *ForwardIter[T] {
	if v.closed.Load() {
		panic("cvec: Iter on a closed Vector")
	}
	it := &ForwardIter[T]{v: v, limit: v.head.Load()}
	if it.limit > 0 {
		it.loadBucket(0)
	}
	return it
}

func (it *ForwardIter[T]) loadBucket(b int) {
	it.bucket = b
	it.bucketCap = bucketCap(b)
	it.off = 0
	it.arr = it.v.buckets[b].get()
}

// Next returns the next (index, value) pair in ascending order, or
// (0, nil, false) once the snapshot has been exhausted. Unpublished indices
// are skipped rather than ending iteration early.
func (it *ForwardIter[T]) Next() (index uint64, value *T, ok bool) {
	for it.idx < it.limit {
		if it.off == it.bucketCap {
			it.loadBucket(it.bucket + 1)
		}
		i := it.idx
		off := it.off
		it.idx++
		it.off++

		if it.arr == nil {
			continue
		}
		if val, has := it.arr[off].load(); has {
			return i, val, true
		}
	}
	return 0, nil, false
}

// ReverseIter walks a Vector's indices in descending order under the same
// skip-don't-stop rule as ForwardIter.
type ReverseIter[T any] struct {
	v         *Vector[T]
	idx       uint64
	hasMore   bool
	bucket    int
	bucketCap int
	off       int
	arr       []entry[T]
}

// IterReverse returns a ReverseIter over v's current contents, starting
// from the highest reserved index in the snapshot.
func (v *Vector[T]) IterReverse() *ReverseIter[T] {
	if v.closed.Load() {
		panic("cvec: IterReverse on a closed Vector")
	}
	it := &ReverseIter[T]{v: v}
	limit := v.head.Load()
	if limit > 0 {
		it.idx = limit - 1
		it.hasMore = true
		b, off := decompose(it.idx)
		it.loadBucket(b, off)
	}
	return it
}

func (it *ReverseIter[T]) loadBucket(b, off int) {
	it.bucket = b
	it.bucketCap = bucketCap(b)
	it.off = off
	it.arr = it.v.buckets[b].get()
}

// Next returns the next (index, value) pair in descending order, or
// (0, nil, false) once the walk reaches below index 0.
func (it *ReverseIter[T]) Next() (index uint64, value *T, ok bool) {
	for it.hasMore {
		i := it.idx
		off := it.off
		arr := it.arr

		switch {
		case i == 0:
			it.hasMore = false
		case off == 0:
			// Crossing into the previous bucket; its last valid offset is
			// one less than its capacity, so no re-decomposition is needed.
			nb := it.bucket - 1
			it.idx = i - 1
			it.loadBucket(nb, bucketCap(nb)-1)
		default:
			it.idx = i - 1
			it.off = off - 1
		}

		if arr == nil {
			continue
		}
		if val, has := arr[off].load(); has {
			return i, val, true
		}
	}
	return 0, nil, false
}
