package cvec

import "testing"

func TestForwardIter_QuiescentCoverage(t *testing.T) {
	v := New[int]()
	const n = 20
	for i := 0; i < n; i++ {
		v.Push(i * 2)
	}

	it := v.Iter()
	var count int
	var lastIdx uint64 = ^uint64(0)
	for {
		i, val, ok := it.Next()
		if !ok {
			break
		}
		if count > 0 && i != lastIdx+1 {
			t.Fatalf("iteration not strictly ascending: %d then %d", lastIdx, i)
		}
		if *val != int(i)*2 {
			t.Fatalf("index %d: got %d, want %d", i, *val, int(i)*2)
		}
		lastIdx = i
		count++
	}
	if count != n {
		t.Fatalf("visited %d indices, want %d", count, n)
	}
}

func TestReverseIter_QuiescentCoverage(t *testing.T) {
	v := New[int]()
	const n = 20
	for i := 0; i < n; i++ {
		v.Push(i * 3)
	}

	it := v.IterReverse()
	var count int
	var lastIdx uint64
	for {
		i, val, ok := it.Next()
		if !ok {
			break
		}
		if count > 0 && i != lastIdx-1 {
			t.Fatalf("iteration not strictly descending: %d then %d", lastIdx, i)
		}
		if *val != int(i)*3 {
			t.Fatalf("index %d: got %d, want %d", i, *val, int(i)*3)
		}
		lastIdx = i
		count++
	}
	if count != n {
		t.Fatalf("visited %d indices, want %d", count, n)
	}
}

func TestIter_EmptyVector(t *testing.T) {
	v := New[int]()
	if _, _, ok := v.Iter().Next(); ok {
		t.Fatal("forward iteration over an empty vector should yield nothing")
	}
	if _, _, ok := v.IterReverse().Next(); ok {
		t.Fatal("reverse iteration over an empty vector should yield nothing")
	}
}

func TestIter_BucketBoundarySizes(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7, 8, 9, 16, 17} {
		v := New[int]()
		for i := 0; i < n; i++ {
			v.Push(i)
		}
		var got []int
		it := v.Iter()
		for {
			i, val, ok := it.Next()
			if !ok {
				break
			}
			if int(i) != *val {
				t.Fatalf("n=%d: index %d holds %d", n, i, *val)
			}
			got = append(got, *val)
		}
		if len(got) != n {
			t.Fatalf("n=%d: visited %d indices, want %d", n, len(got), n)
		}
	}
}

// A reserved-but-unpublished index must be skipped, not cause the
// iterator to stop, and must not be yielded until it actually publishes.
func TestForwardIter_SkipsUnpublishedIndex(t *testing.T) {
	v := New[int]()

	// Reserve index 0 without publishing it (simulates a parked writer
	// that has incremented head but not yet called entry.publish).
	parkedIdx := v.head.Add(1) - 1
	if parkedIdx != 0 {
		t.Fatalf("expected to reserve index 0, got %d", parkedIdx)
	}

	// Fully publish index 1.
	publishedIdx := v.Push(99)
	if publishedIdx != 1 {
		t.Fatalf("expected index 1, got %d", publishedIdx)
	}

	it := v.Iter()
	i, val, ok := it.Next()
	if !ok {
		t.Fatal("iterator should yield the published index despite the parked one")
	}
	if i != 1 || *val != 99 {
		t.Fatalf("got (%d, %d), want (1, 99)", i, *val)
	}
	if _, _, ok := it.Next(); ok {
		t.Fatal("iterator should have nothing left after skipping the parked index")
	}

	// Publish the parked index and verify a fresh iterator now sees both.
	b, off := decompose(parkedIdx)
	arr := v.buckets[b].ensureAllocated(bucketCap(b))
	arr[off].publish(7)

	fresh := v.Iter()
	seen := map[uint64]int{}
	for {
		i, val, ok := fresh.Next()
		if !ok {
			break
		}
		seen[i] = *val
	}
	if len(seen) != 2 || seen[0] != 7 || seen[1] != 99 {
		t.Fatalf("expected {0:7, 1:99}, got %v", seen)
	}
}
