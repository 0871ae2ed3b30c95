package cvec

import "sync/atomic"

// entry is one storage cell: a value plus a single publication flag. It is
// either empty (flag clear, storage zero) or active (flag set, storage holds
// exactly one fully constructed value). The empty-to-active transition
// happens at most once per entry.
type entry[T any] struct {
	active atomic.Bool
	value  T
}

// publish writes value into the cell and then release-stores the active
// flag. Every memory write performed by the caller before publish, including
// value itself, becomes visible to any goroutine that later observes the
// flag set via load.
func (e *entry[T]) publish(value T) {
	e.value = value
	e.active.Store(true)
}

// load acquire-loads the active flag and, if set, returns a pointer to the
// value alongside true. The pointer is stable for the lifetime of the
// enclosing bucket's entry array.
func (e *entry[T]) load() (*T, bool) {
	if e.active.Load() {
		return &e.value, true
	}
	return nil, false
}

// dropIfActive is used only during Vector.Close, under the assumption of
// single-owner access: it calls Drop on the value exactly once if the slot
// is active and the value implements Dropper.
func (e *entry[T]) dropIfActive() {
	if !e.active.Load() {
		return
	}
	if d, ok := any(e.value).(Dropper); ok {
		d.Drop()
	}
	var zero T
	e.value = zero
	e.active.Store(false)
}
