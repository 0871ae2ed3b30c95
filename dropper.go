package cvec

// Dropper is implemented by values that need deterministic teardown when a
// Vector holding them is closed. Close calls Drop exactly once for every
// entry that was successfully published, in no particular order.
//
// Values that don't implement Dropper are simply left for the garbage
// collector once the Vector itself becomes unreachable.
type Dropper interface {
	Drop()
}
