//go:build !race

package cvec

// raceEnabled reports whether this build has the race detector enabled. It
// is unexported, so cmd/cvecctl does not read or log it.
const raceEnabled = false
