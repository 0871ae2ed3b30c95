//go:build race

package cvec

// raceEnabled reports whether this build has the race detector enabled. It
// is unexported, so cmd/cvecctl does not read or log it. The vector's own correctness-critical ordering (the active
// flag and the bucket entry-array pointer) is always routed through
// sync/atomic regardless of this constant.
const raceEnabled = true
