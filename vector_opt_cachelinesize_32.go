//go:build cvec_opt_cachelinesize_32

package cvec

// CacheLineSize overrides the auto-detected value for architectures where
// `golang.org/x/sys/cpu` guesses wrong (e.g. some embedded ARM targets).
const CacheLineSize = 32
