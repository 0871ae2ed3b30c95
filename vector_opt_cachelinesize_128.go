//go:build cvec_opt_cachelinesize_128

package cvec

// CacheLineSize overrides the auto-detected value with Apple Silicon's
// 128-byte adjacent-line prefetch granularity.
const CacheLineSize = 128
