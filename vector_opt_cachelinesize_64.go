//go:build cvec_opt_cachelinesize_64

package cvec

// CacheLineSize overrides the auto-detected value with the common x86-64/ARM64
// line size.
const CacheLineSize = 64
