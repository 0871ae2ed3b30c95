//go:build cvec_opt_cachelinesize_256

package cvec

// CacheLineSize overrides the auto-detected value for architectures with
// unusually large cache lines (e.g. some POWER/zArch variants).
const CacheLineSize = 256
