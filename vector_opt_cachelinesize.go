//go:build !cvec_opt_cachelinesize_32 && !cvec_opt_cachelinesize_64 && !cvec_opt_cachelinesize_128 && !cvec_opt_cachelinesize_256

package cvec

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is used to pad the bucket descriptor array so that adjacent
// buckets never false-share a cache line. It's automatically calculated using
// the `golang.org/x/sys` package.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})
