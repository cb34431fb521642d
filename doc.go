// Package blockarena implements a region-based memory allocator (arena) for Go.
//
// # Overview
//
// An arena serves allocations by bumping a cursor inside large blocks it
// obtained up front, and releases all of them at once instead of one by
// one. This is particularly useful for:
//
//   - Request-scoped allocations in servers
//   - Per-frame or per-parse-pass scratch data
//   - Batches of short-lived objects discarded together
//
// # Basic Usage
//
//	a, err := blockarena.NewArena(0) // Use default block size
//	if err != nil {
//		return err
//	}
//	defer a.Release()
//
//	// Allocate raw bytes
//	buf, err := a.AllocBytes(1024)
//
//	// Allocate with an explicit alignment
//	page, err := a.AllocAligned(4096, 4096)
//
//	// Allocate typed values
//	ptr, err := blockarena.Alloc[MyStruct](a)
//	slice, err := blockarena.AllocSlice[int64](a, 100)
//
//	// Rewind every block for reuse
//	err = a.Reset()
//
// # Memory Layout
//
// Blocks are kept in a list, most recently created first. A request is
// placed in the first block, in list order, with enough room once alignment
// padding is accounted for. When no block has room the arena asks its memory
// source for one new block sized to the request times the growth factor
// (1.15 by default) and retries once.
//
// # Memory Sources
//
// Blocks come from a source.Source. The default is the Go heap; the source
// package also provides a byte budget (Limited), logging (Logged) and
// Prometheus instrumentation (Instrumented) wrappers. Use WithSource to plug
// one in, or describe it in a Config loaded with LoadConfig. A custom
// Source must return buffers starting on a source.Alignment boundary.
//
// # Thread Safety
//
// Arena is not thread-safe. For concurrent access, use SafeArena:
//
//	s, err := blockarena.NewSafeArena(0)
//	buf, err := s.AllocBytes(1024)
//	ptr, err := blockarena.SafeAlloc[MyStruct](s)
//
// # Errors
//
// Every failure is returned to the caller. A zero-byte request returns
// ErrZeroSize and allocates nothing. Source exhaustion returns an error
// wrapping ErrExhausted and leaves the arena usable. Invalid alignments,
// negative sizes, size overflow and use after Destroy have their own
// sentinel errors; test for them with errors.Is.
//
// # Important Notes
//
//   - Returned memory is only valid until the next Reset or Destroy
//   - No individual deallocation - use Reset() or Destroy() for bulk cleanup
//   - Reset never gives memory back to the source; only Destroy does
//   - Arena memory is not scanned by the garbage collector, so values
//     placed in it must not hold Go pointers
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Println(m) // {blocks: 2, capacity: 1.2 KiB, in use: 212 B, utilization: 17.25%}
//
// The promarena package exports the same snapshot as Prometheus metrics.
package blockarena
