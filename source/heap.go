package source

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
)

// Heap allocates block memory from the Go heap. Release is a no-op; the
// garbage collector reclaims the buffer once the arena drops it.
type Heap struct{}

// NewHeap returns the default Source.
func NewHeap() Heap { return Heap{} }

// Allocate satisfies the Source interface. The Go allocator only promises
// 8-byte alignment for some size classes, so the buffer is over-allocated
// and trimmed to start on an Alignment boundary.
func (Heap) Allocate(size int) (b []byte, err error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrExhausted, "negative size %d", size)
	}
	if size > math.MaxInt-(Alignment-1) {
		return nil, errors.Wrapf(ErrExhausted, "heap: %d bytes", size)
	}
	defer func() {
		// make panics with a runtime error on lengths it cannot represent.
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			b, err = nil, errors.Wrapf(ErrExhausted, "heap: %v", r)
		}
	}()
	buf := make([]byte, size+Alignment-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := int(-addr & (Alignment - 1))
	return buf[off : off+size : off+size], nil
}

// Release satisfies the Source interface.
func (Heap) Release([]byte) {}
