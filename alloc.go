package blockarena

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
)

// The typed helpers place values in arena memory, which the garbage
// collector does not scan. T must not contain Go pointers (pointers, slices,
// strings, maps, channels, interfaces or funcs).

// Alloc returns a pointer to a zeroed T stored inside the arena, aligned for
// T. The pointer is valid until the next Reset or Destroy.
func Alloc[T any](a *Arena) (*T, error) {
	b, err := allocFor[T](a, 1)
	if err != nil {
		return nil, err
	}
	clear(b)
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// AllocUninitialized returns a *T located in the arena without zeroing memory.
// This is faster than Alloc but the memory contents are undefined.
func AllocUninitialized[T any](a *Arena) (*T, error) {
	b, err := allocFor[T](a, 1)
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	b, err := allocFor[T](a, n)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// AllocSliceZeroed allocates a slice of n zeroed elements of type T.
func AllocSliceZeroed[T any](a *Arena, n int) ([]T, error) {
	b, err := allocFor[T](a, n)
	if err != nil {
		return nil, err
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// PtrAndKeepAlive returns t and keeps the arena reachable until this call.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}

func allocFor[T any](a *Arena, n int) ([]byte, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return nil, ErrZeroSize
	}
	if n > math.MaxInt/size {
		return nil, errors.Wrapf(ErrOverflow, "%d elements of %d bytes", n, size)
	}
	return a.AllocAligned(size*n, int(unsafe.Alignof(zero)))
}
