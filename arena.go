// Package blockarena implements a region-based memory allocator (arena).
// Typical usage: create one arena per request, allocate many temporary
// objects from it, then Reset() at the end of the request and Destroy()
// when the arena is no longer needed.
package blockarena

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/pavanmanishd/blockarena/source"
)

const (
	// DefaultBlockSize is the initial block size used when NewArena is given
	// a non-positive capacity (64 KiB).
	DefaultBlockSize = 1 << 16

	// DefaultGrowthFactor scales the size of blocks created on demand.
	DefaultGrowthFactor = 1.15

	// MaxAlign is the strictest alignment a fresh block is assumed to have,
	// and the default alignment of AllocBytes.
	MaxAlign = 2 * int(unsafe.Sizeof(uintptr(0)))
)

// Arena is a multi-block bump allocator. Blocks are kept in a list with the
// most recently created block first. Not goroutine-safe; use SafeArena for
// concurrent access.
type Arena struct {
	head          *block
	blockCount    int
	totalCapacity int

	src             source.Source
	growthFactor    float64
	defaultAlign    int
	initialCapacity int
	destroyed       bool
}

// NewArena creates an arena holding one block of initialCapacity bytes.
// If initialCapacity <= 0, DefaultBlockSize is used.
//
// If the memory source cannot supply the first block, NewArena returns an
// empty arena together with an error wrapping ErrExhausted. The empty arena
// reports zero blocks and refuses to allocate. Invalid options return a nil
// arena and an error wrapping ErrInvalidConfig.
func NewArena(initialCapacity int, opts ...Option) (*Arena, error) {
	if initialCapacity <= 0 {
		initialCapacity = DefaultBlockSize
	}
	a := &Arena{
		src:             source.Heap{},
		growthFactor:    DefaultGrowthFactor,
		defaultAlign:    MaxAlign,
		initialCapacity: initialCapacity,
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	if err := a.pushBlock(initialCapacity); err != nil {
		return a, errors.Wrap(err, "create arena")
	}
	return a, nil
}

func (a *Arena) validate() error {
	if a.src == nil {
		return errors.Wrap(ErrInvalidConfig, "nil memory source")
	}
	if math.IsNaN(a.growthFactor) || math.IsInf(a.growthFactor, 0) || a.growthFactor < 1 {
		return errors.Wrapf(ErrInvalidConfig, "growth factor %v must be >= 1", a.growthFactor)
	}
	if !isPowerOfTwo(a.defaultAlign) {
		return errors.Wrapf(ErrInvalidConfig, "default alignment %d is not a power of two", a.defaultAlign)
	}
	return nil
}

// AllocBytes returns n bytes aligned to the arena's default alignment.
// See AllocAligned.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	return a.AllocAligned(n, a.defaultAlign)
}

// AllocAligned returns a slice of n bytes inside one of the arena's blocks
// whose first byte is aligned to alignment. The memory is not zeroed and
// stays valid until the next Reset or Destroy.
//
// Blocks are searched from the most recently created one. If none has room,
// one new block is created and the request is retried against it once.
func (a *Arena) AllocAligned(n, alignment int) ([]byte, error) {
	if err := a.checkRequest(n, alignment); err != nil {
		return nil, err
	}
	if err := a.checkUsable(); err != nil {
		return nil, err
	}

	if b := a.firstFit(n, alignment); b != nil {
		return b, nil
	}

	size, err := a.growthSize(n, alignment)
	if err != nil {
		return nil, err
	}
	if err := a.pushBlock(size); err != nil {
		return nil, errors.Wrapf(err, "grow arena for %d bytes", n)
	}

	// The new block is the head and empty.
	if b, ok := a.head.tryAllocate(n, alignment); ok {
		return b, nil
	}
	return nil, errors.Wrapf(ErrExhausted, "new block of %d bytes cannot hold %d bytes aligned to %d", size, n, alignment)
}

func (a *Arena) firstFit(n, alignment int) []byte {
	for blk := a.head; blk != nil; blk = blk.next {
		if b, ok := blk.tryAllocate(n, alignment); ok {
			return b
		}
	}
	return nil
}

func (a *Arena) fits(n, alignment int) bool {
	for blk := a.head; blk != nil; blk = blk.next {
		if _, ok := blk.probe(n, alignment); ok {
			return true
		}
	}
	return false
}

// growthSize returns the capacity of a block created to satisfy n bytes at
// the given alignment.
func (a *Arena) growthSize(n, alignment int) (int, error) {
	if n > math.MaxInt-alignment {
		return 0, errors.Wrapf(ErrOverflow, "request of %d bytes", n)
	}
	need := alignUp(n, alignment)
	grown := float64(need) * a.growthFactor
	if grown >= math.MaxInt {
		return 0, errors.Wrapf(ErrOverflow, "block of %d bytes scaled by %v", need, a.growthFactor)
	}
	size := int(grown)
	if size < need {
		size = need
	}
	// A fresh block starts on a source.Alignment boundary. Anything stricter
	// needs room for the worst-case padding.
	if alignment > source.Alignment && size < n+alignment-1 {
		size = n + alignment - 1
	}
	return size, nil
}

func (a *Arena) checkRequest(n, alignment int) error {
	switch {
	case n == 0:
		return ErrZeroSize
	case n < 0:
		return errors.Wrapf(ErrInvalidSize, "%d bytes", n)
	case !isPowerOfTwo(alignment):
		return errors.Wrapf(ErrBadAlignment, "alignment %d", alignment)
	}
	return nil
}

func (a *Arena) checkUsable() error {
	if a.destroyed {
		return ErrDestroyed
	}
	if a.head == nil {
		return ErrUnusable
	}
	return nil
}

// PushBlock adds a new empty block of exactly capacity bytes at the head of
// the list. It can be used to reserve space ahead of a burst of allocations.
func (a *Arena) PushBlock(capacity int) error {
	if err := a.checkUsable(); err != nil {
		return err
	}
	if capacity < 0 {
		return errors.Wrapf(ErrInvalidSize, "block capacity %d", capacity)
	}
	return a.pushBlock(capacity)
}

func (a *Arena) pushBlock(capacity int) error {
	data, err := a.src.Allocate(capacity)
	if err != nil {
		return errors.Wrapf(err, "allocate block of %d bytes", capacity)
	}
	a.head = &block{data: data, next: a.head}
	a.blockCount++
	a.totalCapacity += len(data)
	return nil
}

// EnsureCapacity makes sure some block can take n bytes at the default
// alignment. If none can, it grows the arena the way AllocBytes would.
func (a *Arena) EnsureCapacity(n int) error {
	if err := a.checkRequest(n, a.defaultAlign); err != nil {
		return err
	}
	if err := a.checkUsable(); err != nil {
		return err
	}
	if a.fits(n, a.defaultAlign) {
		return nil
	}
	size, err := a.growthSize(n, a.defaultAlign)
	if err != nil {
		return err
	}
	return a.pushBlock(size)
}

// Reset rewinds every block to empty but keeps them for reuse. Slices
// returned before the reset must not be used afterwards.
func (a *Arena) Reset() error {
	if err := a.checkUsable(); err != nil {
		return err
	}
	for blk := a.head; blk != nil; blk = blk.next {
		blk.reset()
	}
	return nil
}

// Destroy returns every block to the memory source, most recent first, and
// leaves the arena empty. A destroyed arena reports zero blocks and refuses
// further use; calling Destroy again returns ErrDestroyed.
func (a *Arena) Destroy() error {
	if a.destroyed {
		return ErrDestroyed
	}
	for blk := a.head; blk != nil; {
		next := blk.next
		a.src.Release(blk.data)
		blk.data, blk.next = nil, nil
		blk = next
	}
	a.head = nil
	a.blockCount = 0
	a.totalCapacity = 0
	a.destroyed = true
	return nil
}

// Release is Destroy without the error, for use with defer.
func (a *Arena) Release() {
	_ = a.Destroy()
}

// Destroyed reports whether Destroy has been called.
func (a *Arena) Destroyed() bool {
	return a.destroyed
}
