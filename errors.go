package blockarena

import (
	"github.com/pkg/errors"

	"github.com/pavanmanishd/blockarena/source"
)

var (
	// ErrZeroSize is returned for zero-byte requests. Nothing is allocated
	// and the arena is left untouched.
	ErrZeroSize = errors.New("arena: nothing to allocate")

	// ErrInvalidSize is returned for negative sizes.
	ErrInvalidSize = errors.New("arena: negative size")

	// ErrBadAlignment is returned when an alignment is not a positive power
	// of two.
	ErrBadAlignment = errors.New("arena: alignment must be a positive power of two")

	// ErrOverflow is returned when a request is too large to be sized
	// without overflowing int.
	ErrOverflow = errors.New("arena: size overflow")

	// ErrExhausted is returned when the memory source cannot supply a block.
	// It is the same value as source.ErrExhausted.
	ErrExhausted = source.ErrExhausted

	// ErrUnusable is returned by an arena whose construction failed.
	ErrUnusable = errors.New("arena: arena has no blocks")

	// ErrDestroyed is returned by an arena after Destroy.
	ErrDestroyed = errors.New("arena: use after Destroy()")

	// ErrInvalidConfig is returned for invalid options or configuration.
	ErrInvalidConfig = errors.New("arena: invalid configuration")
)
