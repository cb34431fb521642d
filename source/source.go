// Package source defines where an arena gets its block memory from.
//
// A Source hands out raw byte buffers and takes them back. The arena never
// reasons about how a Source works, only that Allocate can fail. The default
// is Heap; Limited, Logged and Instrumented wrap another Source.
package source

import "github.com/pkg/errors"

// ErrExhausted is returned when a Source cannot supply a buffer.
var ErrExhausted = errors.New("source: memory exhausted")

// Alignment is the boundary every buffer handed out by a Source starts on.
const Alignment = 16

// Source is the allocate/release capability pair an arena draws blocks from.
type Source interface {
	// Allocate returns a buffer with len(b) == size or an error. The first
	// byte of a non-empty buffer must sit on an Alignment boundary.
	Allocate(size int) ([]byte, error)

	// Release takes back a buffer previously returned by Allocate on the
	// same Source. Each buffer is released at most once.
	Release(b []byte)
}
