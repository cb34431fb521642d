package blockarena

import (
	"runtime"
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena. Errors are those of NewArena;
// on a memory source failure the returned SafeArena wraps the empty arena.
func NewSafeArena(initialCapacity int, opts ...Option) (*SafeArena, error) {
	a, err := NewArena(initialCapacity, opts...)
	if a == nil {
		return nil, err
	}
	return &SafeArena{a: a}, err
}

// AllocBytes thread-safely allocates n bytes at the default alignment.
func (s *SafeArena) AllocBytes(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// AllocAligned thread-safely allocates n bytes aligned to alignment.
func (s *SafeArena) AllocAligned(n, alignment int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocAligned(n, alignment)
}

// PushBlock thread-safely adds a block of exactly capacity bytes.
func (s *SafeArena) PushBlock(capacity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.PushBlock(capacity)
}

// EnsureCapacity thread-safely ensures some block has room for n bytes.
func (s *SafeArena) EnsureCapacity(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.EnsureCapacity(n)
}

// Reset thread-safely rewinds every block for reuse.
func (s *SafeArena) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Reset()
}

// Destroy thread-safely returns every block to the memory source.
func (s *SafeArena) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Destroy()
}

// Release thread-safely destroys the arena, ignoring the error.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Generic allocation functions for SafeArena

// SafeAlloc thread-safely returns a pointer to a zeroed T stored inside the arena.
func SafeAlloc[T any](s *SafeArena) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing memory.
func SafeAllocUninitialized[T any](s *SafeArena) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a slice of n zeroed elements.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}

// SafePtrAndKeepAlive thread-safely returns t and keeps the arena reachable.
func SafePtrAndKeepAlive[T any](s *SafeArena, t *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.KeepAlive(s.a)
	return t
}
