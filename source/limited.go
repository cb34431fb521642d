package source

import (
	"github.com/pkg/errors"
)

// Limited caps the number of bytes that may be outstanding from the wrapped
// Source at any time.
type Limited struct {
	next  Source
	limit int
	inUse int
}

// NewLimited wraps next with a budget of limit bytes. A nil next uses Heap.
func NewLimited(next Source, limit int) *Limited {
	if next == nil {
		next = Heap{}
	}
	return &Limited{next: next, limit: limit}
}

// Allocate satisfies the Source interface.
func (l *Limited) Allocate(size int) ([]byte, error) {
	if size < 0 || size > l.limit-l.inUse {
		return nil, errors.Wrapf(ErrExhausted, "limit %d bytes, %d in use, %d requested", l.limit, l.inUse, size)
	}
	b, err := l.next.Allocate(size)
	if err != nil {
		return nil, err
	}
	l.inUse += len(b)
	return b, nil
}

// Release satisfies the Source interface.
func (l *Limited) Release(b []byte) {
	l.inUse -= len(b)
	l.next.Release(b)
}

// InUse returns the number of bytes currently handed out.
func (l *Limited) InUse() int { return l.inUse }

// Limit returns the budget.
func (l *Limited) Limit() int { return l.limit }
