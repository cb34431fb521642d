package source

import (
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// Logged logs every request made to the wrapped Source.
type Logged struct {
	next   Source
	logger logrus.FieldLogger
}

// NewLogged wraps next so that allocations, releases and failures are
// logged to logger.
func NewLogged(next Source, logger logrus.FieldLogger) *Logged {
	if next == nil {
		next = Heap{}
	}
	return &Logged{next: next, logger: logger}
}

// Allocate satisfies the Source interface.
func (l *Logged) Allocate(size int) ([]byte, error) {
	b, err := l.next.Allocate(size)
	if err != nil {
		l.logger.WithField("action", "source_allocate").
			WithField("size", size).
			WithError(err).
			Warn("block allocation failed")
		return nil, err
	}
	l.logger.WithField("action", "source_allocate").
		WithField("size", size).
		Debugf("allocated block of %s", humanize.IBytes(uint64(size)))
	return b, nil
}

// Release satisfies the Source interface.
func (l *Logged) Release(b []byte) {
	l.logger.WithField("action", "source_release").
		WithField("size", len(b)).
		Debugf("released block of %s", humanize.IBytes(uint64(len(b))))
	l.next.Release(b)
}
