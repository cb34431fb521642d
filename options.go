package blockarena

import "github.com/pavanmanishd/blockarena/source"

// Option configures an Arena at construction time.
type Option func(*Arena)

// WithSource sets the memory source blocks are drawn from. The default is
// source.Heap.
func WithSource(src source.Source) Option {
	return func(a *Arena) {
		a.src = src
	}
}

// WithGrowthFactor sets the multiplier applied to a request when sizing a
// block created to satisfy it. It must be >= 1.
func WithGrowthFactor(f float64) Option {
	return func(a *Arena) {
		a.growthFactor = f
	}
}

// WithDefaultAlignment sets the alignment used by AllocBytes and
// EnsureCapacity. It must be a power of two.
func WithDefaultAlignment(alignment int) Option {
	return func(a *Arena) {
		a.defaultAlign = alignment
	}
}
