package blockarena

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// BlockCount returns the number of blocks owned by the arena.
func (a *Arena) BlockCount() int {
	return a.blockCount
}

// TotalCapacity returns the combined capacity (in bytes) of all blocks.
func (a *Arena) TotalCapacity() int {
	return a.totalCapacity
}

// SizeInUse returns the total number of bytes currently claimed in the arena.
// This includes padding inserted for alignment.
func (a *Arena) SizeInUse() int {
	sum := 0
	for blk := a.head; blk != nil; blk = blk.next {
		sum += blk.offset
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	if a.totalCapacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(a.totalCapacity)
}

// InitialCapacity returns the capacity requested for the first block.
func (a *Arena) InitialCapacity() int {
	return a.initialCapacity
}

// GrowthFactor returns the multiplier used when sizing new blocks.
func (a *Arena) GrowthFactor() float64 {
	return a.growthFactor
}

// BlockInfo describes one block.
type BlockInfo struct {
	Capacity int
	Offset   int
}

// Blocks returns a snapshot of every block, most recently created first.
func (a *Arena) Blocks() []BlockInfo {
	infos := make([]BlockInfo, 0, a.blockCount)
	for blk := a.head; blk != nil; blk = blk.next {
		infos = append(infos, BlockInfo{Capacity: blk.capacity(), Offset: blk.offset})
	}
	return infos
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:       a.SizeInUse(),
		TotalCapacity:   a.TotalCapacity(),
		BlockCount:      a.BlockCount(),
		InitialCapacity: a.InitialCapacity(),
		GrowthFactor:    a.GrowthFactor(),
		Utilization:     a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse       int     // Bytes currently claimed, padding included
	TotalCapacity   int     // Combined block capacity in bytes
	BlockCount      int     // Number of blocks
	InitialCapacity int     // Capacity requested for the first block
	GrowthFactor    float64 // Multiplier for blocks created on demand
	Utilization     float64 // Ratio of used to total capacity (0.0-1.0)
}

func (m ArenaMetrics) String() string {
	return fmt.Sprintf("{blocks: %d, capacity: %s, in use: %s, utilization: %.2f%%}",
		m.BlockCount,
		humanize.IBytes(uint64(m.TotalCapacity)),
		humanize.IBytes(uint64(m.SizeInUse)),
		m.Utilization*100)
}

// Thread-safe metrics for SafeArena

// BlockCount thread-safely returns the number of blocks.
func (s *SafeArena) BlockCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.BlockCount()
}

// TotalCapacity thread-safely returns the combined capacity of all blocks.
func (s *SafeArena) TotalCapacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TotalCapacity()
}

// SizeInUse thread-safely returns the total number of bytes currently claimed.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// Utilization thread-safely returns the ratio of bytes in use to total capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Blocks thread-safely returns a snapshot of every block.
func (s *SafeArena) Blocks() []BlockInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Blocks()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
