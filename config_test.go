package blockarena

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/blockarena/source"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	a, err := NewArenaFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultBlockSize, a.TotalCapacity())
	assert.Equal(t, DefaultGrowthFactor, a.GrowthFactor())
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
initial_capacity: 200
growth_factor: 2
memory_source:
  kind: limited
  limit_bytes: 1000
`))
	require.NoError(t, err)
	assert.Equal(t, Config{
		InitialCapacity:  200,
		GrowthFactor:     2,
		DefaultAlignment: MaxAlign,
		MemorySource:     SourceConfig{Kind: SourceLimited, LimitBytes: 1000},
	}, cfg)

	a, err := NewArenaFromConfig(cfg)
	require.NoError(t, err)
	_, err = a.AllocAligned(400, 1)
	require.NoError(t, err)
	assert.Equal(t, 1000, a.TotalCapacity())

	_, err = a.AllocAligned(500, 1)
	assert.ErrorIs(t, err, ErrExhausted, "limit of the configured source is enforced")
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigUnknownField(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("grow_factor: 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grow_factor")
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{
		InitialCapacity:  -1,
		GrowthFactor:     0.9,
		DefaultAlignment: 12,
		MemorySource:     SourceConfig{Kind: SourceLimited},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	for _, field := range []string{"initial_capacity", "growth_factor", "default_alignment", "limit_bytes"} {
		assert.Contains(t, err.Error(), field)
	}

	cfg = DefaultConfig()
	cfg.MemorySource.Kind = "mmap"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	_, err = NewArenaFromConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSourceConfig(t *testing.T) {
	src, err := SourceConfig{}.Source()
	require.NoError(t, err)
	assert.IsType(t, source.Heap{}, src)

	src, err = SourceConfig{Kind: SourceLimited, LimitBytes: 64}.Source()
	require.NoError(t, err)
	limited, ok := src.(*source.Limited)
	require.True(t, ok)
	assert.Equal(t, 64, limited.Limit())

	_, err = SourceConfig{Kind: "mmap"}.Source()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewArenaFromConfigOptionsOverride(t *testing.T) {
	src := newRecordingSource()
	a, err := NewArenaFromConfig(DefaultConfig(), WithSource(src), WithGrowthFactor(3))
	require.NoError(t, err)
	assert.Equal(t, 1, src.allocs)
	assert.Equal(t, 3.0, a.GrowthFactor())
}
