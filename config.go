package blockarena

import (
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/blockarena/source"
)

// Memory source kinds accepted in SourceConfig.Kind.
const (
	SourceHeap    = "heap"
	SourceLimited = "limited"
)

// Config is the file form of an arena's construction parameters.
type Config struct {
	InitialCapacity  int          `yaml:"initial_capacity"`
	GrowthFactor     float64      `yaml:"growth_factor"`
	DefaultAlignment int          `yaml:"default_alignment"`
	MemorySource     SourceConfig `yaml:"memory_source"`
}

// SourceConfig selects the memory source.
type SourceConfig struct {
	Kind       string `yaml:"kind"`
	LimitBytes int    `yaml:"limit_bytes"`
}

// DefaultConfig returns the configuration NewArena uses with no options.
func DefaultConfig() Config {
	return Config{
		InitialCapacity:  DefaultBlockSize,
		GrowthFactor:     DefaultGrowthFactor,
		DefaultAlignment: MaxAlign,
		MemorySource:     SourceConfig{Kind: SourceHeap},
	}
}

// LoadConfig decodes a YAML document on top of DefaultConfig. Unknown fields
// are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode arena config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.InitialCapacity <= 0 {
		result = multierror.Append(result, fmt.Errorf("initial_capacity must be positive, got %d", c.InitialCapacity))
	}
	if math.IsNaN(c.GrowthFactor) || math.IsInf(c.GrowthFactor, 0) || c.GrowthFactor < 1 {
		result = multierror.Append(result, fmt.Errorf("growth_factor must be >= 1, got %v", c.GrowthFactor))
	}
	if !isPowerOfTwo(c.DefaultAlignment) {
		result = multierror.Append(result, fmt.Errorf("default_alignment must be a power of two, got %d", c.DefaultAlignment))
	}
	switch c.MemorySource.Kind {
	case SourceHeap:
	case SourceLimited:
		if c.MemorySource.LimitBytes <= 0 {
			result = multierror.Append(result, fmt.Errorf("memory_source.limit_bytes must be positive for %q, got %d", SourceLimited, c.MemorySource.LimitBytes))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("unknown memory_source.kind %q", c.MemorySource.Kind))
	}
	if err := result.ErrorOrNil(); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// Source builds the memory source described by the configuration.
func (c SourceConfig) Source() (source.Source, error) {
	switch c.Kind {
	case SourceHeap, "":
		return source.NewHeap(), nil
	case SourceLimited:
		return source.NewLimited(source.NewHeap(), c.LimitBytes), nil
	}
	return nil, errors.Wrapf(ErrInvalidConfig, "unknown memory source %q", c.Kind)
}

// NewArenaFromConfig validates cfg and creates an arena from it. opts are
// applied after the configuration, so WithSource can wrap or replace the
// configured source.
func NewArenaFromConfig(cfg Config, opts ...Option) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := cfg.MemorySource.Source()
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithSource(src),
		WithGrowthFactor(cfg.GrowthFactor),
		WithDefaultAlignment(cfg.DefaultAlignment),
	}
	return NewArena(cfg.InitialCapacity, append(base, opts...)...)
}
