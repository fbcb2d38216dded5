package gli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default allocator configuration.
const (
	// DefaultPoolBucketSize is the number of free buffers kept per length.
	DefaultPoolBucketSize = 8
)

// Config describes the allocator built by NewAllocator.
//
// It is usually read from a TOML document:
//
//	[memory]
//	budget_mb = 512
//	pool_bucket_size = 4
//	zero_init = true
type Config struct {
	Memory MemoryConfig `toml:"memory"`
}

// MemoryConfig holds the memory section of a Config.
type MemoryConfig struct {
	// BudgetMB caps the bytes held by live storages. Zero means no budget.
	BudgetMB int `toml:"budget_mb"`

	// PoolBucketSize is the number of released buffers kept per length for
	// reuse. Zero disables pooling; negative values use the default.
	PoolBucketSize int `toml:"pool_bucket_size"`

	// ZeroInit controls whether new storages are zero-filled. Storages
	// created with WithoutZeroInit skip it regardless.
	ZeroInit *bool `toml:"zero_init"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	zero := true
	return Config{Memory: MemoryConfig{
		PoolBucketSize: DefaultPoolBucketSize,
		ZeroInit:       &zero,
	}}
}

// DecodeConfig reads a TOML configuration from r. Missing keys keep their
// DefaultConfig values; unknown keys are an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("gli: decode config: %w", err)
	}
	if cfg.Memory.BudgetMB < 0 {
		return Config{}, fmt.Errorf("gli: decode config: negative budget_mb %d", cfg.Memory.BudgetMB)
	}
	return cfg, nil
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("gli: open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeConfig(f)
}

// NewAllocator builds the allocator described by cfg: an optional pool
// wrapped by an optional budget.
func NewAllocator(cfg Config) Allocator {
	var a Allocator = HeapAllocator{}

	size := cfg.Memory.PoolBucketSize
	if size < 0 {
		size = DefaultPoolBucketSize
	}
	if size > 0 {
		a = NewPoolAllocator(size)
	}

	if cfg.Memory.BudgetMB > 0 {
		//nolint:gosec // G115: BudgetMB validated non-negative
		a = NewBudgetAllocator(a, uint64(cfg.Memory.BudgetMB)*1024*1024)
	}

	if cfg.Memory.ZeroInit != nil && !*cfg.Memory.ZeroInit {
		a = noZeroAllocator{a}
	}
	return a
}

// noZeroAllocator ignores zero-fill requests.
type noZeroAllocator struct{ Allocator }

func (a noZeroAllocator) Alloc(n int, _ bool) ([]byte, error) {
	return a.Allocator.Alloc(n, false)
}
