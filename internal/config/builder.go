package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMaxDepth sets the deepest iterative deepening iteration.
func (b *ConfigBuilder) WithMaxDepth(depth int) *ConfigBuilder {
	b.cfg.Search.MaxDepth = depth
	return b
}

// WithMoveTime sets the per-search deadline.
func (b *ConfigBuilder) WithMoveTime(d time.Duration) *ConfigBuilder {
	b.cfg.Search.MoveTime = d
	return b
}

// WithNodeLimit sets the per-search node budget.
func (b *ConfigBuilder) WithNodeLimit(nodes uint64) *ConfigBuilder {
	b.cfg.Search.NodeLimit = nodes
	return b
}

// WithSeed sets the tie-breaking seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithMaxTurns sets the self-play ply limit.
func (b *ConfigBuilder) WithMaxTurns(turns int) *ConfigBuilder {
	b.cfg.Game.MaxTurns = turns
	return b
}

// WithWorkers sets the number of concurrent workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithBoard enables board diagrams.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithSuppressDuplicates enables duplicate suppression in batch analysis.
func (b *ConfigBuilder) WithSuppressDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.Batch.SuppressDuplicates = enabled
	return b
}
