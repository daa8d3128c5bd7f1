// File: options.go
// Role: Functional options for Run, modeled on builder/config.go's
// BuilderOption/newBuilderConfig "apply defaults, then override" shape.

package tachecker

import (
	"context"
	"log/slog"

	"github.com/tchecker-go/tachecker/covgraph"
	"github.com/tchecker-go/tachecker/covreach"
	"github.com/tchecker-go/tachecker/zonegraph"
)

// RunOption customizes one Run call.
type RunOption func(cfg *runConfig)

type runConfig struct {
	ctx    context.Context
	logger *slog.Logger

	labels        []string
	searchOrder   covreach.SearchOrder
	covering      covgraph.Policy
	blockSize     int
	tableSize     int
	semantics     zonegraph.Semantics
	extrapolation zonegraph.Extrapolation
	mask          zonegraph.Mask
}

// newRunConfig returns a runConfig with the documented defaults, then
// applies each opts in order; later options override earlier ones.
func newRunConfig(opts ...RunOption) *runConfig {
	cfg := &runConfig{
		ctx:           context.Background(),
		logger:        slog.Default(),
		searchOrder:   covreach.Bfs,
		covering:      covgraph.CoveringFull,
		blockSize:     1024,
		tableSize:     1024,
		semantics:     zonegraph.Elapsed,
		extrapolation: zonegraph.ExtraLU,
		mask:          zonegraph.OkOnly,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithLabels sets the comma-conceptual accepting label set by name; an
// empty call leaves the default empty set, which Run treats as "explore
// the whole state space, never report reachable" per covreach.RunOptions.
func WithLabels(labels ...string) RunOption {
	return func(cfg *runConfig) { cfg.labels = labels }
}

// WithSearchOrder selects the waiting store's discipline ("dfs" or
// "bfs" at the caller's parser layer, covreach.Dfs/covreach.Bfs here).
func WithSearchOrder(o covreach.SearchOrder) RunOption {
	return func(cfg *runConfig) { cfg.searchOrder = o }
}

// WithCovering selects the covering graph's insertion policy.
func WithCovering(p covgraph.Policy) RunOption {
	return func(cfg *runConfig) { cfg.covering = p }
}

// WithBlockSize sets the pool allocator's block size (objects per
// block), §6's block_size parameter. Non-positive values are ignored.
func WithBlockSize(n int) RunOption {
	return func(cfg *runConfig) {
		if n > 0 {
			cfg.blockSize = n
		}
	}
}

// WithTableSize sets the covering graph's node-table initial capacity
// hint, §6's table_size parameter. Non-positive values are ignored.
func WithTableSize(n int) RunOption {
	return func(cfg *runConfig) {
		if n > 0 {
			cfg.tableSize = n
		}
	}
}

// WithSemantics selects the zone graph's time-elapse semantics.
func WithSemantics(s zonegraph.Semantics) RunOption {
	return func(cfg *runConfig) { cfg.semantics = s }
}

// WithExtrapolation selects the zone-abstraction operator applied after
// every step.
func WithExtrapolation(e zonegraph.Extrapolation) RunOption {
	return func(cfg *runConfig) { cfg.extrapolation = e }
}

// WithMask overrides which zone-graph step outcomes are expanded during
// exploration; defaults to zonegraph.OkOnly.
func WithMask(m zonegraph.Mask) RunOption {
	return func(cfg *runConfig) { cfg.mask = m }
}

// WithContext allows cancelling a Run in progress.
func WithContext(ctx context.Context) RunOption {
	return func(cfg *runConfig) {
		if ctx != nil {
			cfg.ctx = ctx
		}
	}
}

// WithLogger sets the structured logger Run reports boundary events to.
// Defaults to slog.Default(). The engine itself (C1-C9) never logs;
// only Run's entry and exit do, per the ambient logging discipline.
func WithLogger(logger *slog.Logger) RunOption {
	return func(cfg *runConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
