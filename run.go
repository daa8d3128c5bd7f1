// File: run.go
// Role: The run(model, labels, search_order, covering, block_size,
// table_size) entry point named by §6, wiring tasystem -> zonegraph ->
// covreach -> output into one call. Structured diagnostics are emitted
// via log/slog only here, at the algorithm's boundary; C1-C9 stay free
// of I/O, mirroring the teacher's pure-algorithm-package discipline.

package tachecker

import (
	"fmt"

	"github.com/tchecker-go/tachecker/covgraph"
	"github.com/tchecker-go/tachecker/covreach"
	"github.com/tchecker-go/tachecker/output"
	"github.com/tchecker-go/tachecker/tasystem"
	"github.com/tchecker-go/tachecker/zonegraph"
)

// Run explores sys's zone graph forward, reporting whether a state
// whose accumulated labels are a superset of the WithLabels set is
// reachable. It returns the run's Result summary, the full covering
// graph (for inspection or output.WriteDOT), and an error only for a
// structural failure: unknown label name, unsupported engine
// configuration, or a cancelled context.
func Run(sys *tasystem.System, opts ...RunOption) (output.Result, *covgraph.Graph, error) {
	cfg := newRunConfig(opts...)

	target, err := resolveLabels(sys, cfg.labels)
	if err != nil {
		return output.Result{}, nil, err
	}

	cfg.logger.Info("tachecker: run starting",
		"processes", len(sys.Processes()),
		"clocks", len(sys.Clocks()),
		"labels", cfg.labels,
		"search_order", cfg.searchOrder.String(),
	)

	engine, err := zonegraph.NewEngine(sys, cfg.semantics, cfg.extrapolation)
	if err != nil {
		cfg.logger.Error("tachecker: engine construction failed", "error", err)

		return output.Result{}, nil, fmt.Errorf("tachecker.Run: %w", err)
	}

	graph, stats, err := covreach.Run(engine, covreach.RunOptions{
		Ctx:         cfg.ctx,
		Target:      target,
		Mask:        cfg.mask,
		Policy:      cfg.covering,
		SearchOrder: cfg.searchOrder,
		BlockSize:   cfg.blockSize,
		TableSize:   cfg.tableSize,
	})
	if err != nil {
		cfg.logger.Error("tachecker: run failed", "error", err)

		return output.Result{}, graph, fmt.Errorf("tachecker.Run: %w", err)
	}

	result := output.NewResult(stats)
	cfg.logger.Info("tachecker: run finished",
		"reachable", result.Reachable,
		"visited", result.Visited,
		"elapsed", result.Elapsed,
	)

	return result, graph, nil
}

// resolveLabels maps WithLabels' name list onto sys's declared label
// bitset. An empty names list yields the zero-popcount BitSet that
// covreach.RunOptions documents as "exhaust the state space".
func resolveLabels(sys *tasystem.System, names []string) (tasystem.BitSet, error) {
	bs := tasystem.NewBitSet(sys.NumLabels())
	if len(names) == 0 {
		return bs, nil
	}

	byName := make(map[string]tasystem.LabelID, len(sys.Labels()))
	for _, l := range sys.Labels() {
		byName[l.Name] = l.ID
	}

	for _, name := range names {
		id, ok := byName[name]
		if !ok {
			return tasystem.BitSet{}, fmt.Errorf("tachecker.Run: label %q: %w", name, ErrUnknownLabel)
		}
		bs.Set(int(id))
	}

	return bs, nil
}
