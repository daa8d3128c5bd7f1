// File: result.go
// Role: Result/Stats rendering, grounded on matrix.Dense.String()'s
// deterministic, allocation-light builder style (matrix/dense.go).

package output

import (
	"fmt"
	"time"

	"github.com/tchecker-go/tachecker/covreach"
)

// Result is the run-level summary named by §6 "Output": reachability
// verdict, visited count, elapsed time, and the covering graph's
// covered/subsumed edge breakdown.
type Result struct {
	Reachable        bool
	Visited          int
	Elapsed          time.Duration
	CoveredCount     int
	ActualEdges      int
	SubsumptionEdges int
}

// NewResult adapts a covreach.Stats into a Result.
func NewResult(stats covreach.Stats) Result {
	return Result{
		Reachable:        stats.Reachable,
		Visited:          stats.Visited,
		Elapsed:          stats.Elapsed(),
		CoveredCount:     stats.CoveredCount,
		ActualEdges:      stats.ActualEdges,
		SubsumptionEdges: stats.SubsumptionEdges,
	}
}

// String renders Result as a one-line human-readable summary.
func (r Result) String() string {
	return fmt.Sprintf("reachable=%t visited=%d elapsed=%s covered=%d actual_edges=%d subsumption_edges=%d",
		r.Reachable, r.Visited, r.Elapsed, r.CoveredCount, r.ActualEdges, r.SubsumptionEdges)
}
