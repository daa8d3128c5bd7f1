// File: stats.go
// Role: tck-reach-style run statistics, per
// original_source/include/tchecker/algorithms/reach/algorithm.hh and the
// concur19.cc/counter_example-Ocan.cc reference drivers. time.Now() is
// read only at Run's entry and exit, keeping the exploration loop itself
// a pure function of (graph, waiting store) for testability.

package covreach

import "time"

// Stats summarizes one Run: timing, visited/covered counts, and the
// edge-kind breakdown of the resulting graph.
type Stats struct {
	StartTime time.Time
	EndTime   time.Time

	Visited   int
	Reachable bool

	CoveredCount     int
	ActualEdges      int
	SubsumptionEdges int
}

// Elapsed returns EndTime.Sub(StartTime); zero before Run completes.
func (s Stats) Elapsed() time.Duration { return s.EndTime.Sub(s.StartTime) }
