// File: loader.go
// Role: Drives tasystem.Builder from a parsed Document, translating
// name references into the builder's typed ids and named-comparator
// spellings into bound.Cmp / tasystem.IntVarCmp constants.

package loader

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tchecker-go/tachecker/bound"
	"github.com/tchecker-go/tachecker/refclock"
	"github.com/tchecker-go/tachecker/tasystem"
)

// Load parses a YAML document from r and builds the System it
// describes.
func Load(r io.Reader) (*tasystem.System, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("loader.Load: decoding YAML: %w", err)
	}

	return Build(&doc)
}

// names resolves declared identifiers to builder-assigned ids.
type names struct {
	processes map[string]tasystem.ProcessID
	events    map[string]tasystem.EventID
	clocks    map[string]tasystem.ClockID
	intVars   map[string]tasystem.IntVarID
	labels    map[string]tasystem.LabelID
}

// Build constructs a System from an already-parsed Document.
func Build(doc *Document) (*tasystem.System, error) {
	b := tasystem.NewBuilder()
	n := names{
		processes: make(map[string]tasystem.ProcessID, len(doc.Processes)),
		events:    make(map[string]tasystem.EventID, len(doc.Events)),
		clocks:    make(map[string]tasystem.ClockID, len(doc.Clocks)),
		intVars:   make(map[string]tasystem.IntVarID, len(doc.IntVars)),
		labels:    make(map[string]tasystem.LabelID),
	}

	for _, name := range doc.Processes {
		id, err := b.AddProcess(name)
		if err != nil {
			return nil, fmt.Errorf("loader: process %q: %w", name, err)
		}
		n.processes[name] = id
	}
	for _, name := range doc.Events {
		id, err := b.AddEvent(name)
		if err != nil {
			return nil, fmt.Errorf("loader: event %q: %w", name, err)
		}
		n.events[name] = id
	}
	for _, c := range doc.Clocks {
		id, err := b.AddClock(c.Name, c.Size)
		if err != nil {
			return nil, fmt.Errorf("loader: clock %q: %w", c.Name, err)
		}
		n.clocks[c.Name] = id
	}
	for _, v := range doc.IntVars {
		id, err := b.AddIntVar(v.Name, v.Min, v.Max, v.Init)
		if err != nil {
			return nil, fmt.Errorf("loader: intvar %q: %w", v.Name, err)
		}
		n.intVars[v.Name] = id
	}

	// Labels are declared implicitly: collect every distinct name across
	// every location's Labels list, in first-seen order.
	for _, loc := range doc.Locations {
		for _, lbl := range loc.Labels {
			if _, ok := n.labels[lbl]; ok {
				continue
			}
			id, err := b.AddLabel(lbl)
			if err != nil {
				return nil, fmt.Errorf("loader: label %q: %w", lbl, err)
			}
			n.labels[lbl] = id
		}
	}

	locByName := make(map[string]tasystem.LocationID, len(doc.Locations))
	for _, loc := range doc.Locations {
		pid, ok := n.processes[loc.Process]
		if !ok {
			return nil, fmt.Errorf("loader: location %q: process %q: %w", loc.Name, loc.Process, ErrUnknownName)
		}
		labelIDs := make([]tasystem.LabelID, len(loc.Labels))
		for i, lbl := range loc.Labels {
			labelIDs[i] = n.labels[lbl]
		}
		id, err := b.AddLocation(pid, loc.Name, loc.Initial, loc.Committed, labelIDs...)
		if err != nil {
			return nil, fmt.Errorf("loader: location %q: %w", loc.Name, err)
		}
		locByName[loc.Name] = id

		if len(loc.Invariant) > 0 {
			inv, err := convertGuards(loc.Invariant, n)
			if err != nil {
				return nil, fmt.Errorf("loader: location %q invariant: %w", loc.Name, err)
			}
			if err := b.SetLocationInvariant(id, inv); err != nil {
				return nil, fmt.Errorf("loader: location %q invariant: %w", loc.Name, err)
			}
		}
	}

	for _, e := range doc.Edges {
		pid, ok := n.processes[e.Process]
		if !ok {
			return nil, fmt.Errorf("loader: edge %s->%s: process %q: %w", e.Src, e.Tgt, e.Process, ErrUnknownName)
		}
		src, ok := locByName[e.Src]
		if !ok {
			return nil, fmt.Errorf("loader: edge: src %q: %w", e.Src, ErrUnknownName)
		}
		tgt, ok := locByName[e.Tgt]
		if !ok {
			return nil, fmt.Errorf("loader: edge: tgt %q: %w", e.Tgt, ErrUnknownName)
		}
		ev, ok := n.events[e.Event]
		if !ok {
			return nil, fmt.Errorf("loader: edge %s->%s: event %q: %w", e.Src, e.Tgt, e.Event, ErrUnknownName)
		}

		id, err := b.AddEdge(pid, src, tgt, ev)
		if err != nil {
			return nil, fmt.Errorf("loader: edge %s->%s: %w", e.Src, e.Tgt, err)
		}

		guard, err := convertGuards(e.Guard, n)
		if err != nil {
			return nil, fmt.Errorf("loader: edge %s->%s guard: %w", e.Src, e.Tgt, err)
		}
		intGuard, err := convertIntGuards(e.IntGuard, n)
		if err != nil {
			return nil, fmt.Errorf("loader: edge %s->%s int_guard: %w", e.Src, e.Tgt, err)
		}
		resets, err := convertResets(e.Resets, n)
		if err != nil {
			return nil, fmt.Errorf("loader: edge %s->%s resets: %w", e.Src, e.Tgt, err)
		}
		assigns, err := convertAssignments(e.Assignments, n)
		if err != nil {
			return nil, fmt.Errorf("loader: edge %s->%s assignments: %w", e.Src, e.Tgt, err)
		}
		if err := b.SetEdgeGuard(id, guard, intGuard, resets, assigns); err != nil {
			return nil, fmt.Errorf("loader: edge %s->%s: %w", e.Src, e.Tgt, err)
		}
	}

	for _, sv := range doc.Syncs {
		participants := make([]tasystem.SyncParticipant, len(sv.Participants))
		for i, p := range sv.Participants {
			pid, ok := n.processes[p.Process]
			if !ok {
				return nil, fmt.Errorf("loader: sync: process %q: %w", p.Process, ErrUnknownName)
			}
			ev, ok := n.events[p.Event]
			if !ok {
				return nil, fmt.Errorf("loader: sync: event %q: %w", p.Event, ErrUnknownName)
			}
			strength := tasystem.Strong
			if p.Strength == "weak" {
				strength = tasystem.Weak
			}
			participants[i] = tasystem.SyncParticipant{Process: pid, Event: ev, Strength: strength}
		}
		if _, err := b.AddSyncVector(participants...); err != nil {
			return nil, fmt.Errorf("loader: sync vector: %w", err)
		}
	}

	return b.Build()
}

// clockIndex resolves "" to the implicit reference clock 0.
func clockIndex(name string, n names) (int, error) {
	if name == "" {
		return 0, nil
	}
	id, ok := n.clocks[name]
	if !ok {
		return 0, fmt.Errorf("clock %q: %w", name, ErrUnknownName)
	}

	return int(id), nil
}

// convertGuards turns each ClockGuard into one or two refclock.Guard
// entries (== expands to <= and >=).
func convertGuards(gs []ClockGuard, n names) ([]refclock.Guard, error) {
	var out []refclock.Guard
	for _, g := range gs {
		x, err := clockIndex(g.Clock, n)
		if err != nil {
			return nil, err
		}
		y, err := clockIndex(g.Ref, n)
		if err != nil {
			return nil, err
		}
		switch g.Cmp {
		case "<=":
			out = append(out, refclock.Guard{X: x, Y: y, Cmp: bound.LE, V: g.Value})
		case "<":
			out = append(out, refclock.Guard{X: x, Y: y, Cmp: bound.LT, V: g.Value})
		case ">=":
			out = append(out, refclock.Guard{X: y, Y: x, Cmp: bound.LE, V: -g.Value})
		case ">":
			out = append(out, refclock.Guard{X: y, Y: x, Cmp: bound.LT, V: -g.Value})
		case "==":
			out = append(out,
				refclock.Guard{X: x, Y: y, Cmp: bound.LE, V: g.Value},
				refclock.Guard{X: y, Y: x, Cmp: bound.LE, V: -g.Value})
		default:
			return nil, fmt.Errorf("clock guard %q: %w", g.Cmp, ErrUnknownComparator)
		}
	}

	return out, nil
}

func convertResets(rs []ClockReset, n names) ([]refclock.Reset, error) {
	out := make([]refclock.Reset, len(rs))
	for i, r := range rs {
		x, err := clockIndex(r.Clock, n)
		if err != nil {
			return nil, err
		}
		out[i] = refclock.Reset{X: x, Y: 0, V: 0}
	}

	return out, nil
}

func convertIntGuards(gs []IntGuard, n names) ([]tasystem.IntVarGuard, error) {
	out := make([]tasystem.IntVarGuard, len(gs))
	for i, g := range gs {
		v, ok := n.intVars[g.Var]
		if !ok {
			return nil, fmt.Errorf("intvar guard: %q: %w", g.Var, ErrUnknownName)
		}
		cmp, err := intCmp(g.Cmp)
		if err != nil {
			return nil, err
		}
		out[i] = tasystem.IntVarGuard{Var: v, Cmp: cmp, V: g.Value}
	}

	return out, nil
}

func intCmp(s string) (tasystem.IntVarCmp, error) {
	switch s {
	case "==":
		return tasystem.IntEQ, nil
	case "!=":
		return tasystem.IntNE, nil
	case "<":
		return tasystem.IntLT, nil
	case "<=":
		return tasystem.IntLE, nil
	case ">":
		return tasystem.IntGT, nil
	case ">=":
		return tasystem.IntGE, nil
	default:
		return 0, fmt.Errorf("intvar guard %q: %w", s, ErrUnknownComparator)
	}
}

func convertAssignments(as []IntAssign, n names) ([]tasystem.IntVarAssignment, error) {
	out := make([]tasystem.IntVarAssignment, len(as))
	for i, a := range as {
		v, ok := n.intVars[a.Var]
		if !ok {
			return nil, fmt.Errorf("assignment: %q: %w", a.Var, ErrUnknownName)
		}
		switch {
		case a.Delta != nil:
			out[i] = tasystem.IntVarAssignment{Var: v, Delta: *a.Delta}
		case a.Value != nil:
			out[i] = tasystem.IntVarAssignment{Var: v, Value: *a.Value}
		default:
			return nil, fmt.Errorf("assignment %q: %w", a.Var, ErrAmbiguousAssignment)
		}
	}

	return out, nil
}
