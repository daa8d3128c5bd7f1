// File: dot.go
// Role: Deterministic DOT graph dump, grounded on matrix.Dense.String()
// and core/view.go's read-only, non-mutating adapter style: WriteDOT
// only reads g and sys, building plain strings with fmt/strings rather
// than a templating library, exactly as the teacher never reaches for
// text/template for simple deterministic output.

package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/tchecker-go/tachecker/covgraph"
	"github.com/tchecker-go/tachecker/syncprod"
	"github.com/tchecker-go/tachecker/tasystem"
	"github.com/tchecker-go/tachecker/zonegraph"
)

// WriteDOT renders g as a DOT digraph: nodes in lexical order of
// (vloc, intvars, zone, initial/final flags), edges in lexical order of
// vedge, subsumption edges styled dashed and annotated {subsumption},
// per §6 "Output".
func WriteDOT(w io.Writer, sys *tasystem.System, g *covgraph.Graph, target tasystem.BitSet) error {
	nodes := g.Nodes()
	sort.Slice(nodes, func(i, j int) bool {
		return nodeKey(sys, nodes[i], target) < nodeKey(sys, nodes[j], target)
	})

	if _, err := fmt.Fprintln(w, "digraph tachecker {"); err != nil {
		return err
	}

	for _, n := range nodes {
		if _, err := fmt.Fprintf(w, "  %s [label=%s];\n", nodeID(n.ID), strconv.Quote(nodeLabel(sys, n, target))); err != nil {
			return err
		}
	}

	edges := append([]covgraph.Edge(nil), g.Edges()...)
	sort.SliceStable(edges, func(i, j int) bool {
		return edgeKey(sys, edges[i]) < edgeKey(sys, edges[j])
	})

	for _, e := range edges {
		attrs := fmt.Sprintf("label=%s", strconv.Quote(vedgeLabel(sys, e)))
		if e.IsSubsumption() {
			attrs += `,style=dashed`
		}
		if _, err := fmt.Fprintf(w, "  %s -> %s [%s];\n", nodeID(e.From), nodeID(e.To), attrs); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")

	return err
}

func nodeID(id covgraph.NodeID) string { return "n" + strconv.Itoa(int(id)) }

// nodeKey is the lexical sort key for a node: vloc, then intvars, then
// zone, then initial/final flags, each rendered deterministically.
func nodeKey(sys *tasystem.System, n *covgraph.Node, target tasystem.BitSet) string {
	var b strings.Builder
	b.WriteString(vlocString(sys, n.State.Vloc))
	b.WriteByte('|')
	b.WriteString(intVarsString(n.State.IntVars))
	b.WriteByte('|')
	b.WriteString(n.State.Zone.String())
	b.WriteByte('|')
	b.WriteString(flagsString(sys, n, target))

	return b.String()
}

func nodeLabel(sys *tasystem.System, n *covgraph.Node, target tasystem.BitSet) string {
	return fmt.Sprintf("%s\\n%s\\n%s", vlocString(sys, n.State.Vloc), intVarsString(n.State.IntVars), flagsString(sys, n, target))
}

func vlocString(sys *tasystem.System, vloc syncprod.Vloc) string {
	names := make([]string, len(vloc))
	for pid, loc := range vloc {
		names[pid] = sys.Processes()[pid].Name + "." + sys.Location(loc).Name
	}

	return strings.Join(names, ",")
}

func intVarsString(vars zonegraph.IntVarState) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

func flagsString(sys *tasystem.System, n *covgraph.Node, target tasystem.BitSet) string {
	var flags []string
	if zonegraph.IsInitial(sys, n.State) {
		flags = append(flags, "initial")
	}
	if target.PopCount() > 0 && zonegraph.IsFinal(sys, n.State, target) {
		flags = append(flags, "final")
	}
	if n.Covered {
		flags = append(flags, "covered")
	}

	return strings.Join(flags, ",")
}

// vedgeLabel renders the sequence of fired edges' event names, or the
// {subsumption} annotation §6 names for a covering edge.
func vedgeLabel(sys *tasystem.System, e covgraph.Edge) string {
	if e.IsSubsumption() {
		return "{subsumption}"
	}
	names := make([]string, 0, len(e.Transition.Vedge))
	for _, eid := range e.Transition.Vedge {
		if eid == syncprod.NoEdge {
			continue
		}
		names = append(names, sys.Events()[sys.Edge(eid).Event].Name)
	}

	return strings.Join(names, ",")
}

func edgeKey(sys *tasystem.System, e covgraph.Edge) string {
	return vedgeLabel(sys, e)
}
