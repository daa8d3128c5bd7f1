package covgraph_test

import (
	"fmt"

	"github.com/tchecker-go/tachecker/bound"
	"github.com/tchecker-go/tachecker/covgraph"
	"github.com/tchecker-go/tachecker/dbm"
	"github.com/tchecker-go/tachecker/syncprod"
	"github.com/tchecker-go/tachecker/zonegraph"
)

// Example builds a two-node covering graph where the second node's zone
// is covered by the first, and reports the resulting statistics.
func Example() {
	g := covgraph.NewGraph(covgraph.CoveringFull, covgraph.PlainZoneLE())

	wide, err := dbm.UniversalPositive(2)
	if err != nil {
		panic(err)
	}
	root := zonegraph.State{Vloc: syncprod.Vloc{0}, Zone: wide}

	_, rootNode, _, err := g.AddNode(root)
	if err != nil {
		panic(err)
	}

	narrow, err := dbm.UniversalPositive(2)
	if err != nil {
		panic(err)
	}
	if _, err := dbm.Constrain(narrow, 1, 0, bound.LE, 5); err != nil {
		panic(err)
	}
	tight := zonegraph.State{Vloc: syncprod.Vloc{0}, Zone: narrow}

	isNew, covering, _, err := g.AddNode(tight)
	if err != nil {
		panic(err)
	}

	g.AddEdge(rootNode.ID, covering.ID, &syncprod.Transition{})

	st := g.Stats()
	fmt.Println("new:", isNew)
	fmt.Println("nodes:", st.NodeCount)
	fmt.Println("covered:", st.CoveredCount)
	// Output:
	// new: false
	// nodes: 1
	// covered: 1
}
