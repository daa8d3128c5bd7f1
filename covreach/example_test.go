package covreach_test

import (
	"fmt"

	"github.com/tchecker-go/tachecker/bound"
	"github.com/tchecker-go/tachecker/covreach"
	"github.com/tchecker-go/tachecker/refclock"
	"github.com/tchecker-go/tachecker/tasystem"
	"github.com/tchecker-go/tachecker/zonegraph"
)

// Example builds a tiny one-clock system and checks whether its "done"
// label is reachable.
func Example() {
	b := tasystem.NewBuilder()
	p, _ := b.AddProcess("P")
	ev, _ := b.AddEvent("go")
	lab, _ := b.AddLabel("done")
	clk, _ := b.AddClock("x", 1)

	idle, _ := b.AddLocation(p, "idle", true, false)
	busy, _ := b.AddLocation(p, "busy", false, false, lab)

	e, _ := b.AddEdge(p, idle, busy, ev)
	_ = b.SetEdgeGuard(e,
		[]refclock.Guard{{X: int(clk), Y: 0, Cmp: bound.LE, V: 5}},
		nil,
		[]refclock.Reset{{X: int(clk), Y: 0, V: 0}},
		nil)

	sys, err := b.Build()
	if err != nil {
		panic(err)
	}

	engine, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraNone)
	if err != nil {
		panic(err)
	}

	target := tasystem.NewBitSet(sys.NumLabels())
	target.Set(int(lab))

	_, stats, err := covreach.Run(engine, covreach.RunOptions{Target: target})
	if err != nil {
		panic(err)
	}

	fmt.Println("reachable:", stats.Reachable)
	// Output:
	// reachable: true
}
