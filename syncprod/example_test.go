package syncprod_test

import (
	"fmt"

	"github.com/tchecker-go/tachecker/syncprod"
	"github.com/tchecker-go/tachecker/tasystem"
)

// Example demonstrates exploring one step of a synchronized product: two
// processes with a shared "sync" event step together from their initial
// vloc, then no further synchronized transition is enabled.
func Example() {
	b := tasystem.NewBuilder()

	p0, _ := b.AddProcess("P0")
	p1, _ := b.AddProcess("P1")
	sync, _ := b.AddEvent("sync")
	i0, _ := b.AddLocation(p0, "idle0", true, false)
	b0, _ := b.AddLocation(p0, "busy0", false, false)
	i1, _ := b.AddLocation(p1, "idle1", true, false)
	b1, _ := b.AddLocation(p1, "busy1", false, false)
	_, _ = b.AddEdge(p0, i0, b0, sync)
	_, _ = b.AddEdge(p1, i1, b1, sync)
	_, _ = b.AddSyncVector(
		tasystem.SyncParticipant{Process: p0, Event: sync, Strength: tasystem.Strong},
		tasystem.SyncParticipant{Process: p1, Event: sync, Strength: tasystem.Strong},
	)
	sys, _ := b.Build()

	// Step 1: start from the initial vloc.
	vloc := syncprod.Initial(sys)

	// Step 2: enumerate outgoing transitions; exactly one synchronized
	// tuple is enabled.
	transitions := syncprod.Outgoing(sys, vloc)
	fmt.Println("transitions:", len(transitions))

	// Step 3: fire it and confirm no further synchronized step exists.
	next, _ := syncprod.Apply(sys, vloc, transitions[0])
	fmt.Println("further transitions:", len(syncprod.Outgoing(sys, next)))

	// Output:
	// transitions: 1
	// further transitions: 0
}
