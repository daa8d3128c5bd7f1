// File: pqueue.go
// Role: Priority-queue waiting store with caller-supplied ordering,
// grounded on dijkstra.go's container/heap nodePQ (Len/Less/Swap/Push/
// Pop over a slice of pointers), plus a fast-remove sibling that adds
// the index-tracking heap.Remove needs for O(log n) arbitrary removal.

package covgraph

import "container/heap"

// Less orders NodeIDs for a priority queue; true means a sorts before b.
type Less func(a, b NodeID) bool

type pqItem struct {
	id NodeID
}

type innerHeap struct {
	items []pqItem
	less  Less
}

func (h innerHeap) Len() int            { return len(h.items) }
func (h innerHeap) Less(i, j int) bool  { return h.less(h.items[i].id, h.items[j].id) }
func (h innerHeap) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *innerHeap) Push(x interface{}) { h.items = append(h.items, x.(pqItem)) }
func (h *innerHeap) Pop() interface{} {
	n := len(h.items)
	it := h.items[n-1]
	h.items = h.items[:n-1]

	return it
}

// PQueue is a priority-queue WaitingStore ordered by a caller-supplied
// Less. Remove is O(n) (linear scan to locate the id, then heap.Remove).
type PQueue struct {
	h *innerHeap
}

// NewPQueue returns an empty priority-queue store ordered by less.
func NewPQueue(less Less) *PQueue {
	return &PQueue{h: &innerHeap{less: less}}
}

func (q *PQueue) Empty() bool { return q.h.Len() == 0 }
func (q *PQueue) Len() int    { return q.h.Len() }

func (q *PQueue) Insert(id NodeID) { heap.Push(q.h, pqItem{id: id}) }

func (q *PQueue) First() (NodeID, error) {
	if q.Empty() {
		return 0, ErrEmptyStore
	}

	return q.h.items[0].id, nil
}

func (q *PQueue) RemoveFirst() error {
	if q.Empty() {
		return ErrEmptyStore
	}
	heap.Pop(q.h)

	return nil
}

func (q *PQueue) Remove(id NodeID) error {
	for i, it := range q.h.items {
		if it.id == id {
			heap.Remove(q.h, i)

			return nil
		}
	}

	return ErrNotInStore
}

func (q *PQueue) Clear() { q.h.items = nil }

// FastPQueue is a PQueue with an index map kept current by a wrapping
// heap.Interface, so Remove is O(log n) instead of O(n).
type FastPQueue struct {
	h *indexedHeap
}

type indexedHeap struct {
	innerHeap
	pos map[NodeID]int
}

func (h *indexedHeap) Swap(i, j int) {
	h.innerHeap.Swap(i, j)
	h.pos[h.items[i].id] = i
	h.pos[h.items[j].id] = j
}

func (h *indexedHeap) Push(x interface{}) {
	it := x.(pqItem)
	h.pos[it.id] = len(h.items)
	h.innerHeap.Push(it)
}

func (h *indexedHeap) Pop() interface{} {
	it := h.innerHeap.Pop().(pqItem)
	delete(h.pos, it.id)

	return it
}

// NewFastPQueue returns an empty fast-remove priority-queue store
// ordered by less.
func NewFastPQueue(less Less) *FastPQueue {
	return &FastPQueue{h: &indexedHeap{innerHeap: innerHeap{less: less}, pos: make(map[NodeID]int)}}
}

func (q *FastPQueue) Empty() bool { return q.h.Len() == 0 }
func (q *FastPQueue) Len() int    { return q.h.Len() }

func (q *FastPQueue) Insert(id NodeID) { heap.Push(q.h, pqItem{id: id}) }

func (q *FastPQueue) First() (NodeID, error) {
	if q.Empty() {
		return 0, ErrEmptyStore
	}

	return q.h.items[0].id, nil
}

func (q *FastPQueue) RemoveFirst() error {
	if q.Empty() {
		return ErrEmptyStore
	}
	heap.Pop(q.h)

	return nil
}

func (q *FastPQueue) Remove(id NodeID) error {
	i, ok := q.h.pos[id]
	if !ok {
		return ErrNotInStore
	}
	heap.Remove(q.h, i)

	return nil
}

func (q *FastPQueue) Clear() {
	q.h.items = nil
	q.h.pos = make(map[NodeID]int)
}
