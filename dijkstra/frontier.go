package dijkstra

import (
	"container/heap"
)

// Frontier is a min-priority collection of discovered states keyed by
// accumulated cost. It supports true decrease-key through an index map,
// so every un-finalized state appears at most once.
//
// Among equal costs the state inserted first is popped first; improving
// a state keeps its original insertion order. This makes a whole search
// reproducible for a deterministic Space.
//
// A Frontier is not safe for concurrent use; each search owns its own.
type Frontier[S comparable] struct {
	items  frontierPQ[S]
	index  map[S]*frontierItem[S]
	closed map[S]struct{}
	seq    uint64
}

// NewFrontier returns an empty Frontier with room for hint states.
func NewFrontier[S comparable](hint int) *Frontier[S] {
	if hint < 0 {
		hint = 0
	}
	return &Frontier[S]{
		items:  make(frontierPQ[S], 0, hint),
		index:  make(map[S]*frontierItem[S], hint),
		closed: make(map[S]struct{}, hint),
	}
}

// PushOrImprove inserts s with the given cost if it is new, or lowers its
// stored cost if the new one is strictly cheaper. It is a no-op when s is
// already finalized or the stored cost is ≤ cost. Reports whether the
// frontier changed.
// Complexity: O(log N).
func (f *Frontier[S]) PushOrImprove(s S, cost int64) bool {
	if _, done := f.closed[s]; done {
		return false
	}
	if it, ok := f.index[s]; ok {
		if it.cost <= cost {
			return false
		}
		it.cost = cost
		heap.Fix(&f.items, it.pos)

		return true
	}
	it := &frontierItem[S]{state: s, cost: cost, seq: f.seq}
	f.seq++
	f.index[s] = it
	heap.Push(&f.items, it)

	return true
}

// PopMin removes and returns the cheapest state, marking it finalized.
// ok is false when the frontier is empty.
// Complexity: O(log N).
func (f *Frontier[S]) PopMin() (s S, cost int64, ok bool) {
	if f.items.Len() == 0 {
		return s, 0, false
	}
	it := heap.Pop(&f.items).(*frontierItem[S])
	delete(f.index, it.state)
	f.closed[it.state] = struct{}{}

	return it.state, it.cost, true
}

// Peek returns the cheapest state without removing it.
func (f *Frontier[S]) Peek() (s S, cost int64, ok bool) {
	if f.items.Len() == 0 {
		return s, 0, false
	}

	return f.items[0].state, f.items[0].cost, true
}

// Finalized reports whether s has already been popped.
func (f *Frontier[S]) Finalized(s S) bool {
	_, done := f.closed[s]
	return done
}

// Len returns the number of pending states.
func (f *Frontier[S]) Len() int { return f.items.Len() }

// IsEmpty reports whether no state is pending.
func (f *Frontier[S]) IsEmpty() bool { return f.items.Len() == 0 }

// frontierItem is a pending state stored in the heap.
type frontierItem[S comparable] struct {
	state S
	cost  int64  // accumulated cost
	seq   uint64 // insertion order, the tie-break key
	pos   int    // position in the heap slice, maintained by Swap/Push
}

// frontierPQ is a min-heap of *frontierItem ordered by (cost, seq).
type frontierPQ[S comparable] []*frontierItem[S]

// Len returns the number of items in the heap.
func (pq frontierPQ[S]) Len() int { return len(pq) }

// Less defines the comparison: smaller cost first, then earlier insertion.
func (pq frontierPQ[S]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap and keeps their positions current.
func (pq frontierPQ[S]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].pos = i
	pq[j].pos = j
}

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (pq *frontierPQ[S]) Push(x any) {
	it := x.(*frontierItem[S])
	it.pos = len(*pq)
	*pq = append(*pq, it)
}

// Pop removes and returns the last element.
// Called by heap.Pop; returns any that must be cast to *frontierItem.
func (pq *frontierPQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.pos = -1
	*pq = old[:n-1]

	return item
}
