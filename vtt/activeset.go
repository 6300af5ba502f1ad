package vtt

import "container/heap"

// activeSet is the ordered multiset of currently-active cues (C2). It
// maintains two orderings simultaneously over the same entries: a
// min-heap keyed by (end time, arrival index) for eviction, and an
// arrival-ordered slice for composing output samples.
type activeSet struct {
	byEnd   endHeap
	byOrder []*activeEntry // kept sorted by arrival index; evicted entries are tombstoned
}

func newActiveSet() *activeSet {
	return &activeSet{}
}

// insert adds a new entry to the active set. O(log n).
func (s *activeSet) insert(e *activeEntry) {
	heap.Push(&s.byEnd, e)
	s.byOrder = append(s.byOrder, e)
}

// len reports how many cues are currently active.
func (s *activeSet) len() int {
	return len(s.byEnd)
}

// earliestEnd returns the minimum end time among active entries. The
// caller must check len() > 0 first.
func (s *activeSet) earliestEnd() uint64 {
	return s.byEnd[0].end
}

// popAllEndingAtOrBefore removes and returns every entry whose end time
// is <= t, ties broken by arrival order. In the cutter, t is always the
// current earliest end, so this evicts exactly the entries sharing
// that end time; the caller must have already emitted the sample
// covering up to t.
func (s *activeSet) popAllEndingAtOrBefore(t uint64) []*activeEntry {
	var evicted []*activeEntry
	for s.len() > 0 && s.byEnd[0].end <= t {
		e := heap.Pop(&s.byEnd).(*activeEntry)
		e.evicted = true
		evicted = append(evicted, e)
	}
	s.compact()
	return evicted
}

// iterateInArrivalOrder returns the currently active entries sorted by
// ascending arrival index, the order in which their boxes are
// concatenated into a composed output sample.
func (s *activeSet) iterateInArrivalOrder() []*activeEntry {
	live := make([]*activeEntry, 0, len(s.byOrder))
	for _, e := range s.byOrder {
		if !e.evicted {
			live = append(live, e)
		}
	}
	return live
}

// compact drops tombstoned entries from the arrival-order slice once
// they no longer back any live iteration.
func (s *activeSet) compact() {
	if len(s.byOrder) == 0 {
		return
	}
	kept := s.byOrder[:0]
	for _, e := range s.byOrder {
		if !e.evicted {
			kept = append(kept, e)
		}
	}
	s.byOrder = kept
}

// endHeap is a container/heap.Interface over *activeEntry, ordered by
// end time with ties broken by arrival index per spec.md §4.2.
type endHeap []*activeEntry

func (h endHeap) Len() int { return len(h) }

func (h endHeap) Less(i, j int) bool {
	if h[i].end != h[j].end {
		return h[i].end < h[j].end
	}
	return h[i].arrival < h[j].arrival
}

func (h endHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *endHeap) Push(x any) {
	*h = append(*h, x.(*activeEntry))
}

func (h *endHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}
