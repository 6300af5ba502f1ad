package vtt

import (
	"fmt"
	"math"
)

// Fragmenter is the public push/flush/pop surface (C4), backed by the
// interval cutter (C3) and time bookkeeping (C5). It holds the pending
// output queue and enforces the input-ordering precondition. A
// Fragmenter is not safe for concurrent use: all work happens
// synchronously on the calling goroutine, there are no background
// tasks, and one instance must not be shared across goroutines.
type Fragmenter struct {
	active  *activeSet
	pending []OutputSample

	cursor      uint64 // timestamp through which output has been emitted
	started     bool   // whether any cue has ever been pushed
	nextArrival uint64
}

// New returns an empty Fragmenter ready to accept cues via PushSample.
func New() *Fragmenter {
	return &Fragmenter{active: newActiveSet()}
}

// PushSample adds one cue to the fragmenter. Preconditions (violating
// either is a caller bug and panics rather than attempting recovery,
// per spec.md §7):
//   - cue.Duration must be > 0.
//   - cue.StartTime must be >= every previously pushed cue's StartTime.
//
// PushSample may enqueue zero or more completed output samples before
// returning; it never emits anything for the cue just pushed until a
// later push or Flush drives the cutter past it.
func (f *Fragmenter) PushSample(cue Cue) {
	if cue.Duration == 0 {
		panic("vtt: PushSample called with zero duration")
	}
	if f.started && cue.StartTime < f.cursor {
		panic(fmt.Sprintf("vtt: PushSample called out of order: start=%d precedes cursor=%d", cue.StartTime, f.cursor))
	}

	if !f.started {
		f.cursor = cue.StartTime
		f.started = true
	} else if cue.StartTime > f.cursor {
		f.advanceTo(cue.StartTime)
	}

	f.active.insert(&activeEntry{
		cue:     cue,
		end:     cue.EndTime(),
		arrival: f.nextArrival,
	})
	f.nextArrival++
}

// Flush drains the active set, emitting one output sample per maximal
// constant-active-set segment up to the last cue's end time. After
// Flush returns, the active set is empty and the pending queue
// contains all emissions.
func (f *Fragmenter) Flush() {
	f.drainLoop(math.MaxUint64)
}

// ReadySamplesSize reports how many completed output samples are
// queued for PopSample.
func (f *Fragmenter) ReadySamplesSize() int {
	return len(f.pending)
}

// PopSample removes and returns the front of the pending queue.
// Precondition: ReadySamplesSize() > 0.
func (f *Fragmenter) PopSample() OutputSample {
	if len(f.pending) == 0 {
		panic("vtt: PopSample called with no ready samples")
	}
	s := f.pending[0]
	f.pending = f.pending[1:]
	return s
}

// advanceTo drains the active set up to t_target and then emits one
// final sample (or gap) to reach it, per the advance-to procedure in
// spec.md §4.3. It is only called with a real boundary to reach (the
// next pushed cue's start time); Flush uses drainLoop directly since
// there is no boundary beyond the last active cue's end.
func (f *Fragmenter) advanceTo(target uint64) {
	f.drainLoop(target)
	if target > f.cursor {
		if f.active.len() > 0 {
			f.emit(f.cursor, target, encodeActiveCues(f.active.iterateInArrivalOrder()))
		} else {
			f.emit(f.cursor, target, emptyCueBox)
		}
		f.cursor = target
	}
}

// drainLoop is the heart of the interval cutter: while the active set
// is non-empty and its earliest end is within limit, it emits one
// sample per maximal constant-active-set segment and evicts the
// cue(s) ending there, advancing cursor to each such end time in turn.
func (f *Fragmenter) drainLoop(limit uint64) {
	for f.active.len() > 0 && f.active.earliestEnd() <= limit {
		tNext := f.active.earliestEnd()
		if f.cursor != tNext {
			f.emit(f.cursor, tNext, encodeActiveCues(f.active.iterateInArrivalOrder()))
		}
		f.cursor = tNext
		f.active.popAllEndingAtOrBefore(tNext)
	}
}

// emit appends a completed output sample covering [start, end) to the
// pending queue. Zero-length intervals are never passed in by callers
// here (drainLoop and advanceTo both guard against start == end).
func (f *Fragmenter) emit(start, end uint64, data []byte) {
	f.pending = append(f.pending, OutputSample{
		PTS:      start,
		Duration: end - start,
		Data:     data,
	})
}
