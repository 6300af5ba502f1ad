package vtt

// Cue is one WebVTT cue handed to the fragmenter by the external parser.
// It is immutable once pushed: the fragmenter never mutates a Cue after
// Fragmenter.PushSample returns.
type Cue struct {
	StartTime uint64 // opaque timescale, caller's units
	Duration  uint64 // must be > 0

	Identifier []byte // WebVTT cue identifier, possibly empty
	Settings   []byte // WebVTT cue settings line, possibly empty
	Payload    []byte // WebVTT cue text, possibly empty

	// OriginatingTime, when non-empty, is emitted as a 'ctim' sub-box
	// (CueTimeBox) recording the cue's current time for split cues.
	// Left empty by callers that don't track originating time.
	OriginatingTime []byte
}

// EndTime is the cue's derived exclusive end, StartTime+Duration.
func (c Cue) EndTime() uint64 {
	return c.StartTime + c.Duration
}

// activeEntry pairs a Cue with the arrival index assigned on push. The
// arrival index is the only total order used for serialization: when
// multiple cues overlap, their boxes are concatenated in ascending
// arrival order inside a composed output sample.
type activeEntry struct {
	cue     Cue
	end     uint64
	arrival uint64
	evicted bool
}

// OutputSample is one completed, box-encoded fragmenter output. It
// covers the half-open interval [PTS, PTS+Duration).
type OutputSample struct {
	PTS      uint64
	Duration uint64
	Data     []byte
}
