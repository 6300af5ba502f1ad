/* Package vtt implements a WebVTT-in-ISO-BMFF fragmenter.

It consumes time-stamped WebVTT cue samples arriving in presentation-time
order and emits a strictly non-overlapping, time-contiguous sequence of
output samples. Each output sample covers a half-open time interval
[t0, t1) and carries the concatenation of serialized WebVTT box
structures (ISO/IEC 14496-30) for every cue active over that entire
interval. When no cue is active, the output sample for the gap carries a
single empty-cue box.

The package does no text parsing and writes no container files; it only
turns a stream of (start, duration, text) cues into the box-encoded
`mdat` payloads a fragment writer can use directly.

Basic usage:

	f := vtt.New()
	f.PushSample(vtt.Cue{StartTime: 0, Duration: 2000, Payload: []byte("hi")})
	f.PushSample(vtt.Cue{StartTime: 2000, Duration: 1000, Payload: []byte("hello")})
	f.Flush()
	for f.ReadySamplesSize() > 0 {
		s := f.PopSample()
		fmt.Println(s.PTS, s.Duration, len(s.Data))
	}

Cues must be pushed in non-decreasing start-time order; this is a
caller-enforced precondition, not something the fragmenter can repair
(see Fragmenter.PushSample).
*/
package vtt
