package vtt

import (
	"bytes"
	"encoding/binary"
)

// ISO-BMFF box framing for the WebVTT sample boxes this fragmenter
// emits (ISO/IEC 14496-30). Adapted from the teacher's mp4.VttcBox /
// mp4.VtteBox / mp4.IdenBox / mp4.SttgBox / mp4.PaylBox / mp4.CtimBox
// family, trimmed to the sample-data boxes a fragmented mdat carries —
// the sample-entry boxes used to describe a wvtt track in an init
// segment (WvttBox, VlabBox, VsidBox) are the muxer's concern, not
// this package's.
//
// Every box follows the same 8-byte header: a 4-byte big-endian total
// size (including the header) followed by the 4-byte ASCII type.

const boxHeaderSize = 8

// writeBoxHeader writes the 8-byte ISO-BMFF box header for a box of the
// given type whose total size (including this header) is size.
func writeBoxHeader(buf *bytes.Buffer, boxType string, size int) {
	var hdr [boxHeaderSize]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(size))
	copy(hdr[4:8], boxType)
	buf.Write(hdr[:])
}

// writeStringBox writes a length-prefixed box whose payload is the raw
// bytes of data, with no terminator.
func writeStringBox(buf *bytes.Buffer, boxType string, data []byte) {
	writeBoxHeader(buf, boxType, boxHeaderSize+len(data))
	buf.Write(data)
}

// emptyCueBox is the constant 8-byte serialized form of VTTEmptyCueBox
// ('vtte'), precomputed once per the design note that its value never
// varies.
var emptyCueBox = []byte{0x00, 0x00, 0x00, 0x08, 'v', 't', 't', 'e'}

// encodeVTTCueBox serializes a VTTCueBox ('vttc') for one active cue:
// the ordered concatenation of its 'iden', 'sttg', 'payl' and 'ctim'
// sub-boxes, each present only when its corresponding field is
// non-empty.
func encodeVTTCueBox(c Cue) []byte {
	var payload bytes.Buffer
	if len(c.Identifier) > 0 {
		writeStringBox(&payload, "iden", c.Identifier)
	}
	if len(c.Settings) > 0 {
		writeStringBox(&payload, "sttg", c.Settings)
	}
	if len(c.Payload) > 0 {
		writeStringBox(&payload, "payl", c.Payload)
	}
	if len(c.OriginatingTime) > 0 {
		writeStringBox(&payload, "ctim", c.OriginatingTime)
	}

	var box bytes.Buffer
	writeBoxHeader(&box, "vttc", boxHeaderSize+payload.Len())
	box.Write(payload.Bytes())
	return box.Bytes()
}

// encodeActiveCues composes the data of one output sample: the
// VTTCueBox for every entry in entries, concatenated in arrival-index
// order, or a single VTTEmptyCueBox if entries is empty.
func encodeActiveCues(entries []*activeEntry) []byte {
	if len(entries) == 0 {
		return emptyCueBox
	}
	var buf bytes.Buffer
	for _, e := range entries {
		buf.Write(encodeVTTCueBox(e.cue))
	}
	return buf.Bytes()
}
