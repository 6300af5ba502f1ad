package vtt

import (
	"testing"

	"github.com/matryer/is"
)

func TestEncodeVTTCueBoxPaylOnly(t *testing.T) {
	is := is.New(t)

	// Spec test vector: a VTTCueBox whose only populated sub-box is
	// 'payl' = "some message" serializes to 28 bytes total.
	got := encodeVTTCueBox(Cue{Payload: []byte("some message")})

	want := []byte{0x00, 0x00, 0x00, 0x1C, 'v', 't', 't', 'c',
		0x00, 0x00, 0x00, 0x14, 'p', 'a', 'y', 'l'}
	want = append(want, []byte("some message")...)

	is.Equal(len(got), 28) // total size matches spec vector
	is.Equal(got, want)    // bit-exact match with spec vector
}

func TestEncodeVTTCueBoxAllSubBoxes(t *testing.T) {
	is := is.New(t)

	c := Cue{
		Identifier:      []byte("cue1"),
		Settings:        []byte("line:0"),
		Payload:         []byte("hi"),
		OriginatingTime: []byte("00:00:01.000"),
	}
	got := encodeVTTCueBox(c)

	// iden(8+4) + sttg(8+6) + payl(8+2) + ctim(8+12) + vttc hdr(8)
	wantSize := boxHeaderSize + (boxHeaderSize + len(c.Identifier)) +
		(boxHeaderSize + len(c.Settings)) + (boxHeaderSize + len(c.Payload)) +
		(boxHeaderSize + len(c.OriginatingTime))
	is.Equal(len(got), wantSize)

	is.Equal(string(got[4:8]), "vttc")
	// sub-boxes appear in iden, sttg, payl, ctim order.
	pos := boxHeaderSize
	is.Equal(string(got[pos+4:pos+8]), "iden")
	pos += boxHeaderSize + len(c.Identifier)
	is.Equal(string(got[pos+4:pos+8]), "sttg")
	pos += boxHeaderSize + len(c.Settings)
	is.Equal(string(got[pos+4:pos+8]), "payl")
	pos += boxHeaderSize + len(c.Payload)
	is.Equal(string(got[pos+4:pos+8]), "ctim")
}

func TestEncodeVTTCueBoxEmptyFields(t *testing.T) {
	is := is.New(t)

	got := encodeVTTCueBox(Cue{})
	is.Equal(got, []byte{0x00, 0x00, 0x00, 0x08, 'v', 't', 't', 'c'}) // no sub-boxes at all
}

func TestEmptyCueBoxConstant(t *testing.T) {
	is := is.New(t)

	is.Equal(emptyCueBox, []byte{0x00, 0x00, 0x00, 0x08, 0x76, 0x74, 0x74, 0x65})
	is.Equal(encodeActiveCues(nil), emptyCueBox) // no active cues -> single empty-cue box
}
