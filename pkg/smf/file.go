package smf

import (
	"fmt"

	"github.com/james-see/midifile/pkg/midi"
)

// Format is the SMF file format from the header chunk.
type Format uint16

const (
	// Single holds one track (format 0).
	Single Format = 0
	// MultiTrackSync holds simultaneous tracks of one song (format 1).
	MultiTrackSync Format = 1
	// MultiSequenceAsync holds independent sequences (format 2).
	MultiSequenceAsync Format = 2
)

func (f Format) String() string {
	switch f {
	case Single:
		return "single track"
	case MultiTrackSync:
		return "multi-track"
	case MultiSequenceAsync:
		return "multi-sequence"
	}
	return fmt.Sprintf("unknown format %d", uint16(f))
}

// File is an in-memory Standard MIDI File.
type File struct {
	Format              Format
	TicksPerQuarterNote uint16
	Tracks              []Track
}

const headerChunkLength = 6

// Encode serializes the file: the MThd header chunk followed by one MTrk
// chunk per track. Encoding never fails; all values are already bounded.
func (f *File) Encode() []byte {
	out := append([]byte(nil), "MThd"...)
	out = appendUint32(out, headerChunkLength)
	out = appendUint16(out, uint16(f.Format))
	out = appendUint16(out, uint16(len(f.Tracks)))
	out = appendUint16(out, f.TicksPerQuarterNote)
	for i := range f.Tracks {
		body := f.Tracks[i].encode()
		out = append(out, "MTrk"...)
		out = appendUint32(out, uint32(len(body)))
		out = append(out, body...)
	}
	return out
}

// Decode parses a Standard MIDI File from data. The number of MTrk chunks
// must match the track count declared in the header.
func Decode(data []byte) (*File, error) {
	r := newReader(data)

	magic, err := r.readString(4, "file header")
	if err != nil {
		return nil, err
	}
	if magic != "MThd" {
		return nil, &midi.ParseError{Reason: fmt.Sprintf("bad file magic %q, want \"MThd\"", magic)}
	}
	hdrLen, err := r.readUint32("header length")
	if err != nil {
		return nil, err
	}
	if hdrLen != headerChunkLength {
		return nil, &midi.ParseError{Reason: fmt.Sprintf("bad header length %d, want %d", hdrLen, headerChunkLength)}
	}
	format, err := r.readUint16("format")
	if err != nil {
		return nil, err
	}
	if format > uint16(MultiSequenceAsync) {
		return nil, &midi.ParseError{Reason: fmt.Sprintf("unknown file format %d", format)}
	}
	trackCount, err := r.readUint16("track count")
	if err != nil {
		return nil, err
	}
	resolution, err := r.readUint16("resolution")
	if err != nil {
		return nil, err
	}

	file := &File{
		Format:              Format(format),
		TicksPerQuarterNote: resolution,
	}
	for i := 0; i < int(trackCount); i++ {
		magic, err := r.readString(4, "track header")
		if err != nil {
			return nil, err
		}
		if magic != "MTrk" {
			return nil, &midi.ParseError{Reason: fmt.Sprintf("bad track magic %q, want \"MTrk\"", magic)}
		}
		length, err := r.readUint32("track length")
		if err != nil {
			return nil, err
		}
		body, err := r.readBytes(int(length), "track body")
		if err != nil {
			return nil, err
		}
		track, err := decodeTrack(body, i)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i+1, err)
		}
		file.Tracks = append(file.Tracks, track)
	}
	return file, nil
}

func appendUint16(dst []byte, v uint16) []byte {
	return append(dst, byte(v>>8), byte(v))
}

func appendUint32(dst []byte, v uint32) []byte {
	return append(dst, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
