// Package smf encodes and decodes Standard MIDI Files.
package smf

import "github.com/james-see/midifile/pkg/midi"

// reader is a cursor over an immutable byte buffer. Every read is bounds
// checked and fails with a ParseError instead of slicing out of range.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *reader) truncated(what string) error {
	return &midi.ParseError{Reason: "truncated data reading " + what}
}

func (r *reader) readByte(what string) (byte, error) {
	if r.remaining() < 1 {
		return 0, r.truncated(what)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) readUint16(what string) (uint16, error) {
	if r.remaining() < 2 {
		return 0, r.truncated(what)
	}
	v := uint16(r.data[r.pos])<<8 | uint16(r.data[r.pos+1])
	r.pos += 2
	return v, nil
}

func (r *reader) readUint32(what string) (uint32, error) {
	if r.remaining() < 4 {
		return 0, r.truncated(what)
	}
	v := uint32(r.data[r.pos])<<24 | uint32(r.data[r.pos+1])<<16 |
		uint32(r.data[r.pos+2])<<8 | uint32(r.data[r.pos+3])
	r.pos += 4
	return v, nil
}

func (r *reader) readBytes(n int, what string) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, r.truncated(what)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) readString(n int, what string) (string, error) {
	b, err := r.readBytes(n, what)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// unreadByte steps the cursor back one byte. Used for running-status
// lookahead: a data byte read where a status byte was expected is pushed
// back and re-read as the first data byte of the continued message.
func (r *reader) unreadByte() {
	if r.pos > 0 {
		r.pos--
	}
}
