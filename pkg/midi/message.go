package midi

import (
	"bytes"
	"fmt"
)

// Status nibbles for channel messages, and the SysEx frame bytes.
const (
	StatusNoteOff         = 0x80
	StatusNoteOn          = 0x90
	StatusPolyPressure    = 0xA0
	StatusControlChange   = 0xB0
	StatusProgramChange   = 0xC0
	StatusChannelPressure = 0xD0
	StatusPitchBend       = 0xE0
	SysExStart            = 0xF0
	SysExEnd              = 0xF7
)

// Pitch bend value bounds (signed 14-bit).
const (
	MinPitchBend = -8192
	MaxPitchBend = 8191
)

// Message is a raw MIDI 1.0 message. The set of implementations is closed:
// NoteOn, NoteOff, ControlChange, ProgramChange, PitchBend, ChannelPressure,
// PolyPressure and SysEx. Bytes returns the canonical wire encoding, which
// also defines message equality.
type Message interface {
	// Bytes returns the message's wire representation: a status byte
	// followed by its data bytes, or an F0..F7 frame for SysEx.
	Bytes() []byte

	fmt.Stringer

	message()
}

// Equal reports whether two messages have identical wire bytes.
func Equal(a, b Message) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// NoteOn starts a note sounding on a channel.
type NoteOn struct {
	Channel  Channel
	Note     Note
	Velocity Velocity
}

// NoteOff ends a note on a channel. Velocity is the release velocity.
type NoteOff struct {
	Channel  Channel
	Note     Note
	Velocity Velocity
}

// ControlChange sets a controller to a value.
type ControlChange struct {
	Channel    Channel
	Controller uint8
	Value      uint8
}

// ProgramChange selects a patch on a channel.
type ProgramChange struct {
	Channel Channel
	Program uint8
}

// PitchBend bends the channel's pitch. Value is signed 14-bit; 0 is center.
type PitchBend struct {
	Channel Channel
	Value   int16
}

// ChannelPressure is channel-wide aftertouch.
type ChannelPressure struct {
	Channel  Channel
	Pressure uint8
}

// PolyPressure is per-note aftertouch.
type PolyPressure struct {
	Channel  Channel
	Note     Note
	Pressure uint8
}

// SysEx is a System Exclusive message. Data excludes the F0/F7 frame bytes.
type SysEx struct {
	Data []byte
}

// NewPitchBend validates value against the signed 14-bit range.
func NewPitchBend(channel Channel, value int) (PitchBend, error) {
	if value < MinPitchBend || value > MaxPitchBend {
		return PitchBend{}, &RangeError{What: "pitch bend", Got: value, Min: MinPitchBend, Max: MaxPitchBend}
	}
	return PitchBend{Channel: channel, Value: int16(value)}, nil
}

func (m NoteOn) Bytes() []byte {
	return []byte{StatusNoteOn | byte(m.Channel&0x0F), byte(m.Note) & 0x7F, byte(m.Velocity) & 0x7F}
}

func (m NoteOff) Bytes() []byte {
	return []byte{StatusNoteOff | byte(m.Channel&0x0F), byte(m.Note) & 0x7F, byte(m.Velocity) & 0x7F}
}

func (m ControlChange) Bytes() []byte {
	return []byte{StatusControlChange | byte(m.Channel&0x0F), m.Controller & 0x7F, m.Value & 0x7F}
}

func (m ProgramChange) Bytes() []byte {
	return []byte{StatusProgramChange | byte(m.Channel&0x0F), m.Program & 0x7F}
}

// Bytes biases the signed value by +8192 to unsigned 14-bit and transmits
// the low 7 bits first.
func (m PitchBend) Bytes() []byte {
	raw := uint16(int(m.Value) + 8192)
	return []byte{StatusPitchBend | byte(m.Channel&0x0F), byte(raw) & 0x7F, byte(raw>>7) & 0x7F}
}

func (m ChannelPressure) Bytes() []byte {
	return []byte{StatusChannelPressure | byte(m.Channel&0x0F), m.Pressure & 0x7F}
}

func (m PolyPressure) Bytes() []byte {
	return []byte{StatusPolyPressure | byte(m.Channel&0x0F), byte(m.Note) & 0x7F, m.Pressure & 0x7F}
}

func (m SysEx) Bytes() []byte {
	out := make([]byte, 0, len(m.Data)+2)
	out = append(out, SysExStart)
	out = append(out, m.Data...)
	return append(out, SysExEnd)
}

func (m NoteOn) String() string {
	return fmt.Sprintf("NoteOn ch=%s note=%d vel=%d", m.Channel, m.Note, m.Velocity)
}

func (m NoteOff) String() string {
	return fmt.Sprintf("NoteOff ch=%s note=%d vel=%d", m.Channel, m.Note, m.Velocity)
}

func (m ControlChange) String() string {
	return fmt.Sprintf("ControlChange ch=%s controller=%d value=%d", m.Channel, m.Controller, m.Value)
}

func (m ProgramChange) String() string {
	return fmt.Sprintf("ProgramChange ch=%s program=%d", m.Channel, m.Program)
}

func (m PitchBend) String() string {
	return fmt.Sprintf("PitchBend ch=%s value=%d", m.Channel, m.Value)
}

func (m ChannelPressure) String() string {
	return fmt.Sprintf("ChannelPressure ch=%s pressure=%d", m.Channel, m.Pressure)
}

func (m PolyPressure) String() string {
	return fmt.Sprintf("PolyPressure ch=%s note=%d pressure=%d", m.Channel, m.Note, m.Pressure)
}

func (m SysEx) String() string {
	return fmt.Sprintf("SysEx %d bytes", len(m.Data))
}

func (NoteOn) message()          {}
func (NoteOff) message()         {}
func (ControlChange) message()   {}
func (ProgramChange) message()   {}
func (PitchBend) message()       {}
func (ChannelPressure) message() {}
func (PolyPressure) message()    {}
func (SysEx) message()           {}
