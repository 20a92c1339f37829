package midi

import (
	"bytes"
	"errors"
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"
)

func TestNoteOnBytes(t *testing.T) {
	got := NoteOn{Channel: 0, Note: 60, Velocity: 100}.Bytes()
	want := []byte{0x90, 60, 100}
	if !bytes.Equal(got, want) {
		t.Errorf("NoteOn bytes = % X, want % X", got, want)
	}
}

func TestPitchBendBytes(t *testing.T) {
	tests := []struct {
		name  string
		value int16
		want  []byte
	}{
		{"center", 0, []byte{0xE0, 0x00, 0x40}},
		{"max", 8191, []byte{0xE0, 0x7F, 0x7F}},
		{"min", -8192, []byte{0xE0, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PitchBend{Channel: 0, Value: tt.value}.Bytes()
			if !bytes.Equal(got, tt.want) {
				t.Errorf("PitchBend(%d) bytes = % X, want % X", tt.value, got, tt.want)
			}
		})
	}
}

func TestNewPitchBend(t *testing.T) {
	if _, err := NewPitchBend(0, 8192); err == nil {
		t.Error("NewPitchBend(8192) should fail")
	}
	if _, err := NewPitchBend(0, -8193); err == nil {
		t.Error("NewPitchBend(-8193) should fail")
	}
	pb, err := NewPitchBend(3, -100)
	if err != nil {
		t.Fatalf("NewPitchBend(-100) unexpected error: %v", err)
	}
	if pb.Value != -100 || pb.Channel != 3 {
		t.Errorf("NewPitchBend = %+v", pb)
	}
}

func TestMessageRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
	}{
		{"note on", NoteOn{Channel: 2, Note: 64, Velocity: 90}},
		{"note off", NoteOff{Channel: 2, Note: 64, Velocity: 40}},
		{"control change", ControlChange{Channel: 9, Controller: 7, Value: 120}},
		{"program change", ProgramChange{Channel: 15, Program: 33}},
		{"pitch bend positive", PitchBend{Channel: 1, Value: 4096}},
		{"pitch bend negative", PitchBend{Channel: 1, Value: -4096}},
		{"channel pressure", ChannelPressure{Channel: 5, Pressure: 77}},
		{"poly pressure", PolyPressure{Channel: 0, Note: 48, Pressure: 15}},
		{"sysex", SysEx{Data: []byte{0x7E, 0x00, 0x09, 0x01}}},
		{"sysex empty", SysEx{Data: nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Parse(tt.msg.Bytes())
			if err != nil {
				t.Fatalf("Parse(% X) error: %v", tt.msg.Bytes(), err)
			}
			if !Equal(parsed, tt.msg) {
				t.Errorf("Parse(% X) = %v, want %v", tt.msg.Bytes(), parsed, tt.msg)
			}
		})
	}
}

func TestNoteOnZeroVelocityParsesAsNoteOff(t *testing.T) {
	parsed, err := Parse(NoteOn{Channel: 4, Note: 71}.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	off, ok := parsed.(NoteOff)
	if !ok {
		t.Fatalf("parsed = %T, want NoteOff", parsed)
	}
	if off.Channel != 4 || off.Note != 71 || off.Velocity != 0 {
		t.Errorf("parsed NoteOff = %+v", off)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated note on", []byte{0x90, 60}},
		{"truncated program change", []byte{0xC0}},
		{"data byte as status", []byte{0x40, 0x01, 0x02}},
		{"unknown system status", []byte{0xF1, 0x00}},
		{"sysex without terminator", []byte{0xF0, 0x7E, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("Parse(% X) error = %v, want ParseError", tt.data, err)
			}
		})
	}
}

func TestDataLength(t *testing.T) {
	tests := []struct {
		status byte
		want   int
	}{
		{0x80, 2}, {0x93, 2}, {0xA5, 2}, {0xB0, 2}, {0xE7, 2},
		{0xC1, 1}, {0xDF, 1},
	}

	for _, tt := range tests {
		got, err := DataLength(tt.status)
		if err != nil {
			t.Errorf("DataLength(0x%02X) error: %v", tt.status, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DataLength(0x%02X) = %d, want %d", tt.status, got, tt.want)
		}
	}
	if _, err := DataLength(0xF0); err == nil {
		t.Error("DataLength(0xF0) should fail: SysEx is variable length")
	}
}

func TestEqual(t *testing.T) {
	a := NoteOn{Channel: 0, Note: 60, Velocity: 100}
	b := NoteOn{Channel: 0, Note: 60, Velocity: 100}
	c := NoteOn{Channel: 0, Note: 60, Velocity: 101}
	if !Equal(a, b) {
		t.Error("identical messages should be equal")
	}
	if Equal(a, c) {
		t.Error("different velocities should not be equal")
	}
}

// Cross-check wire bytes against gomidi's encoders.
func TestBytesMatchReferenceImplementation(t *testing.T) {
	tests := []struct {
		name string
		ours Message
		ref  gomidi.Message
	}{
		{"note on", NoteOn{Channel: 0, Note: 60, Velocity: 100}, gomidi.NoteOn(0, 60, 100)},
		{"note off", NoteOff{Channel: 3, Note: 72}, gomidi.NoteOff(3, 72)},
		{"control change", ControlChange{Channel: 1, Controller: 7, Value: 99}, gomidi.ControlChange(1, 7, 99)},
		{"program change", ProgramChange{Channel: 9, Program: 5}, gomidi.ProgramChange(9, 5)},
		{"pitch bend", PitchBend{Channel: 2, Value: 1000}, gomidi.Pitchbend(2, 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !bytes.Equal(tt.ours.Bytes(), []byte(tt.ref)) {
				t.Errorf("our bytes = % X, gomidi = % X", tt.ours.Bytes(), []byte(tt.ref))
			}
		})
	}
}
