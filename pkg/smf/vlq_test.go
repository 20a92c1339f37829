package smf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/james-see/midifile/pkg/midi"
)

func TestVLQKnownEncodings(t *testing.T) {
	tests := []struct {
		value uint32
		want  []byte
	}{
		{0x00000000, []byte{0x00}},
		{0x00000040, []byte{0x40}},
		{0x0000007F, []byte{0x7F}},
		{0x00000080, []byte{0x81, 0x00}},
		{0x00002000, []byte{0xC0, 0x00}},
		{0x00003FFF, []byte{0xFF, 0x7F}},
		{0x00004000, []byte{0x81, 0x80, 0x00}},
		{0x001FFFFF, []byte{0xFF, 0xFF, 0x7F}},
		{0x00200000, []byte{0x81, 0x80, 0x80, 0x00}},
		{0x0FFFFFFF, []byte{0xFF, 0xFF, 0xFF, 0x7F}},
	}

	for _, tt := range tests {
		got := appendVLQ(nil, tt.value)
		if !bytes.Equal(got, tt.want) {
			t.Errorf("appendVLQ(0x%X) = % X, want % X", tt.value, got, tt.want)
		}
	}
}

func TestVLQRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 129, 8191, 8192, 16383, 16384, 1234567, 0x0FFFFFFF}
	// A sweep across the full delta-time range.
	for v := uint32(0); v < 1<<28; v += 99991 {
		values = append(values, v)
	}

	for _, v := range values {
		encoded := appendVLQ(nil, v)
		if v < 128 && len(encoded) != 1 {
			t.Errorf("appendVLQ(%d) = % X, values below 128 must encode to one byte", v, encoded)
		}
		r := newReader(encoded)
		decoded, err := r.readVLQ()
		if err != nil {
			t.Fatalf("readVLQ(% X) error: %v", encoded, err)
		}
		if decoded != v {
			t.Fatalf("round trip of %d = %d", v, decoded)
		}
		if r.remaining() != 0 {
			t.Fatalf("readVLQ(% X) left %d bytes unread", encoded, r.remaining())
		}
	}
}

func TestVLQTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"continuation only", []byte{0x81}},
		{"two continuations", []byte{0xFF, 0x81}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newReader(tt.data).readVLQ()
			var parseErr *midi.ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("readVLQ(% X) error = %v, want ParseError", tt.data, err)
			}
		})
	}
}
