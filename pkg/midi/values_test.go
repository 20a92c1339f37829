package midi

import (
	"errors"
	"testing"
)

func TestNewChannel(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"lowest", 0, false},
		{"highest", 15, false},
		{"too high", 16, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := NewChannel(tt.value)
			if tt.wantErr {
				var rangeErr *RangeError
				if !errors.As(err, &rangeErr) {
					t.Fatalf("NewChannel(%d) error = %v, want RangeError", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewChannel(%d) unexpected error: %v", tt.value, err)
			}
			if int(ch) != tt.value {
				t.Errorf("NewChannel(%d) = %d", tt.value, ch)
			}
		})
	}
}

func TestNewNote(t *testing.T) {
	if _, err := NewNote(128); err == nil {
		t.Error("NewNote(128) should fail")
	}
	if _, err := NewNote(-1); err == nil {
		t.Error("NewNote(-1) should fail")
	}
	n, err := NewNote(127)
	if err != nil {
		t.Fatalf("NewNote(127) unexpected error: %v", err)
	}
	if n != 127 {
		t.Errorf("NewNote(127) = %d", n)
	}
}

func TestNewVelocity(t *testing.T) {
	if _, err := NewVelocity(200); err == nil {
		t.Error("NewVelocity(200) should fail")
	}
	v, err := NewVelocity(100)
	if err != nil {
		t.Fatalf("NewVelocity(100) unexpected error: %v", err)
	}
	if v != 100 {
		t.Errorf("NewVelocity(100) = %d", v)
	}
}

func TestClampConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"channel above", int(ClampChannel(99)), 15},
		{"channel below", int(ClampChannel(-3)), 0},
		{"channel inside", int(ClampChannel(7)), 7},
		{"note above", int(ClampNote(300)), 127},
		{"note below", int(ClampNote(-1)), 0},
		{"velocity above", int(ClampVelocity(128)), 127},
		{"velocity inside", int(ClampVelocity(64)), 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestChannelString(t *testing.T) {
	// Channels display 1-based.
	if got := Channel(0).String(); got != "1" {
		t.Errorf("Channel(0).String() = %q, want %q", got, "1")
	}
	if got := Channel(15).String(); got != "16" {
		t.Errorf("Channel(15).String() = %q, want %q", got, "16")
	}
}

func TestVelocityNormalized(t *testing.T) {
	tests := []struct {
		velocity Velocity
		want     float64
	}{
		{0, 0},
		{127, 1},
	}

	for _, tt := range tests {
		if got := tt.velocity.Normalized(); got != tt.want {
			t.Errorf("Velocity(%d).Normalized() = %v, want %v", tt.velocity, got, tt.want)
		}
	}
	if mid := Velocity(64).Normalized(); mid <= 0.5 || mid >= 0.51 {
		t.Errorf("Velocity(64).Normalized() = %v, want ~0.504", mid)
	}
}
