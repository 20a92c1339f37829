// Package midi models raw MIDI 1.0 messages and their wire encoding.
package midi

import "fmt"

// Channel is a MIDI channel (0-15). Displayed 1-16.
type Channel uint8

// Note is a MIDI note number (0-127).
type Note uint8

// Velocity is a note velocity (0-127).
type Velocity uint8

const (
	MaxChannel  = 15
	MaxNote     = 127
	MaxVelocity = 127
)

// NewChannel validates v and returns it as a Channel.
func NewChannel(v int) (Channel, error) {
	if v < 0 || v > MaxChannel {
		return 0, &RangeError{What: "channel", Got: v, Min: 0, Max: MaxChannel}
	}
	return Channel(v), nil
}

// ClampChannel saturates v into the legal channel range. Callers that want
// rejection instead of saturation use NewChannel.
func ClampChannel(v int) Channel {
	return Channel(clamp(v, MaxChannel))
}

func (c Channel) String() string {
	return fmt.Sprintf("%d", int(c)+1)
}

// NewNote validates v and returns it as a Note.
func NewNote(v int) (Note, error) {
	if v < 0 || v > MaxNote {
		return 0, &RangeError{What: "note", Got: v, Min: 0, Max: MaxNote}
	}
	return Note(v), nil
}

// ClampNote saturates v into the legal note range.
func ClampNote(v int) Note {
	return Note(clamp(v, MaxNote))
}

// NewVelocity validates v and returns it as a Velocity.
func NewVelocity(v int) (Velocity, error) {
	if v < 0 || v > MaxVelocity {
		return 0, &RangeError{What: "velocity", Got: v, Min: 0, Max: MaxVelocity}
	}
	return Velocity(v), nil
}

// ClampVelocity saturates v into the legal velocity range.
func ClampVelocity(v int) Velocity {
	return Velocity(clamp(v, MaxVelocity))
}

// Normalized returns the velocity scaled to [0, 1].
func (v Velocity) Normalized() float64 {
	return float64(v) / float64(MaxVelocity)
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
