package midi

import "fmt"

// RangeError reports a bounded value constructed outside its legal range.
type RangeError struct {
	What string
	Got  int
	Min  int
	Max  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.What, e.Got, e.Min, e.Max)
}

// ParseError reports malformed or truncated MIDI bytes. Decoding rejects
// bad input in full; there is no partial recovery.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "midi: " + e.Reason
}

func parseErrorf(format string, args ...interface{}) error {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}
