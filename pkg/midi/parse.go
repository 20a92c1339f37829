package midi

import "bytes"

// DataLength returns the number of data bytes following a channel message
// status byte: 2 for note/controller/pitch messages, 1 for program change
// and channel pressure. Meta and SysEx statuses are variable-length and
// handled by the track decoder, not here.
func DataLength(status byte) (int, error) {
	switch status & 0xF0 {
	case StatusNoteOff, StatusNoteOn, StatusPolyPressure, StatusControlChange, StatusPitchBend:
		return 2, nil
	case StatusProgramChange, StatusChannelPressure:
		return 1, nil
	default:
		return 0, parseErrorf("unknown status byte 0x%02X", status)
	}
}

// Parse decodes the message beginning at data[0]. Trailing bytes beyond the
// message are ignored, so callers may hand in the remainder of a buffer.
//
// A NoteOn with velocity 0 is returned as a NoteOff with the same channel
// and note, per the MIDI convention.
func Parse(data []byte) (Message, error) {
	if len(data) == 0 {
		return nil, parseErrorf("empty message")
	}

	status := data[0]
	if status == SysExStart {
		end := bytes.IndexByte(data[1:], SysExEnd)
		if end < 0 {
			return nil, parseErrorf("SysEx without 0xF7 terminator")
		}
		payload := make([]byte, end)
		copy(payload, data[1:1+end])
		return SysEx{Data: payload}, nil
	}

	channel, err := NewChannel(int(status & 0x0F))
	if err != nil {
		return nil, err
	}

	need, err := DataLength(status)
	if err != nil {
		return nil, err
	}
	if len(data) < 1+need {
		return nil, parseErrorf("incomplete message: status 0x%02X needs %d data bytes, have %d",
			status, need, len(data)-1)
	}

	switch status & 0xF0 {
	case StatusNoteOn:
		if data[2] == 0 {
			return NoteOff{Channel: channel, Note: Note(data[1])}, nil
		}
		return NoteOn{Channel: channel, Note: Note(data[1]), Velocity: Velocity(data[2])}, nil
	case StatusNoteOff:
		return NoteOff{Channel: channel, Note: Note(data[1]), Velocity: Velocity(data[2])}, nil
	case StatusControlChange:
		return ControlChange{Channel: channel, Controller: data[1], Value: data[2]}, nil
	case StatusProgramChange:
		return ProgramChange{Channel: channel, Program: data[1]}, nil
	case StatusPitchBend:
		raw := uint16(data[1]&0x7F) | uint16(data[2]&0x7F)<<7
		return PitchBend{Channel: channel, Value: int16(int(raw) - 8192)}, nil
	case StatusChannelPressure:
		return ChannelPressure{Channel: channel, Pressure: data[1]}, nil
	case StatusPolyPressure:
		return PolyPressure{Channel: channel, Note: Note(data[1]), Pressure: data[2]}, nil
	}

	// DataLength already rejected anything else.
	return nil, parseErrorf("unknown status byte 0x%02X", status)
}
