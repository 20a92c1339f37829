package smf

import (
	"fmt"
	"sort"

	"github.com/james-see/midifile/pkg/midi"
)

// Meta event types this codec acts on. Anything else is skipped over by
// its declared length.
const (
	metaTrackName  = 0x03
	metaEndOfTrack = 0x2F
)

// Event is a MIDI message at an absolute time within a track, counted in
// ticks from the start of the track.
type Event struct {
	Tick    uint32
	Message midi.Message
}

// Track is a named, ordered sequence of events. Events need not be sorted
// by tick; encoding sorts them. Simultaneous events keep their insertion
// order so encoding is deterministic.
type Track struct {
	Name   string
	Events []Event
}

// Duration returns the tick of the latest event, or 0 for an empty track.
func (t *Track) Duration() uint32 {
	var last uint32
	for _, ev := range t.Events {
		if ev.Tick > last {
			last = ev.Tick
		}
	}
	return last
}

func (t *Track) sortedEvents() []Event {
	events := make([]Event, len(t.Events))
	copy(events, t.Events)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Tick < events[j].Tick
	})
	return events
}

// encode serializes the track chunk body: an optional track-name meta
// event, the events as delta-time/message pairs, and the end-of-track
// marker.
func (t *Track) encode() []byte {
	var out []byte
	if t.Name != "" {
		out = append(out, 0x00, 0xFF, metaTrackName)
		out = appendVLQ(out, uint32(len(t.Name)))
		out = append(out, t.Name...)
	}
	var prev uint32
	for _, ev := range t.sortedEvents() {
		out = appendVLQ(out, ev.Tick-prev)
		prev = ev.Tick
		if sysex, ok := ev.Message.(midi.SysEx); ok {
			// Tracks frame SysEx with a length so readers can skip it:
			// F0 <VLQ len> <data F7>.
			out = append(out, midi.SysExStart)
			out = appendVLQ(out, uint32(len(sysex.Data))+1)
			out = append(out, sysex.Data...)
			out = append(out, midi.SysExEnd)
			continue
		}
		out = append(out, ev.Message.Bytes()...)
	}
	return append(out, 0x00, 0xFF, metaEndOfTrack, 0x00)
}

// decodeTrack parses one track chunk body. index is the track's position
// in the file and names the track "Track N" unless a name meta event
// overrides it. A chunk that runs out of bytes without an end-of-track
// marker is accepted as-is.
func decodeTrack(data []byte, index int) (Track, error) {
	track := Track{Name: fmt.Sprintf("Track %d", index+1)}
	r := newReader(data)
	var tick uint32
	var runningStatus byte

	for r.remaining() > 0 {
		delta, err := r.readVLQ()
		if err != nil {
			return Track{}, err
		}
		tick += delta

		status, err := r.readByte("status byte")
		if err != nil {
			return Track{}, err
		}
		if status&0x80 == 0 {
			// Running status: this byte is data for a repeat of the
			// previous message. Put it back and reuse the old status.
			if runningStatus == 0 {
				return Track{}, &midi.ParseError{Reason: "data byte with no prior status byte"}
			}
			r.unreadByte()
			status = runningStatus
		}

		switch {
		case status == 0xFF:
			metaType, err := r.readByte("meta type")
			if err != nil {
				return Track{}, err
			}
			length, err := r.readVLQ()
			if err != nil {
				return Track{}, err
			}
			payload, err := r.readBytes(int(length), "meta event")
			if err != nil {
				return Track{}, err
			}
			runningStatus = 0
			switch metaType {
			case metaTrackName:
				track.Name = string(payload)
			case metaEndOfTrack:
				return track, nil
			}
			// Other meta types (tempo, time signature, ...) are skipped.

		case status == midi.SysExStart || status == midi.SysExEnd:
			length, err := r.readVLQ()
			if err != nil {
				return Track{}, err
			}
			payload, err := r.readBytes(int(length), "SysEx event")
			if err != nil {
				return Track{}, err
			}
			if n := len(payload); n > 0 && payload[n-1] == midi.SysExEnd {
				payload = payload[:n-1]
			}
			sysex := midi.SysEx{Data: append([]byte(nil), payload...)}
			track.Events = append(track.Events, Event{Tick: tick, Message: sysex})
			runningStatus = 0

		default:
			need, err := midi.DataLength(status)
			if err != nil {
				return Track{}, err
			}
			body, err := r.readBytes(need, "message data")
			if err != nil {
				return Track{}, err
			}
			raw := make([]byte, 0, 1+need)
			raw = append(raw, status)
			raw = append(raw, body...)
			msg, err := midi.Parse(raw)
			if err != nil {
				return Track{}, err
			}
			track.Events = append(track.Events, Event{Tick: tick, Message: msg})
			runningStatus = status
		}
	}
	return track, nil
}
