// Package inspect builds human-readable summaries of decoded MIDI files.
package inspect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/james-see/midifile/pkg/midi"
	"github.com/james-see/midifile/pkg/smf"
)

// TrackSummary aggregates one track's events.
type TrackSummary struct {
	Name          string         `json:"name"`
	EventCount    int            `json:"event_count"`
	DurationTicks uint32         `json:"duration_ticks"`
	Channels      []int          `json:"channels"`
	LowestNote    int            `json:"lowest_note"`  // -1 when the track has no notes
	HighestNote   int            `json:"highest_note"` // -1 when the track has no notes
	Kinds         map[string]int `json:"kinds"`
}

// Summary describes a whole file.
type Summary struct {
	Format              string         `json:"format"`
	TicksPerQuarterNote uint16         `json:"ticks_per_quarter_note"`
	TrackCount          int            `json:"track_count"`
	DurationTicks       uint32         `json:"duration_ticks"`
	Tracks              []TrackSummary `json:"tracks"`
}

// Summarize walks a decoded file and aggregates per-track statistics.
func Summarize(f *smf.File) Summary {
	s := Summary{
		Format:              f.Format.String(),
		TicksPerQuarterNote: f.TicksPerQuarterNote,
		TrackCount:          len(f.Tracks),
		Tracks:              make([]TrackSummary, 0, len(f.Tracks)),
	}
	for i := range f.Tracks {
		ts := summarizeTrack(&f.Tracks[i])
		if ts.DurationTicks > s.DurationTicks {
			s.DurationTicks = ts.DurationTicks
		}
		s.Tracks = append(s.Tracks, ts)
	}
	return s
}

func summarizeTrack(t *smf.Track) TrackSummary {
	ts := TrackSummary{
		Name:          t.Name,
		EventCount:    len(t.Events),
		DurationTicks: t.Duration(),
		LowestNote:    -1,
		HighestNote:   -1,
		Kinds:         make(map[string]int),
	}
	channels := make(map[midi.Channel]struct{})
	for _, ev := range t.Events {
		ts.Kinds[kindName(ev.Message)]++
		switch m := ev.Message.(type) {
		case midi.NoteOn:
			channels[m.Channel] = struct{}{}
			noteRange(&ts, m.Note)
		case midi.NoteOff:
			channels[m.Channel] = struct{}{}
		case midi.ControlChange:
			channels[m.Channel] = struct{}{}
		case midi.ProgramChange:
			channels[m.Channel] = struct{}{}
		case midi.PitchBend:
			channels[m.Channel] = struct{}{}
		case midi.ChannelPressure:
			channels[m.Channel] = struct{}{}
		case midi.PolyPressure:
			channels[m.Channel] = struct{}{}
			noteRange(&ts, m.Note)
		}
	}
	for ch := range channels {
		ts.Channels = append(ts.Channels, int(ch)+1)
	}
	sort.Ints(ts.Channels)
	return ts
}

func noteRange(ts *TrackSummary, n midi.Note) {
	if ts.LowestNote == -1 || int(n) < ts.LowestNote {
		ts.LowestNote = int(n)
	}
	if int(n) > ts.HighestNote {
		ts.HighestNote = int(n)
	}
}

func kindName(m midi.Message) string {
	switch m.(type) {
	case midi.NoteOn:
		return "note_on"
	case midi.NoteOff:
		return "note_off"
	case midi.ControlChange:
		return "control_change"
	case midi.ProgramChange:
		return "program_change"
	case midi.PitchBend:
		return "pitch_bend"
	case midi.ChannelPressure:
		return "channel_pressure"
	case midi.PolyPressure:
		return "poly_pressure"
	case midi.SysEx:
		return "sysex"
	}
	return "unknown"
}

// String renders the summary as indented text for the CLI and TUI.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Format:     %s\n", s.Format)
	fmt.Fprintf(&b, "Resolution: %d ticks per quarter note\n", s.TicksPerQuarterNote)
	fmt.Fprintf(&b, "Tracks:     %d\n", s.TrackCount)
	fmt.Fprintf(&b, "Duration:   %d ticks\n", s.DurationTicks)
	for i, ts := range s.Tracks {
		fmt.Fprintf(&b, "\nTrack %d: %s\n", i+1, ts.Name)
		fmt.Fprintf(&b, "  events:   %d\n", ts.EventCount)
		fmt.Fprintf(&b, "  duration: %d ticks\n", ts.DurationTicks)
		if len(ts.Channels) > 0 {
			fmt.Fprintf(&b, "  channels: %s\n", joinInts(ts.Channels))
		}
		if ts.LowestNote >= 0 {
			fmt.Fprintf(&b, "  notes:    %d-%d\n", ts.LowestNote, ts.HighestNote)
		}
		kinds := make([]string, 0, len(ts.Kinds))
		for k := range ts.Kinds {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			fmt.Fprintf(&b, "  %-16s %d\n", k+":", ts.Kinds[k])
		}
	}
	return b.String()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
