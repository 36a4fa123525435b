// Package midi reads pitch class material out of Standard MIDI Files.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/fortelabs/pcsets/pcset"
)

func ReadFile(path string) (s *smf.SMF, e error) {
	// the parser can panic on malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

type reducedEvent struct {
	offset    int64
	isNoteEnd bool
	note      uint8
}

// Simultaneities walks every track and returns the sets of pitch classes
// sounding together, in playing order. Consecutive duplicates collapse.
func Simultaneities(s *smf.SMF) []pcset.PitchClassSet {
	var events []reducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, evt := range track {
			absTicks += int64(evt.Delta)
			absTime := s.TimeAt(absTicks)
			var channel, key, velocity uint8
			switch {
			case evt.Message.GetNoteStart(&channel, &key, &velocity):
				events = append(events, reducedEvent{absTime, false, key})
			case evt.Message.GetNoteEnd(&channel, &key):
				events = append(events, reducedEvent{absTime, true, key})
			}
		}
	}

	// note ends first at equal offsets so releases never pad the next attack
	sort.Slice(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		return events[i].isNoteEnd
	})

	pressed := make(map[uint8]bool)
	var res []pcset.PitchClassSet
	for _, evt := range events {
		if evt.isNoteEnd {
			delete(pressed, evt.note)
			continue
		}
		pressed[evt.note] = true
		pcs := make([]int, 0, len(pressed))
		for note := range pressed {
			pcs = append(pcs, int(note%12))
		}
		set := pcset.New(pcs...)
		if len(res) == 0 || !res[len(res)-1].Equal(set) {
			res = append(res, set)
		}
	}
	return res
}
