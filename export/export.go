// Package export renders pitch class sets as Standard MIDI Files. Octave,
// tempo, and velocity policy live here; the core has no concept of them.
// Pitch class n sounds as note 60+n (middle C octave).
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/fortelabs/pcsets/pcset"
)

const (
	baseNote = 60
	velocity = 100
	channel  = 0
	tempoBPM = 120
)

// Member is one named transformation in a set's family, with the playback
// order to render.
type Member struct {
	Name  string `json:"name"`
	Order []int  `json:"order"`
}

// Family returns the full transformation family of a set: the twelve
// transpositions, the twelve inversions, the retrograde, and the twelve
// retrograde inversions.
func Family(s pcset.PitchClassSet) []Member {
	members := make([]Member, 0, 37)
	for n := 0; n < 12; n++ {
		members = append(members, Member{fmt.Sprintf("T%d", n), s.Transposition(n).PlaybackOrder()})
	}
	for n := 0; n < 12; n++ {
		members = append(members, Member{fmt.Sprintf("I%d", n), s.Inversion(n).PlaybackOrder()})
	}
	members = append(members, Member{"R", s.Retrograde().PlaybackOrder()})
	for n := 0; n < 12; n++ {
		members = append(members, Member{fmt.Sprintf("RI%d", n), s.RetrogradeInversion(n).PlaybackOrder()})
	}
	return members
}

// NewSMF renders a playback order as a single-track sequence of quarter
// notes.
func NewSMF(order []int) *smf.SMF {
	file := smf.New()
	ticks := smf.MetricTicks(960)
	file.TimeFormat = ticks

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName("pcsets"))
	track.Add(0, smf.MetaTempo(tempoBPM))
	for _, pc := range order {
		key := uint8(baseNote + ((pc%12)+12)%12)
		track.Add(0, midi.NoteOn(channel, key, velocity))
		track.Add(ticks.Ticks4th(), midi.NoteOff(channel, key))
	}
	track.Close(0)
	file.Add(track)
	return file
}

// WriteSet writes one MIDI file with the set's playback order.
func WriteSet(s pcset.PitchClassSet, path string) error {
	return NewSMF(s.PlaybackOrder()).WriteFile(path)
}

// WriteFamily writes one MIDI file per family member into dir and returns
// member name -> filename. Filenames get a uuid suffix so repeated exports
// never clobber each other.
func WriteFamily(s pcset.PitchClassSet, dir string) (map[string]string, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	written := make(map[string]string)
	for _, m := range Family(s) {
		filename := fmt.Sprintf("%s-%s.mid", m.Name, uuid.New().String())
		if err := NewSMF(m.Order).WriteFile(filepath.Join(dir, filename)); err != nil {
			return written, fmt.Errorf("writing %s: %w", m.Name, err)
		}
		written[m.Name] = filename
	}
	return written, nil
}
