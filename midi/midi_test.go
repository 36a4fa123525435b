package midi

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/fortelabs/pcsets/pcset"
)

func buildTestSMF() *smf.SMF {
	file := smf.New()
	ticks := smf.MetricTicks(960)
	file.TimeFormat = ticks

	var track smf.Track
	track.Add(0, smf.MetaTempo(120))
	track.Add(0, gomidi.NoteOn(0, 60, 100))
	track.Add(0, gomidi.NoteOn(0, 64, 100))
	track.Add(ticks.Ticks4th(), gomidi.NoteOff(0, 60))
	track.Add(0, gomidi.NoteOff(0, 64))
	track.Add(0, gomidi.NoteOn(0, 67, 100))
	track.Add(ticks.Ticks4th(), gomidi.NoteOff(0, 67))
	track.Close(0)
	file.Add(track)
	return file
}

func TestSimultaneities(t *testing.T) {
	assert := assert.New(t)
	sets := Simultaneities(buildTestSMF())

	assert.Len(sets, 3)
	// simultaneous attacks at tick 0 can snapshot in either order
	assert.Equal(1, sets[0].Cardinality())
	assert.True(sets[1].Equal(pcset.New(0, 4)))
	assert.True(sets[2].Equal(pcset.New(7)))
}

func TestSimultaneitiesEmpty(t *testing.T) {
	file := smf.New()
	file.TimeFormat = smf.MetricTicks(960)
	var track smf.Track
	track.Close(0)
	file.Add(track)

	assert.Empty(t, Simultaneities(file))
}

func TestReadFileRoundTrip(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "test.mid")
	err := buildTestSMF().WriteFile(path)
	assert.NoError(err)

	file, err := ReadFile(path)
	assert.NoError(err)
	assert.Len(Simultaneities(file), 3)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("does-not-exist.mid")
	assert.Error(t, err)
}
