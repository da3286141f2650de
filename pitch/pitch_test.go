package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidiToPitchClassHandlesNegatives(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, MidiToPitchClass(-12))
	assert.Equal(11, MidiToPitchClass(-1))
	assert.Equal(4, MidiToPitchClass(64))
}

func TestNoteFromPitchClassRoundTrips(t *testing.T) {
	assert := assert.New(t)
	naturalNames := map[string]bool{"C": true, "D": true, "E": true, "F": true, "G": true, "A": true, "B": true}
	for pc := 0; pc < 12; pc++ {
		n := NoteFromPitchClass(pc, false)
		assert.Equal(pc, n.PitchClass)
		if IsNatural(pc) {
			assert.True(naturalNames[n.Name], "expected natural name for pc %d, got %s", pc, n.Name)
		}
	}
}

func TestNoteNameSharpVsFlat(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C♯", NoteName(1, false))
	assert.Equal("D♭", NoteName(1, true))
}

func TestFrettedPitchClass(t *testing.T) {
	assert := assert.New(t)
	// E2 = 40, capo 2, fret 3 -> 45 mod 12 == 9 (A)
	assert.Equal(9, FrettedPitchClass(40, 2, 3))
}
