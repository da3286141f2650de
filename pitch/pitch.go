// Package pitch implements pitch class arithmetic, MIDI note numbers,
// and note-name spelling.
package pitch

import "fmt"

// sharpNames and flatNames both carry the seven natural pitch classes
// un-accidental; they only diverge on the five accidental classes.
var sharpNames = [12]string{"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B"}
var flatNames = [12]string{"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B"}

// naturals is the set of pitch classes rendered without an accidental.
var naturals = map[int]bool{0: true, 2: true, 4: true, 5: true, 7: true, 9: true, 11: true}

// IsNatural reports whether pc is one of the seven unaccidental classes.
func IsNatural(pc int) bool {
	return naturals[normalize(pc)]
}

func normalize(pc int) int {
	return ((pc % 12) + 12) % 12
}

// MidiToPitchClass folds a MIDI note number (or any integer) into [0..12).
func MidiToPitchClass(midi int) int {
	return normalize(midi)
}

// NoteName renders a pitch class as its name, using sharp or flat
// spelling for accidentals per preferFlats. Naturals are unaffected.
func NoteName(pitchClass int, preferFlats bool) string {
	pc := normalize(pitchClass)
	if preferFlats {
		return flatNames[pc]
	}
	return sharpNames[pc]
}

// Note is a pitch class paired with its rendered name.
type Note struct {
	PitchClass int
	Name       string
}

// NoteFromPitchClass builds a Note for pc; the result's PitchClass is
// always normalize(pc).
func NoteFromPitchClass(pitchClass int, preferFlats bool) Note {
	pc := normalize(pitchClass)
	return Note{PitchClass: pc, Name: NoteName(pc, preferFlats)}
}

// FrettedPitchClass computes the pitch class of a fretted note:
// (openStringMidi + capoFret + fret) mod 12.
func FrettedPitchClass(openStringMidi, capoFret, fret int) int {
	return normalize(openStringMidi + capoFret + fret)
}

// String renders a Note for debugging.
func (n Note) String() string {
	return fmt.Sprintf("%s(pc=%d)", n.Name, n.PitchClass)
}
