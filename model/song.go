// Package model is the unified in-memory song aggregate every decoder
// converges on, regardless of which tablature format it read. Values
// are built once by a decoder and are immutable thereafter; nothing in
// this package mutates a Song after construction.
package model

import "github.com/jsphweid/gptab/pitch"

// Mode is a key signature's major/minor quality.
type Mode string

const (
	Major Mode = "major"
	Minor Mode = "minor"
)

// HarmonicType names the GP harmonic styles a Note can carry.
type HarmonicType string

const (
	HarmonicNatural    HarmonicType = "natural"
	HarmonicArtificial HarmonicType = "artificial"
	HarmonicTapped     HarmonicType = "tapped"
	HarmonicPinch      HarmonicType = "pinch"
	HarmonicSemi       HarmonicType = "semi"
)

// TimeSignature is a bar's numerator/denominator pair, e.g. 4/4.
type TimeSignature struct {
	Numerator   int
	Denominator int
}

// KeySignature is a bar's accidental count (negative = flats, positive =
// sharps) and major/minor quality.
type KeySignature struct {
	AccidentalCount int
	Mode            Mode
}

// Section labels a bar with an optional rehearsal-mark letter and/or free
// text; both are independently optional, hence empty-string-means-absent.
type Section struct {
	Letter string
	Text   string
}

// Tuplet states that Num notes fit in the time of Den. When present,
// Num != 1 || Den != 1 — an even 1:1 ratio is represented as a nil
// *Tuplet instead.
type Tuplet struct {
	Num int
	Den int
}

// Bend is a pitch bend's origin/destination/middle point, in the GP
// quarter-tone convention (1.0 == one whole step).
type Bend struct {
	Origin      float64
	Destination float64
	Middle      float64
}

// Tie states whether a note is tied from a previous note (Origin) and/or
// into a following one (Destination).
type Tie struct {
	Origin      bool
	Destination bool
}

// Note is a single fretted (or rest-adjacent) pitch within a Beat.
type Note struct {
	String     int // 0-based; 0 == highest-pitch string
	Fret       int
	PitchClass int // (tuningMidi[String] + capoFret + Fret) mod 12
	NoteName   string

	Slide    *int // GP slide-type code, nil if none
	Harmonic *HarmonicType
	Bend     *Bend

	PalmMute    bool
	Muted       bool
	LetRing     bool
	Vibrato     bool
	HammerOn    bool
	PullOff     bool // always false for GP3/GP5 input: a single hammer/pull flag bit can't tell direction
	Tapped      bool
	Accent      bool
	HeavyAccent bool

	Tie Tie
}

// Beat is a rhythmic moment: zero or more simultaneous Notes, a Duration,
// and the tempo in effect at this point in the track.
type Beat struct {
	Index    int // global within the track, strictly increasing
	BarIndex int // equals the enclosing Bar's Index

	Notes    []Note
	Duration Duration
	Tuplet   *Tuplet
	Dotted   int
	IsRest   bool // true whenever len(Notes) == 0

	Dynamic *int // -4..5 centred on mf == 0, nil if unspecified
	Tempo   int  // BPM in effect at this beat
}

// Bar (measure) groups Beats under a time signature.
type Bar struct {
	Index         int
	TimeSignature TimeSignature
	KeySignature  *KeySignature
	Section       *Section
	Beats         []Beat

	RepeatStart bool
	RepeatEnd   bool
	RepeatCount int
}

// Track is one instrument's full part across the song.
type Track struct {
	ID        string
	Name      string
	ShortName string

	Instrument     *int // MIDI program number, nil if none (e.g. percussion)
	InstrumentName string

	Tuning     []pitch.Note // highest-pitch string at index 0
	TuningMidi []int        // same order as Tuning
	CapoFret   int

	Bars []Bar

	SourceFormat string // "gp3" | "gp5" | "gpx" | "gp7"
}

// Song is the fully resolved aggregate every decoder produces.
type Song struct {
	Title  string
	Artist string
	Album  string
	Tempo  int // BPM

	Tracks []Track
}
