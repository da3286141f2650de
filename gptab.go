// Package gptab is the library's primary entry point: a single Parse
// call that detects a tablature file's format and decodes it into the
// unified Song aggregate, plus the format-specific parsers and
// musical-timing helpers it's built from.
package gptab

import (
	"github.com/jsphweid/gptab/format"
	"github.com/jsphweid/gptab/model"
)

// Song, Track, Bar, Beat, and Note are the decoded aggregate every
// parser in this package returns; re-exported here so callers never
// need to import model directly.
type (
	Song          = model.Song
	Track         = model.Track
	Bar           = model.Bar
	Beat          = model.Beat
	Note          = model.Note
	TimeSignature = model.TimeSignature
	KeySignature  = model.KeySignature
	Section       = model.Section
	Tuplet        = model.Tuplet
	Bend          = model.Bend
	Tie           = model.Tie
	Duration      = model.Duration
	HarmonicType  = model.HarmonicType
	Mode          = model.Mode
)

// Duration constants, re-exported for callers matching on Beat.Duration.
const (
	Whole               = model.Whole
	Half                = model.Half
	Quarter             = model.Quarter
	Eighth              = model.Eighth
	Sixteenth           = model.Sixteenth
	ThirtySecond        = model.ThirtySecond
	SixtyFourth         = model.SixtyFourth
	HundredTwentyEighth = model.HundredTwentyEighth
)

// Format names the four decoders Parse can route to.
type Format = format.Format

const (
	GPX Format = format.GPX
	GP7 Format = format.GP7
	GP5 Format = format.GP5
	GP3 Format = format.GP3
)

// Parse detects data's format and decodes it into a Song.
// filename is optional context for the suffix-based fallback rule; pass
// "" when none is available.
func Parse(data []byte, filename string) (*Song, error) {
	return format.Parse(data, filename)
}

// DetectFormat runs the format-detection rules without decoding.
func DetectFormat(data []byte, filename string) (Format, error) {
	return format.Detect(data, filename)
}

// ParseGpx decodes a GPX (BCFZ/BCFS) container directly, skipping detection.
func ParseGpx(data []byte) (*Song, error) { return format.ParseGpx(data) }

// ParseGp7 decodes a GP7+ zip archive directly, skipping detection.
func ParseGp7(data []byte) (*Song, error) { return format.ParseGp7(data) }

// ParseGp5 decodes a GP5 binary file directly, skipping detection.
func ParseGp5(data []byte) (*Song, error) { return format.ParseGp5(data) }

// ParseGp3 decodes a GP3 binary file directly, skipping detection.
func ParseGp3(data []byte) (*Song, error) { return format.ParseGp3(data) }

// DurationToBeats resolves a symbolic duration, its augmentation dots,
// and an optional tuplet into a beat fraction.
func DurationToBeats(d Duration, dotCount int, tuplet *Tuplet) float64 {
	return model.DurationToBeats(d, dotCount, tuplet)
}

// BeatDurationMs converts a Beat's duration to wall-clock milliseconds
// at its effective tempo.
func BeatDurationMs(beat Beat) float64 {
	return model.BeatDurationMs(beat)
}

// MusicalBeatPosition returns the 1-based musical beat that the beat at
// localBeatIndex falls on within bar.
func MusicalBeatPosition(bar Bar, localBeatIndex int) int {
	return model.MusicalBeatPosition(bar, localBeatIndex)
}

// BarMusicalBeatCount is the bar's time-signature numerator.
func BarMusicalBeatCount(bar Bar) int {
	return model.BarMusicalBeatCount(bar)
}
