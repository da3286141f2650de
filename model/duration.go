package model

import "math"

// Duration is a symbolic note value.
type Duration string

const (
	Whole               Duration = "whole"
	Half                Duration = "half"
	Quarter             Duration = "quarter"
	Eighth              Duration = "eighth"
	Sixteenth           Duration = "16th"
	ThirtySecond        Duration = "32nd"
	SixtyFourth         Duration = "64th"
	HundredTwentyEighth Duration = "128th"
)

// baseBeats holds the base beat fraction for each symbolic Duration,
// keyed against a quarter note worth 1 beat.
var baseBeats = map[Duration]float64{
	Whole:               4,
	Half:                2,
	Quarter:             1,
	Eighth:              0.5,
	Sixteenth:           0.25,
	ThirtySecond:        0.125,
	SixtyFourth:         0.0625,
	HundredTwentyEighth: 0.03125,
}

// DurationToBeats resolves a symbolic duration, its augmentation dots, and
// an optional tuplet into a beat-fraction. Each dot adds half of the
// running total accumulated so far (not half of the undotted base); a
// tuplet (num, den) then multiplies by den/num.
func DurationToBeats(d Duration, dotCount int, tuplet *Tuplet) float64 {
	running := baseBeats[d]
	for i := 0; i < dotCount; i++ {
		running += running / 2
	}
	if tuplet != nil && tuplet.Num != 0 {
		running *= float64(tuplet.Den) / float64(tuplet.Num)
	}
	return running
}

// BeatDurationMs converts a Beat's duration to wall-clock milliseconds at
// its effective tempo.
func BeatDurationMs(beat Beat) float64 {
	if beat.Tempo == 0 {
		return 0
	}
	return DurationToBeats(beat.Duration, beat.Dotted, beat.Tuplet) * 60000 / float64(beat.Tempo)
}

// MusicalBeatPosition returns the 1-based musical beat that the beat at
// localBeatIndex (0-based, within bar.Beats) falls on: sum the
// beat-fractions of the preceding beats, divide by (4/denominator), floor
// and add one, then clamp to the bar's numerator.
func MusicalBeatPosition(bar Bar, localBeatIndex int) int {
	var sum float64
	for i := 0; i < localBeatIndex && i < len(bar.Beats); i++ {
		b := bar.Beats[i]
		sum += DurationToBeats(b.Duration, b.Dotted, b.Tuplet)
	}
	denom := 4.0 / float64(bar.TimeSignature.Denominator)
	pos := int(math.Floor(sum/denom)) + 1
	if pos < 1 {
		pos = 1
	}
	if pos > bar.TimeSignature.Numerator {
		pos = bar.TimeSignature.Numerator
	}
	return pos
}

// BarMusicalBeatCount is the bar's time-signature numerator.
func BarMusicalBeatCount(bar Bar) int {
	return bar.TimeSignature.Numerator
}
