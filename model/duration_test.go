package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationToBeatsBaseValues(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(4.0, DurationToBeats(Whole, 0, nil))
	assert.Equal(1.5, DurationToBeats(Quarter, 1, nil))
	assert.InDelta(2.0/3.0, DurationToBeats(Quarter, 0, &Tuplet{Num: 3, Den: 2}), 1e-9)
	assert.Equal(1.0, DurationToBeats(Quarter, 1, &Tuplet{Num: 3, Den: 2}))
}

func TestBeatDurationMsAt120Bpm(t *testing.T) {
	b := Beat{Duration: Quarter, Dotted: 0, Tempo: 120}
	assert.Equal(t, 500.0, BeatDurationMs(b))
}

func TestBeatDurationMsEighthAt60Bpm(t *testing.T) {
	b := Beat{Duration: Eighth, Dotted: 0, Tempo: 60}
	assert.Equal(t, 500.0, BeatDurationMs(b))
}

func TestBarMusicalBeatCountIsNumerator(t *testing.T) {
	bar := Bar{TimeSignature: TimeSignature{Numerator: 3, Denominator: 4}}
	assert.Equal(t, 3, BarMusicalBeatCount(bar))
}

func TestMusicalBeatPositionClampsToNumerator(t *testing.T) {
	bar := Bar{
		TimeSignature: TimeSignature{Numerator: 4, Denominator: 4},
		Beats: []Beat{
			{Duration: Whole},
			{Duration: Whole},
		},
	}
	// second beat starts after a whole note already exceeds the bar
	assert.Equal(t, 4, MusicalBeatPosition(bar, 1))
	assert.Equal(t, 1, MusicalBeatPosition(bar, 0))
}
