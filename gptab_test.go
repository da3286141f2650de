package gptab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormatGPXMagic(t *testing.T) {
	f, err := DetectFormat([]byte("BCFZ\x00\x00\x00\x00"), "")
	assert.NoError(t, err)
	assert.Equal(t, GPX, f)
}

func TestDurationToBeatsWithDotsAndTuplet(t *testing.T) {
	beats := DurationToBeats(Quarter, 1, &Tuplet{Num: 3, Den: 2})
	assert.InDelta(t, 1.0, beats, 0.0001) // (1 + 0.5) * 2/3
}

func TestBeatDurationMsZeroTempoIsZero(t *testing.T) {
	ms := BeatDurationMs(Beat{Duration: Quarter, Tempo: 0})
	assert.Equal(t, 0.0, ms)
}

func TestBarMusicalBeatCountIsNumerator(t *testing.T) {
	bar := Bar{TimeSignature: TimeSignature{Numerator: 7, Denominator: 8}}
	assert.Equal(t, 7, BarMusicalBeatCount(bar))
}
