// Package gp5 implements the sequential GP5 binary decoder: a
// ByteCursor walk over score info, MIDI channels, measure and track
// headers, and row-major measures of beats and notes.
package gp5

import "github.com/jsphweid/gptab/model"

var durationByCode = map[int8]model.Duration{
	-2: model.Whole,
	-1: model.Half,
	0:  model.Quarter,
	1:  model.Eighth,
	2:  model.Sixteenth,
	3:  model.ThirtySecond,
	4:  model.SixtyFourth,
	5:  model.HundredTwentyEighth,
}

func durationFromCode(code int8) model.Duration {
	if d, ok := durationByCode[code]; ok {
		return d
	}
	return model.Quarter
}

type tupletRatio struct{ Num, Den int }

var tupletByCode = map[int]tupletRatio{
	3:  {3, 2},
	5:  {5, 4},
	6:  {6, 4},
	7:  {7, 4},
	9:  {9, 8},
	10: {10, 8},
	11: {11, 8},
	12: {12, 8},
	13: {13, 8},
}

var harmonicByCode = map[int8]model.HarmonicType{
	1: model.HarmonicNatural,
	2: model.HarmonicArtificial,
	3: model.HarmonicTapped,
	4: model.HarmonicPinch,
	5: model.HarmonicSemi,
}

func harmonicFromCode(code int8) *model.HarmonicType {
	if h, ok := harmonicByCode[code]; ok {
		return &h
	}
	return nil
}
