// Package gp3 implements the GP3 binary decoder: the same ByteCursor
// sequential-walk style as gp5, trimmed to GP3's simpler single-voice,
// no-RSE layout. Shared lookup tables are duplicated here rather than
// factored into a common package, so the two decoders stay independently
// readable.
package gp3

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
