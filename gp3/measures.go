package gp3

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/model"
)

type rawBar struct {
	timeSig     model.TimeSignature
	keySig      *model.KeySignature
	section     *model.Section
	repeatStart bool
	repeatEnd   bool
	repeatCount int
	beats       []rawBeat
}

// readMeasures reads the row-major measure table: for each measure, for
// each track, a single voice with no line-break byte (unlike gp5's two
// voices plus line-break).
func readMeasures(c *cursor.ByteCursor, headers []measureHeader, tracks []trackHeader) ([][]rawBar, error) {
	trackBars := make([][]rawBar, len(tracks))
	for t := range tracks {
		trackBars[t] = make([]rawBar, len(headers))
	}

	for m, mh := range headers {
		for t := range tracks {
			beats, err := readVoice(c)
			if err != nil {
				return nil, err
			}

			trackBars[t][m] = rawBar{
				timeSig:     model.TimeSignature{Numerator: mh.numerator, Denominator: mh.denominator},
				keySig:      mh.keySig,
				section:     mh.marker,
				repeatStart: mh.repeatOpen,
				repeatEnd:   mh.repeatCloseCount > 0,
				repeatCount: mh.repeatCloseCount,
				beats:       beats,
			}
		}
	}

	return trackBars, nil
}
