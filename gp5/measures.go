package gp5

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
// each track, voice 1 then voice 2 then a line-break byte. Voice 2 only
// supplies beats when voice 1 came back empty.
func readMeasures(c *cursor.ByteCursor, headers []measureHeader, tracks []trackHeader) ([][]rawBar, error) {
	trackBars := make([][]rawBar, len(tracks))
	for t := range tracks {
		trackBars[t] = make([]rawBar, len(headers))
	}

	for m, mh := range headers {
		for t := range tracks {
			voice1, err := readVoice(c)
			if err != nil {
				return nil, err
			}
			voice2, err := readVoice(c)
			if err != nil {
				return nil, err
			}
			if err := c.Skip(1); err != nil { // line-break byte
				return nil, err
			}

			beats := voice1
			if len(beats) == 0 {
				beats = voice2
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
