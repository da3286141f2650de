package gp3

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/model"
)

type noteEffects struct {
	bend       *model.Bend
	hammerPull bool
	letRing    bool
	slide      *int
}

// readNoteEffects reads GP3's note effects: a single flag byte (bend,
// hammer-on/pull-off, let-ring, grace note, slide), with no second byte
// of the staccato/palm-mute/tremolo-picking/harmonic/trill/vibrato
// fields GP5 adds.
func readNoteEffects(c *cursor.ByteCursor) (noteEffects, error) {
	var eff noteEffects

	flags, err := c.U8()
	if err != nil {
		return eff, err
	}

	if flags&0x01 != 0 {
		b, err := readBend(c)
		if err != nil {
			return eff, err
		}
		eff.bend = b
	}
	if flags&0x02 != 0 {
		eff.hammerPull = true
	}
	if flags&0x04 != 0 { // slide, pre-GP5 single-bit form
		v := 1
		eff.slide = &v
	}
	if flags&0x08 != 0 {
		eff.letRing = true
	}
	if flags&0x10 != 0 {
		if err := c.Skip(5); err != nil { // grace note
			return eff, err
		}
	}

	return eff, nil
}
