package gp5

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/model"
)

type noteEffects struct {
	bend           *model.Bend
	hammerPull     bool
	letRing        bool
	staccato       bool
	palmMute       bool
	tremoloPicking *int
	slide          *int
	harmonic       *model.HarmonicType
	trill          bool
	vibrato        bool
}

// readNoteEffects reads a note's effects block, split across two flag
// bytes.
func readNoteEffects(c *cursor.ByteCursor) (noteEffects, error) {
	var eff noteEffects

	flags1, err := c.U8()
	if err != nil {
		return eff, err
	}
	flags2, err := c.U8()
	if err != nil {
		return eff, err
	}

	if flags1&0x01 != 0 {
		b, err := readBend(c)
		if err != nil {
			return eff, err
		}
		eff.bend = b
	}
	if flags1&0x02 != 0 {
		eff.hammerPull = true
	}
	if flags1&0x08 != 0 {
		eff.letRing = true
	}
	if flags1&0x10 != 0 {
		if err := c.Skip(5); err != nil { // grace note
			return eff, err
		}
	}

	if flags2&0x01 != 0 {
		eff.staccato = true
	}
	if flags2&0x02 != 0 {
		eff.palmMute = true
	}
	if flags2&0x04 != 0 {
		v, err := c.I8()
		if err != nil {
			return eff, err
		}
		vi := int(v)
		eff.tremoloPicking = &vi
	}
	if flags2&0x08 != 0 {
		v, err := c.U8()
		if err != nil {
			return eff, err
		}
		vi := int(v)
		eff.slide = &vi
	}
	if flags2&0x10 != 0 {
		t, err := c.I8()
		if err != nil {
			return eff, err
		}
		switch t {
		case 2:
			if err := c.Skip(3); err != nil {
				return eff, err
			}
		case 3:
			if err := c.Skip(1); err != nil {
				return eff, err
			}
		}
		eff.harmonic = harmonicFromCode(t)
	}
	if flags2&0x20 != 0 {
		if err := c.Skip(2); err != nil {
			return eff, err
		}
		eff.trill = true
	}
	if flags2&0x40 != 0 {
		eff.vibrato = true
	}

	return eff, nil
}
