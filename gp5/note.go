package gp5

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/util"
)

// rawNote is a note's file-resolved fields, carried until the track's
// tuning/capo let convertNote compute its pitch class.
type rawNote struct {
	stringIdx int
	fret      int
	tied      bool
	dead      bool
	accent    bool
	heavy     bool
	effects   noteEffects
}

const (
	noteHeavyAccent = 0x02
	noteType        = 0x20
	noteVelocity    = 0x10
	noteFingering   = 0x80
	noteDuration    = 0x01
	noteAccent      = 0x40
	noteEffectsFlag = 0x08
)

// readNote reads one note within a beat's string mask.
func readNote(c *cursor.ByteCursor) (rawNote, error) {
	var n rawNote

	flags, err := c.U8()
	if err != nil {
		return n, err
	}
	n.heavy = flags&noteHeavyAccent != 0
	n.accent = flags&noteAccent != 0

	nt := int8(1)
	if flags&noteType != 0 {
		nt, err = c.I8()
		if err != nil {
			return n, err
		}
	}
	n.tied = nt == 2
	n.dead = nt == 3

	if flags&noteVelocity != 0 {
		if _, err := c.I8(); err != nil { // velocity, unmodeled
			return n, err
		}
	}
	if flags&noteType != 0 {
		fret, err := c.I8()
		if err != nil {
			return n, err
		}
		n.fret = util.Clamp(int(fret), 0, 99)
	}
	if flags&noteFingering != 0 {
		if err := c.Skip(2); err != nil {
			return n, err
		}
	}
	if flags&noteDuration != 0 {
		if err := c.Skip(8); err != nil { // duration percent float
			return n, err
		}
	}
	if _, err := c.U8(); err != nil { // GP5's second note-flags byte
		return n, err
	}
	if flags&noteEffectsFlag != 0 {
		eff, err := readNoteEffects(c)
		if err != nil {
			return n, err
		}
		n.effects = eff
	}

	return n, nil
}
