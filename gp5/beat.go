package gp5

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/model"
)

type rawBeat struct {
	notes    []rawNote
	duration model.Duration
	tuplet   *model.Tuplet
	dotted   int
	isRest   bool
}

const (
	beatDotted      = 0x01
	beatChord       = 0x02
	beatText        = 0x04
	beatEffects     = 0x08
	beatMixTable    = 0x10
	beatTuplet      = 0x20
	beatStatus      = 0x40
)

// readVoice reads a voice's beat count followed by that many beats.
func readVoice(c *cursor.ByteCursor) ([]rawBeat, error) {
	beatCount, err := c.I32()
	if err != nil {
		return nil, err
	}
	beats := make([]rawBeat, 0, beatCount)
	for i := 0; i < int(beatCount); i++ {
		b, err := readBeat(c)
		if err != nil {
			return nil, err
		}
		beats = append(beats, b)
	}
	return beats, nil
}

// readBeat reads one beat: flags, optional status, duration code,
// optional tuplet, optional chord/text/effects/mix-table blocks, a
// string-mask byte selecting which of the 7 GP string slots carry a
// note, and a trailing flags2 word.
func readBeat(c *cursor.ByteCursor) (rawBeat, error) {
	flags, err := c.U8()
	if err != nil {
		return rawBeat{}, err
	}

	if flags&beatStatus != 0 {
		if _, err := c.U8(); err != nil { // status: 0 empty, 2 rest
			return rawBeat{}, err
		}
	}

	durCode, err := c.I8()
	if err != nil {
		return rawBeat{}, err
	}
	duration := durationFromCode(durCode)

	dotted := 0
	if flags&beatDotted != 0 {
		dotted = 1
	}

	var tuplet *model.Tuplet
	if flags&beatTuplet != 0 {
		code, err := c.I32()
		if err != nil {
			return rawBeat{}, err
		}
		if t, ok := tupletByCode[int(code)]; ok {
			tuplet = &model.Tuplet{Num: t.Num, Den: t.Den}
		}
	}

	if flags&beatChord != 0 {
		if err := skipChord(c); err != nil {
			return rawBeat{}, err
		}
	}
	if flags&beatText != 0 {
		if _, err := c.IntByteSizeString(); err != nil {
			return rawBeat{}, err
		}
	}
	if flags&beatEffects != 0 {
		if err := skipBeatEffects(c); err != nil {
			return rawBeat{}, err
		}
	}
	if flags&beatMixTable != 0 {
		if err := skipMixTableChange(c); err != nil {
			return rawBeat{}, err
		}
	}

	stringMask, err := c.U8()
	if err != nil {
		return rawBeat{}, err
	}
	var notes []rawNote
	for gpString := 1; gpString <= 7; gpString++ {
		bit := uint(7 - gpString)
		if stringMask&(1<<bit) == 0 {
			continue
		}
		n, err := readNote(c)
		if err != nil {
			return rawBeat{}, err
		}
		n.stringIdx = gpString - 1
		notes = append(notes, n)
	}

	flags2, err := c.I16()
	if err != nil {
		return rawBeat{}, err
	}
	if flags2&0x0800 != 0 {
		if err := c.Skip(1); err != nil {
			return rawBeat{}, err
		}
	}

	return rawBeat{notes: notes, duration: duration, tuplet: tuplet, dotted: dotted, isRest: len(notes) == 0}, nil
}
