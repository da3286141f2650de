package gp5

import "github.com/jsphweid/gptab/cursor"

// skipChord consumes a chord diagram, in either its short (GP3/4
// compatible) or long form, selected by the low bit of a leading header
// byte. None of model.Song represents chord diagrams; this only needs to
// leave the cursor in the right place for what follows. The exact byte
// layout beyond the header bit is not pinned down by any invariant, so
// this is a best-effort reconstruction of the well-known GP5 shape.
func skipChord(c *cursor.ByteCursor) error {
	header, err := c.U8()
	if err != nil {
		return err
	}
	if header&0x01 == 0 {
		if _, err := c.ByteSizeString(20); err != nil {
			return err
		}
		if _, err := c.I32(); err != nil { // first fret
			return err
		}
		for i := 0; i < 6; i++ {
			if _, err := c.I32(); err != nil {
				return err
			}
		}
		return nil
	}

	if err := c.Skip(16); err != nil { // sharp/root/type/extension/bass/tonality flags
		return err
	}
	if _, err := c.ByteSizeString(20); err != nil { // name
		return err
	}
	if err := c.Skip(4); err != nil { // alteration flags
		return err
	}
	if _, err := c.I32(); err != nil { // first fret
		return err
	}
	for i := 0; i < 7; i++ {
		if _, err := c.I32(); err != nil { // fret per string
			return err
		}
	}
	if _, err := c.U8(); err != nil { // barre count
		return err
	}
	if err := c.Skip(15); err != nil { // barre fret/start/end arrays
		return err
	}
	for i := 0; i < 7; i++ {
		if _, err := c.I8(); err != nil { // omissions
			return err
		}
	}
	if err := c.Skip(1); err != nil {
		return err
	}
	for i := 0; i < 7; i++ {
		if _, err := c.I8(); err != nil { // fingering
			return err
		}
	}
	if _, err := c.Bool(); err != nil { // show fingering
		return err
	}
	return nil
}

// skipBeatEffects consumes a beat-level effects block: tap/slap/pop,
// tremolo bar (a bend-shaped point list), upstroke/downstroke duration,
// and pickstroke. None of it is represented in model.Song.
func skipBeatEffects(c *cursor.ByteCursor) error {
	flags1, err := c.U8()
	if err != nil {
		return err
	}
	flags2, err := c.U8()
	if err != nil {
		return err
	}
	if flags1&0x20 != 0 { // tap/slap/pop
		if _, err := c.U8(); err != nil {
			return err
		}
	}
	if flags2&0x04 != 0 { // tremolo bar (bend-shaped)
		if err := skipBend(c); err != nil {
			return err
		}
	}
	if flags1&0x40 != 0 { // upstroke/downstroke pair
		if err := c.Skip(2); err != nil {
			return err
		}
	}
	if flags2&0x02 != 0 { // pickstroke
		if _, err := c.U8(); err != nil {
			return err
		}
	}
	return nil
}

// skipMixTableChange consumes an optional instrument/volume/pan/chorus/
// reverb/phaser/tremolo/tempo change event. Each numeric field is a
// signed byte (-1 means unchanged) optionally followed by a transition
// duration byte when it is set.
func skipMixTableChange(c *cursor.ByteCursor) error {
	readOptional := func() error {
		v, err := c.I8()
		if err != nil {
			return err
		}
		if v >= 0 {
			if err := c.Skip(1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := readOptional(); err != nil { // instrument
		return err
	}
	for i := 0; i < 5; i++ { // volume, pan, chorus, reverb, phaser
		if err := readOptional(); err != nil {
			return err
		}
	}
	if err := readOptional(); err != nil { // tremolo
		return err
	}
	if _, err := c.IntByteSizeString(); err != nil { // tempo name
		return err
	}
	tempo, err := c.I32()
	if err != nil {
		return err
	}
	if tempo >= 0 {
		if err := c.Skip(1); err != nil {
			return err
		}
	}
	if err := c.Skip(1); err != nil { // apply-to-all-tracks flags
		return err
	}
	return nil
}
