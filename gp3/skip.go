package gp3

import "github.com/jsphweid/gptab/cursor"

// skipChord mirrors gp5's chord diagram consumption: both short and long
// forms, selected by the header byte's low bit. Neither is represented
// in model.Song.
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

	if err := c.Skip(16); err != nil {
		return err
	}
	if _, err := c.ByteSizeString(20); err != nil {
		return err
	}
	if err := c.Skip(4); err != nil {
		return err
	}
	if _, err := c.I32(); err != nil {
		return err
	}
	for i := 0; i < 7; i++ {
		if _, err := c.I32(); err != nil {
			return err
		}
	}
	if _, err := c.U8(); err != nil {
		return err
	}
	if err := c.Skip(15); err != nil {
		return err
	}
	for i := 0; i < 7; i++ {
		if _, err := c.I8(); err != nil {
			return err
		}
	}
	if err := c.Skip(1); err != nil {
		return err
	}
	for i := 0; i < 7; i++ {
		if _, err := c.I8(); err != nil {
			return err
		}
	}
	if _, err := c.Bool(); err != nil {
		return err
	}
	return nil
}

// skipBeatEffects consumes GP3's single-byte beat effects: tap/slap/pop
// and a flat int32 tremolo-bar dip, simpler than GP5's bend-shaped one.
func skipBeatEffects(c *cursor.ByteCursor) error {
	flags, err := c.U8()
	if err != nil {
		return err
	}
	if flags&0x20 != 0 { // tap/slap/pop
		if _, err := c.U8(); err != nil {
			return err
		}
	}
	if flags&0x04 != 0 { // tremolo bar dip
		if _, err := c.I32(); err != nil {
			return err
		}
	}
	return nil
}

// skipMixTableChange consumes GP3's simplified mix-table change: the
// same optional instrument/volume/pan/chorus/reverb/phaser/tremolo
// fields as GP5, without the RSE tempo-name string or trailing
// apply-to-all-tracks flags byte.
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
	tempo, err := c.I32()
	if err != nil {
		return err
	}
	if tempo >= 0 {
		if err := c.Skip(1); err != nil {
			return err
		}
	}
	return nil
}
