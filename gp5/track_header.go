package gp5

import "github.com/jsphweid/gptab/cursor"

type trackHeader struct {
	percussion    bool
	name          string
	tuningMidi    []int
	port          int
	channelIndex  int
	effectChannel int
	fretCount     int
	capoFret      int
}

// readTrackHeaders reads count track headers. GP5's header shape varies
// with MINOR: an extra blank byte precedes every track when MINOR == 0,
// and RSE fields grow when MINOR > 0.
func readTrackHeaders(c *cursor.ByteCursor, count int, minor int) ([]trackHeader, error) {
	if err := c.Skip(1); err != nil { // blank byte before the first track
		return nil, err
	}

	headers := make([]trackHeader, 0, count)
	for i := 0; i < count; i++ {
		if minor == 0 && i > 0 {
			if err := c.Skip(1); err != nil {
				return nil, err
			}
		}

		flags1, err := c.U8()
		if err != nil {
			return nil, err
		}
		name, err := c.ByteSizeString(40)
		if err != nil {
			return nil, err
		}
		numStrings, err := c.I32()
		if err != nil {
			return nil, err
		}
		tuning := make([]int, 0, 7)
		for j := 0; j < 7; j++ {
			v, err := c.I32()
			if err != nil {
				return nil, err
			}
			if j < int(numStrings) {
				tuning = append(tuning, int(v))
			}
		}
		port, err := c.I32()
		if err != nil {
			return nil, err
		}
		chIdx, err := c.I32()
		if err != nil {
			return nil, err
		}
		fxIdx, err := c.I32()
		if err != nil {
			return nil, err
		}
		fretCount, err := c.I32()
		if err != nil {
			return nil, err
		}
		capoFret, err := c.I32()
		if err != nil {
			return nil, err
		}
		if err := c.Skip(4); err != nil { // colour
			return nil, err
		}
		if _, err := c.I16(); err != nil { // display flags
			return nil, err
		}
		if _, err := c.U8(); err != nil { // auto accent
			return nil, err
		}
		if _, err := c.U8(); err != nil { // MIDI bank
			return nil, err
		}
		if _, err := c.U8(); err != nil { // humanize
			return nil, err
		}
		if err := c.Skip(24); err != nil { // reserved
			return nil, err
		}
		if minor == 0 {
			for k := 0; k < 4; k++ {
				if _, err := c.I32(); err != nil { // RSE instrument
					return nil, err
				}
			}
		} else {
			if _, err := c.I32(); err != nil { // RSE instrument
				return nil, err
			}
			if _, err := c.I16(); err != nil {
				return nil, err
			}
			if err := c.Skip(2); err != nil { // pad
				return nil, err
			}
			if err := c.Skip(5); err != nil { // 4-band equaliser + master gain
				return nil, err
			}
			if _, err := c.IntByteSizeString(); err != nil { // RSE instrument effect
				return nil, err
			}
			if _, err := c.IntByteSizeString(); err != nil { // RSE instrument effect 2
				return nil, err
			}
		}

		headers = append(headers, trackHeader{
			percussion:    flags1&0x01 != 0,
			name:          name,
			tuningMidi:    tuning,
			port:          int(port),
			channelIndex:  int(chIdx) - 1,
			effectChannel: int(fxIdx) - 1,
			fretCount:     int(fretCount),
			capoFret:      int(capoFret),
		})
	}

	return headers, nil
}
