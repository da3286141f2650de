package gp3

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

// readTrackHeaders reads count track headers. GP3 tracks carry no RSE
// instrument block.
func readTrackHeaders(c *cursor.ByteCursor, count int) ([]trackHeader, error) {
	if err := c.Skip(1); err != nil { // blank byte before the first track
		return nil, err
	}

	headers := make([]trackHeader, 0, count)
	for i := 0; i < count; i++ {
		if i > 0 {
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
