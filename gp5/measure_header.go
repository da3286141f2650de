package gp5

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/model"
)

// measureHeader is one entry of the GP5 measure-header table, carrying
// the per-bar fields that a track's rawBar is later stamped with.
type measureHeader struct {
	numerator, denominator int
	repeatOpen             bool
	repeatCloseCount       int
	doubleBar              bool
	marker                 *model.Section
	keySig                 *model.KeySignature
}

const (
	mhNumerator    = 0x01
	mhDenominator  = 0x02
	mhRepeatOpen   = 0x04
	mhRepeatClose  = 0x08
	mhAltEnding    = 0x10
	mhMarker       = 0x20
	mhKeySignature = 0x40
	mhDoubleBar    = 0x80
)

// readMeasureHeaders reads count measure headers, carrying forward the
// numerator/denominator of the previous header when a header doesn't
// set one.
func readMeasureHeaders(c *cursor.ByteCursor, count int) ([]measureHeader, error) {
	headers := make([]measureHeader, 0, count)
	prevNum, prevDen := 4, 4

	for i := 0; i < count; i++ {
		if i > 0 {
			if err := c.Skip(1); err != nil {
				return nil, err
			}
		}
		flags, err := c.U8()
		if err != nil {
			return nil, err
		}

		h := measureHeader{numerator: prevNum, denominator: prevDen}

		if flags&mhNumerator != 0 {
			n, err := c.I8()
			if err != nil {
				return nil, err
			}
			h.numerator = int(n)
		}
		if flags&mhDenominator != 0 {
			d, err := c.I8()
			if err != nil {
				return nil, err
			}
			h.denominator = int(d)
		}
		if flags&mhRepeatOpen != 0 {
			h.repeatOpen = true
		}
		if flags&mhRepeatClose != 0 {
			n, err := c.I8()
			if err != nil {
				return nil, err
			}
			cnt := int(n)
			if cnt > 0 {
				cnt--
			}
			h.repeatCloseCount = cnt
		}
		if flags&mhMarker != 0 {
			name, err := c.IntByteSizeString()
			if err != nil {
				return nil, err
			}
			if _, err := c.Bytes(3); err != nil { // RGB
				return nil, err
			}
			if err := c.Skip(1); err != nil { // pad
				return nil, err
			}
			h.marker = &model.Section{Text: name}
		}
		if flags&mhKeySignature != 0 {
			acc, err := c.I8()
			if err != nil {
				return nil, err
			}
			mode, err := c.I8()
			if err != nil {
				return nil, err
			}
			m := model.Major
			if mode == 1 {
				m = model.Minor
			}
			h.keySig = &model.KeySignature{AccidentalCount: int(acc), Mode: m}
		}
		if flags&mhDoubleBar != 0 {
			h.doubleBar = true
		}
		if flags&mhAltEnding != 0 {
			if _, err := c.U8(); err != nil { // alternate-ending number, unmodeled
				return nil, err
			}
		} else {
			if err := c.Skip(1); err != nil {
				return nil, err
			}
		}
		if flags&(mhNumerator|mhDenominator) != 0 {
			if err := c.Skip(4); err != nil { // beam-group data
				return nil, err
			}
		}
		if _, err := c.U8(); err != nil { // triplet feel
			return nil, err
		}

		prevNum, prevDen = h.numerator, h.denominator
		headers = append(headers, h)
	}

	return headers, nil
}
