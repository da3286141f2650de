package gp5

import "github.com/jsphweid/gptab/cursor"
import "github.com/jsphweid/gptab/model"

type bendPoint struct {
	position int32
	value    int32
	vibrato  bool
}

// readBendPoints reads a bend's type byte, overall value, and point
// list, returning the points; the type byte only distinguishes
// bend/release/tremolo-bar shapes that model.Bend doesn't carry, so it's
// discarded once read.
func readBendPoints(c *cursor.ByteCursor) ([]bendPoint, error) {
	if _, err := c.I8(); err != nil { // type
		return nil, err
	}
	if _, err := c.I32(); err != nil { // overall value
		return nil, err
	}
	pointCount, err := c.I32()
	if err != nil {
		return nil, err
	}
	points := make([]bendPoint, 0, pointCount)
	for i := 0; i < int(pointCount); i++ {
		pos, err := c.I32()
		if err != nil {
			return nil, err
		}
		val, err := c.I32()
		if err != nil {
			return nil, err
		}
		vib, err := c.Bool()
		if err != nil {
			return nil, err
		}
		points = append(points, bendPoint{position: pos, value: val, vibrato: vib})
	}
	return points, nil
}

// skipBend consumes a bend/tremolo-bar block without keeping its points.
func skipBend(c *cursor.ByteCursor) error {
	_, err := readBendPoints(c)
	return err
}

// buildBend converts the point list into the Origin/Middle/Destination
// shape model.Bend carries; GP bend values are in hundredths of a whole
// step. With 3 or more points, the middle sample is taken from the
// midpoint of the list; with fewer, Middle is 0.
func buildBend(points []bendPoint) *model.Bend {
	if len(points) == 0 {
		return nil
	}
	origin := float64(points[0].value) / 100
	dest := float64(points[len(points)-1].value) / 100
	var middle float64
	if len(points) >= 3 {
		middle = float64(points[len(points)/2].value) / 100
	}
	return &model.Bend{Origin: origin, Destination: dest, Middle: middle}
}

// readBend reads a bend block and converts it to model.Bend.
func readBend(c *cursor.ByteCursor) (*model.Bend, error) {
	points, err := readBendPoints(c)
	if err != nil {
		return nil, err
	}
	return buildBend(points), nil
}
