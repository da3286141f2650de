package gp3

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/model"
)

type bendPoint struct {
	position int32
	value    int32
	vibrato  bool
}

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

func readBend(c *cursor.ByteCursor) (*model.Bend, error) {
	points, err := readBendPoints(c)
	if err != nil {
		return nil, err
	}
	return buildBend(points), nil
}
