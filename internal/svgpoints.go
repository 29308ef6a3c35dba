package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read a point cloud out of an SVG document. This is not a full (or even
// correct) SVG reader: it takes the centre of every <circle>, then every vertex
// of every <polygon>, and ignores transforms. Z is always zero.
//
// SVG's y axis points down, so y is negated to keep the picture's orientation.
func ReadSVGPoints(r io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []Point
	for _, circle := range root.FindAll("circle") {
		x, err := parseCoordinate(circle.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrap(err, "circle cx")
		}
		y, err := parseCoordinate(circle.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle cy")
		}
		points = append(points, Point{X: x, Y: -y})
	}

	for _, polygon := range root.FindAll("polygon") {
		for _, pair := range strings.Fields(polygon.Attributes["points"]) {
			coordinates := strings.Split(pair, ",")
			if len(coordinates) != 2 {
				return nil, errors.Errorf("invalid point string %q", pair)
			}
			x, err := parseCoordinate(coordinates[0])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid x value in %q", pair)
			}
			y, err := parseCoordinate(coordinates[1])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid y value in %q", pair)
			}
			points = append(points, Point{X: x, Y: -y})
		}
	}

	if len(points) == 0 {
		return nil, errors.New("no circles or polygons found")
	}
	return points, nil
}

// Missing attributes default to zero, as in SVG.
func parseCoordinate(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
