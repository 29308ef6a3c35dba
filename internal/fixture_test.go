package internal

import (
	"embed"
	"log"
	"math"
)

// Fixtures are point clouds drawn as SVG circles (and polygon vertices), read
// with ReadSVGPoints. They are available by name in the fixtures/ directory,
// sans extension. If anything goes wrong, the test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := ReadSVGPoints(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return points
}

// Some ad hoc code specified fixtures

func UnitSquare() []Point {
	return []Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
}

// Points on a circle, with a little z so we can check it's carried through
// and ignored.
func CirclePoints(n int, radius float64) []Point {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle), Z: float64(i)}
	}
	return points
}

// Concentric rings, each rotated half a step from the last, like the sample
// clouds a renderer would feed in.
func Rings(count, perRing int) []Point {
	points := []Point{{X: 0, Y: 0}}
	for ring := 1; ring <= count; ring++ {
		offset := math.Pi / float64(perRing) * float64(ring%2)
		for i := 0; i < perRing; i++ {
			angle := offset + 2*math.Pi*float64(i)/float64(perRing)
			points = append(points, Point{
				X: float64(ring) * math.Cos(angle),
				Y: float64(ring) * math.Sin(angle),
			})
		}
	}
	return points
}

func Grid(columns, rows int, spacing float64) []Point {
	points := make([]Point, 0, columns*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < columns; i++ {
			points = append(points, Point{X: float64(i) * spacing, Y: float64(j) * spacing, Z: 0.25})
		}
	}
	return points
}

// Convert a neighbor table using -1 for "no neighbor" into neighbor lists.
func neighborsFromInts(rows ...[3]int) []NeighborList {
	lists := make([]NeighborList, len(rows))
	for i, row := range rows {
		for slot, index := range row {
			if index >= 0 {
				lists[i][slot] = Neighbor(index)
			}
		}
	}
	return lists
}

func neighborInts(lists []NeighborList) [][3]int {
	rows := make([][3]int, len(lists))
	for i, list := range lists {
		for slot, neighbor := range list {
			if index, ok := neighbor.Index(); ok {
				rows[i][slot] = index
			} else {
				rows[i][slot] = -1
			}
		}
	}
	return rows
}
