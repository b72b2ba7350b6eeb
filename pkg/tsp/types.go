package tsp

import "strconv"

const (
	// PointCount is the number of points in a generated instance.
	PointCount = 10000

	MinCoord = 0
	MaxCoord = 10000

	// DefaultPath is the file the generator writes, relative to the working directory.
	DefaultPath = "tsp_hardest_case.in"
)

// Point is a single city. Duplicates are allowed.
type Point struct {
	X, Y int
}

// Append appends the "x y" form of p to b.
func (p Point) Append(b []byte) []byte {
	b = strconv.AppendInt(b, int64(p.X), 10)
	b = append(b, ' ')
	return strconv.AppendInt(b, int64(p.Y), 10)
}

func (p Point) String() string {
	return string(p.Append(nil))
}

// InRange reports whether both coordinates lie in [MinCoord, MaxCoord].
func (p Point) InRange() bool {
	return p.X >= MinCoord && p.X <= MaxCoord && p.Y >= MinCoord && p.Y <= MaxCoord
}

// Instance is a parsed instance file as a solver sees it.
type Instance struct {
	Points []Point
}
