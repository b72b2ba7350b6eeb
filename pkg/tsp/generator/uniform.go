package generator

import (
	"io"
	"math/rand/v2"

	"pkg.jsn.cam/tspgen/pkg/tsp"
)

// UniformGenerator draws both coordinates independently and uniformly from
// [tsp.MinCoord, tsp.MaxCoord].
type UniformGenerator struct {
	rand *rand.Rand
	buf  []byte
}

// NewUniform returns a UniformGenerator ready to use with r.
func NewUniform(r *rand.Rand) *UniformGenerator {
	g := &UniformGenerator{}
	g.Init(r)
	return g
}

// Init sets the random source and resets the line buffer.
func (g *UniformGenerator) Init(r *rand.Rand) {
	g.rand = r
	g.buf = make([]byte, 0, 16)
}

// Next samples a point.
func (g *UniformGenerator) Next() tsp.Point {
	return tsp.Point{
		X: tsp.MinCoord + g.rand.IntN(tsp.MaxCoord-tsp.MinCoord+1),
		Y: tsp.MinCoord + g.rand.IntN(tsp.MaxCoord-tsp.MinCoord+1),
	}
}

func (g *UniformGenerator) WriteLine(w io.Writer) error {
	g.buf = append(g.Next().Append(g.buf[:0]), '\n')
	_, err := w.Write(g.buf)
	return err
}

func (g *UniformGenerator) Description() string {
	return "Uniform random points: x y, both in [0, 10000]"
}

func (g *UniformGenerator) DefaultCount() int64 {
	return tsp.PointCount
}
