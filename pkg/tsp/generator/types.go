package generator

import (
	"io"
	"math/rand/v2"
)

// Generator produces the point lines of an instance
type Generator interface {
	// Init hands the generator its random source.
	// Callers own seeding; a fixed seed gives a reproducible instance.
	Init(r *rand.Rand)

	// WriteLine writes a single point line to the writer
	WriteLine(w io.Writer) error

	// Description returns a human-readable description of the data format
	Description() string

	// DefaultCount returns the number of points written after the header
	DefaultCount() int64
}
