package main

import (
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"pkg.jsn.cam/tspgen/pkg/tsp"
	"pkg.jsn.cam/tspgen/pkg/tsp/generator"
)

/*generates a random TSP instance: a point count followed by that many "x y" lines*/

func main() {
	log.SetPrefix("tspgen: ")

	var progress io.Writer
	if term.IsTerminal(int(os.Stderr.Fd())) {
		progress = os.Stderr
	}

	// seeded from the runtime's random source, so every run differs
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	g := generator.NewUniform(r)
	log.Printf("Generator: %s", g.Description())

	summary, err := run(tsp.DefaultPath, g, progress)
	if err != nil {
		log.Fatalf("Failed to generate instance: %v", err)
	}

	log.Printf("run %s: wrote %d points to %s (%s) in %v",
		summary.ID, summary.Points, summary.Path,
		humanize.Bytes(uint64(summary.Bytes)), summary.Elapsed)
}

func run(path string, g generator.Generator, progress io.Writer) (generator.Summary, error) {
	return generator.WriteFile(path, g, generator.Options{Progress: progress})
}
