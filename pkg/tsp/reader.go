package tsp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Read parses an instance: a point count on the first line, then one
// "x y" line per point. Coordinates are not range checked and anything
// after the last point is ignored.
func Read(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, fmt.Errorf("%w: empty input", ErrInvalidHeader)
	}

	header := strings.TrimSpace(scanner.Text())
	n, err := strconv.Atoi(header)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHeader, header)
	}

	// the header is untrusted; only presize up to a generated instance's size
	inst := &Instance{Points: make([]Point, 0, min(n, PointCount))}
	for i := 0; i < n; i++ {
		line := i + 2
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read line %d: %w", line, err)
			}
			return nil, fmt.Errorf("%w: got %d of %d points", ErrTruncatedInstance, i, n)
		}

		p, err := parsePoint(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		inst.Points = append(inst.Points, p)
	}

	return inst, nil
}

func parsePoint(s string) (Point, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
	}

	return Point{X: x, Y: y}, nil
}
