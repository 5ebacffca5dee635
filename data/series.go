package data

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
)

// ErrMalformed is returned for datasets which cannot be used as a series
// collection.
var ErrMalformed = errors.New("malformed dataset")

// Series is an ordered collection of trajectories. The position of a
// trajectory in the collection is its ordinal.
type Series []plotter.XYs

// Len returns the number of trajectories.
func (s Series) Len() int { return len(s) }

// Validate checks that s has at least one trajectory, that every trajectory
// has at least one point and that all coordinates are finite.
func (s Series) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no series", ErrMalformed)
	}
	for i, xys := range s {
		if len(xys) == 0 {
			return fmt.Errorf("%w: series %d has no points", ErrMalformed, i)
		}
		if err := plotter.CheckFloats(flatten(xys)...); err != nil {
			return fmt.Errorf("%w: series %d: %v", ErrMalformed, i, err)
		}
	}
	return nil
}

func flatten(xys plotter.XYs) []float64 {
	fs := make([]float64, 0, 2*len(xys))
	for _, xy := range xys {
		fs = append(fs, xy.X, xy.Y)
	}
	return fs
}

// DataRange returns the range covered by all trajectories.
func (s Series) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, xys := range s {
		x0, x1, y0, y1 := plotter.XYRange(xys)
		xmin, xmax = math.Min(xmin, x0), math.Max(xmax, x1)
		ymin, ymax = math.Min(ymin, y0), math.Max(ymax, y1)
	}
	return xmin, xmax, ymin, ymax
}

// MaxLen returns the number of points of the longest trajectory.
func (s Series) MaxLen() int {
	n := 0
	for _, xys := range s {
		if len(xys) > n {
			n = len(xys)
		}
	}
	return n
}

// Displacement returns for every trajectory the euclidean distance between
// its first and its last point.
func (s Series) Displacement() []float64 {
	d := make([]float64, len(s))
	for i, xys := range s {
		if len(xys) == 0 {
			d[i] = math.NaN()
			continue
		}
		first, last := xys[0], xys[len(xys)-1]
		d[i] = math.Hypot(last.X-first.X, last.Y-first.Y)
	}
	return d
}
