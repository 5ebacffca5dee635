package data

import (
	"math"
	"math/rand"

	"gonum.org/v1/plot/plotter"
)

// RandomWalks returns n two-dimensional random walks of steps steps each
// starting at the origin, together with the final displacement of each
// walk. The same seed yields the same walks.
func RandomWalks(n, steps int, seed int64) (Series, []float64) {
	rnd := rand.New(rand.NewSource(seed))
	series := make(Series, n)
	for i := range series {
		xys := make(plotter.XYs, steps+1)
		for s := 1; s <= steps; s++ {
			phi := 2 * math.Pi * rnd.Float64()
			xys[s].X = xys[s-1].X + math.Cos(phi)
			xys[s].Y = xys[s-1].Y + math.Sin(phi)
		}
		series[i] = xys
	}
	return series, series.Displacement()
}
