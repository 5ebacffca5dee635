package facet

import "gonum.org/v1/plot"

// A Transformation maps a scale's interval onto a canvas interval and
// back. Inverse(from, to, Trans(from, to, x)) == x for every x.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
	Ticker  plot.Ticker
}

// LinearTrans maps from linearly onto to. Values outside from map outside
// to, so canvas positions off the data range unmap to data values off the
// range too.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
	Ticker: plot.DefaultTicks{},
}
