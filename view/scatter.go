package view

import (
	"math"

	"github.com/vdobler/brush/data"
	"github.com/vdobler/brush/facet"
	"github.com/vdobler/brush/geom"
	"github.com/vdobler/brush/link"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// HitSlack is added to the marker radius when hit testing markers.
const HitSlack = vg.Length(2)

var nowhere = link.Rect{
	MinX: math.Inf(1), MinY: math.Inf(1),
	MaxX: math.Inf(-1), MaxY: math.Inf(-1),
}

// Scatter draws every series as a path with a marker at each point. The
// path of a series is its rendered object; its color comes from the series
// value, its opacity from the series channel.
type Scatter struct {
	series  data.Series
	values  []float64
	opacity link.Reader
	cmap    palette.ColorMap

	paths   []*geom.Path
	markers geom.Point
	owner   []int // owner[m] is the series of marker m

	panel *facet.Panel
}

// NewScatter returns a scatter view of series colored by mapping values
// through cmap. Markers have the given radius.
func NewScatter(series data.Series, values []float64, opacity link.Reader, cmap palette.ColorMap, radius vg.Length) *Scatter {
	s := &Scatter{
		series:  series,
		values:  values,
		opacity: opacity,
		cmap:    cmap,
		paths:   make([]*geom.Path, len(series)),
	}

	// Aesthetics per series, shared by the path and the markers of a series.
	bySeries := struct{ Alpha, Color geom.Aesthetic }{
		Alpha: func(k int) float64 { return s.opacity.Value(link.Index(k)) },
		Color: func(k int) float64 { return s.values[k] },
	}

	var all plotter.XYs
	for k, xys := range series {
		k := k
		s.paths[k] = &geom.Path{
			XY:      xys,
			Default: draw.LineStyle{Width: vg.Length(1)},
		}
		geom.CopyAesthetics(s.paths[k], bySeries, func(int) int { return k })
		for range xys {
			s.owner = append(s.owner, k)
		}
		all = append(all, xys...)
	}

	s.markers = geom.Point{
		XY:      all,
		Default: draw.GlyphStyle{Radius: radius, Shape: draw.CircleGlyph{}},
	}
	geom.CopyAesthetics(&s.markers, bySeries, func(m int) int { return s.owner[m] })

	return s
}

// Attach places s on panel for hit tests and gives panel the color map
// of s. Draw attaches s too.
func (s *Scatter) Attach(panel *facet.Panel) {
	s.panel = panel
	panel.ColorMap = s.cmap
}

// Draw implements facet.Geom.Draw.
func (s *Scatter) Draw(panel *facet.Panel) {
	s.Attach(panel)
	for _, p := range s.paths {
		p.Draw(panel)
	}
	s.markers.Draw(panel)
}

// DataRange implements plot.DataRanger.
func (s *Scatter) DataRange() (xmin, xmax, ymin, ymax float64) {
	return s.series.DataRange()
}

// Objects implements link.ScatterTarget.
func (s *Scatter) Objects() []interface{} {
	objs := make([]interface{}, len(s.paths))
	for i, p := range s.paths {
		objs[i] = p
	}
	return objs
}

// Region implements link.HitTester. Before the first Draw the region is
// empty.
func (s *Scatter) Region() link.Rect {
	return panelRegion(s.panel)
}

// HitTest implements link.HitTester: the marker nearest to (x,y) within
// its radius plus HitSlack is struck. Hit.Sub is the point index inside
// the series.
func (s *Scatter) HitTest(x, y float64) (link.Hit, bool) {
	if s.panel == nil {
		return link.Hit{}, false
	}
	m, ok := s.markers.Nearest(s.panel, vg.Point{X: vg.Length(x), Y: vg.Length(y)}, HitSlack)
	if !ok {
		return link.Hit{}, false
	}
	k := s.owner[m]
	first := m
	for first > 0 && s.owner[first-1] == k {
		first--
	}
	return link.Hit{Object: s.paths[k], Sub: m - first}, true
}

// Position returns the canvas position of point p of series k.
func (s *Scatter) Position(k, p int) (vg.Point, bool) {
	if s.panel == nil || k < 0 || k >= len(s.series) || p < 0 || p >= len(s.series[k]) {
		return vg.Point{}, false
	}
	xy := s.series[k][p]
	return s.panel.MapXY(xy.X, xy.Y)
}

func panelRegion(p *facet.Panel) link.Rect {
	if p == nil {
		return nowhere
	}
	return link.Rect{
		MinX: float64(p.Canvas.Min.X), MinY: float64(p.Canvas.Min.Y),
		MaxX: float64(p.Canvas.Max.X), MaxY: float64(p.Canvas.Max.Y),
	}
}
