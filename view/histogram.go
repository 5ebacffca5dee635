package view

import (
	"image/color"

	"github.com/vdobler/brush/data"
	"github.com/vdobler/brush/facet"
	"github.com/vdobler/brush/geom"
	"github.com/vdobler/brush/link"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// MinHitHeight is the height over which low or empty bars stay hittable.
const MinHitHeight = vg.Length(6)

// Histogram draws one bar per bin. A bar is filled with the color of its
// bin center and drawn with the opacity of the bin channel.
type Histogram struct {
	hist    *link.Histogram
	opacity link.Reader
	cmap    palette.ColorMap
	bars    geom.Rectangle

	panel *facet.Panel
}

// NewHistogram returns a histogram view of h.
func NewHistogram(h *link.Histogram, opacity link.Reader, cmap palette.ColorMap) *Histogram {
	v := &Histogram{hist: h, opacity: opacity, cmap: cmap}

	v.bars = geom.Rectangle{
		XYUV:  data.Bars(h.Edges(), h.Counts()),
		Alpha: func(i int) float64 { return v.opacity.Value(link.Index(i)) },
		Fill:  func(i int) float64 { return v.hist.Bin(link.Index(i)).Center() },
		Default: geom.BoxStyle{
			Fill:   color.Black,
			Border: draw.LineStyle{Color: color.White, Width: vg.Length(0.5)},
		},
	}
	return v
}

// Attach places v on panel for hit tests and gives panel the color map
// of v. Draw attaches v too.
func (v *Histogram) Attach(panel *facet.Panel) {
	v.panel = panel
	panel.ColorMap = v.cmap
}

// Draw implements facet.Geom.Draw.
func (v *Histogram) Draw(panel *facet.Panel) {
	v.Attach(panel)
	v.bars.Draw(panel)
}

// DataRange implements plot.DataRanger.
func (v *Histogram) DataRange() (xmin, xmax, ymin, ymax float64) {
	lo, hi := v.hist.Domain()
	return lo, hi, 0, float64(v.hist.MaxCount())
}

// Region implements link.HitTester.
func (v *Histogram) Region() link.Rect {
	return panelRegion(v.panel)
}

// HitTest implements link.HitTester. A struck bar reports v as object and
// its bin as Hit.Sub. The bin is looked up in data space with BinOf, so a
// click on a shared edge goes to the bin owning that edge. Bars lower than
// MinHitHeight are hittable over MinHitHeight above their base.
func (v *Histogram) HitTest(x, y float64) (link.Hit, bool) {
	if v.panel == nil {
		return link.Hit{}, false
	}
	pt := vg.Point{X: vg.Length(x), Y: vg.Length(y)}
	if !v.panel.Contains(pt) {
		return link.Hit{}, false
	}
	vx, _ := v.panel.Unmap(pt)
	j := v.hist.BinOf(vx)
	if j == link.None {
		return link.Hit{}, false
	}
	base, _ := v.panel.MapXY(vx, 0)
	top, _ := v.panel.MapXY(vx, float64(v.hist.Count(j)))
	top.Y = max(top.Y, base.Y+MinHitHeight)
	if pt.Y < base.Y || pt.Y > top.Y {
		return link.Hit{}, false
	}
	return link.Hit{Object: v, Sub: int(j)}, true
}

// Center returns the canvas position of the middle of bar j's base.
func (v *Histogram) Center(j int) (vg.Point, bool) {
	if v.panel == nil || j < 0 || j >= v.hist.Len() {
		return vg.Point{}, false
	}
	return v.panel.MapXY(v.hist.Bin(link.Index(j)).Center(), 0)
}
