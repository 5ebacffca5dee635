package facet

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Geom draws data onto a Panel.
type Geom interface {
	Draw(p *Panel)
}

// ----------------------------------------------------------------------------
// Panel

// A Panel represents one panel in a faceted plot.
type Panel struct {
	Title  string
	Geoms  []Geom
	Canvas draw.Canvas
	X, Y   *Scale

	// ColorMap maps the Color and Fill aesthetics to colors. Its Min and
	// Max must be set.
	ColorMap palette.ColorMap

	Style *Style
}

// InRangeXY reports whether (x,y) lies inside the scale ranges of p.
func (p *Panel) InRangeXY(x, y float64) bool {
	return p.X.InRange(x) && p.Y.InRange(y)
}

// MapXY maps the data coordinate (x,y) to a canvas point. The returned
// bool reports whether (x,y) lies inside the panel's scales.
func (p *Panel) MapXY(x, y float64) (vg.Point, bool) {
	cx := Interval{float64(p.Canvas.Min.X), float64(p.Canvas.Max.X)}
	cy := Interval{float64(p.Canvas.Min.Y), float64(p.Canvas.Max.Y)}
	xu := p.X.Trans.Trans(p.X.Interval, cx, x)
	yu := p.Y.Trans.Trans(p.Y.Interval, cy, y)
	return vg.Point{X: vg.Length(xu), Y: vg.Length(yu)}, p.InRangeXY(x, y)
}

// Unmap maps the canvas point pt back to data coordinates.
func (p *Panel) Unmap(pt vg.Point) (x, y float64) {
	cx := Interval{float64(p.Canvas.Min.X), float64(p.Canvas.Max.X)}
	cy := Interval{float64(p.Canvas.Min.Y), float64(p.Canvas.Max.Y)}
	x = p.X.Trans.Inverse(p.X.Interval, cx, float64(pt.X))
	y = p.Y.Trans.Inverse(p.Y.Interval, cy, float64(pt.Y))
	return x, y
}

// Contains reports whether the canvas point pt lies on p.
func (p *Panel) Contains(pt vg.Point) bool {
	return p.Canvas.Contains(pt)
}

// MapColor maps a data value v to a color. Values outside the color map's
// range are clamped, NaN maps to nil.
func (p *Panel) MapColor(v float64) color.Color {
	if p.ColorMap == nil || math.IsNaN(v) {
		return nil
	}
	v = math.Max(p.ColorMap.Min(), math.Min(p.ColorMap.Max(), v))
	col, err := p.ColorMap.At(v)
	if err != nil {
		return nil
	}
	return col
}

// GeomDefault returns the default geom style of p.
func (p *Panel) GeomDefault() GeomStyle {
	if p.Style == nil {
		return DefaultGeomStyle
	}
	return p.Style.GeomDefault
}
