// Package geom provides basic geometric objects to display data in a plot.
//
// The overall concept is loosely based in ggplot2's geoms. Each geom has
// some required aesthetics, typically an (x,y) coordinate and may provide
// the ability to optionally map other aestetics like line or fill color
// or size.
//
// The required aestethics are a field like XY in the various geoms while the
// optional aestehtics are mapped through optional (Discrete)Aesthetics
// functions which provide a (discrete) value for a data point.
//
// Besides drawing, a Point can locate itself on a panel: it reports which
// of its data points lies under a canvas position.
package geom

import (
	"math"

	"github.com/vdobler/brush/data"
	"github.com/vdobler/brush/facet"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Point

// Point draws points / symbols.
type Point struct {
	XY plotter.XYer

	Alpha Aesthetic
	Color Aesthetic

	Default draw.GlyphStyle
}

// Draw implements facet.Geom.Draw.
func (p Point) Draw(panel *facet.Panel) {
	baseColor := p.Default.Color
	if baseColor == nil {
		baseColor = panel.GeomDefault().Color
	}

	shape := p.Default.Shape
	if shape == nil {
		shape = draw.GlyphDrawer(draw.CircleGlyph{})
	}
	size := p.radius(panel)

	for i := 0; i < p.XY.Len(); i++ {
		x, y := p.XY.XY(i)
		center, ok := panel.MapXY(x, y)
		if !ok {
			continue
		}

		col, ok := determineColor(baseColor, panel, i, p.Color, p.Alpha)
		if !ok {
			continue
		}

		sty := draw.GlyphStyle{
			Color:  col,
			Radius: size,
			Shape:  shape,
		}
		panel.Canvas.DrawGlyph(sty, center)
	}
}

func (p Point) radius(panel *facet.Panel) vg.Length {
	if p.Default.Radius != 0 {
		return p.Default.Radius
	}
	return panel.GeomDefault().Size
}

// DataRange implements plot.DataRanger.
func (p Point) DataRange() (xmin, xmax, ymin, ymax float64) {
	return plotter.XYRange(p.XY)
}

// Nearest returns the index of the point whose glyph is closest to the
// canvas position pt. Only glyphs within their radius plus slack of pt are
// considered. On equal distance the later point wins as it is drawn on top.
func (p Point) Nearest(panel *facet.Panel, pt vg.Point, slack vg.Length) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for i := 0; i < p.XY.Len(); i++ {
		center, ok := panel.MapXY(p.XY.XY(i))
		if !ok {
			continue
		}
		d := math.Hypot(float64(center.X-pt.X), float64(center.Y-pt.Y))
		if d > float64(p.radius(panel)+slack) {
			continue
		}
		if d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// ----------------------------------------------------------------------------
// Rectangle

// Rectangle draws rectangles.
// The coordinates are the outside coordinates, i.e. if the border is drawn for
// the rectangle then this border is drawn inside the rectangle given by the
// coordinates.
type Rectangle struct {
	XYUV data.XYUVer

	Alpha Aesthetic
	Color Aesthetic
	Fill  Aesthetic

	Default BoxStyle
}

// clipRect clips rect to canvas. The returned rectangle is in the canonical form.
func clipRect(rect vg.Rectangle, canvas draw.Canvas) vg.Rectangle {
	rect = CanonicRectangle(rect)
	limit := CanonicRectangle(canvas.Rectangle)

	if rect.Min.X < limit.Min.X {
		rect.Min.X = limit.Min.X
	}
	if rect.Min.Y < limit.Min.Y {
		rect.Min.Y = limit.Min.Y
	}

	if rect.Max.X > limit.Max.X {
		rect.Max.X = limit.Max.X
	}
	if rect.Max.Y > limit.Max.Y {
		rect.Max.Y = limit.Max.Y
	}
	return rect
}

// rect returns the clipped canvas rectangle of the i'th data rectangle.
func (r Rectangle) rect(panel *facet.Panel, i int) (vg.Rectangle, bool) {
	x, y, u, v := r.XYUV.XYUV(i)
	min, minok := panel.MapXY(x, y)
	max, maxok := panel.MapXY(u, v)
	if !minok && !maxok {
		return vg.Rectangle{}, false // both corners outside of scale range
	}
	return clipRect(vg.Rectangle{Min: min, Max: max}, panel.Canvas), true
}

// Draw implements facet.Geom.Draw.
func (r Rectangle) Draw(panel *facet.Panel) {
	fill := r.Default.Fill
	border := r.Default.Border
	if fill == nil && border.Color == nil {
		fill = panel.GeomDefault().Color
	}

	for i := 0; i < r.XYUV.Len(); i++ {
		rect, ok := r.rect(panel, i)
		if !ok {
			continue
		}

		if fillCol, ok := determineColor(fill, panel, i, r.Fill, r.Alpha); ok {
			panel.Canvas.SetColor(fillCol)
			panel.Canvas.Fill(rect.Path())
		}
		width := border.Width
		if width <= 0 {
			continue
		}

		if borderCol, ok := determineColor(border.Color, panel, i, r.Color, r.Alpha); ok {
			w := 0.499 * width
			rect.Min.X += w
			rect.Min.Y += w
			rect.Max.X -= w
			rect.Max.Y -= w
			panel.Canvas.SetColor(borderCol)
			panel.Canvas.SetLineWidth(width)
			panel.Canvas.SetLineDash(border.Dashes, border.DashOffs)
			panel.Canvas.Stroke(rect.Path())
		}
	}
}

// DataRange implements plot.DataRanger.
func (r Rectangle) DataRange() (xmin, xmax, ymin, ymax float64) {
	x0, x1, y0, y1, u0, u1, v0, v1 := data.XYUVRange(r.XYUV)
	return math.Min(x0, u0), math.Max(x1, u1), math.Min(y0, v0), math.Max(y1, v1)
}

// ----------------------------------------------------------------------------
// Path

// Path connects the given points in data order through straight line segments.
// The aestetics map the individual line segments based on their first point.
type Path struct {
	XY plotter.XYer

	Alpha Aesthetic
	Color Aesthetic

	Default draw.LineStyle
}

// Draw implements facet.Geom.Draw.
func (p Path) Draw(panel *facet.Panel) {
	baseColor := p.Default.Color
	if baseColor == nil {
		baseColor = panel.GeomDefault().Color
	}

	width := p.Default.Width
	if width == 0 {
		width = panel.GeomDefault().LineWidth
	}

	dashes := p.Default.Dashes

	canvas := panel.Canvas
	for i := 0; i < p.XY.Len()-1; i++ {
		left, _ := panel.MapXY(p.XY.XY(i))      // Clipping done below.
		right, _ := panel.MapXY(p.XY.XY(i + 1)) // Clipping done below.

		col, ok := determineColor(baseColor, panel, i, p.Color, p.Alpha)
		if !ok {
			continue
		}

		sty := draw.LineStyle{
			Color:  col,
			Width:  width,
			Dashes: dashes,
		}

		canvas.StrokeLines(sty, canvas.ClipLinesXY([]vg.Point{left, right})...)
	}
}

// DataRange implements plot.DataRanger.
func (p Path) DataRange() (xmin, xmax, ymin, ymax float64) {
	return plotter.XYRange(p.XY)
}
