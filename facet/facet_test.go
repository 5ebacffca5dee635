package facet

import (
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// rangeGeom has a fixed data range and counts how often it was drawn.
type rangeGeom struct {
	xmin, xmax, ymin, ymax float64
	drawn                  int
}

func (g *rangeGeom) DataRange() (float64, float64, float64, float64) {
	return g.xmin, g.xmax, g.ymin, g.ymax
}

func (g *rangeGeom) Draw(p *Panel) { g.drawn++ }

func TestNewFacetScales(t *testing.T) {
	f := NewFacet(2, 2, false, false)
	if f.Panels[0][0].X != f.Panels[1][0].X {
		t.Errorf("column 0 does not share its x scale")
	}
	if f.Panels[0][0].Y != f.Panels[0][1].Y {
		t.Errorf("row 0 does not share its y scale")
	}
	if f.Panels[0][0].X == f.Panels[0][1].X {
		t.Errorf("columns share x scale")
	}

	free := NewFacet(1, 2, true, true)
	if free.Panels[0][0].Y == free.Panels[0][1].Y {
		t.Errorf("free y scales are shared")
	}
}

func TestFacetRange(t *testing.T) {
	f := NewFacet(1, 2, true, true)
	f.Panels[0][0].Geoms = []Geom{&rangeGeom{xmin: 0, xmax: 10, ymin: -5, ymax: 5}}
	f.Panels[0][1].Geoms = []Geom{&rangeGeom{xmin: 0, xmax: 3, ymin: 0, ymax: 4}}
	f.Range()

	left, right := f.Panels[0][0], f.Panels[0][1]
	if !equal64(left.X.Min, -0.5) || !equal64(left.X.Max, 10.5) {
		t.Errorf("left x = [%g,%g], want [-0.5,10.5]", left.X.Min, left.X.Max)
	}
	if !equal64(right.Y.Min, -0.2) || !equal64(right.Y.Max, 4.2) {
		t.Errorf("right y = [%g,%g], want [-0.2,4.2]", right.Y.Min, right.Y.Max)
	}
}

func TestFacetLayoutAndDraw(t *testing.T) {
	f := NewFacet(1, 2, true, true)
	f.Title = "Title"
	g1, g2 := &rangeGeom{xmin: 0, xmax: 1, ymin: 0, ymax: 1}, &rangeGeom{xmin: 0, xmax: 1, ymin: 0, ymax: 1}
	f.Panels[0][0].Geoms = []Geom{g1}
	f.Panels[0][0].Title = "left"
	f.Panels[0][1].Geoms = []Geom{g2}
	f.Panels[0][1].X.Title = "value"

	c := draw.New(vgimg.New(400, 200))
	if err := f.Draw(c); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if g1.drawn != 1 || g2.drawn != 1 {
		t.Errorf("geoms drawn %d and %d times, want once each", g1.drawn, g2.drawn)
	}

	left, right := f.Panels[0][0].Canvas, f.Panels[0][1].Canvas
	if left.Max.X >= right.Min.X {
		t.Errorf("panels overlap: left ends at %v, right starts at %v",
			left.Max.X, right.Min.X)
	}
	for i, pc := range []draw.Canvas{left, right} {
		if pc.Min.X < c.Min.X || pc.Max.X > c.Max.X || pc.Min.Y < c.Min.Y || pc.Max.Y > c.Max.Y {
			t.Errorf("panel %d %v outside of canvas %v", i, pc.Rectangle, c.Rectangle)
		}
		if pc.Max.X-pc.Min.X <= vg.Length(0) || pc.Max.Y-pc.Min.Y <= vg.Length(0) {
			t.Errorf("panel %d is empty: %v", i, pc.Rectangle)
		}
	}
}

func TestPanelMapUnmap(t *testing.T) {
	f := NewFacet(1, 1, false, false)
	p := f.Panels[0][0]
	p.Geoms = []Geom{&rangeGeom{xmin: 0, xmax: 10, ymin: 0, ymax: 100}}
	f.Range()
	f.Layout(draw.New(vgimg.New(300, 300)))

	pt, ok := p.MapXY(5, 50)
	if !ok {
		t.Fatalf("MapXY(5,50) not in range")
	}
	if !p.Contains(pt) {
		t.Errorf("mapped point %v not on panel %v", pt, p.Canvas.Rectangle)
	}
	x, y := p.Unmap(pt)
	if !equal64(x, 5) || !equal64(y, 50) {
		t.Errorf("Unmap(MapXY(5,50)) = (%g,%g)", x, y)
	}

	if _, ok := p.MapXY(20, 50); ok {
		t.Errorf("MapXY(20,50) reported in range")
	}
}
