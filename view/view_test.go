package view

import (
	"errors"
	"testing"

	"github.com/vdobler/brush/data"
	"github.com/vdobler/brush/facet"
	"github.com/vdobler/brush/link"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	testSeries = data.Series{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		{{X: 5, Y: 5}, {X: 6, Y: 5}},
		{{X: 9, Y: 0}, {X: 9, Y: 9}},
	}
	testValues = []float64{0.2, 1.5, 2.7}
)

type fixture struct {
	scatter   *Scatter
	histogram *Histogram
	series    *link.Channels
	bins      *link.Channels
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	h, err := link.NewHistogram([]float64{0, 1, 2, 3}, []int{1, 1, 1}, link.Left)
	if err != nil {
		t.Fatal(err)
	}
	cmap, err := Colormap("viridis", 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	fx := fixture{
		series: link.NewChannels(len(testSeries)),
		bins:   link.NewChannels(h.Len()),
	}
	fx.scatter = NewScatter(testSeries, testValues, fx.series.Reader(), cmap, 3)
	fx.histogram = NewHistogram(h, fx.bins.Reader(), cmap)

	f := facet.NewFacet(1, 2, true, true)
	f.Panels[0][0].Geoms = []facet.Geom{fx.scatter}
	f.Panels[0][1].Geoms = []facet.Geom{fx.histogram}
	if err := f.Draw(draw.New(vgimg.New(400, 200))); err != nil {
		t.Fatal(err)
	}
	return fx
}

func press(pt vg.Point) link.PointerEvent {
	return link.PointerEvent{X: float64(pt.X), Y: float64(pt.Y), Button: link.ButtonLeft, Action: link.Press}
}

func TestScatterHitTest(t *testing.T) {
	fx := newFixture(t)
	objects := fx.scatter.Objects()

	for k := range testSeries {
		for p := range testSeries[k] {
			pt, ok := fx.scatter.Position(k, p)
			if !ok {
				t.Fatalf("Position(%d,%d) not on panel", k, p)
			}
			hit, ok := fx.scatter.HitTest(float64(pt.X)+1, float64(pt.Y)-1)
			if !ok {
				t.Errorf("no hit at series %d point %d", k, p)
				continue
			}
			if hit.Object != objects[k] || hit.Sub != p {
				t.Errorf("hit at series %d point %d = %v", k, p, hit)
			}
		}
	}

	r := fx.scatter.Region()
	if _, ok := fx.scatter.HitTest((r.MinX+r.MaxX)/2, r.MaxY); ok {
		t.Errorf("hit in empty area")
	}
}

func TestScatterResolver(t *testing.T) {
	fx := newFixture(t)
	res := link.NewScatterResolver(fx.scatter, nil)

	pt, _ := fx.scatter.Position(1, 0)
	if got, ok := res.Resolve(press(pt)); !ok || got != 1 {
		t.Errorf("Resolve(series 1) = %v, %t, want 1, true", got, ok)
	}

	r := fx.scatter.Region()
	if got, ok := res.Resolve(press(vg.Point{X: vg.Length(r.MinX + 1), Y: vg.Length(r.MaxY - 1)})); !ok || got != link.None {
		t.Errorf("Resolve(empty) = %v, %t, want None, true", got, ok)
	}
}

func TestHistogramHitTest(t *testing.T) {
	fx := newFixture(t)
	res := link.NewHistogramResolver(fx.histogram, nil)

	for j := 0; j < 3; j++ {
		base, ok := fx.histogram.Center(j)
		if !ok {
			t.Fatalf("Center(%d) not on panel", j)
		}
		ev := press(vg.Point{X: base.X, Y: base.Y + 2})
		got, ok := res.Resolve(ev)
		if !ok || got != link.Index(j) {
			t.Errorf("Resolve(bar %d) = %v, %t", j, got, ok)
		}
	}

	// Far above the bars but inside the panel.
	r := fx.histogram.Region()
	base, _ := fx.histogram.Center(1)
	ev := press(vg.Point{X: base.X, Y: vg.Length(r.MaxY)})
	if got, ok := res.Resolve(ev); !ok || got != link.None {
		t.Errorf("Resolve(above bars) = %v, %t, want None, true", got, ok)
	}
}

func TestHistogramHitTestBins(t *testing.T) {
	h, err := link.NewHistogram([]float64{0, 1, 2, 3}, []int{2, 0, 1}, link.Left)
	if err != nil {
		t.Fatal(err)
	}
	v := NewHistogram(h, link.NewChannels(h.Len()).Reader(), nil)
	f := facet.NewFacet(1, 1, false, false)
	f.Panels[0][0].Geoms = []facet.Geom{v}
	if err := f.Draw(draw.New(vgimg.New(300, 300))); err != nil {
		t.Fatal(err)
	}
	panel := f.Panels[0][0]

	for _, tc := range []struct {
		name string
		x, y float64
		bin  int
		hit  bool
	}{
		{"full bar", 0.5, 1, 0, true},
		{"empty bar at base", 1.5, 0.01, 1, true},
		{"above empty bar", 1.5, 1, 0, false},
		{"low bar", 2.5, 0.9, 2, true},
		{"above low bar", 2.5, 1.5, 0, false},
		{"right of all bins", 3.1, 0.5, 0, false},
		{"below base", 0.5, -0.05, 0, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pt, _ := panel.MapXY(tc.x, tc.y)
			hit, ok := v.HitTest(float64(pt.X), float64(pt.Y))
			if ok != tc.hit || (ok && hit.Sub != tc.bin) {
				t.Errorf("HitTest at (%g,%g) = %v, %t, want bin %d, %t", tc.x, tc.y, hit, ok, tc.bin, tc.hit)
			}
		})
	}
}

func TestRegionBeforeDraw(t *testing.T) {
	h, _ := link.NewHistogram([]float64{0, 1}, []int{1}, link.Left)
	v := NewHistogram(h, link.NewChannels(1).Reader(), nil)
	if v.Region().Contains(0, 0) {
		t.Errorf("undrawn view has a region")
	}
	if _, ok := v.HitTest(0, 0); ok {
		t.Errorf("undrawn view reports a hit")
	}
}

func TestDrawDimmed(t *testing.T) {
	fx := newFixture(t)
	fx.series.ResetAll(0.05)
	fx.bins.Set(1, 0)
	f := facet.NewFacet(1, 2, true, true)
	f.Panels[0][0].Geoms = []facet.Geom{fx.scatter}
	f.Panels[0][1].Geoms = []facet.Geom{fx.histogram}
	if err := f.Draw(draw.New(vgimg.New(300, 150))); err != nil {
		t.Fatal(err)
	}
	if f.Panels[0][0].ColorMap == nil {
		t.Errorf("scatter panel has no color map")
	}
}

func TestColormap(t *testing.T) {
	for _, name := range ColormapNames() {
		t.Run(name, func(t *testing.T) {
			cm, err := Colormap(name, -2, 5)
			if err != nil {
				t.Fatal(err)
			}
			for _, v := range []float64{-2, 0, 5} {
				if _, err := cm.At(v); err != nil {
					t.Errorf("At(%g): %v", v, err)
				}
			}
		})
	}

	if _, err := Colormap("jet", 0, 1); !errors.Is(err, link.ErrInvalidArgument) {
		t.Errorf("Colormap(jet) error = %v, want ErrInvalidArgument", err)
	}
	cm, err := Colormap("viridis", 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cm.At(4); err != nil {
		t.Errorf("degenerate range: At(4): %v", err)
	}
}

func TestScatterAesthetics(t *testing.T) {
	fx := newFixture(t)
	fx.series.Set(1, 0.05)

	s := fx.scatter
	for _, tc := range []struct {
		name         string
		alpha, color float64
		wantA, wantC float64
	}{
		{"path 0", s.paths[0].Alpha(1), s.paths[0].Color(1), 1, 0.2},
		{"path 1", s.paths[1].Alpha(0), s.paths[1].Color(0), 0.05, 1.5},
		{"marker 2", s.markers.Alpha(2), s.markers.Color(2), 0.05, 1.5},
		{"marker 5", s.markers.Alpha(5), s.markers.Color(5), 1, 2.7},
	} {
		if tc.alpha != tc.wantA || tc.color != tc.wantC {
			t.Errorf("%s: alpha, color = %g, %g, want %g, %g",
				tc.name, tc.alpha, tc.color, tc.wantA, tc.wantC)
		}
	}
}
