package tui

import (
	"math"
	"sort"

	"github.com/vdobler/brush/data"
	"github.com/vdobler/brush/link"
	"gonum.org/v1/plot/palette"
)

// trajectory is the rendered object of one series.
type trajectory struct{ k int }

// Scatter draws every point of every series into a rectangle of cells.
type Scatter struct {
	series  data.Series
	values  []float64
	opacity link.Reader
	shade   shader

	objects []*trajectory

	x0, y0, w, h           int // screen position and size in cells
	xmin, xmax, ymin, ymax float64
}

// NewScatter returns a terminal scatter view. Points are colored by the
// value of their series through cmap and faded into a dark or light
// background. Call SetBounds before use.
func NewScatter(series data.Series, values []float64, opacity link.Reader, cmap palette.ColorMap, dark bool) *Scatter {
	s := &Scatter{
		series:  series,
		values:  values,
		opacity: opacity,
		shade:   newShader(cmap, dark),
		objects: make([]*trajectory, len(series)),
	}
	for k := range s.objects {
		s.objects[k] = &trajectory{k: k}
	}
	s.xmin, s.xmax, s.ymin, s.ymax = series.DataRange()
	if !(s.xmin < s.xmax) {
		s.xmin, s.xmax = s.xmin-0.5, s.xmax+0.5
	}
	if !(s.ymin < s.ymax) {
		s.ymin, s.ymax = s.ymin-0.5, s.ymax+0.5
	}
	return s
}

// SetBounds places s at column x and row y of the screen with w columns
// and h rows.
func (s *Scatter) SetBounds(x, y, w, h int) {
	s.x0, s.y0, s.w, s.h = x, y, max(w, 0), max(h, 0)
}

// Cell returns the screen cell of point p of series k.
func (s *Scatter) Cell(k, p int) (col, row int) {
	xy := s.series[k][p]
	col = s.x0 + scale(xy.X, s.xmin, s.xmax, s.w)
	row = s.y0 + s.h - 1 - scale(xy.Y, s.ymin, s.ymax, s.h)
	return col, row
}

// Objects implements link.ScatterTarget.
func (s *Scatter) Objects() []interface{} {
	objs := make([]interface{}, len(s.objects))
	for i, o := range s.objects {
		objs[i] = o
	}
	return objs
}

// Region implements link.HitTester.
func (s *Scatter) Region() link.Rect {
	return link.Rect{
		MinX: float64(s.x0), MinY: float64(s.y0),
		MaxX: float64(s.x0 + s.w - 1), MaxY: float64(s.y0 + s.h - 1),
	}
}

// HitTest implements link.HitTester. The point drawn in the cell (x,y) or
// in one of its eight neighbours is struck; the closest wins and on equal
// distance the later series.
func (s *Scatter) HitTest(x, y float64) (link.Hit, bool) {
	best, bestDist := link.Hit{}, math.Inf(1)
	for k, xys := range s.series {
		for p := range xys {
			col, row := s.Cell(k, p)
			dx, dy := float64(col)-x, float64(row)-y
			if math.Abs(dx) > 1 || math.Abs(dy) > 1 {
				continue
			}
			if d := math.Hypot(dx, dy); d <= bestDist {
				best, bestDist = link.Hit{Object: s.objects[k], Sub: p}, d
			}
		}
	}
	return best, best.Object != nil
}

// View renders s. Series with a higher opacity are drawn on top.
func (s *Scatter) View() string {
	c := newCells(s.w, s.h)
	order := make([]int, len(s.series))
	for k := range order {
		order[k] = k
	}
	alpha := s.opacity.Snapshot()
	sort.SliceStable(order, func(i, j int) bool { return alpha[order[i]] < alpha[order[j]] })

	for _, k := range order {
		fg := s.shade.color(s.values[k], alpha[k])
		xys := s.series[k]
		for p := range xys {
			r := '·'
			if p == len(xys)-1 {
				r = '●'
			}
			col, row := s.Cell(k, p)
			c.set(col-s.x0, row-s.y0, r, fg)
		}
	}
	return c.String()
}
