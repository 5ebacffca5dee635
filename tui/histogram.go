package tui

import (
	"math"

	"github.com/vdobler/brush/link"
	"gonum.org/v1/plot/palette"
)

// Histogram draws the bins of a histogram as columns of block characters.
// Bins share the width evenly; if there are more bins than columns the
// later bins of a column are not reachable.
type Histogram struct {
	hist    *link.Histogram
	opacity link.Reader
	shade   shader

	x0, y0, w, h int
}

// NewHistogram returns a terminal histogram view of hist.
func NewHistogram(hist *link.Histogram, opacity link.Reader, cmap palette.ColorMap, dark bool) *Histogram {
	return &Histogram{hist: hist, opacity: opacity, shade: newShader(cmap, dark)}
}

// SetBounds places v at column x and row y of the screen with w columns
// and h rows.
func (v *Histogram) SetBounds(x, y, w, h int) {
	v.x0, v.y0, v.w, v.h = x, y, max(w, 0), max(h, 0)
}

// binAt returns the bin drawn in screen column col.
func (v *Histogram) binAt(col int) (int, bool) {
	if v.w == 0 || col < v.x0 || col >= v.x0+v.w {
		return 0, false
	}
	return (col - v.x0) * v.hist.Len() / v.w, true
}

// rows returns the height of bar j in rows. Every bar is at least one row
// high, so empty bins stay clickable.
func (v *Histogram) rows(j int) int {
	top := v.hist.MaxCount()
	if top == 0 {
		return 1
	}
	n := int(math.Round(float64(v.hist.Count(link.Index(j))) / float64(top) * float64(v.h)))
	return max(n, 1)
}

// Column returns the leftmost screen column of bin j.
func (v *Histogram) Column(j int) int {
	n := v.hist.Len()
	return v.x0 + (j*v.w+n-1)/n
}

// Base returns the screen row of the bottom of all bars.
func (v *Histogram) Base() int { return v.y0 + v.h - 1 }

// Region implements link.HitTester.
func (v *Histogram) Region() link.Rect {
	return link.Rect{
		MinX: float64(v.x0), MinY: float64(v.y0),
		MaxX: float64(v.x0 + v.w - 1), MaxY: float64(v.y0 + v.h - 1),
	}
}

// HitTest implements link.HitTester. A struck bar reports its bin as
// Hit.Sub.
func (v *Histogram) HitTest(x, y float64) (link.Hit, bool) {
	col, row := int(math.Floor(x)), int(math.Floor(y))
	j, ok := v.binAt(col)
	if !ok || row > v.Base() || row <= v.Base()-v.rows(j) {
		return link.Hit{}, false
	}
	return link.Hit{Object: v, Sub: j}, true
}

// View renders v.
func (v *Histogram) View() string {
	c := newCells(v.w, v.h)
	alpha := v.opacity.Snapshot()
	for col := v.x0; col < v.x0+v.w; col++ {
		j, _ := v.binAt(col)
		fg := v.shade.color(v.hist.Bin(link.Index(j)).Center(), alpha[j])
		r := '█'
		if v.hist.Count(link.Index(j)) == 0 {
			r = '▁'
		}
		for k := 0; k < v.rows(j); k++ {
			c.set(col-v.x0, v.h-1-k, r, fg)
		}
	}
	return c.String()
}
