package tui

import (
	"sort"

	plot "github.com/chriskim06/drawille-go"
	"github.com/vdobler/brush/data"
	"github.com/vdobler/brush/link"
)

// Profile plots the y coordinate of every series over its steps as braille
// lines. Series drawn with full opacity are highlighted and drawn last.
type Profile struct {
	series  data.Series
	opacity link.Reader
	dark    bool

	canvas *plot.Canvas
	lines  [][]float64
}

// NewProfile returns a profile pane of series.
func NewProfile(series data.Series, opacity link.Reader, dark bool) *Profile {
	p := &Profile{series: series, opacity: opacity, dark: dark}
	n := max(series.MaxLen(), 2)
	p.lines = make([][]float64, len(series))
	for k, xys := range series {
		line := make([]float64, n)
		for i := range line {
			line[i] = xys[min(i, len(xys)-1)].Y
		}
		p.lines[k] = line
	}
	p.Resize(80, 10)
	return p
}

// Resize sets the size of the pane in cells.
func (p *Profile) Resize(w, h int) {
	c := plot.NewCanvas(max(w, 1), max(h, 1))
	c.NumDataPoints = max(p.series.MaxLen(), 2)
	c.ShowAxis = false
	c.LineColors = make([]plot.Color, len(p.lines))
	p.canvas = &c
}

// order returns the series indices with the dimmed series first.
func (p *Profile) order() []int {
	alpha := p.opacity.Snapshot()
	order := make([]int, len(alpha))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(i, j int) bool { return alpha[order[i]] < alpha[order[j]] })
	return order
}

// View renders p with the current opacities.
func (p *Profile) View() string {
	highlight, dim := plot.Black, plot.LightGray
	if p.dark {
		highlight, dim = plot.Red, plot.DimGray
	}
	alpha := p.opacity.Snapshot()
	order := p.order()
	lines := make([][]float64, len(order))
	colors := make([]plot.Color, len(order))
	for i, k := range order {
		lines[i] = p.lines[k]
		colors[i] = dim
		if alpha[k] >= link.Full {
			colors[i] = highlight
		}
	}
	p.canvas.LineColors = colors
	p.canvas.Fill(lines)
	return p.canvas.String()
}
