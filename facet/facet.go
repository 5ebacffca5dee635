package facet

import (
	"log/slog"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Facet

// Facet describes a facetted plot: a grid of Rows x Cols panels.
type Facet struct {
	Title      string
	Rows, Cols int
	Panels     [][]*Panel
	Style      Style

	// Logger receives debug output about the scales. May be nil.
	Logger *slog.Logger

	freeX, freeY bool
}

// NewFacet creates a new faceted plot with row x col many panels.
// All panels in a column share the same X-scale and all panels in a row
// share the same Y-scale unless freeX or respectively freeY is specified
// in which case each panel gets its own scale.
func NewFacet(rows, cols int, freeX, freeY bool) *Facet {
	f := Facet{
		Rows:   rows,
		Cols:   cols,
		Panels: make([][]*Panel, rows),
		Style:  DefaultFacetStyle(12),
		freeX:  freeX,
		freeY:  freeY,
	}

	xScales := make([]*Scale, cols)
	for c := range xScales {
		xScales[c] = NewScale()
	}
	yScales := make([]*Scale, rows)
	for r := range yScales {
		yScales[r] = NewScale()
	}

	for r := 0; r < f.Rows; r++ {
		f.Panels[r] = make([]*Panel, cols)
		for c := 0; c < f.Cols; c++ {
			p := &Panel{X: xScales[c], Y: yScales[r], Style: &f.Style}
			if freeX {
				p.X = NewScale()
			}
			if freeY {
				p.Y = NewScale()
			}
			f.Panels[r][c] = p
		}
	}

	return &f
}

// Learn all data ranges for all scales for all geoms in all panels in f.
func (f *Facet) learnDataRange() {
	for _, panels := range f.Panels {
		for _, panel := range panels {
			for _, g := range panel.Geoms {
				dr, ok := g.(plot.DataRanger)
				if !ok {
					continue
				}
				xmin, xmax, ymin, ymax := dr.DataRange()
				panel.X.UpdateData(Interval{xmin, xmax})
				panel.Y.UpdateData(Interval{ymin, ymax})
			}
		}
	}
}

func (f *Facet) applyToScales(m func(*Scale)) {
	done := make(map[*Scale]bool)
	for _, panels := range f.Panels {
		for _, panel := range panels {
			for _, s := range []*Scale{panel.X, panel.Y} {
				if done[s] {
					continue
				}
				m(s)
				done[s] = true
			}
		}
	}
}

func (f *Facet) debugScales(info string) {
	if f.Logger == nil {
		return
	}
	f.applyToScales(func(s *Scale) {
		f.Logger.Debug(info, "scale", s.String())
	})
}

// Range prepares all scales of f: The data ranges of all geoms are learned
// and the scales are autoscaled to them.
func (f *Facet) Range() {
	f.learnDataRange()
	f.debugScales("learned data range")

	f.applyToScales((*Scale).autoscale)
	f.applyToScales((*Scale).deDegenerate)
	f.debugScales("autoscaled")
}

// Layout assigns each panel its part of c. Range must have been called.
func (f *Facet) Layout(c draw.Canvas) {
	style := f.Style

	if f.Title != "" {
		c.Max.Y -= style.TitleHeight
	}

	// Left margin of each column and bottom margin of each row hold tick
	// labels and axis titles.
	left := make([]vg.Length, f.Cols)
	for col := range left {
		if col > 0 && !f.freeY {
			continue
		}
		left[col] = style.YAxis.LabelSize + style.YAxis.Tick.Length
		if f.Panels[0][col].Y.Title != "" {
			left[col] += style.YAxis.TitleSize
		}
	}
	bottom := make([]vg.Length, f.Rows)
	for row := range bottom {
		if row < f.Rows-1 && !f.freeX {
			continue
		}
		bottom[row] = style.XAxis.LabelSize + style.XAxis.Tick.Length
		if f.Panels[row][0].X.Title != "" {
			bottom[row] += style.XAxis.TitleSize
		}
	}
	strip := make([]vg.Length, f.Rows)
	for row, panels := range f.Panels {
		for _, p := range panels {
			if p.Title != "" {
				strip[row] = style.HStrip.Height
			}
		}
	}

	padx, pady := style.Panel.PadX, style.Panel.PadY
	w := c.Max.X - c.Min.X - padx*vg.Length(f.Cols-1)
	for _, l := range left {
		w -= l
	}
	h := c.Max.Y - c.Min.Y - pady*vg.Length(f.Rows-1)
	for row := range bottom {
		h -= bottom[row] + strip[row]
	}
	width, height := w/vg.Length(f.Cols), h/vg.Length(f.Rows)

	// Point (x0,y0) is the top-left corner of each panel.
	y0 := c.Max.Y
	for row, panels := range f.Panels {
		y0 -= strip[row]
		x0 := c.Min.X
		for col, panel := range panels {
			x0 += left[col]
			panel.Canvas = c
			panel.Canvas.Min = vg.Point{X: x0, Y: y0 - height}
			panel.Canvas.Max = vg.Point{X: x0 + width, Y: y0}
			x0 += width + padx
		}
		y0 -= height + bottom[row] + pady
	}
}

// Draw ranges and lays out f on c and draws all panels with their geoms.
func (f *Facet) Draw(c draw.Canvas) error {
	f.Range()
	f.Layout(c)
	style := f.Style

	if style.Background != nil {
		c.SetColor(style.Background)
		c.Fill(c.Rectangle.Path())
	}
	if f.Title != "" {
		c.FillText(style.Title, vg.Point{X: c.Center().X, Y: c.Max.Y}, f.Title)
	}

	for row, panels := range f.Panels {
		for col, panel := range panels {
			f.drawPanel(panel)
			if row == f.Rows-1 || f.freeX {
				f.drawXAxis(panel)
			}
			if col == 0 || f.freeY {
				f.drawYAxis(panel)
			}
		}
	}

	return nil
}

func (f *Facet) drawPanel(panel *Panel) {
	style := f.Style
	pc := panel.Canvas

	pc.SetColor(style.Panel.Background)
	pc.Fill(pc.Rectangle.Path())

	if style.Grid.Major.Color != nil {
		for _, tick := range panel.X.Ticks() {
			if !panel.X.InRange(tick.Value) {
				continue
			}
			r, _ := panel.MapXY(tick.Value, panel.Y.Min)
			sty := style.Grid.Major
			if tick.IsMinor() {
				sty = style.Grid.Minor
			}
			pc.StrokeLine2(sty, r.X, pc.Min.Y, r.X, pc.Max.Y)
		}
		for _, tick := range panel.Y.Ticks() {
			if !panel.Y.InRange(tick.Value) {
				continue
			}
			r, _ := panel.MapXY(panel.X.Min, tick.Value)
			sty := style.Grid.Major
			if tick.IsMinor() {
				sty = style.Grid.Minor
			}
			pc.StrokeLine2(sty, pc.Min.X, r.Y, pc.Max.X, r.Y)
		}
	}

	if panel.Title != "" {
		cb := pc
		cb.Min.Y = pc.Max.Y
		cb.Max.Y = cb.Min.Y + style.HStrip.Height
		cb.SetColor(style.HStrip.Background)
		cb.Fill(cb.Rectangle.Path())
		cb.FillText(style.HStrip.TextStyle, cb.Center(), panel.Title)
	}

	for _, geom := range panel.Geoms {
		geom.Draw(panel)
	}
}

func (f *Facet) drawXAxis(panel *Panel) {
	style := f.Style.XAxis
	pc := panel.Canvas
	y0 := pc.Min.Y
	for _, tick := range panel.X.Ticks() {
		if tick.IsMinor() || !panel.X.InRange(tick.Value) {
			continue
		}
		r, _ := panel.MapXY(tick.Value, panel.Y.Min)
		pc.StrokeLine2(style.Tick.LineStyle, r.X, y0, r.X, y0-style.Tick.Length)
		pc.FillText(style.Tick.Label,
			vg.Point{X: r.X, Y: y0 - style.Tick.Length}, tick.Label)
	}
	if panel.X.Title != "" {
		pt := vg.Point{
			X: pc.Center().X,
			Y: y0 - style.Tick.Length - style.LabelSize - style.TitleSize/2,
		}
		pc.FillText(style.Title, pt, panel.X.Title)
	}
}

func (f *Facet) drawYAxis(panel *Panel) {
	style := f.Style.YAxis
	pc := panel.Canvas
	x0 := pc.Min.X
	for _, tick := range panel.Y.Ticks() {
		if tick.IsMinor() || !panel.Y.InRange(tick.Value) {
			continue
		}
		r, _ := panel.MapXY(panel.X.Min, tick.Value)
		pc.StrokeLine2(style.Tick.LineStyle, x0-style.Tick.Length, r.Y, x0, r.Y)
		pc.FillText(style.Tick.Label,
			vg.Point{X: x0 - style.Tick.Length, Y: r.Y}, tick.Label)
	}
	if panel.Y.Title != "" {
		pt := vg.Point{
			X: x0 - style.Tick.Length - style.LabelSize - style.TitleSize/2,
			Y: pc.Center().Y,
		}
		pc.FillText(style.Title, pt, panel.Y.Title)
	}
}
