package facet

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// GeomStyle contains the fallback aesthetics of geoms.
type GeomStyle struct {
	Color     color.Color
	Size      vg.Length // radius of points
	LineWidth vg.Length
}

// DefaultGeomStyle is used for panels without a Style.
var DefaultGeomStyle = GeomStyle{
	Color:     color.Gray16{0x3333},
	Size:      vg.Length(3),
	LineWidth: vg.Length(1),
}

// TickStyle is the look of the major ticks of an axis.
type TickStyle struct {
	draw.LineStyle
	Length vg.Length
	Label  draw.TextStyle
}

// AxisStyle is the look of one axis. TitleSize and LabelSize are the room
// reserved for the title and the tick labels: heights for the x axis,
// widths for the y axis.
type AxisStyle struct {
	Title     draw.TextStyle
	TitleSize vg.Length
	Tick      TickStyle
	LabelSize vg.Length
}

// StripStyle is the look of the title strip above a panel.
type StripStyle struct {
	Background color.Color
	Height     vg.Length
	draw.TextStyle
}

// A Style controls how a Facet is drawn.
type Style struct {
	Background color.Color

	Title       draw.TextStyle
	TitleHeight vg.Length

	GeomDefault GeomStyle

	Panel struct {
		Background color.Color
		PadX, PadY vg.Length // gap between neighbouring panels
	}
	HStrip StripStyle

	Grid struct {
		Major, Minor draw.LineStyle
	}

	XAxis, YAxis AxisStyle
}

// DefaultFacetStyle returns a light gray panel style with white grid lines.
// Axis titles and strip labels use baseFontSize, the title is 20% larger
// and tick labels 20% smaller. It panics if the fonts are not available.
func DefaultFacetStyle(baseFontSize vg.Length) Style {
	scale := func(f float64) vg.Length {
		return vg.Length(math.Round(f * float64(baseFontSize)))
	}
	font := func(name string, size vg.Length) vg.Font {
		f, err := vg.MakeFont(name, size)
		if err != nil {
			panic(err)
		}
		return f
	}
	titleFont := font("Helvetica-Bold", scale(1.2))
	baseFont := font("Helvetica-Bold", baseFontSize)
	tickFont := font("Helvetica", scale(1/1.2))

	tick := TickStyle{
		LineStyle: draw.LineStyle{Color: color.Gray16{0x1111}, Width: 1},
		Length:    5,
		Label:     draw.TextStyle{Color: color.Black, Font: tickFont},
	}
	axisTitle := draw.TextStyle{Color: color.Black, Font: baseFont, XAlign: draw.XCenter}

	fs := Style{
		Background:  color.White,
		Title:       draw.TextStyle{Color: color.Black, Font: titleFont, XAlign: draw.XCenter, YAlign: draw.YTop},
		TitleHeight: scale(3),
		GeomDefault: DefaultGeomStyle,
		HStrip: StripStyle{
			Background: color.Gray16{0xcccc},
			Height:     scale(2),
			TextStyle:  draw.TextStyle{Color: color.Black, Font: baseFont, XAlign: draw.XCenter, YAlign: -0.3},
		},
	}
	fs.Panel.Background = color.Gray16{0xeeee}
	fs.Panel.PadX, fs.Panel.PadY = scale(2), scale(0.5)
	fs.Grid.Major = draw.LineStyle{Color: color.White, Width: 1}
	fs.Grid.Minor = draw.LineStyle{Color: color.White, Width: 0.5}

	fs.XAxis = AxisStyle{Title: axisTitle, TitleSize: scale(2), Tick: tick, LabelSize: scale(1.5)}
	fs.XAxis.Title.YAlign = 0.3
	fs.XAxis.Tick.Label.XAlign, fs.XAxis.Tick.Label.YAlign = draw.XCenter, draw.YTop

	fs.YAxis = AxisStyle{Title: axisTitle, TitleSize: scale(2), Tick: tick, LabelSize: scale(3)}
	fs.YAxis.Title.Rotation, fs.YAxis.Title.YAlign = math.Pi/2, draw.YTop
	fs.YAxis.Tick.Label.XAlign, fs.YAxis.Tick.Label.YAlign = draw.XRight, -0.3

	return fs
}
