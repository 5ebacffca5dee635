// Package tui is a terminal frontend for a brush.Surface: a scatter pane of
// the trajectories, a histogram pane and a profile pane, driven by a
// bubbletea program. Pointer events are in terminal cells with the origin
// in the upper left corner.
package tui

import (
	"image/color"
	"math"
	"strings"

	styles "github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
)

// cells is a w x h buffer of colored runes.
type cells struct {
	w, h  int
	runes [][]rune
	fg    [][]string // hex color; "" is the terminal default
}

func newCells(w, h int) *cells {
	c := &cells{w: max(w, 0), h: max(h, 0)}
	c.runes = make([][]rune, c.h)
	c.fg = make([][]string, c.h)
	for r := range c.runes {
		c.runes[r] = []rune(strings.Repeat(" ", c.w))
		c.fg[r] = make([]string, c.w)
	}
	return c
}

// set puts r in color fg at the local position (col, row). Positions off
// the buffer are ignored.
func (c *cells) set(col, row int, r rune, fg string) {
	if col < 0 || col >= c.w || row < 0 || row >= c.h {
		return
	}
	c.runes[row][col] = r
	c.fg[row][col] = fg
}

func (c *cells) String() string {
	lines := make([]string, c.h)
	for row := range lines {
		var sb strings.Builder
		start := 0
		for col := 1; col <= c.w; col++ {
			if col < c.w && c.fg[row][col] == c.fg[row][start] {
				continue
			}
			run := string(c.runes[row][start:col])
			if fg := c.fg[row][start]; fg != "" {
				run = styles.NewStyle().Foreground(styles.Color(fg)).Render(run)
			}
			sb.WriteString(run)
			start = col
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// shader colors values through a color map and fades them into the
// background by opacity.
type shader struct {
	cmap palette.ColorMap
	bg   colorful.Color
}

func newShader(cmap palette.ColorMap, dark bool) shader {
	bg := colorful.Color{R: 1, G: 1, B: 1}
	if dark {
		bg = colorful.Color{}
	}
	return shader{cmap: cmap, bg: bg}
}

// color returns the hex color of value v drawn with opacity alpha.
func (s shader) color(v, alpha float64) string {
	var c color.Color = color.Gray{0x80}
	if s.cmap != nil && !math.IsNaN(v) {
		v = math.Max(s.cmap.Min(), math.Min(s.cmap.Max(), v))
		if mc, err := s.cmap.At(v); err == nil {
			c = mc
		}
	}
	fg, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	alpha = math.Max(0, math.Min(1, alpha))
	return s.bg.BlendRgb(fg, alpha).Clamped().Hex()
}

// scale maps x from [lo, hi] to the cell positions [0, n-1].
func scale(x, lo, hi float64, n int) int {
	if n <= 1 || !(hi > lo) {
		return 0
	}
	return int(math.Round((x - lo) / (hi - lo) * float64(n-1)))
}
