// Package view contains the plot views of a brushing surface: a scatter
// view drawing one trajectory per series and a histogram view drawing one
// bar per bin. Both draw with the opacities of their link.Reader and
// answer hit tests in canvas coordinates.
package view

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/vdobler/brush/link"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// viridis control colors, dark to bright.
var viridis = []color.Color{
	color.NRGBA{0x44, 0x01, 0x54, 0xff},
	color.NRGBA{0x48, 0x28, 0x78, 0xff},
	color.NRGBA{0x3e, 0x4a, 0x89, 0xff},
	color.NRGBA{0x31, 0x68, 0x8e, 0xff},
	color.NRGBA{0x26, 0x82, 0x8e, 0xff},
	color.NRGBA{0x1f, 0x9e, 0x89, 0xff},
	color.NRGBA{0x35, 0xb7, 0x79, 0xff},
	color.NRGBA{0x6d, 0xcd, 0x59, 0xff},
	color.NRGBA{0xb4, 0xde, 0x2c, 0xff},
	color.NRGBA{0xfd, 0xe7, 0x25, 0xff},
}

var colormaps = map[string]func() (palette.ColorMap, error){
	"viridis":            func() (palette.ColorMap, error) { return moreland.NewLuminance(viridis) },
	"kindlmann":          noErr(moreland.Kindlmann),
	"extended-kindlmann": noErr(moreland.ExtendedKindlmann),
	"blackbody":          noErr(moreland.BlackBody),
	"extended-blackbody": noErr(moreland.ExtendedBlackBody),
	"smooth-blue-red":    noErr(func() palette.ColorMap { return moreland.SmoothBlueRed() }),
}

func noErr(f func() palette.ColorMap) func() (palette.ColorMap, error) {
	return func() (palette.ColorMap, error) { return f(), nil }
}

// Colormap returns a new color map for the given name spanning [min, max].
func Colormap(name string, min, max float64) (palette.ColorMap, error) {
	mk, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown colormap %q", link.ErrInvalidArgument, name)
	}
	cm, err := mk()
	if err != nil {
		return nil, fmt.Errorf("colormap %s: %w", name, err)
	}
	if !(min < max) {
		min, max = min-0.5, max+0.5
	}
	cm.SetMax(max)
	cm.SetMin(min)
	return cm, nil
}

// ColormapNames lists the known color maps.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
