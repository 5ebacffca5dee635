package geom

import (
	"image/color"
	"math"
	"reflect"

	"github.com/vdobler/brush/facet"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Aestetic is a function mapping a certain data point to an aestehtic.
type Aesthetic func(i int) float64

// CopyAesthetics copies the non-nil aesthetics from src to dst.
// The destination must be a pointer to a struct, the source may be a struct
// or a pointer to one.
// The index function can be used to reindex the aestetics functions between
// src and dst.
func CopyAesthetics(dst, src interface{}, index func(int) int) {
	srcVal := reflect.ValueOf(src)
	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	dstVal := reflect.ValueOf(dst).Elem()

	for _, aes := range []string{"Alpha", "Color", "Fill"} {
		srcAes := srcVal.FieldByName(aes)
		if !srcAes.IsValid() {
			continue
		}
		dstAes := dstVal.FieldByName(aes)
		if !dstAes.IsValid() || dstAes.Type() != srcAes.Type() {
			continue
		}

		if index == nil || srcAes.IsNil() {
			dstAes.Set(srcAes)
			continue
		}

		f := reflect.MakeFunc(srcAes.Type(), func(in []reflect.Value) []reflect.Value {
			n := int(in[0].Int())
			m := index(n)
			return srcAes.Call([]reflect.Value{reflect.ValueOf(m)})
		})
		dstAes.Set(f)
	}
}

// BoxStyle combines a line style (for the border) with a fill color for
// the interior of a geom.
type BoxStyle struct {
	Fill   color.Color
	Border draw.LineStyle
}

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// determineColor returns the color of data point i. The Alpha aesthetic is
// an opacity in [0,1] and values outside are clamped. A NaN alpha or an
// unmappable color drops the data point.
func determineColor(col color.Color, panel *facet.Panel, i int, colorF, alphaF Aesthetic) (color.Color, bool) {
	if colorF != nil {
		col = panel.MapColor(colorF(i))
	}

	if col == nil {
		return col, false
	}

	if alphaF != nil {
		alpha := alphaF(i)
		if math.IsNaN(alpha) {
			return col, false
		}
		col = WithAlpha(col, alpha)
	}

	return col, true
}

// WithAlpha scales the opacity of col by alpha clamped to [0,1].
func WithAlpha(col color.Color, alpha float64) color.Color {
	alpha = math.Max(0, math.Min(1, alpha))
	r, g, b, a := col.RGBA()
	scale := func(v uint32) uint16 { return uint16(math.Round(float64(v) * alpha)) }
	return color.RGBA64{R: scale(r), G: scale(g), B: scale(b), A: scale(a)}
}
