package facet

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Scale

// Scale is a continuous axis. A panel has an x and a y scale which map the
// data range to the panel's canvas and canvas positions back to data.
type Scale struct {
	// Title is drawn next to the axis.
	Title string

	// Data is the range covered by the data of all geoms using s.
	Data Interval

	// Interval is the displayed range. Autoscaling derives it from Data.
	Interval

	// Autoscaling controls how Interval is derived from Data.
	Autoscaling

	// Trans maps Interval to the canvas and back.
	Trans Transformation

	// Ticker generates the ticks. If nil the ticker of Trans is used.
	Ticker plot.Ticker
}

// NewScale returns a linear scale which autoscales to its data with 5%
// padding on both sides.
func NewScale() *Scale {
	s := &Scale{
		Data:     unsetInterval(),
		Interval: unsetInterval(),
		Autoscaling: Autoscaling{
			MinRange: unsetInterval(),
			MaxRange: unsetInterval(),
		},
		Trans: LinearTrans,
	}
	s.Expand.Relative = 0.05
	return s
}

// Map maps [s.Min, s.Max] to [0, 1]. It returns NaN for an unset or
// degenerate s.
func (s *Scale) Map(x float64) float64 {
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min == s.Max {
		return math.NaN()
	}
	return (x - s.Min) / (s.Max - s.Min)
}

// UpdateData widens the data range of s to cover i.
func (s *Scale) UpdateData(i Interval) {
	s.Data.Update(i.Min, i.Max)
}

// FixMin pins the lower end of s to x. NaN releases it.
func (s *Scale) FixMin(x float64) { s.MinRange = Interval{x, x} }

// FixMax pins the upper end of s to x. NaN releases it.
func (s *Scale) FixMax(x float64) { s.MaxRange = Interval{x, x} }

// HasData reports whether any data was seen.
func (s *Scale) HasData() bool {
	return !math.IsNaN(s.Data.Min) && !math.IsNaN(s.Data.Max)
}

// InRange reports whether x lies in the displayed range of s.
func (s *Scale) InRange(x float64) bool {
	return x >= s.Min && x <= s.Max
}

// Ticks returns the ticks of s.
func (s *Scale) Ticks() []plot.Tick {
	t := s.Ticker
	if t == nil {
		t = s.Trans.Ticker
	}
	if t == nil {
		t = plot.DefaultTicks{}
	}
	return t.Ticks(s.Min, s.Max)
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] %q",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.Title)
}

// autoscale derives the displayed range from the data range.
func (s *Scale) autoscale() {
	if !s.HasData() {
		return
	}
	ext := s.Expand.Relative*(s.Data.Max-s.Data.Min) + s.Expand.Absolute
	s.Min = edge(s.MinRange, s.Data.Min-ext)
	s.Max = edge(s.MaxRange, s.Data.Max+ext)
}

// edge returns the fixed value of a degenerate allowed range or else x
// clipped to allowed. NaN ends of allowed do not clip.
func edge(allowed Interval, x float64) float64 {
	if allowed.Min == allowed.Max {
		return allowed.Min
	}
	if allowed.Min > x {
		x = allowed.Min
	}
	if allowed.Max < x {
		x = allowed.Max
	}
	return x
}

// deDegenerate makes sure s has a usable, non-empty range.
func (s *Scale) deDegenerate() {
	if math.IsNaN(s.Min) {
		s.Min = -1
	}
	if math.IsNaN(s.Max) {
		s.Max = 1
	}
	if s.Min == s.Max {
		s.Min, s.Max = s.Min-0.5, s.Max+0.5
	}
}

// ----------------------------------------------------------------------------
// Interval

// Interval is a closed real interval. NaN ends are unset.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update widens i to include the non-NaN values in x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same ends; NaN equals NaN.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the ends of a scale follow the data. A degenerate
// range [f:f] fixes that end to f, a range [u:v] lets it float between u
// and v.
type Autoscaling struct {
	// Expand pads the data range on both sides.
	Expand struct {
		Absolute float64
		Relative float64
	}

	MinRange Interval // allowed range of Min
	MaxRange Interval // allowed range of Max
}
