package facet

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var autoscaleTests = []struct {
	data     Interval
	fixMin   float64
	min, max float64
}{
	{Interval{0, 10}, nan, -0.5, 10.5},
	{Interval{0, 10}, 0, 0, 10.5},
	{Interval{5, 5}, nan, 5, 5},
}

func TestAutoscale(t *testing.T) {
	for i, tc := range autoscaleTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s := NewScale()
			s.UpdateData(tc.data)
			s.FixMin(tc.fixMin)
			s.autoscale()
			if !equal64(s.Min, tc.min) || !equal64(s.Max, tc.max) {
				t.Errorf("autoscale(%v) = [%g,%g], want [%g,%g]",
					tc.data, s.Min, s.Max, tc.min, tc.max)
			}
		})
	}
}

func TestDeDegenerate(t *testing.T) {
	s := NewScale()
	s.deDegenerate()
	if s.Min != -1 || s.Max != 1 {
		t.Errorf("unset scale = [%g,%g], want [-1,1]", s.Min, s.Max)
	}
	s.Min, s.Max = 3, 3
	s.deDegenerate()
	if s.Min != 2.5 || s.Max != 3.5 {
		t.Errorf("degenerate scale = [%g,%g], want [2.5,3.5]", s.Min, s.Max)
	}
}
