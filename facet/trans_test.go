package facet

import (
	"fmt"
	"math"
	"testing"
)

var linearTests = []struct {
	a, b    float64 // from
	u, v    float64 // to
	x, want float64
}{
	{10, 20, 10, 20, 12, 12},
	{10, 20, 100, 200, 12, 120},
	{3, 5, 0, 1, 3, 0},
	{3, 5, 0, 1, 4, 0.5},
	{3, 5, 0, 1, 5, 1},
	{3, 5, 0, 1, 6, 1.5},
	{0, 10, 200, 0, 2.5, 150}, // flipped canvas axis
}

func equal64(a, b float64) bool {
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 0.006
}

func TestLinearTrans(t *testing.T) {
	for i, tc := range linearTests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			from, to := Interval{tc.a, tc.b}, Interval{tc.u, tc.v}
			y := LinearTrans.Trans(from, to, tc.x)
			if !equal64(y, tc.want) {
				t.Errorf("Trans(%v,%v,%g) = %g, want %g", from, to, tc.x, y, tc.want)
			}
			if got := LinearTrans.Inverse(from, to, y); !equal64(got, tc.x) {
				t.Errorf("Inverse(%v,%v,%g) = %g, want %g", from, to, y, got, tc.x)
			}
		})
	}
}
