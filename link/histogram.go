package link

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// ----------------------------------------------------------------------------
// ClosedSide

// ClosedSide selects which edge of a bin belongs to the bin.
type ClosedSide int

const (
	// Left bins are [lo, hi).
	Left ClosedSide = iota
	// Right bins are (lo, hi].
	Right
)

func (s ClosedSide) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("ClosedSide(%d)", int(s))
}

// ParseClosedSide parses "left" or "right" (case insensitive).
func ParseClosedSide(s string) (ClosedSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return Left, fmt.Errorf("%w: closed side %q, want left or right", ErrInvalidArgument, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s ClosedSide) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ClosedSide) UnmarshalText(text []byte) error {
	side, err := ParseClosedSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// ----------------------------------------------------------------------------
// Bin

// Bin is one half-open interval of a histogram.
type Bin struct {
	Lo, Hi float64
	Side   ClosedSide
}

// Contains reports whether x lies in b.
func (b Bin) Contains(x float64) bool {
	if b.Side == Right {
		return b.Lo < x && x <= b.Hi
	}
	return b.Lo <= x && x < b.Hi
}

// Center returns the midpoint of b.
func (b Bin) Center() float64 { return (b.Lo + b.Hi) / 2 }

func (b Bin) String() string {
	if b.Side == Right {
		return fmt.Sprintf("(%g, %g]", b.Lo, b.Hi)
	}
	return fmt.Sprintf("[%g, %g)", b.Lo, b.Hi)
}

// ----------------------------------------------------------------------------
// Histogram

// Histogram is an immutable partition of a scalar domain into ordered bins
// with associated counts. The closed side is stored once and used by every
// membership test.
type Histogram struct {
	edges   []float64
	counts  []int
	side    ClosedSide
	outside int
}

// BuildHistogram partitions [min(samples), max(samples)] into binCount
// equal-width bins and counts the samples in each bin. The open outer edge
// is moved one ulp outwards so every sample falls into a bin.
func BuildHistogram(samples []float64, binCount int, side ClosedSide) (*Histogram, error) {
	if binCount <= 0 {
		return nil, fmt.Errorf("%w: bin count %d must be positive", ErrInvalidArgument, binCount)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrInvalidArgument)
	}
	if side != Left && side != Right {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, side)
	}
	for i, x := range samples {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: sample %d is %g", ErrInvalidArgument, i, x)
		}
	}

	lo, hi := stats.Bounds(samples)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := vec.Linspace(lo, hi, binCount+1)
	edges[0], edges[binCount] = lo, hi
	if side == Left {
		edges[binCount] = math.Nextafter(hi, math.Inf(1))
	} else {
		edges[0] = math.Nextafter(lo, math.Inf(-1))
	}

	h := &Histogram{edges: edges, counts: make([]int, binCount), side: side}
	for _, x := range samples {
		if b := h.BinOf(x); b != None {
			h.counts[b]++
		} else {
			h.outside++
		}
	}
	return h, nil
}

// NewHistogram wraps precomputed edges and counts.
func NewHistogram(edges []float64, counts []int, side ClosedSide) (*Histogram, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: histogram without bins", ErrInvalidArgument)
	}
	if len(counts) != len(edges)-1 {
		return nil, fmt.Errorf("%w: %d counts for %d edges", ErrInvalidArgument, len(counts), len(edges))
	}
	if side != Left && side != Right {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, side)
	}
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, fmt.Errorf("%w: edge %d is %g", ErrInvalidArgument, i, e)
		}
		if i > 0 && !(edges[i-1] < e) {
			return nil, fmt.Errorf("%w: edges not strictly increasing at %d", ErrInvalidArgument, i)
		}
	}
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("%w: negative count %d in bin %d", ErrInvalidArgument, c, i)
		}
	}

	h := &Histogram{
		edges:  append([]float64(nil), edges...),
		counts: append([]int(nil), counts...),
		side:   side,
	}
	return h, nil
}

// Len returns the number of bins.
func (h *Histogram) Len() int { return len(h.counts) }

// Side returns the closed side of all bins.
func (h *Histogram) Side() ClosedSide { return h.side }

// Edges returns a copy of the N+1 bin edges.
func (h *Histogram) Edges() []float64 { return append([]float64(nil), h.edges...) }

// Counts returns a copy of the N bin counts.
func (h *Histogram) Counts() []int { return append([]int(nil), h.counts...) }

// Count returns the count of bin i.
func (h *Histogram) Count(i Index) int { return h.counts[i] }

// MaxCount returns the largest bin count.
func (h *Histogram) MaxCount() int {
	max := 0
	for _, c := range h.counts {
		if c > max {
			max = c
		}
	}
	return max
}

// Outside returns the number of samples BuildHistogram could not place
// into any bin. It is zero for histograms built from samples.
func (h *Histogram) Outside() int { return h.outside }

// Domain returns the first and the last edge.
func (h *Histogram) Domain() (lo, hi float64) { return h.edges[0], h.edges[len(h.edges)-1] }

// Bin returns bin i.
func (h *Histogram) Bin(i Index) Bin {
	return Bin{Lo: h.edges[i], Hi: h.edges[i+1], Side: h.side}
}

// Search locates x among the edges. For left closed bins this is the number
// of edges <= x minus one, for right closed bins the index of the first edge
// >= x minus one. The result may be -1 or Len() if x lies outside all bins.
func (h *Histogram) Search(x float64) int {
	if h.side == Right {
		return sort.SearchFloat64s(h.edges, x) - 1
	}
	return sort.Search(len(h.edges), func(k int) bool { return h.edges[k] > x }) - 1
}

// BinOf returns the bin containing x or None.
func (h *Histogram) BinOf(x float64) Index {
	if math.IsNaN(x) {
		return None
	}
	k := Index(h.Search(x))
	if !k.Valid(h.Len()) {
		return None
	}
	return k
}

// Members returns the indices of all values falling into bin j.
func (h *Histogram) Members(j Index, values []float64) []Index {
	if !j.Valid(h.Len()) {
		return nil
	}
	bin := h.Bin(j)
	var members []Index
	for i, v := range values {
		if bin.Contains(v) {
			members = append(members, Index(i))
		}
	}
	return members
}
