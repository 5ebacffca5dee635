package link

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"
)

const alphaHidden = 0.05

type fixture struct {
	hist   *Histogram
	values []float64
	series *Channels
	bins   *Channels
	coord  *Coordinator
}

func newFixture(t *testing.T, values []float64) *fixture {
	t.Helper()
	h, err := NewHistogram([]float64{0, 1, 2, 3}, []int{1, 1, 1}, Left)
	if err != nil {
		t.Fatal(err)
	}
	f := &fixture{
		hist:   h,
		values: values,
		series: NewChannels(len(values)),
		bins:   NewChannels(h.Len()),
	}
	f.coord, err = NewCoordinator(h, values, f.series, f.bins, alphaHidden)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// lit returns the indices of all fully visible cells and fails if any
// other cell is not at alphaHidden.
func lit(t *testing.T, name string, c *Channels) []Index {
	t.Helper()
	var on []Index
	for i, v := range c.Snapshot() {
		switch v {
		case Full:
			on = append(on, Index(i))
		case alphaHidden:
		default:
			t.Errorf("%s channel %d = %g, want %g or %g", name, i, v, Full, alphaHidden)
		}
	}
	return on
}

func allFull(c *Channels) bool {
	for _, v := range c.Snapshot() {
		if v != Full {
			return false
		}
	}
	return true
}

func TestEndToEnd(t *testing.T) {
	f := newFixture(t, []float64{0.2, 1.5, 2.7})

	sel := f.coord.SelectSeries(1)
	if sel.Kind != SeriesSelected || sel.Bin != 1 {
		t.Errorf("SelectSeries(1) = %v", sel)
	}
	if got := lit(t, "series", f.series); !equalIndices(got, []Index{1}) {
		t.Errorf("lit series = %v, want [1]", got)
	}
	if got := lit(t, "bin", f.bins); !equalIndices(got, []Index{1}) {
		t.Errorf("lit bins = %v, want [1]", got)
	}

	sel = f.coord.SelectBin(2)
	if sel.Kind != BinSelected || !equalIndices(sel.Series, []Index{2}) {
		t.Errorf("SelectBin(2) = %v", sel)
	}
	if got := lit(t, "series", f.series); !equalIndices(got, []Index{2}) {
		t.Errorf("lit series = %v, want [2]", got)
	}
	if got := lit(t, "bin", f.bins); !equalIndices(got, []Index{2}) {
		t.Errorf("lit bins = %v, want [2]", got)
	}
}

func TestSelectSeriesOutsideHistogram(t *testing.T) {
	f := newFixture(t, []float64{0.2, 1.5, 3.0})

	sel := f.coord.SelectSeries(2)
	if sel.Bin != None {
		t.Errorf("bin of value 3.0 = %s, want none", sel.Bin)
	}
	if got := lit(t, "series", f.series); !equalIndices(got, []Index{2}) {
		t.Errorf("lit series = %v, want [2]", got)
	}
	if got := lit(t, "bin", f.bins); len(got) != 0 {
		t.Errorf("lit bins = %v, want none", got)
	}
}

func TestMutualExclusivity(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3, 1.1, 2.2, 2.9}
	f := newFixture(t, values)
	for i := range values {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			f.coord.SelectSeries(Index(i))
			got := lit(t, "series", f.series)
			if !equalIndices(got, []Index{Index(i)}) {
				t.Errorf("lit series = %v, want [%d]", got, i)
			}
		})
	}
}

func TestCrossConsistency(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3, 1.1, 2.2, 2.9, 1.0, 2.0}
	f := newFixture(t, values)
	for i, v := range values {
		sel := f.coord.SelectSeries(Index(i))
		if sel.Bin == None {
			t.Fatalf("value %g has no bin", v)
		}
		f.coord.SelectBin(sel.Bin)
		if got := lit(t, "series", f.series); !containsIndex(got, Index(i)) {
			t.Errorf("bin %s lights %v, missing series %d", sel.Bin, got, i)
		}
	}
}

func TestMissResets(t *testing.T) {
	f := newFixture(t, []float64{0.2, 1.5, 2.7})
	for _, sel := range []func(){
		func() { f.coord.SelectSeries(None) },
		func() { f.coord.SelectBin(None) },
		func() { f.coord.SelectBin(17) },
		func() { f.coord.SelectSeries(-3) },
	} {
		f.coord.SelectSeries(0)
		sel()
		if !allFull(f.series) || !allFull(f.bins) {
			t.Errorf("miss did not reset: series %v bins %v", f.series.Snapshot(), f.bins.Snapshot())
		}
		f.coord.SelectBin(1)
		sel()
		if !allFull(f.series) || !allFull(f.bins) {
			t.Errorf("miss did not reset: series %v bins %v", f.series.Snapshot(), f.bins.Snapshot())
		}
	}
}

func TestSelectionIsAtomicPerSet(t *testing.T) {
	f := newFixture(t, []float64{0.2, 1.5, 2.7, 2.8})
	var seriesCalls, binCalls int
	f.series.Subscribe(func([]Change) { seriesCalls++ })
	f.bins.Subscribe(func([]Change) { binCalls++ })

	f.coord.SelectBin(2)
	if seriesCalls != 1 || binCalls != 1 {
		t.Errorf("notifications series=%d bins=%d, want 1 each", seriesCalls, binCalls)
	}
}

func TestNewCoordinatorInvalid(t *testing.T) {
	h, _ := NewHistogram([]float64{0, 1, 2}, []int{0, 0}, Left)
	if _, err := NewCoordinator(h, []float64{1, 2}, NewChannels(3), NewChannels(2), 0.1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("series mismatch: err = %v", err)
	}
	if _, err := NewCoordinator(h, []float64{1, 2}, NewChannels(2), NewChannels(3), 0.1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bin mismatch: err = %v", err)
	}
}

func TestRun(t *testing.T) {
	f := newFixture(t, []float64{0.2, 1.5, 2.7})
	seriesClicks := make(chan Index)
	binClicks := make(chan Index)
	results := make(chan Selection, 3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- f.coord.Run(ctx, seriesClicks, binClicks, func(s Selection) { results <- s })
	}()

	seriesClicks <- 1
	if sel := <-results; sel.Kind != SeriesSelected || sel.Bin != 1 {
		t.Errorf("first selection = %v", sel)
	}
	binClicks <- 2
	if sel := <-results; sel.Kind != BinSelected || !equalIndices(sel.Series, []Index{2}) {
		t.Errorf("second selection = %v", sel)
	}
	binClicks <- None
	if sel := <-results; sel.Kind != Cleared {
		t.Errorf("third selection = %v", sel)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunClosedChannels(t *testing.T) {
	f := newFixture(t, []float64{0.2})
	s, b := make(chan Index), make(chan Index)
	close(s)
	close(b)
	if err := f.coord.Run(context.Background(), s, b); err != nil {
		t.Errorf("Run on closed channels = %v, want nil", err)
	}
}

func TestKindString(t *testing.T) {
	for _, tc := range []struct {
		k    Kind
		want string
	}{
		{Cleared, "cleared"},
		{SeriesSelected, "series"},
		{BinSelected, "bin"},
		{Kind(7), "Kind(7)"},
		{Kind(-1), "Kind(-1)"},
	} {
		if got := tc.k.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tc.k), got, tc.want)
		}
	}
}
