package link

import (
	"context"
	"fmt"
	"log/slog"
)

var discard = slog.New(slog.DiscardHandler)

// Kind tells what a Selection was triggered by.
type Kind int

const (
	Cleared Kind = iota
	SeriesSelected
	BinSelected
)

func (k Kind) String() string {
	switch k {
	case Cleared:
		return "cleared"
	case SeriesSelected:
		return "series"
	case BinSelected:
		return "bin"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Selection describes the outcome of one coordinator operation. The
// Coordinator does not keep it; the opacity sets are the only state.
type Selection struct {
	Kind   Kind
	Series []Index // lit series; nil if cleared
	Bin    Index   // lit bin or None
}

func (s Selection) String() string {
	switch s.Kind {
	case SeriesSelected:
		return fmt.Sprintf("series %s -> bin %s", s.Series[0], s.Bin)
	case BinSelected:
		return fmt.Sprintf("bin %s -> %d series", s.Bin, len(s.Series))
	}
	return "cleared"
}

// Coordinator keeps the series and the bin opacities of two linked views
// consistent. It is the only writer of both Channels sets.
type Coordinator struct {
	hist        *Histogram
	values      []float64
	series      *Channels
	bins        *Channels
	alphaHidden float64
	log         *slog.Logger
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithLogger makes the Coordinator log selections to l.
func WithLogger(l *slog.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCoordinator links the series opacities (one per value) with the bin
// opacities (one per bin of h). Dimmed elements get alphaHidden.
func NewCoordinator(h *Histogram, values []float64, series, bins *Channels, alphaHidden float64, opts ...CoordinatorOption) (*Coordinator, error) {
	if h == nil || series == nil || bins == nil {
		return nil, fmt.Errorf("%w: nil histogram or channels", ErrInvalidArgument)
	}
	if n := series.Len(); n != len(values) {
		return nil, fmt.Errorf("%w: %d series channels for %d values", ErrInvalidArgument, n, len(values))
	}
	if n := bins.Len(); n != h.Len() {
		return nil, fmt.Errorf("%w: %d bin channels for %d bins", ErrInvalidArgument, n, h.Len())
	}
	c := &Coordinator{
		hist:        h,
		values:      values,
		series:      series,
		bins:        bins,
		alphaHidden: alphaHidden,
		log:         discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// AlphaHidden returns the opacity of dimmed elements.
func (c *Coordinator) AlphaHidden() float64 { return c.alphaHidden }

// Reset makes every series and every bin fully visible.
func (c *Coordinator) Reset() Selection {
	c.series.Reset()
	c.bins.Reset()
	c.log.Debug("selection cleared")
	return Selection{Kind: Cleared, Bin: None}
}

// SelectSeries lights series i and the bin containing its value and dims
// everything else. None or an invalid index clears the selection. If the
// value lies outside all bins every bin is dimmed.
func (c *Coordinator) SelectSeries(i Index) Selection {
	if !i.Valid(len(c.values)) {
		if i != None {
			c.log.Warn("series index out of range", "series", int(i))
		}
		return c.Reset()
	}

	lit := []Index{i}
	c.highlight(c.series, lit)

	b := c.hist.BinOf(c.values[i])
	if b == None {
		c.bins.ResetAll(c.alphaHidden)
		c.log.Debug("series value outside histogram", "series", int(i), "value", c.values[i])
	} else {
		c.highlight(c.bins, []Index{b})
	}

	sel := Selection{Kind: SeriesSelected, Series: lit, Bin: b}
	c.log.Debug("series selected", "series", int(i), "bin", int(b))
	return sel
}

// SelectBin lights bin j and all series whose value falls into j and dims
// everything else. None or an invalid index clears the selection.
func (c *Coordinator) SelectBin(j Index) Selection {
	if !j.Valid(c.hist.Len()) {
		if j != None {
			c.log.Warn("bin index out of range", "bin", int(j))
		}
		return c.Reset()
	}

	c.highlight(c.bins, []Index{j})
	members := c.hist.Members(j, c.values)
	c.highlight(c.series, members)

	c.log.Debug("bin selected", "bin", int(j), "members", len(members))
	return Selection{Kind: BinSelected, Series: members, Bin: j}
}

// highlight sets lit to full visibility and all other cells to the hidden
// opacity in one batch.
func (c *Coordinator) highlight(ch *Channels, lit []Index) {
	ch.Batch(func(b *Batch) {
		b.SetAll(complement(b.Len(), lit), c.alphaHidden)
		b.SetAll(lit, Full)
	})
}

// Run handles the resolutions arriving on seriesClicks and binClicks one
// at a time until ctx is done or both channels are closed. A nil channel is
// never read. The optional notify functions are called after each handled
// click with its outcome.
func (c *Coordinator) Run(ctx context.Context, seriesClicks, binClicks <-chan Index, notify ...func(Selection)) error {
	for seriesClicks != nil || binClicks != nil {
		var sel Selection
		select {
		case <-ctx.Done():
			return ctx.Err()
		case i, ok := <-seriesClicks:
			if !ok {
				seriesClicks = nil
				continue
			}
			sel = c.SelectSeries(i)
		case j, ok := <-binClicks:
			if !ok {
				binClicks = nil
				continue
			}
			sel = c.SelectBin(j)
		}
		for _, fn := range notify {
			fn(sel)
		}
	}
	return nil
}
