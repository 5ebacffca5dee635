package brush

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vdobler/brush/data"
	"github.com/vdobler/brush/facet"
	"github.com/vdobler/brush/link"
	"github.com/vdobler/brush/view"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Surface links a scatter view of series with a histogram view of their
// values. It is ready for clicks when returned by New.
type Surface struct {
	opts   Options
	series data.Series
	values []float64
	hist   *link.Histogram

	seriesOpacity *link.Channels
	binOpacity    *link.Channels
	coord         *link.Coordinator

	facet     *facet.Facet
	scatter   *view.Scatter
	histogram *view.Histogram

	scatterClicks *link.Resolver
	binClicks     *link.Resolver

	log *slog.Logger
}

// New builds the histogram of values with the binning of opts and links it
// with a scatter view of series. Series i has value values[i].
func New(series data.Series, values []float64, opts Options) (*Surface, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values", link.ErrInvalidArgument)
	}
	h, err := link.BuildHistogram(values, opts.BinCount, opts.ClosedSide)
	if err != nil {
		return nil, err
	}
	return NewWithHistogram(series, values, h, opts)
}

// NewWithHistogram links series with the precomputed histogram h. The bin
// count and closed side of opts are not used, h carries its own.
func NewWithHistogram(series data.Series, values []float64, h *link.Histogram, opts Options) (*Surface, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("%w: no histogram", link.ErrInvalidArgument)
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", link.ErrInvalidArgument, err)
	}
	if len(series) != len(values) {
		return nil, fmt.Errorf("%w: %d series but %d values",
			link.ErrInvalidArgument, len(series), len(values))
	}

	logger := opts.logger()
	s := &Surface{
		opts:          opts,
		series:        series,
		values:        append([]float64(nil), values...),
		hist:          h,
		seriesOpacity: link.NewChannels(len(series)),
		binOpacity:    link.NewChannels(h.Len()),
		log:           logger,
	}

	coord, err := link.NewCoordinator(h, s.values, s.seriesOpacity, s.binOpacity,
		opts.AlphaHidden, link.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	s.coord = coord

	lo, hi := h.Domain()
	cmap, err := view.Colormap(opts.Colormap, lo, hi)
	if err != nil {
		return nil, err
	}
	s.scatter = view.NewScatter(series, s.values, s.seriesOpacity.Reader(), cmap, opts.MarkerRadius)
	s.histogram = view.NewHistogram(h, s.binOpacity.Reader(), cmap)

	s.facet = facet.NewFacet(1, 2, true, true)
	s.facet.Logger = logger
	sp, hp := s.facet.Panels[0][0], s.facet.Panels[0][1]
	sp.Title, sp.X.Title, sp.Y.Title = "Trajectories", "x", "y"
	sp.Geoms = []facet.Geom{s.scatter}
	hp.Title, hp.X.Title, hp.Y.Title = "Histogram", "value", "count"
	hp.Y.FixMin(0)
	hp.Geoms = []facet.Geom{s.histogram}

	s.Bind(s.scatter, s.histogram)
	return s, nil
}

// Bind routes pointer events of ClickScatter, ClickHistogram, EmitScatter
// and EmitHistogram to the given views. New binds the plot views. Bind must
// not be called while Run is active.
func (s *Surface) Bind(scatter link.ScatterTarget, histogram link.HitTester) {
	s.scatterClicks = link.NewScatterResolver(scatter, s.log)
	s.binClicks = link.NewHistogramResolver(histogram, s.log)
}

// ClickScatter handles a pointer event on the scatter view. The returned
// bool is false if the event is not a selecting click; nothing changed then.
func (s *Surface) ClickScatter(ev link.PointerEvent) (link.Selection, bool) {
	i, ok := s.scatterClicks.Resolve(ev)
	if !ok {
		return link.Selection{}, false
	}
	return s.coord.SelectSeries(i), true
}

// ClickHistogram handles a pointer event on the histogram view like
// ClickScatter.
func (s *Surface) ClickHistogram(ev link.PointerEvent) (link.Selection, bool) {
	j, ok := s.binClicks.Resolve(ev)
	if !ok {
		return link.Selection{}, false
	}
	return s.coord.SelectBin(j), true
}

// SelectSeries selects series i programmatically.
func (s *Surface) SelectSeries(i link.Index) link.Selection { return s.coord.SelectSeries(i) }

// SelectBin selects bin j programmatically.
func (s *Surface) SelectBin(j link.Index) link.Selection { return s.coord.SelectBin(j) }

// Reset clears the selection.
func (s *Surface) Reset() link.Selection { return s.coord.Reset() }

// Run handles events sent with EmitScatter and EmitHistogram until ctx is
// done or Close is called. The notify functions see every outcome.
func (s *Surface) Run(ctx context.Context, notify ...func(link.Selection)) error {
	return s.coord.Run(ctx, s.scatterClicks.Clicks(), s.binClicks.Clicks(), notify...)
}

// EmitScatter resolves ev on the scatter view and hands the result to Run.
// It blocks until Run took it or ctx is done and reports whether it was
// delivered.
func (s *Surface) EmitScatter(ctx context.Context, ev link.PointerEvent) bool {
	return s.scatterClicks.Emit(ctx, ev)
}

// EmitHistogram is EmitScatter for the histogram view.
func (s *Surface) EmitHistogram(ctx context.Context, ev link.PointerEvent) bool {
	return s.binClicks.Emit(ctx, ev)
}

// Close stops Run. No Emit may follow.
func (s *Surface) Close() {
	s.scatterClicks.Close()
	s.binClicks.Close()
}

// Layout computes the positions of both plot views on c without drawing.
func (s *Surface) Layout(c draw.Canvas) {
	s.facet.Range()
	s.facet.Layout(c)
	s.scatter.Attach(s.facet.Panels[0][0])
	s.histogram.Attach(s.facet.Panels[0][1])
}

// Draw draws both plot views with their current opacities onto c.
func (s *Surface) Draw(c draw.Canvas) error {
	return s.facet.Draw(c)
}

// WritePNG draws s onto a width x height image and writes it as PNG to w.
func (s *Surface) WritePNG(w io.Writer, width, height vg.Length) error {
	img := vgimg.New(width, height)
	if err := s.Draw(draw.New(img)); err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// Histogram returns the histogram of the values.
func (s *Surface) Histogram() *link.Histogram { return s.hist }

// Values returns a copy of the series values.
func (s *Surface) Values() []float64 { return append([]float64(nil), s.values...) }

// Series returns the series.
func (s *Surface) Series() data.Series { return s.series }

// SeriesOpacity returns the opacities of the series.
func (s *Surface) SeriesOpacity() link.Reader { return s.seriesOpacity.Reader() }

// BinOpacity returns the opacities of the bins.
func (s *Surface) BinOpacity() link.Reader { return s.binOpacity.Reader() }

// Scatter returns the plot view of the series.
func (s *Surface) Scatter() *view.Scatter { return s.scatter }

// HistogramView returns the plot view of the histogram.
func (s *Surface) HistogramView() *view.Histogram { return s.histogram }

// Options returns the options s was built with.
func (s *Surface) Options() Options { return s.opts }
