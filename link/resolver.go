package link

import (
	"context"
	"log/slog"
)

// ----------------------------------------------------------------------------
// Pointer events

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// Action is what happened to the button.
type Action int

const (
	Press Action = iota
	Release
	Motion
)

// PointerEvent is a raw pointer event in the coordinate system of the view
// receiving it.
type PointerEvent struct {
	X, Y   float64
	Button Button
	Action Action
}

// Rect is an axis aligned rectangle. Both edges are inclusive.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// ----------------------------------------------------------------------------
// View contracts

// Hit is what a view reports for a pointer position: the rendered object
// struck and the index of the element inside that object.
type Hit struct {
	Object interface{}
	Sub    int
}

// A HitTester is a view which can tell which rendered element lies at a
// position given in the view's coordinate system.
type HitTester interface {
	// Region returns the interactive region of the view.
	Region() Rect

	// HitTest reports the element at (x, y), if any.
	HitTest(x, y float64) (Hit, bool)
}

// A ScatterTarget renders one object per series and can list these objects
// in series order.
type ScatterTarget interface {
	HitTester

	// Objects returns the rendered object of each series. The identity of
	// the objects must be unique per series.
	Objects() []interface{}
}

// ----------------------------------------------------------------------------
// Resolver

// Resolver converts pointer events of one view into an Index.
type Resolver struct {
	name    string
	view    HitTester
	extract func(Hit) Index
	clicks  chan Index
	log     *slog.Logger
}

// NewScatterResolver returns a Resolver mapping the struck object back to
// its series index.
func NewScatterResolver(view ScatterTarget, logger *slog.Logger) *Resolver {
	return newResolver("scatter", view, func(hit Hit) Index {
		return ordinal(view.Objects(), hit.Object)
	}, logger)
}

// NewHistogramResolver returns a Resolver reporting the struck bin.
func NewHistogramResolver(view HitTester, logger *slog.Logger) *Resolver {
	return newResolver("histogram", view, func(hit Hit) Index {
		return Index(hit.Sub)
	}, logger)
}

func newResolver(name string, view HitTester, extract func(Hit) Index, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = discard
	}
	return &Resolver{
		name:    name,
		view:    view,
		extract: extract,
		clicks:  make(chan Index),
		log:     logger.With("view", name),
	}
}

// ordinal returns the position of the first element of objects identical
// to obj or None.
func ordinal(objects []interface{}, obj interface{}) Index {
	if obj == nil {
		return None
	}
	for i, o := range objects {
		if o == obj {
			return Index(i)
		}
	}
	return None
}

// Name returns "scatter" or "histogram".
func (r *Resolver) Name() string { return r.name }

// Resolve converts ev. Only left button presses qualify; for all other
// events ok is false. A qualifying press outside the view's region or not
// hitting any element resolves to None.
func (r *Resolver) Resolve(ev PointerEvent) (i Index, ok bool) {
	if ev.Button != ButtonLeft || ev.Action != Press {
		return None, false
	}
	if !r.view.Region().Contains(ev.X, ev.Y) {
		r.log.Debug("press outside region", "x", ev.X, "y", ev.Y)
		return None, true
	}
	hit, found := r.view.HitTest(ev.X, ev.Y)
	if !found {
		return None, true
	}
	i = r.extract(hit)
	if i == None {
		r.log.Debug("struck object not found", "sub", hit.Sub)
	}
	return i, true
}

// Clicks returns the channel on which Emit publishes resolutions.
func (r *Resolver) Clicks() <-chan Index { return r.clicks }

// Emit resolves ev and, if it qualifies, sends the result on Clicks. It
// blocks until the result is received or ctx is done and reports whether
// a value was sent.
func (r *Resolver) Emit(ctx context.Context, ev PointerEvent) bool {
	i, ok := r.Resolve(ev)
	if !ok {
		return false
	}
	select {
	case r.clicks <- i:
		return true
	case <-ctx.Done():
		return false
	}
}

// Close closes the Clicks channel. Emit must not be called afterwards.
func (r *Resolver) Close() { close(r.clicks) }
