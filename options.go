package brush

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vdobler/brush/link"
	"github.com/vdobler/brush/view"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Options control the construction of a Surface.
type Options struct {
	// BinCount is the number of histogram bins.
	BinCount int `yaml:"bin_count"`

	// ClosedSide selects which side of a bin interval is closed.
	ClosedSide link.ClosedSide `yaml:"closed_side"`

	// AlphaHidden is the opacity of elements which are not selected.
	AlphaHidden float64 `yaml:"alpha_hidden"`

	// Colormap names the color map used for values, see view.ColormapNames.
	Colormap string `yaml:"colormap"`

	// MarkerRadius is the radius of the trajectory markers.
	MarkerRadius vg.Length `yaml:"marker_radius"`

	// Logger receives debug logs of every selection. May be nil.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultOptions returns 50 left closed bins, a hidden opacity of 0.05,
// the viridis color map and 3pt markers.
func DefaultOptions() Options {
	return Options{
		BinCount:     50,
		ClosedSide:   link.Left,
		AlphaHidden:  0.05,
		Colormap:     "viridis",
		MarkerRadius: vg.Length(3),
	}
}

// LoadOptions reads the YAML file path. Fields missing from the file keep
// their default value, unknown fields are an error.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	f, err := os.Open(path)
	if err != nil {
		return opts, fmt.Errorf("load options: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return opts, fmt.Errorf("load options %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("load options %s: %w", path, err)
	}
	return opts, nil
}

// Validate reports invalid options. The error wraps link.ErrInvalidArgument.
func (o Options) Validate() error {
	if o.BinCount <= 0 {
		return fmt.Errorf("%w: bin count %d", link.ErrInvalidArgument, o.BinCount)
	}
	if o.ClosedSide != link.Left && o.ClosedSide != link.Right {
		return fmt.Errorf("%w: closed side %d", link.ErrInvalidArgument, o.ClosedSide)
	}
	if !(o.AlphaHidden >= 0 && o.AlphaHidden <= 1) {
		return fmt.Errorf("%w: hidden opacity %g not in [0,1]", link.ErrInvalidArgument, o.AlphaHidden)
	}
	if o.MarkerRadius <= 0 {
		return fmt.Errorf("%w: marker radius %v", link.ErrInvalidArgument, o.MarkerRadius)
	}
	if _, err := view.Colormap(o.Colormap, 0, 1); err != nil {
		return err
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
