// Linkbrush shows trajectories next to a histogram of one value per
// trajectory and links both: clicking a trajectory lights its bin, clicking
// a bin lights its trajectories.
//
// Without -data a set of random walks is shown whose values are the final
// displacements. With -png both views are rendered into a PNG file instead
// of running the terminal UI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	styles "github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/vdobler/brush"
	"github.com/vdobler/brush/data"
	"github.com/vdobler/brush/link"
	"github.com/vdobler/brush/tui"
	"github.com/vdobler/brush/view"
	"gonum.org/v1/plot/vg"
)

type Config struct {
	// input
	DataPath    string
	PointsPath  string
	ValuesPath  string
	OptionsPath string
	Walks       int
	Steps       int
	Seed        int64

	// histogram and rendering
	Bins     int
	Closed   string
	Alpha    float64
	Colormap string

	// selection applied before showing
	SelectSeries int
	SelectBin    int

	// output
	PNGPath   string
	Width     float64
	Height    float64
	AltScreen bool

	// logging
	LogPath  string
	LogLevel string
}

var defaults = brush.DefaultOptions()

var config = Config{
	PointsPath: data.DefaultPointsPath,
	ValuesPath: data.DefaultValuesPath,
	Walks:      200,
	Steps:      100,
	Seed:       1,

	Bins:     defaults.BinCount,
	Closed:   defaults.ClosedSide.String(),
	Alpha:    defaults.AlphaHidden,
	Colormap: defaults.Colormap,

	SelectSeries: -1,
	SelectBin:    -1,

	Width:     800,
	Height:    400,
	AltScreen: true,

	LogLevel: "info",
}

func main() {
	log.SetOutput(os.Stderr)
	flag.StringVar(&config.DataPath, "data", config.DataPath, "Read trajectories and values from this JSON file (default: random walks)")
	flag.StringVar(&config.PointsPath, "points", config.PointsPath, "JSONPath selecting the points of each trajectory")
	flag.StringVar(&config.ValuesPath, "values", config.ValuesPath, "JSONPath selecting the value of each trajectory (no match: final displacement)")
	flag.StringVar(&config.OptionsPath, "config", config.OptionsPath, "Read options from this YAML file; flags given explicitly win")
	flag.IntVar(&config.Walks, "walks", config.Walks, "Number of random walks without -data")
	flag.IntVar(&config.Steps, "steps", config.Steps, "Steps per random walk")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "Random walk seed")
	flag.IntVar(&config.Bins, "bins", config.Bins, "Number of histogram bins")
	flag.StringVar(&config.Closed, "closed", config.Closed, "Closed side of the bins: left or right")
	flag.Float64Var(&config.Alpha, "alpha", config.Alpha, "Opacity of unselected elements [0,1]")
	flag.StringVar(&config.Colormap, "colormap", config.Colormap, "Color map: "+strings.Join(view.ColormapNames(), ", "))
	flag.IntVar(&config.SelectSeries, "select-series", config.SelectSeries, "Select this series (0-based) before showing")
	flag.IntVar(&config.SelectBin, "select-bin", config.SelectBin, "Select this bin (0-based) before showing")
	flag.StringVar(&config.PNGPath, "png", config.PNGPath, "Render both views into this PNG file instead of running the terminal UI")
	flag.Float64Var(&config.Width, "width", config.Width, "PNG width in points")
	flag.Float64Var(&config.Height, "height", config.Height, "PNG height in points")
	flag.BoolVar(&config.AltScreen, "alt-screen", config.AltScreen, "Use the terminal alternate screen buffer")
	flag.StringVar(&config.LogPath, "log", config.LogPath, "Write logs to this file (default: stderr with -png, none otherwise)")
	flag.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level: debug, info, warn or error")

	flag.Parse()

	if err := validateAndNormalizeConfig(); err != nil {
		log.Fatal(err)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	opts, err := options()
	if err != nil {
		log.Fatal(err)
	}
	opts.Logger = logger

	series, values, err := dataset()
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("dataset loaded", "series", len(series), "steps", series.MaxLen())

	s, err := brush.New(series, values, opts)
	if err != nil {
		log.Fatal(err)
	}
	switch {
	case config.SelectSeries >= 0:
		s.SelectSeries(link.Index(config.SelectSeries))
	case config.SelectBin >= 0:
		s.SelectBin(link.Index(config.SelectBin))
	}

	if config.PNGPath != "" {
		if err := writePNG(s); err != nil {
			log.Fatal(err)
		}
		return
	}

	if !term.IsTerminal(os.Stdin.Fd()) {
		log.Fatal("the terminal UI needs a terminal on stdin; use -png to render an image")
	}
	m, err := tui.NewModel(s, styles.DefaultRenderer().HasDarkBackground())
	if err != nil {
		log.Fatal(err)
	}
	progOpts := []tea.ProgramOption{tea.WithInputTTY(), tea.WithMouseCellMotion()}
	if config.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		log.Fatal(err)
	}
}

func validateAndNormalizeConfig() error {
	if config.Bins < 1 {
		return fmt.Errorf("-bins must be >= 1")
	}
	if _, err := link.ParseClosedSide(config.Closed); err != nil {
		return fmt.Errorf("-closed must be left or right")
	}
	if config.Alpha < 0 || config.Alpha > 1 {
		return fmt.Errorf("-alpha must be in [0,1]")
	}
	if config.DataPath == "" {
		if config.Walks < 1 {
			return fmt.Errorf("-walks must be >= 1")
		}
		if config.Steps < 1 {
			return fmt.Errorf("-steps must be >= 1")
		}
	}
	if config.SelectSeries >= 0 && config.SelectBin >= 0 {
		return fmt.Errorf("choose only one: -select-series or -select-bin")
	}
	if config.PNGPath != "" && (config.Width <= 0 || config.Height <= 0) {
		return fmt.Errorf("-width and -height must be > 0")
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		return fmt.Errorf("-log-level must be debug, info, warn or error")
	}
	config.Closed = strings.ToLower(strings.TrimSpace(config.Closed))
	return nil
}

// newLogger returns the logger for the whole program. The terminal UI owns
// stdout and stderr, so without -log it logs nowhere.
func newLogger() (*slog.Logger, func(), error) {
	var level slog.Level
	_ = level.UnmarshalText([]byte(config.LogLevel))

	var w io.Writer = io.Discard
	closeLog := func() {}
	switch {
	case config.LogPath != "":
		f, err := os.OpenFile(config.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		w, closeLog = f, func() { _ = f.Close() }
	case config.PNGPath != "":
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeLog, nil
}

// options reads -config and applies the histogram flags given on the
// command line on top.
func options() (brush.Options, error) {
	opts := brush.DefaultOptions()
	if config.OptionsPath != "" {
		var err error
		if opts, err = brush.LoadOptions(config.OptionsPath); err != nil {
			return opts, err
		}
	}
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bins":
			opts.BinCount = config.Bins
		case "closed":
			opts.ClosedSide, err = link.ParseClosedSide(config.Closed)
		case "alpha":
			opts.AlphaHidden = config.Alpha
		case "colormap":
			opts.Colormap = config.Colormap
		}
	})
	if err != nil {
		return opts, err
	}
	return opts, opts.Validate()
}

func dataset() (data.Series, []float64, error) {
	if config.DataPath == "" {
		series, values := data.RandomWalks(config.Walks, config.Steps, config.Seed)
		return series, values, nil
	}
	return data.LoadFile(config.DataPath, config.PointsPath, config.ValuesPath)
}

func writePNG(s *brush.Surface) error {
	f, err := os.Create(config.PNGPath)
	if err != nil {
		return err
	}
	if err := s.WritePNG(f, vg.Length(config.Width), vg.Length(config.Height)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
