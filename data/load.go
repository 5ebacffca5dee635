package data

import (
	"fmt"
	"io"
	"os"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"gonum.org/v1/plot/plotter"
)

// Default JSONPath expressions used by Load.
const (
	DefaultPointsPath = "$.series[*].points"
	DefaultValuesPath = "$.series[*].value"
)

// LoadFile opens the JSON file path and loads it with Load.
func LoadFile(path, pointsPath, valuesPath string) (Series, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}
	defer f.Close()
	return Load(f, pointsPath, valuesPath)
}

// Load reads a JSON document from r. The trajectories are selected with
// the JSONPath expression pointsPath, each match being an array of points.
// A point is either an array [x, y, ...] whose further coordinates are
// dropped or an object with numeric members "x" and "y".
//
// The scalar values are selected with valuesPath, one number per
// trajectory. If valuesPath matches nothing the final displacement of each
// trajectory is used as its value.
//
// Empty paths select the defaults DefaultPointsPath and DefaultValuesPath.
func Load(r io.Reader, pointsPath, valuesPath string) (Series, []float64, error) {
	if pointsPath == "" {
		pointsPath = DefaultPointsPath
	}
	if valuesPath == "" {
		valuesPath = DefaultValuesPath
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}
	doc, err := oj.Parse(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}

	px, err := jp.ParseString(pointsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: points path %q: %w", pointsPath, err)
	}
	vx, err := jp.ParseString(valuesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: values path %q: %w", valuesPath, err)
	}

	var series Series
	for i, match := range px.Get(doc) {
		xys, err := toXYs(match)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: series %d: %v", ErrMalformed, i, err)
		}
		series = append(series, xys)
	}
	if err := series.Validate(); err != nil {
		return nil, nil, err
	}

	matches := vx.Get(doc)
	if len(matches) == 0 {
		return series, series.Displacement(), nil
	}
	if len(matches) != len(series) {
		return nil, nil, fmt.Errorf("%w: %d series but %d values",
			ErrMalformed, len(series), len(matches))
	}
	values := make([]float64, len(matches))
	for i, m := range matches {
		v, ok := toFloat(m)
		if !ok {
			return nil, nil, fmt.Errorf("%w: value %d is %T, not a number", ErrMalformed, i, m)
		}
		values[i] = v
	}

	return series, values, nil
}

func toXYs(v interface{}) (plotter.XYs, error) {
	points, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("points are %T, not an array", v)
	}
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		var x, y interface{}
		switch p := p.(type) {
		case []interface{}:
			if len(p) < 2 {
				return nil, fmt.Errorf("point %d has %d coordinates", i, len(p))
			}
			x, y = p[0], p[1]
		case map[string]interface{}:
			x, y = p["x"], p["y"]
		default:
			return nil, fmt.Errorf("point %d is %T", i, p)
		}
		var okx, oky bool
		xys[i].X, okx = toFloat(x)
		xys[i].Y, oky = toFloat(y)
		if !okx || !oky {
			return nil, fmt.Errorf("point %d has non-numeric coordinates", i)
		}
	}
	return xys, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
