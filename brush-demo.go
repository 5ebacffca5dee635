//go:build ignore

package main

import (
	"os"

	"github.com/vdobler/brush"
	"github.com/vdobler/brush/data"
)

// Renders 300 random walks with the bin of the fifth walk selected into
// brush.png.
func main() {
	series, values := data.RandomWalks(300, 80, 7)

	opts := brush.DefaultOptions()
	opts.BinCount = 30
	s, err := brush.New(series, values, opts)
	if err != nil {
		panic(err)
	}
	s.SelectBin(s.Histogram().BinOf(values[4]))

	w, err := os.Create("brush.png")
	if err != nil {
		panic(err)
	}
	defer w.Close()
	if err = s.WritePNG(w, 900, 450); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
