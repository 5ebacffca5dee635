// Package brush links a scatter plot of trajectories with a histogram of
// one scalar value per trajectory.
//
// Clicking a trajectory in the scatter view highlights it together with
// the histogram bin its value falls into. Clicking a bar highlights the bin
// and every trajectory whose value falls into it. A click which hits
// nothing clears the selection. Highlighting is done through opacity only:
// selected elements are fully opaque, all others are drawn with the hidden
// opacity of the Options.
//
// Views
//
// The plots are drawn with gonum.org/v1/plot on a faceted layout of two
// panels (package facet). Pointer events for these views are in canvas
// coordinates, i.e. points with the origin in the lower left corner.
// Other views, like the terminal views of package tui, can be attached to a
// Surface with Bind as long as they implement link.ScatterTarget and
// link.HitTester.
//
// Bins
//
// The histogram has equal width bins spanning the values. Bins are closed
// on the left by default, i.e. [lo, hi). The open outer edge lies one ulp
// beyond the extreme value so every value falls into a bin. With
// precomputed edges a value may lie outside all bins; its trajectory is
// highlighted alone when selected and no bin is lit.
package brush
