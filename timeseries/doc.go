// Package timeseries provides the tolerance-aware resampling and
// comparison engine at the core of this module: an immutable Point, an
// Options configuration bundle, the monotonic Series container with CSV
// I/O, the tolerance-window locator (GetTimePoints), union-time
// traversal, collinearity-based compression, per-time difference, and
// uniform-grid dense resampling.
//
// # Building a series
//
// Construct a Series from parallel slices, from a slice of Points, or by
// loading a trace CSV file:
//
//	series, err := timeseries.NewFromSlices(times, values)
//	series, err := timeseries.LoadCSV("trace.csv")
//
// # Locating samples
//
// GetTimePoints is the primitive every other operation in this package
// builds on: it locates the samples within a time tolerance window
// around a query time, interpolating if none exist and aggregating if
// several coincide. It threads a Cursor so a sweeping caller's binary
// search covers only the samples from the cursor onward:
//
//	opt := timeseries.DefaultOptions()
//	cur := timeseries.BeginCursor
//	cluster, cur, err := series.GetTimePoints(1.0, opt, cur)
//
// # Resampling and comparison
//
//	dense, err := series.DenseOutput(0, 10, 0.5, opt)
//	removed, err := dense.Compress(opt)
//	diff, err := seriesA.Difference(seriesB, opt)
//
// Pairwise comparison producing scalar statistics, including a
// Kolmogorov-Smirnov-style max cumulative deviation, lives in the
// sibling compare package.
package timeseries
