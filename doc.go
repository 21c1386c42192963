// Package timeseries provides a tolerance-aware resampling and
// comparison engine for numeric time series.
//
// # Packages
//
//   - timeseries: the monotonic Series container, GetTimePoints
//     locate/interpolate/aggregate primitive, UnionTime, Compress,
//     Difference, DenseOutput, and CSV trace I/O.
//   - compare: the incremental CompareResult accumulator and the
//     Compare entry point built on top of UnionTime/GetTimePoints.
//   - cmd/tscompare: a CLI that loads two CSV traces and reports their
//     comparison statistics.
//
// # Quick Start
//
//	a, _ := timeseries.LoadCSV("a.csv")
//	b, _ := timeseries.LoadCSV("b.csv")
//	result, _ := compare.Compare(a, b, timeseries.DefaultOptions())
//	fmt.Println(result.KSTest())
package timeseries
