// Package compare walks two timeseries.Series over their union time axis
// and accumulates diff statistics: a running sum, sum of squares and mean
// of the raw difference, the extreme weighted-difference pair, and a
// KS-style maximum cumulative deviation. It is the reporting layer built
// on top of timeseries.UnionTime/GetTimePoints.
package compare
