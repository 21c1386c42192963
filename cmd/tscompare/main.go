// Command tscompare compares two CSV traces using the tolerance-aware
// resampling and comparison engine: it loads both traces, compresses
// each when -compress is given, computes their difference and comparison
// statistics, and prints a report.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mashalov/timeseries/compare"
	"github.com/mashalov/timeseries/timeseries"
)

func main() {
	var (
		timeTol    = flag.Float64("time-tolerance", 1e-8, "time window for GetTimePoints matches")
		valueTol   = flag.Float64("value-tolerance", 1e-8, "value window for near-duplicate/collinearity checks")
		atol       = flag.Float64("atol", 1.0, "absolute scale term in the weighted-difference denominator")
		rtol       = flag.Float64("rtol", 0.0, "relative scale term in the weighted-difference denominator")
		compress   = flag.Bool("compress", false, "compress both traces before comparing")
		rangeLo    = flag.Float64("range-begin", 0, "lower bound of the comparison range (with -range)")
		rangeHi    = flag.Float64("range-end", 0, "upper bound of the comparison range (with -range)")
		useRange   = flag.Bool("range", false, "restrict comparison to [range-begin, range-end)")
		diffOutput = flag.String("diff-out", "", "write the pointwise difference trace to this CSV path")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] trace1.csv trace2.csv\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	opt := timeseries.DefaultOptions().WithTimeTolerance(*timeTol).WithValueTolerance(*valueTol).WithScaling(*atol, *rtol)
	if *useRange {
		opt = opt.WithRange(*rangeLo, *rangeHi)
	}

	if err := run(flag.Arg(0), flag.Arg(1), opt, *compress, *diffOutput); err != nil {
		fmt.Fprintf(os.Stderr, "tscompare: %v\n", err)
		os.Exit(1)
	}
}

func run(path1, path2 string, opt timeseries.Options, doCompress bool, diffOutput string) error {
	a, err := timeseries.LoadCSV(path1)
	if err != nil {
		return err
	}
	b, err := timeseries.LoadCSV(path2)
	if err != nil {
		return err
	}

	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("%s: %d samples\n", path1, a.Len())
	fmt.Printf("%s: %d samples\n", path2, b.Len())
	fmt.Println(strings.Repeat("=", 72))

	if doCompress {
		removedA, err := a.Compress(opt)
		if err != nil {
			return err
		}
		removedB, err := b.Compress(opt)
		if err != nil {
			return err
		}
		fmt.Printf("compressed %s: removed %d points, %d remain\n", path1, removedA, a.Len())
		fmt.Printf("compressed %s: removed %d points, %d remain\n", path2, removedB, b.Len())
	}

	diff, err := a.Difference(b, opt)
	if err != nil {
		return err
	}
	fmt.Printf("\ndifference: %d points\n", diff.Len())

	if diffOutput != "" {
		if err := timeseries.SaveCSV(diff, diffOutput); err != nil {
			return err
		}
		fmt.Printf("wrote difference trace to %s\n", diffOutput)
	}

	result, err := compare.Compare(a, b, opt)
	if err != nil {
		return err
	}

	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("count:      %d\n", result.Count)
	fmt.Printf("avg diff:   %g\n", result.Avg)
	fmt.Printf("max |awd|:  %g  (v1=%g v2=%g t=%g)\n", result.Max.Weighted, result.Max.V1, result.Max.V2, result.Max.T)
	fmt.Printf("min |awd|:  %g  (v1=%g v2=%g t=%g)\n", result.Min.Weighted, result.Min.V1, result.Min.V2, result.Min.T)
	fmt.Printf("KS diff:    %g\n", result.KSTest())
	fmt.Printf("identical:  %v\n", result.Identical(0))

	return nil
}
