package main

import (
	"fmt"
	"log"

	"github.com/fatih/color"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/daystram/splitrand/prng"
	"github.com/daystram/splitrand/stat"
)

// stats accumulates running moments over uniform doubles and runs a
// chi-square equidistribution check across bins.
func stats(param prng.Param, seed, n uint64, bins int) error {
	if bins < 2 {
		return fmt.Errorf("bins must be >= 2 but was %d", bins)
	}

	log.Printf("============ stats (param=%s seed=%d)\n", param, seed)
	g := prng.New(prng.WithParam(param), prng.WithSeed(seed))

	var m stat.Moments
	counts := make([]uint64, bins)
	for i := uint64(0); i < n; i++ {
		v := prng.Float64(g)
		m.Accumulate(v)
		counts[int(v*float64(bins))]++
	}

	fmt.Printf("n:        %d\n", m.Count())
	fmt.Printf("min:      %.9f\n", m.Min())
	fmt.Printf("max:      %.9f\n", m.Max())
	fmt.Printf("mean:     %.9f (expect 0.5)\n", m.Mean())
	fmt.Printf("variance: %.9f (expect %.9f)\n", m.Variance(), 1.0/12.0)
	fmt.Printf("skewness: %+.6f (expect 0)\n", m.Skewness())
	fmt.Printf("kurtosis: %+.6f (expect -1.2)\n", m.Kurtosis())

	expected := float64(n) / float64(bins)
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	p := distuv.ChiSquared{K: float64(bins - 1)}.Survival(chi2)

	verdict := color.GreenString("PASSED")
	if p < 0.01 || p > 0.99 {
		verdict = color.RedString("SUSPECT")
	}
	fmt.Printf("chi-square: %.3f (df=%d) p-value=%.6f %s\n", chi2, bins-1, p, verdict)
	return nil
}
