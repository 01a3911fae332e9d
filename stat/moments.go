// Package stat provides an online accumulator for descriptive statistics of
// a value stream: count, min/max, Kahan-compensated sum, and the first four
// central moments, all in one pass with O(1) memory.
package stat

import (
	"fmt"
	"math"
)

// Moments accumulates a stream of float64 samples. The zero value is ready
// for use. Not safe for concurrent accumulation.
type Moments struct {
	n   int64
	min float64
	max float64

	// Kahan summation carry.
	sum float64
	c   float64

	m1 float64
	m2 float64
	m3 float64
	m4 float64
}

// Accumulate folds one sample into the running moments.
func (m *Moments) Accumulate(v float64) {
	if m.n == 0 {
		m.min, m.max = v, v
	} else {
		if v < m.min {
			m.min = v
		}
		if v > m.max {
			m.max = v
		}
	}
	m.n++
	m.updateSum(v)
	m.updateMoments(v)
}

func (m *Moments) updateSum(v float64) {
	y := v - m.c
	t := m.sum + y
	m.c = t - m.sum - y
	m.sum = t
}

func (m *Moments) updateMoments(v float64) {
	n := float64(m.n)
	d := v - m.m1
	dn := d / n
	dn2 := dn * dn
	t1 := d * dn * (n - 1)

	m.m1 += dn
	m.m4 += t1*dn2*(n*n-3*n+3) + 6*dn2*m.m2 - 4*dn*m.m3
	m.m3 += t1*dn*(n-2) - 3*dn*m.m2
	m.m2 += t1
}

// Combine merges another accumulator into this one, as if every sample of o
// had been accumulated here. Min/max and sum combine exactly; the central
// moments use the pairwise update formulas.
func (m *Moments) Combine(o *Moments) {
	if o.n == 0 {
		return
	}
	if m.n == 0 {
		*m = *o
		return
	}

	if o.min < m.min {
		m.min = o.min
	}
	if o.max > m.max {
		m.max = o.max
	}
	m.updateSum(o.sum)

	na, nb := float64(m.n), float64(o.n)
	n := na + nb
	d := o.m1 - m.m1

	m4 := m.m4 + o.m4 +
		d*d*d*d*na*nb*(na*na-na*nb+nb*nb)/(n*n*n) +
		6*d*d*(na*na*o.m2+nb*nb*m.m2)/(n*n) +
		4*d*(na*o.m3-nb*m.m3)/n
	m3 := m.m3 + o.m3 +
		d*d*d*na*nb*(na-nb)/(n*n) +
		3*d*(na*o.m2-nb*m.m2)/n
	m2 := m.m2 + o.m2 + d*d*na*nb/n

	m.m1 = (na*m.m1 + nb*o.m1) / n
	m.m2, m.m3, m.m4 = m2, m3, m4
	m.n += o.n
}

// Count returns the number of accumulated samples.
func (m *Moments) Count() int64 {
	return m.n
}

// Min returns the smallest sample, or NaN when empty.
func (m *Moments) Min() float64 {
	if m.n == 0 {
		return math.NaN()
	}
	return m.min
}

// Max returns the largest sample, or NaN when empty.
func (m *Moments) Max() float64 {
	if m.n == 0 {
		return math.NaN()
	}
	return m.max
}

// Sum returns the Kahan-compensated sum of all samples.
func (m *Moments) Sum() float64 {
	return m.sum
}

// Mean returns the arithmetic mean, or NaN when empty.
func (m *Moments) Mean() float64 {
	if m.n == 0 {
		return math.NaN()
	}
	return m.m1
}

// Variance returns the sample variance, or NaN for fewer than two samples.
func (m *Moments) Variance() float64 {
	if m.n < 2 {
		return math.NaN()
	}
	return m.m2 / float64(m.n-1)
}

// Skewness returns the moment coefficient of skewness g1, or NaN for fewer
// than three samples or a degenerate spread.
func (m *Moments) Skewness() float64 {
	if m.n < 3 || m.m2 == 0 {
		return math.NaN()
	}
	n := float64(m.n)
	return math.Sqrt(n) * m.m3 / math.Pow(m.m2, 1.5)
}

// Kurtosis returns the excess kurtosis g2, or NaN for fewer than four
// samples or a degenerate spread.
func (m *Moments) Kurtosis() float64 {
	if m.n < 4 || m.m2 == 0 {
		return math.NaN()
	}
	n := float64(m.n)
	return n*m.m4/(m.m2*m.m2) - 3
}

func (m *Moments) String() string {
	return fmt.Sprintf("Moments[n=%d, min=%g, max=%g, mean=%g, var=%g]",
		m.n, m.Min(), m.Max(), m.Mean(), m.Variance())
}
