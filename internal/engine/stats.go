package engine

import "math"

const epsilon = 1e-9

// linearFit returns the ordinary least squares slope and intercept of y over
// x = 0..n-1. With fewer than two points the slope is zero and the intercept
// is the last value.
func linearFit(y []float64) (slope, intercept float64) {
	n := len(y)
	if n == 0 {
		return 0, 0
	}
	if n < 2 {
		return 0, y[n-1]
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / fn
	}
	slope = (fn*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / fn
	return slope, intercept
}

// sampleStd is the n-1 standard deviation. NaN for fewer than two values.
func sampleStd(v []float64) float64 {
	if len(v) < 2 {
		return math.NaN()
	}
	m := mean(v)
	var ss float64
	for _, x := range v {
		ss += (x - m) * (x - m)
	}
	return math.Sqrt(ss / float64(len(v)-1))
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var s float64
	for _, x := range v {
		s += x
	}
	return s / float64(len(v))
}

// usable rejects NaN, infinities and values indistinguishable from zero.
func usable(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > epsilon
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
