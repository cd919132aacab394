// Package stats provides the small numeric backend for the recommendation
// engine: descriptive statistics, Pearson correlation, and a deterministic
// two-cluster k-means. Callers treat these functions as a replaceable
// backend; every computation is bounded, synchronous, and in-memory.
package stats

import (
	"errors"
	"math"
)

// ErrDegenerate is returned when an input has no variance (or too few
// values) and the requested statistic is undefined.
var ErrDegenerate = errors.New("stats: degenerate input")

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStd returns the sample standard deviation (n-1 denominator).
// Slices with fewer than two values have no spread and return 0.
func SampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)-1))
}

// Pearson returns the Pearson correlation coefficient between x and y.
// Returns ErrDegenerate when fewer than two pairs are given or either
// column has zero variance.
func Pearson(x, y []float64) (float64, error) {
	n := len(x)
	if n != len(y) {
		return 0, errors.New("stats: length mismatch")
	}
	if n < 2 {
		return 0, ErrDegenerate
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0, ErrDegenerate
	}

	return cov / math.Sqrt(varX*varY), nil
}

// Standardize transforms each column (feature) of the row-major matrix to
// zero mean and unit variance. Returns ErrDegenerate if any column has no
// variance across the rows.
func Standardize(rows [][]float64) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, ErrDegenerate
	}

	dims := len(rows[0])
	out := make([][]float64, len(rows))
	for i := range out {
		out[i] = make([]float64, dims)
	}

	for d := 0; d < dims; d++ {
		col := make([]float64, len(rows))
		for i, row := range rows {
			col[i] = row[d]
		}
		mean := Mean(col)
		std := SampleStd(col)
		if std == 0 {
			return nil, ErrDegenerate
		}
		for i := range rows {
			out[i][d] = (rows[i][d] - mean) / std
		}
	}

	return out, nil
}
