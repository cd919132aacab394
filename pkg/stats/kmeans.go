package stats

import "math"

// kmeansMaxIterations caps the assign/recompute loop; two clusters over a
// personal diary converge in a handful of iterations.
const kmeansMaxIterations = 100

// KMeans2 partitions the given points into exactly two clusters and returns
// a 0/1 assignment per point. Initialization is deterministic (the first
// point and the point farthest from it seed the centroids), so identical
// input always yields an identical partition. Returns ErrDegenerate when
// fewer than two distinct points exist.
func KMeans2(points [][]float64) ([]int, error) {
	if len(points) < 2 {
		return nil, ErrDegenerate
	}

	// Seed centroids: first point, plus the point farthest from it.
	far, farDist := 0, 0.0
	for i := 1; i < len(points); i++ {
		if d := squaredDistance(points[0], points[i]); d > farDist {
			far, farDist = i, d
		}
	}
	if farDist == 0 {
		// All points identical; no meaningful partition.
		return nil, ErrDegenerate
	}

	centroids := [2][]float64{
		append([]float64(nil), points[0]...),
		append([]float64(nil), points[far]...),
	}

	assignments := make([]int, len(points))
	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, p := range points {
			c := 0
			if squaredDistance(p, centroids[1]) < squaredDistance(p, centroids[0]) {
				c = 1
			}
			if assignments[i] != c {
				assignments[i] = c
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}
		recomputeCentroids(points, assignments, &centroids)
	}

	return assignments, nil
}

func recomputeCentroids(points [][]float64, assignments []int, centroids *[2][]float64) {
	dims := len(points[0])
	sums := [2][]float64{make([]float64, dims), make([]float64, dims)}
	counts := [2]int{}

	for i, p := range points {
		c := assignments[i]
		counts[c]++
		for d, v := range p {
			sums[c][d] += v
		}
	}

	for c := 0; c < 2; c++ {
		if counts[c] == 0 {
			// Empty cluster keeps its previous centroid.
			continue
		}
		for d := 0; d < dims; d++ {
			centroids[c][d] = sums[c][d] / float64(counts[c])
		}
	}
}

func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	// Guard against NaN propagation from malformed input.
	if math.IsNaN(sum) {
		return math.MaxFloat64
	}
	return sum
}
