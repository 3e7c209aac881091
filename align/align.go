package align

import (
	"fmt"
	"math"
)

// Distance computes the Dynamic Time Warping distance between two
// pressure signals. With opts.ReturnPath it also recovers the optimal
// sample-to-sample alignment.
//
// DP recurrence, for cost = |a[i−1] − b[j−1]|:
//
//	D[i][j] = cost + min(D[i−1][j] + penalty,   // insertion
//	                     D[i][j−1] + penalty,   // deletion
//	                     D[i−1][j−1])           // match
//
// Complexity: O(n·m) time; memory per opts.Memory.
func Distance(a, b []float64, opts Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	if opts.Window < -1 {
		return 0, nil, fmt.Errorf("Distance: window=%d: %w", opts.Window, ErrBadWindow)
	}
	if opts.ReturnPath && opts.Memory != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	if opts.NormalizePeaks {
		var err error
		if a, err = peakNormalize(a); err != nil {
			return 0, nil, fmt.Errorf("Distance: first signal: %w", err)
		}
		if b, err = peakNormalize(b); err != nil {
			return 0, nil, fmt.Errorf("Distance: second signal: %w", err)
		}
	}

	window := opts.Window
	if window < 0 {
		window = math.MaxInt32
	}

	inf := math.Inf(1)
	var dp [][]float64
	if opts.Memory == FullMatrix {
		dp = make([][]float64, n+1)
		for i := range dp {
			dp[i] = make([]float64, m+1)
		}
		for i := 1; i <= n; i++ {
			dp[i][0] = inf
		}
	} else {
		dp = [][]float64{make([]float64, m+1), make([]float64, m+1)}
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		rowCurr, rowPrev := i, i-1
		if opts.Memory == TwoRows {
			rowCurr, rowPrev = i%2, (i-1)%2
			dp[rowCurr][0] = inf
		}
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				dp[rowCurr][j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			best := min3(
				dp[rowPrev][j]+opts.SlopePenalty,
				dp[rowCurr][j-1]+opts.SlopePenalty,
				dp[rowPrev][j-1],
			)
			dp[rowCurr][j] = cost + best
		}
	}

	var distance float64
	if opts.Memory == FullMatrix {
		distance = dp[n][m]
	} else {
		distance = dp[n%2][m]
	}

	var path []Coord
	if opts.ReturnPath {
		path = backtrack(dp, a, b, opts.SlopePenalty)
	}

	return distance, path, nil
}

// backtrack recovers the alignment from a full DP matrix, walking from
// (n,m) to the origin along minimal predecessors.
func backtrack(dp [][]float64, a, b []float64, penalty float64) []Coord {
	i, j := len(a), len(b)
	var path []Coord
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		prevCost := dp[i][j] - math.Abs(a[i-1]-b[j-1])
		switch {
		case dp[i-1][j] == prevCost-penalty:
			i--
		case dp[i][j-1] == prevCost-penalty:
			j--
		default:
			i--
			j--
		}
	}
	for i > 0 {
		path = append(path, Coord{I: i - 1, J: 0})
		i--
	}
	for j > 0 {
		path = append(path, Coord{I: 0, J: j - 1})
		j--
	}

	// reverse in place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// peakNormalize scales sig by its peak absolute value.
func peakNormalize(sig []float64) ([]float64, error) {
	var peak float64
	for _, s := range sig {
		peak = math.Max(peak, math.Abs(s))
	}
	if peak == 0 {
		return nil, ErrSilentInput
	}

	out := make([]float64, len(sig))
	for i, s := range sig {
		out[i] = s / peak
	}

	return out, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
