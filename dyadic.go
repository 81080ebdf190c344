package mtietool

// DyadicAlgorithm computes MTIE only at intervals of the form 2^k - 1
// using a binary doubling decomposition.
//
// A level-k entry holds the maximum (or minimum) over the window of
// 2^k samples starting at a position. A window of 2^k samples is the
// concatenation of two adjacent windows of 2^(k-1) samples, so each
// level is derived from the previous one in O(N), giving O(N log N)
// total. Intervals between the dyadic points are not interpolated;
// they are simply absent from the output.
//
// See "Fast Algorithms for TVAR and MTIE Computation in
// Characterization of Network Synchronization Performance".
type DyadicAlgorithm struct{}

// Compute implements the Algorithm interface.
func (DyadicAlgorithm) Compute(s *SampleSeries) (Results, error) {
	n := s.Len()
	if n < 2 {
		return nil, ErrInsufficientData
	}

	// Only the previous level is ever needed, so two buffer pairs
	// rotate instead of keeping the whole level history.
	maxPrev := make([]Value, n)
	minPrev := make([]Value, n)
	copy(maxPrev, s.values)
	copy(minPrev, s.values)
	maxCur := make([]Value, n)
	minCur := make([]Value, n)

	var results Results
	for k := 1; ; k++ {
		width := 1 << k // window length 2^k
		if width > n {
			break
		}
		half := width >> 1
		count := n - width + 1

		for i := 0; i < count; i++ {
			mx := maxPrev[i]
			if maxPrev[i+half] > mx {
				mx = maxPrev[i+half]
			}
			maxCur[i] = mx

			mn := minPrev[i]
			if minPrev[i+half] < mn {
				mn = minPrev[i+half]
			}
			minCur[i] = mn
		}

		worst := maxCur[0] - minCur[0]
		for i := 1; i < count; i++ {
			if d := maxCur[i] - minCur[i]; d > worst {
				worst = d
			}
		}
		results = append(results, Result{Interval: width - 1, Value: worst})

		maxPrev, maxCur = maxCur, maxPrev
		minPrev, minCur = minCur, minPrev
	}
	return results, nil
}
