package mtietool

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ExhaustiveAlgorithm computes MTIE for every interval from 1 to N-1.
//
// Each interval costs one O(N) pass with an ExtremaScanner, so the
// whole computation is O(N^2). The engine only selects this algorithm
// for series up to its threshold length.
type ExhaustiveAlgorithm struct {
	// Parallelism caps the number of concurrent interval scans.
	// Zero or negative means the number of CPUs.
	Parallelism int
}

// Compute implements the Algorithm interface.
func (a *ExhaustiveAlgorithm) Compute(s *SampleSeries) (Results, error) {
	n := s.Len()
	if n < 2 {
		return nil, ErrInsufficientData
	}

	workers := a.Parallelism
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n-1 {
		workers = n - 1
	}

	// Scans for different intervals are independent. Each worker owns
	// a stride of intervals and writes to its own result slots, so the
	// output is identical to a sequential computation.
	results := make(Results, n-1)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for tau := w + 1; tau <= n-1; tau += workers {
				results[tau-1] = Result{Interval: tau, Value: mtieAt(s, tau)}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// mtieAt returns the largest peak-to-peak excursion over all windows
// of tau+1 samples.
func mtieAt(s *SampleSeries, tau int) Value {
	sc := NewExtremaScanner(s, tau+1)
	var worst Value
	for sc.Scan() {
		if d := sc.Max() - sc.Min(); d > worst {
			worst = d
		}
	}
	return worst
}
