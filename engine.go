package mtietool

import "errors"

// DefaultThreshold is the largest series length for which the engine
// computes MTIE exhaustively. Longer series take too long with the
// O(N^2) algorithm and switch to the dyadic decomposition.
const DefaultThreshold = 100000

var ErrInsufficientData = errors.New("need at least two samples to compute MTIE")
var ErrInvalidThreshold = errors.New("threshold must be a positive sample count")

// Algorithm computes MTIE results from a sample series.
type Algorithm interface {
	Compute(s *SampleSeries) (Results, error)
}

// Engine computes MTIE for a sample series, selecting an algorithm
// by the series length.
type Engine struct {
	threshold  int
	exhaustive Algorithm
	dyadic     Algorithm
}

// NewEngine returns an engine which computes series up to threshold
// samples exhaustively and longer series with the dyadic algorithm.
// parallelism caps concurrent interval scans in the exhaustive
// algorithm; zero or negative means the number of CPUs.
func NewEngine(threshold, parallelism int) (*Engine, error) {
	if threshold < 1 {
		return nil, ErrInvalidThreshold
	}
	return &Engine{
		threshold:  threshold,
		exhaustive: &ExhaustiveAlgorithm{Parallelism: parallelism},
		dyadic:     DyadicAlgorithm{},
	}, nil
}

// Compute returns the ordered MTIE results for s.
func (e *Engine) Compute(s *SampleSeries) (Results, error) {
	if s.Len() < 2 {
		return nil, ErrInsufficientData
	}
	if s.Len() <= e.threshold {
		return e.exhaustive.Compute(s)
	}
	return e.dyadic.Compute(s)
}

// Compute returns the ordered MTIE results for s using an engine
// with the default threshold.
func Compute(s *SampleSeries) (Results, error) {
	e, err := NewEngine(DefaultThreshold, 0)
	if err != nil {
		return nil, err
	}
	return e.Compute(s)
}
