package mtietool

// ExtremaScanner yields the maximum and minimum of every window of a
// fixed length over a sample series, sliding by one position at a time.
//
// It keeps two monotonic deques of candidate indices, one decreasing
// for maxima and one increasing for minima. Each index is pushed and
// popped at most once over a whole scan, so a full pass over the
// series costs O(N) for one window length.
type ExtremaScanner struct {
	values []Value
	window int
	next   int // index of the next sample to admit
	maxIdx []int
	minIdx []int
}

// NewExtremaScanner returns a scanner over s with the given window
// length. The window length must be at least 1.
func NewExtremaScanner(s *SampleSeries, window int) *ExtremaScanner {
	return &ExtremaScanner{values: s.values, window: window}
}

// Scan advances the scanner to the next window position.
// It returns false when no window positions remain.
func (sc *ExtremaScanner) Scan() bool {
	if sc.next == 0 {
		if sc.window < 1 || sc.window > len(sc.values) {
			return false
		}
		for i := 0; i < sc.window; i++ {
			sc.push(i)
		}
		sc.next = sc.window
		return true
	}

	if sc.next >= len(sc.values) {
		return false
	}
	sc.push(sc.next)
	sc.next++

	// Evict front indices that fell out of the window.
	start := sc.next - sc.window
	if sc.maxIdx[0] < start {
		sc.maxIdx = sc.maxIdx[1:]
	}
	if sc.minIdx[0] < start {
		sc.minIdx = sc.minIdx[1:]
	}
	return true
}

func (sc *ExtremaScanner) push(i int) {
	v := sc.values[i]
	n := len(sc.maxIdx)
	for n > 0 && sc.values[sc.maxIdx[n-1]] <= v {
		n--
	}
	sc.maxIdx = append(sc.maxIdx[:n], i)

	n = len(sc.minIdx)
	for n > 0 && sc.values[sc.minIdx[n-1]] >= v {
		n--
	}
	sc.minIdx = append(sc.minIdx[:n], i)
}

// Max returns the maximum of the current window.
// It must not be called before Scan has returned true.
func (sc *ExtremaScanner) Max() Value { return sc.values[sc.maxIdx[0]] }

// Min returns the minimum of the current window.
// It must not be called before Scan has returned true.
func (sc *ExtremaScanner) Min() Value { return sc.values[sc.minIdx[0]] }
