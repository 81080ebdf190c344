package mtietool

import "strconv"

// Value represents a single TIE sample value.
type Value float64

// String returns the string representation of v.
func (v Value) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// SampleSeries is an ordered series of TIE samples.
// It is immutable after construction.
type SampleSeries struct {
	values []Value
}

// NewSampleSeries returns a new SampleSeries holding a copy of values.
func NewSampleSeries(values []Value) *SampleSeries {
	values2 := make([]Value, len(values))
	copy(values2, values)
	return &SampleSeries{values: values2}
}

// Len returns the number of samples in s.
func (s *SampleSeries) Len() int { return len(s.values) }

// At returns the sample at position i.
func (s *SampleSeries) At(i int) Value { return s.values[i] }

// Values returns a copy of the samples in s.
func (s *SampleSeries) Values() []Value {
	values := make([]Value, len(s.values))
	copy(values, s.values)
	return values
}
