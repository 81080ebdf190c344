package mtietool

import (
	"fmt"
	"io"
)

// Result is the MTIE value computed for one observation interval.
type Result struct {
	Interval int
	Value    Value
}

// Results represents a slice of Result in ascending interval order.
type Results []Result

// Intervals returns the intervals of rr.
func (rr Results) Intervals() []int {
	intervals := make([]int, len(rr))
	for i, r := range rr {
		intervals[i] = r.Interval
	}
	return intervals
}

// Values returns the values of rr.
func (rr Results) Values() []Value {
	values := make([]Value, len(rr))
	for i, r := range rr {
		values[i] = r.Value
	}
	return values
}

// Print writes one line per result to w in the form
// "<interval> <value>", with the value at full precision.
func (rr Results) Print(w io.Writer) error {
	for _, r := range rr {
		if _, err := fmt.Fprintf(w, "%d %s\n", r.Interval, r.Value); err != nil {
			return err
		}
	}
	return nil
}
