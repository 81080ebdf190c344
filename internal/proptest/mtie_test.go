package proptest

import (
	"testing"

	mtietool "github.com/hnakamur/mtietool"
	"pgregory.net/rapid"
)

func genSeries(rt *rapid.T) *mtietool.SampleSeries {
	n := rapid.IntRange(2, 300).Draw(rt, "n").(int)
	values := make([]mtietool.Value, n)
	for i := range values {
		values[i] = mtietool.Value(rapid.Float64Range(-1e6, 1e6).Draw(rt, "v").(float64))
	}
	return mtietool.NewSampleSeries(values)
}

func TestPropExhaustiveCoverageAndMonotonicity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := genSeries(rt)
		rr, err := (&mtietool.ExhaustiveAlgorithm{}).Compute(s)
		if err != nil {
			rt.Fatal(err)
		}
		if len(rr) != s.Len()-1 {
			rt.Fatalf("result count unmatch, got=%d, want=%d", len(rr), s.Len()-1)
		}
		for i, r := range rr {
			if r.Interval != i+1 {
				rt.Fatalf("interval unmatch at %d, got=%d, want=%d", i, r.Interval, i+1)
			}
			if r.Value < 0 {
				rt.Fatalf("negative mtie at interval %d: %s", r.Interval, r.Value)
			}
			if i > 0 && r.Value < rr[i-1].Value {
				rt.Fatalf("mtie decreased from interval %d to %d, %s > %s",
					rr[i-1].Interval, r.Interval, rr[i-1].Value, r.Value)
			}
		}
	})
}

func TestPropDyadicMatchesExhaustive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := genSeries(rt)
		exhaustive, err := (&mtietool.ExhaustiveAlgorithm{}).Compute(s)
		if err != nil {
			rt.Fatal(err)
		}
		dyadic, err := mtietool.DyadicAlgorithm{}.Compute(s)
		if err != nil {
			rt.Fatal(err)
		}
		for _, r := range dyadic {
			want := exhaustive[r.Interval-1]
			if r.Interval != want.Interval {
				rt.Fatalf("interval misaligned, got=%d, want=%d", r.Interval, want.Interval)
			}
			if r.Value != want.Value {
				rt.Fatalf("mtie unmatch at interval %d, got=%s, want=%s",
					r.Interval, r.Value, want.Value)
			}
		}
	})
}

func TestPropParallelMatchesSequential(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := genSeries(rt)
		jobs := rapid.IntRange(2, 16).Draw(rt, "jobs").(int)
		seq, err := (&mtietool.ExhaustiveAlgorithm{Parallelism: 1}).Compute(s)
		if err != nil {
			rt.Fatal(err)
		}
		par, err := (&mtietool.ExhaustiveAlgorithm{Parallelism: jobs}).Compute(s)
		if err != nil {
			rt.Fatal(err)
		}
		if len(par) != len(seq) {
			rt.Fatalf("result count unmatch, got=%d, want=%d", len(par), len(seq))
		}
		for i := range par {
			if par[i] != seq[i] {
				rt.Fatalf("result unmatch at %d, got=%v, want=%v", i, par[i], seq[i])
			}
		}
	})
}
