// Package mtietool computes Maximum Time Interval Error (MTIE) from an
// ordered series of Time Interval Error (TIE) samples.
//
// MTIE at an observation interval tau is the largest peak-to-peak
// excursion (max - min) over any contiguous window of tau+1 samples.
// The calculation is unaware of the sampling rate of the data and of
// the units of the TIE measurement.
//
// This package is created for the CLI tool in the cmd/mtie subpackage.
package mtietool
