// Package analysis characterizes the yearly radiation series.
//
//   - [PowerSpectrum]: magnitude spectrum of the series
//   - [DominantPeriod]: strongest cycle length, in years
//
// The analyze command plots both. On long-enough records a dominant period
// near 11 years is the solar activity cycle showing through the data.
package analysis
