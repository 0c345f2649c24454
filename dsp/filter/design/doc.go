// Package design provides second-order filter designers in the style of the
// audio EQ cookbook.
//
// Every designer takes a normalized frequency f in cycles/sample
// (0 < f < 0.5) and a quality factor, and returns [biquad.Coefficients]
// ready for [biquad.Section] or [biquad.Chain].
//
// Higher-order classical designs live in the sub-package pass; the
// prototype and transform sub-packages hold the analog building blocks.
package design
