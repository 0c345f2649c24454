// Package biquad provides second-order IIR filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for one
// second-order section defined by [Coefficients]. Sections cascade through
// [Chain] for higher orders; [FromSOS] builds a chain from the second-order
// sections of a transfer function.
//
// Block processing dispatches to the fastest kernel registered for the
// running CPU (see internal/kernel). Coefficient design lives in
// dsp/filter/design.
package biquad
