// Package filter ties the filter variants together: a common [Processor]
// contract, variant selection from a transfer function, whole-signal
// application and series/parallel combination.
//
// The concrete filters live in the sub-packages:
//
//	tf        transfer functions, SOS and ZPK conversion, series/parallel algebra
//	fir       direct and FFT block convolution
//	iir       direct form I, transposed state (Zi) and zero-phase filtering
//	biquad    second-order sections and cascades
//	onepole   first-order lowpass and highpass
//	adaptive  LMS family and RLS
//	design    cookbook biquads; design/pass for Butterworth, Chebyshev,
//	          elliptic and Bessel band filters
package filter
