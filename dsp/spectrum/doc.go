// Package spectrum provides the spectral transform contract consumed by the
// filter packages, two implementations of it, and helpers that turn complex
// bins into magnitude, power and phase.
//
// A [Transform] works in place on parallel real/imaginary slices of a fixed
// power-of-two size. [NewFFT] is backed by algo-fft and is the default;
// [NewGonumFFT] is backed by gonum's dsp/fourier package. Both normalize the
// inverse transform by 1/N so Inverse(Direct(x)) == x.
package spectrum
