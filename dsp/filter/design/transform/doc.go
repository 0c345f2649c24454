// Package transform maps normalized analog lowpass prototypes onto a target
// band and into the z-domain.
//
// Frequencies are normalized digital frequencies in cycles per sample
// (0 < f < 0.5). They are pre-warped with tan(pi*f) so that the bilinear
// transform z = (1+s)/(1-s) places band edges exactly.
//
// Zeros at infinity are represented by cmplx.Inf() on input and output.
package transform
