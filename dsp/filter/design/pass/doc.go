// Package pass designs classical lowpass, highpass, bandpass and bandstop
// IIR filters.
//
// A design starts from a normalized analog prototype (Butterworth,
// Chebyshev I/II, elliptic or Bessel), maps it onto the requested band with
// pre-warped frequencies, converts it to the z-plane with the bilinear
// transform and fixes the gain at a reference frequency inside the passband.
// Frequencies are normalized to the sample rate (cycles/sample, 0 < f < 0.5).
//
// The result is a [tf.TransferFunction]; [Sections] splits it into biquads
// and [Filter] runs it with coefficients that can be changed while running.
package pass
