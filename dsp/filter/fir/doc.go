// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] keeps its input history in a mirrored delay line, so every
// sample is one contiguous dot product with no wrap-around split. Whole
// buffers passed to [Filter.Apply] are convolved directly for short kernels
// and through FFT block convolution (overlap-add or overlap-save, see
// dsp/conv) for long ones; both paths continue from and update the same
// delay-line state.
//
// Coefficient design is a separate concern.
package fir
