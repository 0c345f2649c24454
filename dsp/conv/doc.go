// Package conv provides linear convolution for the FIR batch paths.
//
//   - [Direct]: O(N*M) time-domain convolution built on SIMD valid convolution,
//     best for short kernels.
//   - [OverlapAdd]: FFT block convolution returning the full linear result.
//   - [OverlapSave]: streaming FFT block convolution that carries the last
//     len(kernel)-1 input samples between calls, so a long signal can be
//     filtered in pieces.
//
// The FFT convolvers run on any [spectrum.Transform]; pass a
// [spectrum.Provider] to pick the backend, or nil for the default.
//
// [Convolve] picks direct convolution for kernels up to [DirectThreshold]
// taps and overlap-add above it.
package conv
