// Package tf provides the rational transfer function H(z) = B(z)/A(z) that
// links filter design to filter execution.
//
// Coefficients are stored in ascending powers of z^-1 and normalized so that
// a[0] == 1. A [TransferFunction] is a value: once constructed it only changes
// through [TransferFunction.Change], which keeps the numerator and
// denominator lengths fixed.
//
// Besides construction the package provides:
//
//   - series and parallel combination ([Series], [Parallel]) without pole-zero
//     cancellation
//   - gain normalization at a frequency ([TransferFunction.NormalizeAt])
//   - frequency, phase, group delay and impulse responses
//   - zero/pole/gain form and factoring into second-order sections
//     ([TransferFunction.ToSOS], [FromSOS])
//
// Frequencies passed to Response, NormalizeAt and friends are normalized
// angular frequencies in radians per sample (0 = DC, pi = Nyquist).
package tf
