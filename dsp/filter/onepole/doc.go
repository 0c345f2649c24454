// Package onepole implements first-order lowpass and highpass filters with a
// single real pole and a single state value.
//
// Build with the fastmath tag to compute the pole with algo-approx's FastExp
// instead of math.Exp, which speeds up frequent ChangeFreq calls at a small
// accuracy cost.
package onepole
