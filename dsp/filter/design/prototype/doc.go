// Package prototype generates normalized analog lowpass prototypes
// (cutoff 1 rad/s) for the classical filter families.
//
// Poles always number exactly n. Chebyshev Type II and elliptic prototypes
// also carry n zeros; a zero that lies at infinity (odd orders) is reported
// as cmplx.Inf(). All-pole families return no zeros.
//
// Every function is pure: the same parameters always yield the same roots.
package prototype
