// Package iir runs general recursive filters of any order.
//
// [Filter] is direct form I: separate input and output histories held on
// delay lines so each output is two contiguous dot products. [Zi] is the
// transposed form with an order-sized state vector; it is the form to use when
// coefficients change while audio is running, and its state can be saved,
// restored or seeded with [InitialState]. [FiltFilt] runs a Zi filter forward
// and backward for zero-phase offline filtering.
package iir
