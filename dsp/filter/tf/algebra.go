package tf

import "github.com/cwbudde/algo-filter/internal/polyroot"

// Series returns the cascade t1 followed by t2: b = b1*b2, a = a1*a2. Common
// factors are kept, so the order is always the sum of both orders.
func Series(t1, t2 *TransferFunction) (*TransferFunction, error) {
	return New(polyroot.Mul(t1.b, t2.b), polyroot.Mul(t1.a, t2.a))
}

// Parallel returns the sum t1 + t2. Two FIR operands stay FIR with
// b = b1 + b2. Otherwise b = b1*a2 + b2*a1 and a = a1*a2, with no pole-zero
// cancellation, and the result is IIR.
func Parallel(t1, t2 *TransferFunction) (*TransferFunction, error) {
	if t1.IsFIR() && t2.IsFIR() {
		return NewFIR(polyroot.Add(t1.b, t2.b))
	}

	b := polyroot.Add(polyroot.Mul(t1.b, t2.a), polyroot.Mul(t2.b, t1.a))

	return New(b, polyroot.Mul(t1.a, t2.a))
}
