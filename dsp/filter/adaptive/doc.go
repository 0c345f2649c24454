// Package adaptive provides FIR filters whose kernel is updated every sample
// to track a desired signal.
//
// Every variant shares one processing core: the input sample is pushed into a
// delay line, the output is the dot product of the current weights with the
// history (newest first), and only then does the update rule adjust the
// weights from the a-priori error e = desired - output.
//
// Update rules:
//
//	LMS      w += mu * e * x
//	SignLMS  w += mu * sign(e) * sign(x)
//	NLMS     w += mu * e * x / (eps + x.x)
//	LMF      w += mu * e^3 * x
//	NLMF     w += mu * e^3 * x / (eps + x.x)
//	VSLMS    w[i] += mu[i] * e * x[i]
//	RLS      g = P x / (lambda + x'P x), P = (P - g x'P) / lambda, w += g * e
//
// With leakage enabled the old weights are scaled by (1 - leakage*mu) before
// the update is added. RLS has no step size and uses (1 - leakage).
package adaptive
