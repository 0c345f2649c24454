package prototype

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/internal/ellipticmath"
)

// Elliptic returns the elliptic (Cauer) prototype with rippleDB of passband
// ripple and stopbandDB of minimum stopband attenuation. The passband edge
// is at 1 rad/s.
//
// The design follows the Landen-sequence formulation: with
// eps_p = sqrt(10^(Rp/10)-1), eps_s = sqrt(10^(As/10)-1) and k1 = eps_p/eps_s,
// the selectivity k solves the degree equation, zeros are j/(k cd(u_i)) and
// poles j cd(u_i - j v0) with v0 = -j asn(j/eps_p, k1)/n.
func Elliptic(n int, rippleDB, stopbandDB float64) (Prototype, error) {
	if err := checkOrder(n); err != nil {
		return Prototype{}, err
	}

	if !(rippleDB > 0) || !(stopbandDB > rippleDB) || math.IsInf(stopbandDB, 0) {
		return Prototype{}, fmt.Errorf("%w: ripple %g dB, stopband %g dB", ErrInvalidSpec, rippleDB, stopbandDB)
	}

	epsP := core.RippleEpsilon(rippleDB)
	k1 := epsP / core.RippleEpsilon(stopbandDB)

	k := ellipticmath.EllipDeg(n, k1, ellipticmath.Steps)
	if !(k > 0 && k < 1) {
		return Prototype{}, fmt.Errorf("%w: degree equation has no solution (k=%g)", ErrInvalidSpec, k)
	}

	v0 := -1i * ellipticmath.ASNE(complex(0, 1/epsP), k1, ellipticmath.Steps) / complex(float64(n), 0)

	l := n / 2
	zeros := make([]complex128, n)
	poles := make([]complex128, n)

	for i := range l {
		u := float64(2*i+1) / float64(n)

		zeta := ellipticmath.CDE(complex(u, 0), k, ellipticmath.Steps)
		z := complex(0, 1) / (complex(k, 0) * zeta)
		zeros[i] = complex(0, imag(z))
		zeros[n-1-i] = cmplx.Conj(zeros[i])

		p := 1i * ellipticmath.CDE(complex(u, 0)-1i*v0, k, ellipticmath.Steps)
		poles[i] = p
		poles[n-1-i] = cmplx.Conj(p)
	}

	if n%2 == 1 {
		p0 := 1i * ellipticmath.SNE(1i*v0, k, ellipticmath.Steps)
		poles[l] = complex(real(p0), 0)
		zeros[l] = cmplx.Inf()
	}

	return Prototype{Zeros: zeros, Poles: poles}, nil
}
