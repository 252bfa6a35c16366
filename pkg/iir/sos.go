package iir

import (
	"math"

	"Wavelock/pkg/fixed"
)

// SOS is a single second-order IIR filter section (biquad) operating on
// fixed-point samples, direct form I.
//
//	y[n] = b0 x[n] + b1 x[n-1] + b2 x[n-2] - a1 y[n-1] - a2 y[n-2]
//
// Coefficients are normalized by a[0] when set, so large prototype
// coefficients stay representable in fixed point.
type SOS struct {
	b [3]fixed.T
	a [3]fixed.T

	x [2]fixed.T // input history, x[n-1] x[n-2]
	y [2]fixed.T // output history, y[n-1] y[n-2]
}

func NewSOS(b, a [3]float64) *SOS {
	s := &SOS{}
	s.SetCoefficients(b, a)
	return s
}

// SetCoefficients replaces the filter coefficients, preserving history.
func (s *SOS) SetCoefficients(b, a [3]float64) {
	a0 := a[0]
	for i := 0; i < 3; i++ {
		s.b[i] = fixed.FromFloat(b[i] / a0)
		s.a[i] = fixed.FromFloat(a[i] / a0)
	}
}

// Clear zeros the input/output history, retaining coefficients.
func (s *SOS) Clear() {
	s.x[0], s.x[1] = 0, 0
	s.y[0], s.y[1] = 0, 0
}

// Execute computes one output sample and advances the history.
func (s *SOS) Execute(x fixed.T) fixed.T {
	acc := s.b[0].Int64()*x.Int64() +
		s.b[1].Int64()*s.x[0].Int64() +
		s.b[2].Int64()*s.x[1].Int64() -
		s.a[1].Int64()*s.y[0].Int64() -
		s.a[2].Int64()*s.y[1].Int64()
	y := clamp(acc >> fixed.D)

	s.x[1] = s.x[0]
	s.x[0] = x
	s.y[1] = s.y[0]
	s.y[0] = y
	return y
}

func clamp(v int64) fixed.T {
	if v > math.MaxInt32 {
		return fixed.MaxVal
	}
	if v < math.MinInt32 {
		return fixed.MinVal
	}
	return fixed.T(v)
}
