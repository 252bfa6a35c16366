package nco

import (
	"errors"
	"fmt"
	"math"

	"Wavelock/pkg/fixed"
)

const (
	defaultPLLBandwidth = 0.1
	pllGain             = 1000.0
)

var ErrNegativeBandwidth = errors.New("nco: pll bandwidth must be non-negative")

// SetPLLBandwidth recomputes the loop filter coefficients for a
// second-order type-2 tracking loop with natural frequency b and
// damping factor 1/sqrt(2).
func (q *NCO) SetPLLBandwidth(b float64) error {
	if b < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeBandwidth, b)
	}

	q.bandwidth = b
	q.zeta = 1 / math.Sqrt2

	if b == 0 {
		// zero bandwidth: the loop applies no correction
		q.filter.SetCoefficients([3]float64{0, 0, 0}, [3]float64{1, 0, 0})
		return nil
	}

	k := pllGain
	t1 := k / (b * b)
	t2 := 2*q.zeta/b - 1/k

	q.filter.SetCoefficients(
		[3]float64{2 * k * (1 + t2/2), 4 * k, 2 * k * (1 - t2/2)},
		[3]float64{1 + t1/2, -1 + t1/2, 0},
	)
	return nil
}

// PLLStep filters a phase-error measurement and applies the result to
// the oscillator frequency.
func (q *NCO) PLLStep(phaseError fixed.T) {
	q.AdjustFrequency(q.filter.Execute(phaseError))
}

// PLLReset clears the loop filter history, retaining coefficients.
func (q *NCO) PLLReset() {
	q.filter.Clear()
}

// PLLBandwidth returns the configured loop natural frequency.
func (q *NCO) PLLBandwidth() float64 {
	return q.bandwidth
}
