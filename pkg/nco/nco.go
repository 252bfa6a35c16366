package nco

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"Wavelock/pkg/fixed"
	"Wavelock/pkg/iir"
)

// Kind selects the sine/cosine evaluation strategy.
type Kind int

const (
	// Oscillator evaluates sine/cosine by table lookup, accurate to
	// the table resolution (256 steps per cycle).
	Oscillator Kind = iota
	// VoltageControlled evaluates sine/cosine directly from the phase.
	VoltageControlled
)

var ErrUnknownKind = errors.New("nco: unknown oscillator kind")

const tableSize = 256

// shared sine table over one full cycle, computed on first use
var sineTable = sync.OnceValue(func() *[tableSize]fixed.T {
	var tab [tableSize]fixed.T
	for i := range tab {
		tab[i] = fixed.FromFloat(math.Sin(2 * math.Pi * float64(i) / tableSize))
	}
	return &tab
})

// NCO is a numerically-controlled oscillator with an embedded
// phase-locked loop. One instance tracks one carrier; instances are
// not safe for concurrent use.
type NCO struct {
	kind   Kind
	theta  fixed.T // phase, kept in (-pi, pi]
	dtheta fixed.T // frequency, phase increment per step

	index  uint8 // sine table index, derived from theta on demand
	sine   fixed.T
	cosine fixed.T

	bandwidth float64
	zeta      float64
	filter    *iir.SOS // loop filter
}

func New(kind Kind) (*NCO, error) {
	if kind != Oscillator && kind != VoltageControlled {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	q := &NCO{
		kind:   kind,
		filter: iir.NewSOS([3]float64{0, 0, 0}, [3]float64{1, 0, 0}),
	}
	q.Reset()
	q.SetPLLBandwidth(defaultPLLBandwidth)
	return q, nil
}

// Reset zeros phase and frequency and clears the loop filter history.
// The PLL bandwidth and filter coefficients are untouched.
func (q *NCO) Reset() {
	q.theta = 0
	q.dtheta = 0
	q.index = 0
	q.sine = 0
	q.cosine = fixed.One
	q.PLLReset()
}

func (q *NCO) SetFrequency(f fixed.T) {
	q.dtheta = f
}

func (q *NCO) AdjustFrequency(df fixed.T) {
	q.dtheta += df
}

func (q *NCO) SetPhase(phi fixed.T) {
	q.theta = Constrain(phi)
}

func (q *NCO) AdjustPhase(dphi fixed.T) {
	q.theta = Constrain(q.theta + dphi)
}

// Step advances the phase by one increment. Call once per sample period.
func (q *NCO) Step() {
	q.theta = Constrain(q.theta + q.dtheta)
}

func (q *NCO) Phase() fixed.T {
	return q.theta
}

func (q *NCO) Frequency() fixed.T {
	return q.dtheta
}

func (q *NCO) Sin() fixed.T {
	q.computeSinCos()
	return q.sine
}

func (q *NCO) Cos() fixed.T {
	q.computeSinCos()
	return q.cosine
}

func (q *NCO) SinCos() (sin, cos fixed.T) {
	q.computeSinCos()
	return q.sine, q.cosine
}

// ComplexExp returns exp(j*theta) at the current phase.
func (q *NCO) ComplexExp() fixed.Complex {
	q.computeSinCos()
	return fixed.Complex{Re: q.cosine, Im: q.sine}
}

// MixUp rotates x up by the current phase, y = x * exp(+j*theta).
func (q *NCO) MixUp(x fixed.Complex) fixed.Complex {
	q.computeSinCos()
	return x.Mul(fixed.Complex{Re: q.cosine, Im: q.sine})
}

// MixDown rotates x down by the current phase, y = x * exp(-j*theta).
func (q *NCO) MixDown(x fixed.Complex) fixed.Complex {
	q.computeSinCos()
	return x.Mul(fixed.Complex{Re: q.cosine, Im: -q.sine})
}

// MixBlockUp rotates each element of x up by the current phase into y.
// The phase is held constant across the block; the caller steps the
// oscillator between blocks.
func (q *NCO) MixBlockUp(x, y []fixed.Complex) {
	for i := range x {
		y[i] = q.MixUp(x[i])
	}
}

// MixBlockDown rotates each element of x down by the current phase into y.
func (q *NCO) MixBlockDown(x, y []fixed.Complex) {
	for i := range x {
		y[i] = q.MixDown(x[i])
	}
}

// Constrain wraps an angle into (-pi, pi].
func Constrain(theta fixed.T) fixed.T {
	for theta > fixed.Pi {
		theta -= fixed.TwoPi
	}
	for theta <= -fixed.Pi {
		theta += fixed.TwoPi
	}
	return theta
}

// ConstrainFrequency wraps the phase increment into (-pi, pi]. Not
// applied implicitly by the frequency setters.
func (q *NCO) ConstrainFrequency() {
	q.dtheta = Constrain(q.dtheta)
}

func (q *NCO) computeSinCos() {
	switch q.kind {
	case Oscillator:
		q.index = tableIndex(q.theta)
		tab := sineTable()
		q.sine = tab[q.index]
		q.cosine = tab[(q.index+tableSize/4)&0xff]
	case VoltageControlled:
		q.sine = fixed.Sin(q.theta)
		q.cosine = fixed.Cos(q.theta)
	}
}

// tableIndex maps a phase in (-pi, pi] to the nearest of 256 table
// steps. The +512-step bias keeps the numerator positive so integer
// division rounds consistently before the wrap.
func tableIndex(theta fixed.T) uint8 {
	twoPi := fixed.TwoPi.Int64()
	n := theta.Int64()*tableSize + 512*twoPi + twoPi/2
	return uint8(n / twoPi)
}
