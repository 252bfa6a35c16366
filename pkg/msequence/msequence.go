package msequence

import (
	"fmt"
	"math/bits"
)

// Maximal-length linear feedback shift register sequences. A generator
// of order m emits a deterministic pseudo-random bit stream with period
// 2^m - 1; the same order always yields the same stream.

var ErrUnsupportedOrder = fmt.Errorf("msequence: unsupported order")

// default generator polynomials, one per order
var defaultPoly = map[int]uint32{
	2:  0x0003,
	3:  0x0006,
	4:  0x000c,
	5:  0x0014,
	6:  0x0030,
	7:  0x0060,
	8:  0x00b8,
	9:  0x0110,
	10: 0x0240,
	11: 0x0500,
	12: 0x0e08,
}

const defaultState = 1

type Sequence struct {
	m    int    // shift register length
	g    uint32 // generator polynomial
	a    uint32 // initial register state
	n    uint32 // sequence period, 2^m - 1
	v    uint32 // current register state
	last uint32 // most recent output bit
}

// NewDefault creates a generator of the given order with its default
// polynomial and initial state.
func NewDefault(m int) (*Sequence, error) {
	g, ok := defaultPoly[m]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedOrder, m)
	}
	return New(m, g, defaultState)
}

func New(m int, g, a uint32) (*Sequence, error) {
	if m < 1 || m > 31 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedOrder, m)
	}
	return &Sequence{
		m: m,
		g: g,
		a: a,
		n: uint32(1)<<m - 1,
		v: a,
	}, nil
}

// Advance shifts the register once and returns the output bit.
func (s *Sequence) Advance() uint32 {
	s.last = uint32(bits.OnesCount32(s.v&s.g) & 1)
	s.v = (s.v<<1 | s.last) & s.n
	return s.last
}

// Symbol draws n successive bits, packed MSB first.
func (s *Sequence) Symbol(n int) uint32 {
	var sym uint32
	for i := 0; i < n; i++ {
		sym = sym<<1 | s.Advance()
	}
	return sym
}

// Reset returns the register to its initial state.
func (s *Sequence) Reset() {
	s.v = s.a
	s.last = 0
}

func (s *Sequence) Order() int {
	return s.m
}

// Period returns the sequence length 2^m - 1.
func (s *Sequence) Period() uint32 {
	return s.n
}

func (s *Sequence) State() uint32 {
	return s.v
}
