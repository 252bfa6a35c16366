package ofdm

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// SubcarrierType classifies one OFDM subcarrier.
type SubcarrierType byte

const (
	SubcarrierNull SubcarrierType = iota
	SubcarrierPilot
	SubcarrierData
)

var ErrInvalidSubcarrierType = errors.New("ofdm: invalid subcarrier type")

// Allocation maps each subcarrier of a symbol to its type.
type Allocation []SubcarrierType

// DefaultAllocation builds the standard allocation for m subcarriers:
// null guard bands of width max(2, m/10) around the band edges, a null
// DC bin, and pilots every 8 bins (4 when m <= 34) mirrored across DC.
func DefaultAllocation(m int) Allocation {
	if m < 6 {
		log.Printf("warning: ofdm: default allocation with fewer than 6 subcarriers (%d)", m)
	}

	m2 := m / 2

	g := m / 10
	if g < 2 {
		g = 2
	}

	p := 4
	if m > 34 {
		p = 8
	}
	p2 := p / 2

	alloc := make(Allocation, m)

	for i := 1; i < m2-g; i++ {
		t := SubcarrierData
		if (i+p2)%p == 0 {
			t = SubcarrierPilot
		}
		alloc[i] = t
		alloc[m-i] = t
	}

	return alloc
}

// Validate tallies the allocation by type. An entry outside the three
// recognized types is an error.
func (p Allocation) Validate() (numNull, numPilot, numData int, err error) {
	for i, t := range p {
		switch t {
		case SubcarrierNull:
			numNull++
		case SubcarrierPilot:
			numPilot++
		case SubcarrierData:
			numData++
		default:
			return 0, 0, 0, fmt.Errorf("%w: %d at subcarrier %d", ErrInvalidSubcarrierType, t, i)
		}
	}
	return numNull, numPilot, numData, nil
}

// String renders the allocation one character per subcarrier with DC
// centered: '.' null, '|' pilot, '+' data. Unrecognized entries render
// as '?'.
func (p Allocation) String() string {
	m := len(p)
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m; i++ {
		k := (i + m/2) % m
		switch p[k] {
		case SubcarrierNull:
			sb.WriteByte('.')
		case SubcarrierPilot:
			sb.WriteByte('|')
		case SubcarrierData:
			sb.WriteByte('+')
		default:
			sb.WriteByte('?')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
