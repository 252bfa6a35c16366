package ofdm

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"Wavelock/pkg/msequence"
)

var ErrNoEnabledSubcarriers = errors.New("ofdm: no subcarriers enabled, check allocation")

// TrainingSequence holds one PLCP training symbol in both domains.
// Time is the unnormalized inverse transform of Freq scaled by
// 1/sqrt(Enabled), giving unit average power.
type TrainingSequence struct {
	Freq    []complex128
	Time    []complex128
	Enabled int
}

// ShortSequence generates the S0 short training symbol for the given
// allocation. Only even non-null subcarriers carry energy, which makes
// the time-domain symbol periodic within the symbol length. Tones are
// BPSK values drawn from an m-sequence, decimated by 3 to decorrelate
// adjacent draws.
func ShortSequence(p Allocation) (*TrainingSequence, error) {
	m := len(p)
	ms, err := msequence.NewDefault(sequenceOrder(m))
	if err != nil {
		return nil, fmt.Errorf("ofdm: short sequence: %w", err)
	}

	seq := &TrainingSequence{Freq: make([]complex128, m)}
	for i := 0; i < m; i++ {
		s := ms.Symbol(3) & 1
		if p[i] == SubcarrierNull || i%2 != 0 {
			continue
		}
		if s == 1 {
			seq.Freq[i] = 1
		} else {
			seq.Freq[i] = -1
		}
		seq.Enabled++
	}

	if seq.Enabled == 0 {
		return nil, fmt.Errorf("short sequence: %w", ErrNoEnabledSubcarriers)
	}
	seq.transform()
	return seq, nil
}

// LongSequence generates the S1 long training symbol: every non-null
// subcarrier carries a BPSK tone. The m-sequence order is one above the
// short sequence's so the two symbols differ under the same allocation.
func LongSequence(p Allocation) (*TrainingSequence, error) {
	m := len(p)
	ms, err := msequence.NewDefault(sequenceOrder(m) + 1)
	if err != nil {
		return nil, fmt.Errorf("ofdm: long sequence: %w", err)
	}

	seq := &TrainingSequence{Freq: make([]complex128, m)}
	for i := 0; i < m; i++ {
		s := ms.Symbol(3) & 1
		if p[i] == SubcarrierNull {
			continue
		}
		if s == 1 {
			seq.Freq[i] = 1
		} else {
			seq.Freq[i] = -1
		}
		seq.Enabled++
	}

	if seq.Enabled == 0 {
		return nil, fmt.Errorf("long sequence: %w", ErrNoEnabledSubcarriers)
	}
	seq.transform()
	return seq, nil
}

// transform fills Time with the inverse transform of Freq, normalized
// to unit average power.
func (t *TrainingSequence) transform() {
	fft := fourier.NewCmplxFFT(len(t.Freq))
	t.Time = fft.Sequence(nil, t.Freq)

	g := complex(1/math.Sqrt(float64(t.Enabled)), 0)
	for i := range t.Time {
		t.Time[i] *= g
	}
}

// sequenceOrder picks the m-sequence order for m subcarriers:
// ceil(log2(m)) clamped to [4, 8].
func sequenceOrder(m int) int {
	order := 0
	for 1<<order < m {
		order++
	}
	if order < 4 {
		order = 4
	} else if order > 8 {
		order = 8
	}
	return order
}
