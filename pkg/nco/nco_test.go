package nco

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"Wavelock/pkg/fixed"
)

func TestNew_UnknownKind(t *testing.T) {
	if _, err := New(Kind(42)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	q, err := New(Oscillator)
	if err != nil {
		t.Fatal(err)
	}
	if q.Phase() != 0 || q.Frequency() != 0 {
		t.Errorf("Expected zero phase and frequency, got %d, %d", q.Phase(), q.Frequency())
	}
	if q.PLLBandwidth() != defaultPLLBandwidth {
		t.Errorf("Expected bandwidth %v, got %v", defaultPLLBandwidth, q.PLLBandwidth())
	}
	if s := q.Sin(); s != 0 {
		t.Errorf("Expected sin 0 at zero phase, got %v", s.Float())
	}
	if c := q.Cos().Float(); math.Abs(c-1) > 1e-4 {
		t.Errorf("Expected cos 1 at zero phase, got %v", c)
	}
}

func TestConstrain(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		p := fixed.FromFloat((rng.Float64() - 0.5) * 40)
		c := Constrain(p)
		if c > fixed.Pi || c <= -fixed.Pi {
			t.Errorf("Constrain(%v) = %v out of (-pi, pi]", p.Float(), c.Float())
		}
		if Constrain(c) != c {
			t.Errorf("Constrain not idempotent at %v", p.Float())
		}
	}
	// boundary: -pi maps to +pi, +pi stays
	if Constrain(-fixed.Pi) != fixed.Pi {
		t.Errorf("Expected Constrain(-pi) = pi, got %v", Constrain(-fixed.Pi).Float())
	}
	if Constrain(fixed.Pi) != fixed.Pi {
		t.Errorf("Expected Constrain(pi) = pi, got %v", Constrain(fixed.Pi).Float())
	}
}

func TestConstrainFrequency(t *testing.T) {
	q, _ := New(Oscillator)
	q.SetFrequency(fixed.FromFloat(7.0))
	if math.Abs(q.Frequency().Float()-7.0) > 1e-4 {
		t.Errorf("Expected frequency setter not to wrap, got %v", q.Frequency().Float())
	}
	q.ConstrainFrequency()
	if math.Abs(q.Frequency().Float()-(7.0-2*math.Pi)) > 1e-3 {
		t.Errorf("Expected wrapped frequency %v, got %v", 7.0-2*math.Pi, q.Frequency().Float())
	}
}

func TestSetPhase_Constrains(t *testing.T) {
	q, _ := New(Oscillator)
	for _, p := range []float64{0, 1, -1, 3.5, -3.5, 9.0} {
		phi := fixed.FromFloat(p)
		q.SetPhase(phi)
		if q.Phase() != Constrain(phi) {
			t.Errorf("SetPhase(%v): Expected %v, got %v", p, Constrain(phi).Float(), q.Phase().Float())
		}
	}
}

func TestStep_MatchesSetPhase(t *testing.T) {
	const STEPS = 100

	f := fixed.FromFloat(0.1)
	q, _ := New(Oscillator)
	q.SetFrequency(f)
	for i := 0; i < STEPS; i++ {
		q.Step()
	}

	want := Constrain(fixed.T(int64(f) * STEPS % int64(fixed.TwoPi)))
	if diff := Constrain(q.Phase() - want).Abs(); diff.Float() > 1e-3 {
		t.Errorf("Expected phase %v after %d steps, got %v", want.Float(), STEPS, q.Phase().Float())
	}
}

func TestAdjustPhaseAndFrequency(t *testing.T) {
	q, _ := New(VoltageControlled)
	q.SetPhase(fixed.FromFloat(1.0))
	q.AdjustPhase(fixed.FromFloat(0.5))
	if math.Abs(q.Phase().Float()-1.5) > 1e-4 {
		t.Errorf("Expected phase 1.5, got %v", q.Phase().Float())
	}
	q.SetFrequency(fixed.FromFloat(0.25))
	q.AdjustFrequency(fixed.FromFloat(-0.05))
	if math.Abs(q.Frequency().Float()-0.2) > 1e-4 {
		t.Errorf("Expected frequency 0.2, got %v", q.Frequency().Float())
	}
}

func TestOscillator_SinCosUnitCircle(t *testing.T) {
	q, _ := New(Oscillator)
	for i := 0; i < 256; i++ {
		q.SetPhase(fixed.FromFloat(-math.Pi + float64(i)*2*math.Pi/256))
		s, c := q.SinCos()
		mag := s.Float()*s.Float() + c.Float()*c.Float()
		if math.Abs(mag-1) > 1.0/256 {
			t.Errorf("phase %v: sin^2+cos^2 = %v", q.Phase().Float(), mag)
		}
	}
}

func TestOscillator_TableAccuracy(t *testing.T) {
	// table lookup is bounded by half a table step plus rounding
	const TOL = math.Pi/256 + 1e-3

	q, _ := New(Oscillator)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		p := (rng.Float64()*2 - 1) * math.Pi
		q.SetPhase(fixed.FromFloat(p))
		s, c := q.SinCos()
		if math.Abs(s.Float()-math.Sin(p)) > TOL {
			t.Errorf("sin(%v): Expected %v, got %v", p, math.Sin(p), s.Float())
		}
		if math.Abs(c.Float()-math.Cos(p)) > TOL {
			t.Errorf("cos(%v): Expected %v, got %v", p, math.Cos(p), c.Float())
		}
	}
}

func TestVoltageControlled_SinCos(t *testing.T) {
	q, _ := New(VoltageControlled)
	for _, p := range []float64{-3, -1.2, 0, 0.7, 2.9} {
		q.SetPhase(fixed.FromFloat(p))
		s, c := q.SinCos()
		if math.Abs(s.Float()-math.Sin(p)) > 1e-4 {
			t.Errorf("sin(%v): Expected %v, got %v", p, math.Sin(p), s.Float())
		}
		if math.Abs(c.Float()-math.Cos(p)) > 1e-4 {
			t.Errorf("cos(%v): Expected %v, got %v", p, math.Cos(p), c.Float())
		}
	}
}

func TestComplexExp(t *testing.T) {
	q, _ := New(VoltageControlled)
	q.SetPhase(fixed.FromFloat(0.9))
	e := q.ComplexExp().Complex128()
	want := complex(math.Cos(0.9), math.Sin(0.9))
	if math.Abs(real(e)-real(want)) > 1e-4 || math.Abs(imag(e)-imag(want)) > 1e-4 {
		t.Errorf("Expected %v, got %v", want, e)
	}
}

func TestMixUpDown_RoundTrip(t *testing.T) {
	for _, kind := range []Kind{Oscillator, VoltageControlled} {
		q, _ := New(kind)
		q.SetPhase(fixed.FromFloat(1.23))

		x := fixed.Complex{Re: fixed.FromFloat(0.6), Im: fixed.FromFloat(-0.3)}
		y := q.MixUp(x)
		z := q.MixDown(y)

		if z.Sub(x).Re.Abs().Float() > 1e-2 || z.Sub(x).Im.Abs().Float() > 1e-2 {
			t.Errorf("kind %v: Expected %v, got %v", kind, x.Complex128(), z.Complex128())
		}
	}
}

func TestMixBlock_ConstantPhase(t *testing.T) {
	q, _ := New(VoltageControlled)
	q.SetPhase(fixed.FromFloat(0.4))
	q.SetFrequency(fixed.FromFloat(0.1))

	x := make([]fixed.Complex, 16)
	for i := range x {
		x[i] = fixed.Complex{Re: fixed.One, Im: 0}
	}
	y := make([]fixed.Complex, len(x))
	q.MixBlockUp(x, y)

	// every element rotated by the same angle, phase not advanced
	for i := range y {
		if y[i] != y[0] {
			t.Errorf("element %d: Expected %v, got %v", i, y[0], y[i])
		}
	}
	if math.Abs(q.Phase().Float()-0.4) > 1e-4 {
		t.Errorf("Expected phase unchanged, got %v", q.Phase().Float())
	}

	down := make([]fixed.Complex, len(x))
	q.MixBlockDown(y, down)
	for i := range down {
		if down[i].Sub(x[i]).Re.Abs().Float() > 1e-2 {
			t.Errorf("element %d did not round-trip: %v", i, down[i].Complex128())
		}
	}
}

func TestReset(t *testing.T) {
	q, _ := New(Oscillator)
	q.SetPhase(fixed.FromFloat(2.0))
	q.SetFrequency(fixed.FromFloat(0.3))
	q.SetPLLBandwidth(0.05)
	q.Reset()

	if q.Phase() != 0 || q.Frequency() != 0 {
		t.Errorf("Expected zero state after Reset, got %d, %d", q.Phase(), q.Frequency())
	}
	if q.PLLBandwidth() != 0.05 {
		t.Errorf("Expected bandwidth to survive Reset, got %v", q.PLLBandwidth())
	}
}
