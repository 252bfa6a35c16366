package fixed

import "math"

// 32 = 1 + N + D
type T int32

const (
	D     = 16
	N     = 31 - D
	Denom = 1 << D

	Zero = T(0)
	One  = T(Denom)

	MaxVal = T(math.MaxInt32)
	MinVal = T(math.MinInt32)

	// angle constants, TwoPi kept at exactly 2*Pi so that wrapping
	// a phase by TwoPi stays symmetric around Pi
	Pi    = T(205887) // round(3.14159265 * Denom)
	TwoPi = Pi << 1
)

func (f T) Add(other T) T {
	return T(f + other)
}

func (f T) Sub(other T) T {
	return T(f - other)
}

func (f T) Mul(other T) T {
	return T((f.Int64() * other.Int64()) >> D)
}

func (f T) Div(other T) T {
	return T((f.Int64() << D) / other.Int64())
}

func (f T) Neg() T {
	return -f
}

func (f T) Abs() T {
	if f < 0 {
		return -f
	}
	return f
}

func (f T) Int32() int32 {
	return int32(f)
}

func (f T) Int64() int64 {
	return int64(f)
}

func (f T) Int() int {
	return int(f)
}

func (f T) Float() float64 {
	return float64(f) / Denom
}

func (f T) Float32() float32 {
	return float32(f) / Denom
}

// FromFloat converts with saturation at the representable range.
func FromFloat(f float64) T {
	return saturate(int64(math.Round(f * Denom)))
}

func FromFloat32(f float32) T {
	return FromFloat(float64(f))
}

func FromInt(i int) T {
	return saturate(int64(i) << D)
}

func saturate(v int64) T {
	if v > int64(MaxVal) {
		return MaxVal
	}
	if v < int64(MinVal) {
		return MinVal
	}
	return T(v)
}
