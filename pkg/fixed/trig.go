package fixed

import "math"

// Sin evaluates the sine of a fixed-point angle (radians).
func Sin(x T) T {
	return FromFloat(math.Sin(x.Float()))
}

// Cos evaluates the cosine of a fixed-point angle (radians).
func Cos(x T) T {
	return FromFloat(math.Cos(x.Float()))
}
