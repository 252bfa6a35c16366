package fixed

// Complex is a fixed-point complex value.
type Complex struct {
	Re, Im T
}

func (a Complex) Add(b Complex) Complex {
	return Complex{a.Re.Add(b.Re), a.Im.Add(b.Im)}
}

func (a Complex) Sub(b Complex) Complex {
	return Complex{a.Re.Sub(b.Re), a.Im.Sub(b.Im)}
}

func (a Complex) Mul(b Complex) Complex {
	return Complex{
		Re: a.Re.Mul(b.Re).Sub(a.Im.Mul(b.Im)),
		Im: a.Re.Mul(b.Im).Add(a.Im.Mul(b.Re)),
	}
}

func (a Complex) Conj() Complex {
	return Complex{a.Re, -a.Im}
}

func (a Complex) Complex128() complex128 {
	return complex(a.Re.Float(), a.Im.Float())
}

func FromComplex128(c complex128) Complex {
	return Complex{FromFloat(real(c)), FromFloat(imag(c))}
}
