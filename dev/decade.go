package dev

import "math"

// Decade is a value split into mantissa * 10^Exponent with 1 <= Mantissa < 10.
type Decade struct {
	Mantissa float64
	Exponent int
}

// Value returns Mantissa * 10^Exponent.
func (d Decade) Value() float64 {
	return scale10(d.Mantissa, d.Exponent)
}

// scale10 returns x * 10^n. Powers beyond the float64 range are applied in
// steps so subnormal values keep their digits.
func scale10(x float64, n int) float64 {
	for ; n > 300; n -= 300 {
		x *= 1e300
	}
	for ; n < -300; n += 300 {
		x /= 1e300
	}
	if n < 0 {
		return x / math.Pow10(-n)
	}
	return x * math.Pow10(n)
}

// Normalize splits r > 0 into its decade. Zero, negative and NaN values are
// reported as ErrShortCircuit, infinity as ErrOpenCircuit.
func Normalize(r float64) (Decade, error) {
	if math.IsInf(r, 1) {
		return Decade{}, ErrOpenCircuit
	}
	if !(r > 0) {
		return Decade{}, ErrShortCircuit
	}

	exp := int(math.Floor(math.Log10(r)))
	m := scale10(r, -exp)

	// log10 can land one ulp off near exact powers of ten
	for m >= 10 {
		m /= 10
		exp++
	}
	for m < 1 {
		m *= 10
		exp--
	}

	return Decade{Mantissa: m, Exponent: exp}, nil
}
