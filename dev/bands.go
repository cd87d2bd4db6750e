package dev

import "math"

// Bands are the three digits of a 4-band resistor code, tolerance aside.
type Bands struct {
	First      int
	Second     int
	Multiplier int // power of ten, may be outside 0-9
}

// Decode splits mantissa * 10^exponent into two significant digits and a
// multiplier. The second digit is rounded half away from zero.
//
//	Decode(4.7, 2) => {4, 7, 1}  (47 * 10^1 = 470 ohm)
func Decode(mantissa float64, exponent int) (Bands, error) {
	if !(mantissa >= 1 && mantissa < 10) {
		return Bands{}, ErrMantissaRange
	}
	first := int(mantissa)
	second := int(math.Round((mantissa - float64(first)) * 10))
	if second < 0 || second > 9 {
		return Bands{}, ErrDigitRange
	}
	return Bands{
		First:      first,
		Second:     second,
		Multiplier: exponent - 1,
	}, nil
}

// Colors returns the colours of the three bands. The multiplier is NoColor
// when it falls outside 0-9.
func (b Bands) Colors() (first, second, multiplier Color) {
	return ColorOf(b.First), ColorOf(b.Second), ColorOf(b.Multiplier)
}

// Ohms returns the resistance the bands encode.
func (b Bands) Ohms() float64 {
	return float64(b.First*10+b.Second) * math.Pow10(b.Multiplier)
}
