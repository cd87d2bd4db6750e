package dev

import "fmt"

// Reading is the outcome of one measurement. When Err is set only Average,
// Volts and, for a short, Resistance are meaningful.
type Reading struct {
	Average    float64 // Averaged ADC count
	Volts      float64
	Resistance float64 // Divider estimate in ohms
	Decade     Decade  // Resistance normalized
	Standard   Decade  // Nearest E24 value in the same decade
	Bands      Bands
	Err        error
}

// Valid reports whether the reading produced a resistance and colour code.
func (r Reading) Valid() bool {
	return r.Err == nil
}

// Ohms returns the E24 resistance.
func (r Reading) Ohms() float64 {
	return r.Standard.Value()
}

// Measure runs the averaged count through the whole pipeline:
// estimate, normalize, match against E24 and decode the bands.
// It has no side effects; equal inputs give equal readings.
func (d Divider) Measure(avg float64) Reading {
	rd := Reading{Average: avg, Volts: d.Volts(avg)}

	r, err := d.Estimate(avg)
	if err != nil {
		rd.Err = err
		return rd
	}
	rd.Resistance = r

	dec, err := Normalize(r)
	if err != nil {
		rd.Err = err
		return rd
	}
	rd.Decade = dec

	rd.Standard = Decade{Mantissa: FindClosest(dec.Mantissa), Exponent: dec.Exponent}
	rd.Bands, err = Decode(rd.Standard.Mantissa, rd.Standard.Exponent)
	if err != nil {
		rd.Err = fmt.Errorf("decode %v: %w", rd.Standard.Mantissa, err)
	}
	return rd
}
