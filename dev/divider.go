package dev

import "math"

// Divider describes the measurement circuit: a known reference resistor in
// series with the unknown one, the ADC reading the voltage across the unknown.
type Divider struct {
	Reference float64 // Known resistor in ohms
	FullScale float64 // ADC count at Vref, 2^resolution - 1
	VRef      float64 // ADC reference voltage, only used for Volts
}

// NewDivider creates a divider for a reference resistor and an ADC of the given resolution in bits.
func NewDivider(reference float64, resolution uint8, vref float64) (Divider, error) {
	if !(reference > 0) || math.IsInf(reference, 0) {
		return Divider{}, ErrReference
	}
	if resolution == 0 || resolution > 16 {
		return Divider{}, ErrResolution
	}
	return Divider{
		Reference: reference,
		FullScale: float64(uint32(1<<resolution) - 1),
		VRef:      vref,
	}, nil
}

// Estimate inverts the divider: R = Reference * avg / (FullScale - avg).
//
// A reading at full scale means nothing is pulling the node down and is
// reported as ErrOpenCircuit. A zero reading yields 0 ohms; the caller
// rejects it when normalizing.
func (d Divider) Estimate(avg float64) (float64, error) {
	if math.IsNaN(avg) || avg < 0 || avg > d.FullScale {
		return 0, ErrSampleRange
	}
	den := d.FullScale - avg
	if den == 0 {
		return 0, ErrOpenCircuit
	}
	r := d.Reference * avg / den
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, ErrOpenCircuit
	}
	return r, nil
}

// Volts converts an averaged count to the voltage across the unknown resistor.
func (d Divider) Volts(avg float64) float64 {
	return d.VRef * avg / d.FullScale
}
