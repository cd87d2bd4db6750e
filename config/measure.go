package config

import "time"

const (
	// Known resistor between Vref and the sense node, in ohms.
	KnownReference = 9800.0

	ADCResolution = 12   // bits
	ADCVRef       = 3.31 // V

	// Linear correction of the averaged count, corrected = ADCGain*count + ADCOffset.
	// Measure the two points with examples/calibrate.
	ADCGain   = 1.0
	ADCOffset = 0.0 // counts

	Samples        = 500
	SampleInterval = time.Millisecond
	Interval       = 500 * time.Millisecond
)

const (
	DisplayWidth   = 128
	DisplayHeight  = 64
	DisplayAddress = 0x3C
	I2CFrequency   = 400_000
)
