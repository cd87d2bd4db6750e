package dev

// LinearCalibration corrects the averaged ADC count: y = mx + b.
// The RP2040 ADC has a noticeable offset and gain error, both of which can
// be measured with the calibrate example.
type LinearCalibration struct {
	m float64 // Slope
	b float64 // Y-intercept
}

// Identity leaves counts untouched.
var Identity = LinearCalibration{m: 1}

// NewLinearCalibrationFromPoints creates a calibration from two measured points:
// the ADC reported raw1 where raw1 should have been want1, and likewise for point 2.
func NewLinearCalibrationFromPoints(raw1, want1, raw2, want2 float64) LinearCalibration {
	if raw1 == raw2 {
		return Identity
	}
	m := (want2 - want1) / (raw2 - raw1)
	b := want1 - m*raw1

	return LinearCalibration{
		m: m,
		b: b,
	}
}

// NewLinearCalibration creates a calibration directly from gain and offset.
func NewLinearCalibration(gain, offset float64) LinearCalibration {
	return LinearCalibration{
		m: gain,
		b: offset,
	}
}

// Apply corrects count and clamps it to [0, fullScale].
func (c LinearCalibration) Apply(count, fullScale float64) float64 {
	if c.m == 0 && c.b == 0 {
		c = Identity
	}
	y := c.m*count + c.b
	switch {
	case y < 0:
		return 0
	case y > fullScale:
		return fullScale
	}
	return y
}
