package dev

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestLinearCalibrationFromPoints(t *testing.T) {
	c := qt.New(t)

	cal := NewLinearCalibrationFromPoints(100, 110, 3000, 3020)
	assertApprox(c, cal.Apply(100, 4095), 110, 1e-9)
	assertApprox(c, cal.Apply(3000, 4095), 3020, 1e-9)
	assertApprox(c, cal.Apply(1550, 4095), 1565, 1e-9)
}

func TestLinearCalibrationDegenerate(t *testing.T) {
	c := qt.New(t)

	c.Assert(NewLinearCalibrationFromPoints(5, 1, 5, 2), qt.Equals, Identity)

	// the zero value behaves like Identity
	var zero LinearCalibration
	c.Assert(zero.Apply(1234, 4095), qt.Equals, 1234.0)
}

func TestLinearCalibrationClamp(t *testing.T) {
	c := qt.New(t)

	cal := NewLinearCalibration(1, -50)
	c.Assert(cal.Apply(10, 4095), qt.Equals, 0.0)
	cal = NewLinearCalibration(1, 50)
	c.Assert(cal.Apply(4090, 4095), qt.Equals, 4095.0)
}
