package sim

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/itohio/ohmmeter/dev"
)

func TestDividerADCIdeal(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		resistor float64
		count    uint16
	}{
		{9800, 2048}, // 2047.5 rounds up
		{0, 0},
		{math.Inf(1), 4095},
		{470, 187},
	}
	for _, tt := range tests {
		a := NewDividerADC(9800, tt.resistor, 12, 0, 1)
		c.Assert(a.Get(), qt.Equals, tt.count<<4, qt.Commentf("resistor %v", tt.resistor))
	}
}

func TestDividerADCNoise(t *testing.T) {
	c := qt.New(t)

	a := NewDividerADC(9800, 4700, 12, 5, 42)
	s, err := dev.NewSampler(a, 12, 2000, 0)
	c.Assert(err, qt.IsNil)

	avg := s.Average()
	c.Assert(math.Abs(avg-a.Ideal()) < 1, qt.IsTrue, qt.Commentf("avg %v ideal %v", avg, a.Ideal()))

	// noise never escapes the converter's range
	a.Set(0, 50)
	zeros := 0
	for i := 0; i < 1000; i++ {
		v := a.Get()
		c.Assert(v&0xF, qt.Equals, uint16(0))
		if v == 0 {
			zeros++
		}
	}
	c.Assert(zeros > 0, qt.IsTrue)
}

func TestDividerADCPipeline(t *testing.T) {
	c := qt.New(t)

	a := NewDividerADC(9800, 4700, 12, 0, 1)
	s, err := dev.NewSampler(a, 12, 10, 0)
	c.Assert(err, qt.IsNil)
	d, err := dev.NewDivider(9800, 12, 3.31)
	c.Assert(err, qt.IsNil)

	r := d.Measure(s.Average())
	c.Assert(r.Err, qt.IsNil)
	c.Assert(r.Standard, qt.Equals, dev.Decade{Mantissa: 4.7, Exponent: 3})

	a.Set(math.Inf(1), 0)
	c.Assert(a.Resistor(), qt.Equals, math.Inf(1))
	c.Assert(d.Measure(s.Average()).Err, qt.Equals, dev.ErrOpenCircuit)
}
