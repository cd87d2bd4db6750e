package ui

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/itohio/ohmmeter/dev"
)

func divider(c *qt.C) dev.Divider {
	d, err := dev.NewDivider(9800, 12, 3.31)
	c.Assert(err, qt.IsNil)
	return d
}

func TestFormat(t *testing.T) {
	c := qt.New(t)

	got := Format(divider(c).Measure(2048), dev.Portuguese)
	c.Assert(got, qt.DeepEquals, Text{
		Real:  "9805Ω",
		E24:   "9100Ω",
		Bands: [3]string{"1a: BRANCO", "2a: MARROM", "Mult: VERMELHO"},
	})

	got = Format(divider(c).Measure(2048), dev.English)
	c.Assert(got.Bands, qt.DeepEquals, [3]string{"1a: WHITE", "2a: BROWN", "Mult: RED"})
}

func TestFormatFaults(t *testing.T) {
	c := qt.New(t)
	d := divider(c)

	open := Format(d.Measure(4095), dev.English)
	c.Assert(open, qt.DeepEquals, Text{
		Real:  "OPEN",
		E24:   "OPEN",
		Bands: [3]string{"1a: ---", "2a: ---", "Mult: ---"},
	})

	short := Format(d.Measure(0), dev.Portuguese)
	c.Assert(short.Real, qt.Equals, "CURTO")
	c.Assert(short.E24, qt.Equals, "CURTO")
}

func TestFormatNoMultiplierColor(t *testing.T) {
	c := qt.New(t)
	d := divider(c)

	got := Format(d.Measure(d.FullScale*4.7/(4.7+9800)), dev.English)
	c.Assert(got.E24, qt.Equals, "5Ω")
	c.Assert(got.Bands, qt.DeepEquals, [3]string{"1a: YELLOW", "2a: VIOLET", "Mult: ---"})
}
