package dev

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestColorOf(t *testing.T) {
	c := qt.New(t)

	for d := 0; d <= 9; d++ {
		c.Assert(ColorOf(d), qt.Equals, Color(d))
		c.Assert(ColorOf(d).Valid(), qt.IsTrue)
	}
	c.Assert(ColorOf(-1), qt.Equals, NoColor)
	c.Assert(ColorOf(10), qt.Equals, NoColor)
	c.Assert(NoColor.Valid(), qt.IsFalse)
}

func TestColorNames(t *testing.T) {
	c := qt.New(t)

	c.Assert(Black.String(), qt.Equals, "BLACK")
	c.Assert(White.String(), qt.Equals, "WHITE")
	c.Assert(Portuguese.Name(Black), qt.Equals, "PRETO")
	c.Assert(Portuguese.Name(White), qt.Equals, "BRANCO")

	// the no-colour marker and a corrupt value never read the same
	c.Assert(NoColor.String(), qt.Equals, "---")
	c.Assert(Color(42).String(), qt.Equals, "Color(42)")
	c.Assert(Color(-7).String(), qt.Equals, "Color(-7)")
}

func TestFault(t *testing.T) {
	c := qt.New(t)

	c.Assert(English.Fault(nil), qt.Equals, "")
	c.Assert(English.Fault(ErrOpenCircuit), qt.Equals, "OPEN")
	c.Assert(Portuguese.Fault(ErrShortCircuit), qt.Equals, "CURTO")
	c.Assert(English.Fault(fmt.Errorf("decode: %w", ErrDigitRange)), qt.Equals, "ERROR")
	c.Assert(English.Fault(fmt.Errorf("sample: %w", ErrOpenCircuit)), qt.Equals, "OPEN")
}
