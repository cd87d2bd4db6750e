package dev

import (
	"math"

	qt "github.com/frankban/quicktest"
)

func assertApprox(c *qt.C, got, want, tol float64) {
	c.Helper()
	if math.Abs(got-want) > tol {
		c.Fatalf("got %v, want %v (tolerance %v)", got, want, tol)
	}
}

// fakeADC returns the scripted values in a loop.
type fakeADC struct {
	values []uint16
	n      int
}

func (a *fakeADC) Get() uint16 {
	v := a.values[a.n%len(a.values)]
	a.n++
	return v
}

// adc12 scripts 12 bit counts the way machine.ADC reports them.
func adc12(counts ...uint16) *fakeADC {
	a := &fakeADC{}
	for _, c := range counts {
		a.values = append(a.values, c<<4)
	}
	return a
}
