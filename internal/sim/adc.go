// Package sim stands in for the ohmmeter hardware on a development machine.
package sim

import (
	"math"
	"math/rand"
	"sync"
)

// DividerADC simulates the ADC reading the junction of a reference resistor
// (to Vref) and the unknown resistor (to ground). Like machine.ADC it returns
// 16 bit left-aligned values.
type DividerADC struct {
	mu         sync.Mutex
	reference  float64
	resistor   float64
	noise      float64 // standard deviation in counts
	resolution uint8
	rng        *rand.Rand
}

// NewDividerADC creates a simulated ADC. resistor may be +Inf for an open circuit.
func NewDividerADC(reference, resistor float64, resolution uint8, noise float64, seed int64) *DividerADC {
	return &DividerADC{
		reference:  reference,
		resistor:   resistor,
		noise:      noise,
		resolution: resolution,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Set changes the simulated resistor and noise; safe to call while sampling.
func (a *DividerADC) Set(resistor, noise float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.resistor = resistor
	a.noise = noise
}

// SetReference changes the known resistor of the divider.
func (a *DividerADC) SetReference(reference float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reference = reference
}

// Resistor returns the simulated resistor.
func (a *DividerADC) Resistor() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.resistor
}

// Ideal returns the noiseless count at the ADC's resolution.
func (a *DividerADC) Ideal() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ideal()
}

func (a *DividerADC) fullScale() float64 {
	return float64(uint32(1<<a.resolution) - 1)
}

func (a *DividerADC) ideal() float64 {
	if math.IsInf(a.resistor, 1) {
		return a.fullScale()
	}
	return a.fullScale() * a.resistor / (a.resistor + a.reference)
}

func (a *DividerADC) Get() uint16 {
	a.mu.Lock()
	defer a.mu.Unlock()

	v := a.ideal()
	if a.noise > 0 {
		v += a.rng.NormFloat64() * a.noise
	}
	v = math.Round(v)
	switch {
	case v < 0:
		v = 0
	case v > a.fullScale():
		v = a.fullScale()
	}
	return uint16(v) << (16 - a.resolution)
}
