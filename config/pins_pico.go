//go:build rp2040

package config

import "machine"

var (
	Sense = machine.ADC{Pin: machine.ADC2} // GP28, junction of the divider

	I2C    = machine.I2C1
	I2CSDA = machine.GP14
	I2CSCL = machine.GP15
)
