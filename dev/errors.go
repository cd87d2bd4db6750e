package dev

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOpenCircuit   = Error("open circuit")
	ErrShortCircuit  = Error("short circuit")
	ErrSampleRange   = Error("sample out of range")
	ErrMantissaRange = Error("mantissa out of range")
	ErrDigitRange    = Error("digit out of range")
	ErrResolution    = Error("invalid ADC resolution")
	ErrSampleCount   = Error("invalid sample count")
	ErrReference     = Error("invalid reference resistance")
)
