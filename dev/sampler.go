package dev

import "time"

// ADC is a single analog input. machine.ADC satisfies it; Get returns a
// 16 bit left-aligned value regardless of the converter's real resolution.
type ADC interface {
	Get() uint16
}

// Sampler averages a fixed number of ADC reads, one every interval.
type Sampler struct {
	adc         ADC
	shift       uint8 // 16 - resolution
	samples     int
	interval    time.Duration
	calibration LinearCalibration
	fullScale   float64

	sleep func(time.Duration)
}

// NewSampler creates a sampler reading adc at the given resolution in bits.
func NewSampler(adc ADC, resolution uint8, samples int, interval time.Duration) (*Sampler, error) {
	if resolution == 0 || resolution > 16 {
		return nil, ErrResolution
	}
	if samples <= 0 {
		return nil, ErrSampleCount
	}

	return &Sampler{
		adc:         adc,
		shift:       16 - resolution,
		samples:     samples,
		interval:    interval,
		calibration: Identity,
		fullScale:   float64(uint32(1<<resolution) - 1),
		sleep:       time.Sleep,
	}, nil
}

// SetCalibration sets the correction applied to every average.
func (s *Sampler) SetCalibration(c LinearCalibration) {
	s.calibration = c
}

// Samples returns the number of reads per average.
func (s *Sampler) Samples() int {
	return s.samples
}

// FullScale returns the largest count ReadRaw can return.
func (s *Sampler) FullScale() float64 {
	return s.fullScale
}

// ReadRaw returns one reading scaled to the sampler's resolution.
func (s *Sampler) ReadRaw() uint16 {
	return s.adc.Get() >> s.shift
}

func (s *Sampler) readRaw(N int) uint64 {
	var sum uint64
	for ; N > 0; N-- {
		sum += uint64(s.ReadRaw())
		if s.interval > 0 {
			s.sleep(s.interval)
		}
	}
	return sum
}

// Average reads Samples() values and returns their calibrated mean.
func (s *Sampler) Average() float64 {
	sum := s.readRaw(s.samples)
	avg := float64(sum) / float64(s.samples)
	return s.calibration.Apply(avg, s.fullScale)
}
