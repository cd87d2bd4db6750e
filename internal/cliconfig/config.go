// Package cliconfig holds the configuration of the ohmsim host simulator.
package cliconfig

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/itohio/ohmmeter/config"
	"github.com/itohio/ohmmeter/dev"
)

// Config holds CLI configuration for ohmsim.
type Config struct {
	Resistor   float64 // Simulated unknown resistor, ohms. +Inf is an open circuit.
	Reference  float64 // Known resistor, ohms
	Resolution int     // ADC bits
	VRef       float64

	Samples        int
	SampleInterval time.Duration
	Interval       time.Duration
	Iterations     int // 0 runs until interrupted

	Noise  float64 // Gaussian noise in counts
	Seed   int64
	Gain   float64
	Offset float64

	Lang     string
	LogLevel string
	Render   bool
	Watch    bool
}

// DefaultConfig returns the firmware's constants and a 4.7k resistor.
func DefaultConfig() Config {
	return Config{
		Resistor:       4700,
		Reference:      config.KnownReference,
		Resolution:     config.ADCResolution,
		VRef:           config.ADCVRef,
		Samples:        config.Samples,
		SampleInterval: config.SampleInterval,
		Interval:       config.Interval,
		Noise:          2,
		Gain:           config.ADCGain,
		Offset:         config.ADCOffset,
		Lang:           "en",
		LogLevel:       "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if math.IsNaN(c.Resistor) || c.Resistor < 0 {
		return fmt.Errorf("resistor must not be negative")
	}
	if !(c.Reference > 0) || math.IsInf(c.Reference, 0) {
		return fmt.Errorf("reference must be positive")
	}
	if c.Resolution < 1 || c.Resolution > 16 {
		return fmt.Errorf("resolution must be 1..16 bits")
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive")
	}
	if c.SampleInterval < 0 || c.Interval < 0 {
		return fmt.Errorf("intervals must not be negative")
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative")
	}
	if c.Noise < 0 {
		return fmt.Errorf("noise must not be negative")
	}
	if c.Gain == 0 {
		c.Gain = 1
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	return nil
}

// Language returns the colour names selected by Lang.
func (c *Config) Language() (dev.Language, error) {
	switch strings.ToLower(c.Lang) {
	case "", "en", "english":
		return dev.English, nil
	case "pt", "pt-br", "portuguese":
		return dev.Portuguese, nil
	}
	return dev.Language{}, fmt.Errorf("unknown language %q", c.Lang)
}

var siPrefix = map[byte]float64{
	'R': 1, 'r': 1,
	'k': 1e3, 'K': 1e3,
	'M': 1e6,
	'G': 1e9,
}

// ParseOhms parses a resistance the way it is printed on schematics:
// "470", "470R", "4.7k", "4k7", "1M", "2M2". "open" and "inf" give +Inf,
// "short" gives 0. A trailing "Ω" or "ohm" is ignored.
func ParseOhms(s string) (float64, error) {
	in := s
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "Ω")
	s = strings.TrimSuffix(strings.TrimSuffix(s, "ohms"), "ohm")
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "":
		return 0, fmt.Errorf("empty resistance")
	case "open", "inf":
		return math.Inf(1), nil
	case "short":
		return 0, nil
	}

	for i := 0; i < len(s); i++ {
		mul, ok := siPrefix[s[i]]
		if !ok {
			continue
		}
		num := s[:i]
		if i+1 < len(s) {
			// 4k7 style: the prefix replaces the decimal point
			if strings.Contains(num, ".") {
				return 0, fmt.Errorf("parse %q: decimal point and infix prefix", in)
			}
			num += "." + s[i+1:]
		}
		if num == "" || num == "." {
			return 0, fmt.Errorf("parse %q: missing digits", in)
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", in, err)
		}
		if v < 0 {
			return 0, fmt.Errorf("parse %q: negative resistance", in)
		}
		return v * mul, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", in, err)
	}
	if math.IsNaN(v) || v < 0 {
		return 0, fmt.Errorf("parse %q: negative resistance", in)
	}
	return v, nil
}

// FormatOhms prints ohms with an SI prefix, the inverse of ParseOhms.
func FormatOhms(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "open"
	case v >= 1e9:
		return strconv.FormatFloat(v/1e9, 'g', 4, 64) + "G"
	case v >= 1e6:
		return strconv.FormatFloat(v/1e6, 'g', 4, 64) + "M"
	case v >= 1e3:
		return strconv.FormatFloat(v/1e3, 'g', 4, 64) + "k"
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
