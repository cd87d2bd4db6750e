package cliconfig

import (
	"fmt"
	"os"
	"strconv"
)

// ApplyEnvConfig applies OHMSIM_* environment variables, skipping flags that
// were set explicitly.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setOhms("resistor", os.Getenv("OHMSIM_RESISTOR"), &cfg.Resistor); err != nil {
		return err
	}
	if err := s.setOhms("known", os.Getenv("OHMSIM_KNOWN"), &cfg.Reference); err != nil {
		return err
	}
	if err := s.setDuration("sample-interval", os.Getenv("OHMSIM_SAMPLE_INTERVAL"), &cfg.SampleInterval); err != nil {
		return err
	}
	if err := s.setDuration("interval", os.Getenv("OHMSIM_INTERVAL"), &cfg.Interval); err != nil {
		return err
	}
	if err := s.setIntFromString("samples", os.Getenv("OHMSIM_SAMPLES"), &cfg.Samples); err != nil {
		return err
	}
	if err := s.setIntFromString("iterations", os.Getenv("OHMSIM_ITERATIONS"), &cfg.Iterations); err != nil {
		return err
	}
	if err := s.setFloatFromString("noise", os.Getenv("OHMSIM_NOISE"), &cfg.Noise); err != nil {
		return err
	}
	if v := os.Getenv("OHMSIM_SEED"); v != "" && !changed["seed"] {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse seed: %w", err)
		}
		cfg.Seed = seed
	}

	s.setString("lang", os.Getenv("OHMSIM_LANG"), &cfg.Lang)
	s.setString("log-level", os.Getenv("OHMSIM_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("render", os.Getenv("OHMSIM_RENDER"), &cfg.Render)

	return nil
}
