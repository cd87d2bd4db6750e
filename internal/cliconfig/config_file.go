package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML friendly types: resistances use
// ParseOhms notation and durations are strings.
type FileConfig struct {
	Resistor       string   `toml:"resistor"`
	Reference      string   `toml:"reference"`
	Resolution     int      `toml:"resolution"`
	VRef           *float64 `toml:"vref"`
	Samples        int      `toml:"samples"`
	SampleInterval string   `toml:"sample_interval"`
	Interval       string   `toml:"interval"`
	Iterations     int      `toml:"iterations"`
	Noise          *float64 `toml:"noise"`
	Seed           int      `toml:"seed"`
	Gain           *float64 `toml:"gain"`
	Offset         *float64 `toml:"offset"`
	Lang           string   `toml:"lang"`
	LogLevel       string   `toml:"log_level"`
	Render         *bool    `toml:"render"`
	Watch          *bool    `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.ohmsim/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".ohmsim", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies fc to cfg, skipping flags that were set explicitly.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setOhms("resistor", fc.Resistor, &cfg.Resistor); err != nil {
		return err
	}
	if err := s.setOhms("known", fc.Reference, &cfg.Reference); err != nil {
		return err
	}
	if err := s.setDuration("sample-interval", fc.SampleInterval, &cfg.SampleInterval); err != nil {
		return err
	}
	if err := s.setDuration("interval", fc.Interval, &cfg.Interval); err != nil {
		return err
	}

	s.setInt("resolution", fc.Resolution, &cfg.Resolution)
	s.setInt("samples", fc.Samples, &cfg.Samples)
	s.setInt("iterations", fc.Iterations, &cfg.Iterations)
	if fc.Seed != 0 && !changed["seed"] {
		cfg.Seed = int64(fc.Seed)
	}

	s.setFloat("vref", fc.VRef, &cfg.VRef)
	s.setFloat("noise", fc.Noise, &cfg.Noise)
	s.setFloat("gain", fc.Gain, &cfg.Gain)
	s.setFloat("offset", fc.Offset, &cfg.Offset)

	s.setString("lang", fc.Lang, &cfg.Lang)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setBool("render", fc.Render, &cfg.Render)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
