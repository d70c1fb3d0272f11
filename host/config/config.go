package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"tomuhal/host/serial"
)

// Config holds the clockprobe settings
type Config struct {
	Device        string  `yaml:"device"`
	Baud          int     `yaml:"baud"`
	ReadTimeoutMs int     `yaml:"read_timeout_ms"`
	Samples       int     `yaml:"samples"`
	TolerancePPM  float64 `yaml:"tolerance_ppm"`
	IdleTimeoutMs int     `yaml:"idle_timeout_ms"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load parses a YAML configuration over the defaults. Keys present in the
// file win, including explicit zeros such as tolerance_ppm: 0.
func Load(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile loads the configuration at path
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Load(data)
}

// applyDefaults fills in zero configuration values with sensible defaults
func applyDefaults(cfg *Config) {
	if cfg.Device == "" {
		cfg.Device = "/dev/ttyACM0"
	}
	if cfg.Baud == 0 {
		cfg.Baud = 115200
	}
	if cfg.ReadTimeoutMs == 0 {
		cfg.ReadTimeoutMs = 100
	}
	if cfg.Samples == 0 {
		cfg.Samples = 10
	}
	if cfg.TolerancePPM == 0 {
		// HFRCO is factory calibrated to about +/-1.5%
		cfg.TolerancePPM = 15000
	}
	if cfg.IdleTimeoutMs == 0 {
		cfg.IdleTimeoutMs = 5000
	}
}

// Validate rejects settings the probe cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Device == "" {
		errs = append(errs, errors.New("device must be set"))
	}
	if c.Baud <= 0 {
		errs = append(errs, fmt.Errorf("baud must be positive, got %d", c.Baud))
	}
	if c.ReadTimeoutMs < 0 {
		errs = append(errs, fmt.Errorf("read_timeout_ms must not be negative, got %d", c.ReadTimeoutMs))
	}
	if c.Samples < 2 {
		errs = append(errs, fmt.Errorf("samples must be at least 2, got %d", c.Samples))
	}
	if c.TolerancePPM < 0 {
		errs = append(errs, fmt.Errorf("tolerance_ppm must not be negative, got %g", c.TolerancePPM))
	}
	if c.IdleTimeoutMs < 0 {
		errs = append(errs, fmt.Errorf("idle_timeout_ms must not be negative, got %d", c.IdleTimeoutMs))
	}
	return errors.Join(errs...)
}

// IdleTimeout returns how long the board may stay silent, 0 for no limit
func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMs) * time.Millisecond
}

// Serial returns the serial port settings
func (c *Config) Serial() *serial.Config {
	return &serial.Config{
		Device:      c.Device,
		Baud:        c.Baud,
		ReadTimeout: c.ReadTimeoutMs,
	}
}
