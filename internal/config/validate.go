package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateProbe(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.Workers < 0 {
		return errors.New("scan.workers must be zero or positive")
	}
	if c.Scan.FingerprintSampleBytes < 4096 {
		return fmt.Errorf("scan.fingerprint_sample_bytes must be at least 4096, got %d", c.Scan.FingerprintSampleBytes)
	}
	if len(c.Scan.VideoExtensions) == 0 {
		return errors.New("scan.video_extensions must not be empty")
	}
	if c.Scan.SmallVideoBytes < 0 {
		return errors.New("scan.small_video_bytes must be zero or positive")
	}
	return nil
}

func (c *Config) validateProbe() error {
	if !c.Probe.Enabled {
		return nil
	}
	if strings.TrimSpace(c.Probe.Binary) == "" {
		return errors.New("probe.binary must be set when probe.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
