package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScan()
	c.normalizeProbe()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CatalogPath) == "" {
		c.Paths.CatalogPath = defaultCatalogPath
	}
	if c.Paths.CatalogPath, err = expandPath(c.Paths.CatalogPath); err != nil {
		return fmt.Errorf("paths.catalog_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeScan() {
	if c.Scan.FingerprintSampleBytes <= 0 {
		c.Scan.FingerprintSampleBytes = defaultFingerprintSampleBytes
	}
	if len(c.Scan.VideoExtensions) == 0 {
		c.Scan.VideoExtensions = defaultVideoExtensions()
	}
	if len(c.Scan.SubtitleExtensions) == 0 {
		c.Scan.SubtitleExtensions = defaultSubtitleExtensions()
	}
	c.Scan.VideoExtensions = normalizeExtensions(c.Scan.VideoExtensions)
	c.Scan.SubtitleExtensions = normalizeExtensions(c.Scan.SubtitleExtensions)
}

func (c *Config) normalizeProbe() {
	if strings.TrimSpace(c.Probe.Binary) == "" {
		c.Probe.Binary = defaultProbeBinary
	}
	if c.Probe.TimeoutSeconds <= 0 {
		c.Probe.TimeoutSeconds = defaultProbeTimeoutSeconds
	}
}

func (c *Config) normalizeLogging() {
	if strings.TrimSpace(c.Logging.Format) == "" {
		c.Logging.Format = defaultLogFormat
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func normalizeExtensions(extensions []string) []string {
	out := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
