package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Scan.FingerprintSampleBytes != 1<<20 {
		t.Fatalf("unexpected sample size: %d", cfg.Scan.FingerprintSampleBytes)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[scan]
workers = 4
fingerprint = true
video_extensions = ["mkv", ".MP4"]

[logging]
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be detected")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if cfg.Scan.Workers != 4 || !cfg.Scan.Fingerprint {
		t.Fatalf("scan section not merged: %+v", cfg.Scan)
	}
	// Extensions are normalized to lowercase dotted form.
	if got := cfg.Scan.VideoExtensions; len(got) != 2 || got[0] != ".mkv" || got[1] != ".mp4" {
		t.Fatalf("unexpected extensions: %v", got)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("unexpected log format %q", cfg.Logging.Format)
	}
	// Untouched sections keep defaults.
	if cfg.Probe.Binary != "ffprobe" {
		t.Fatalf("probe defaults lost: %+v", cfg.Probe)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected missing file")
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected level %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative workers", func(c *Config) { c.Scan.Workers = -1 }, "scan.workers"},
		{"tiny sample", func(c *Config) { c.Scan.FingerprintSampleBytes = 16 }, "fingerprint_sample_bytes"},
		{"no extensions", func(c *Config) { c.Scan.VideoExtensions = nil }, "video_extensions"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"probe without binary", func(c *Config) { c.Probe.Enabled = true; c.Probe.Binary = " " }, "probe.binary"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected overwrite refusal")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[scan]") {
		t.Fatal("sample config missing scan section")
	}
}

func TestIsVideoFile(t *testing.T) {
	cfg := Default()
	if !cfg.IsVideoFile("movie.MKV") {
		t.Fatal("expected .MKV to match")
	}
	if cfg.IsVideoFile("notes.txt") {
		t.Fatal("expected .txt to not match")
	}
	if cfg.IsVideoFile("noextension") {
		t.Fatal("expected extensionless name to not match")
	}
}
