package config

const (
	defaultLogDir                 = "~/.local/share/culler/logs"
	defaultCatalogPath            = "~/.local/share/culler/catalog.db"
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
	defaultProbeBinary            = "ffprobe"
	defaultProbeTimeoutSeconds    = 30
	defaultFingerprintSampleBytes = 1 << 20 // 1 MiB head and tail samples
	defaultSmallVideoBytes        = 50 << 20
)

func defaultVideoExtensions() []string {
	return []string{".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".m4v"}
}

func defaultSubtitleExtensions() []string {
	return []string{".srt", ".sub", ".idx", ".ass", ".ssa", ".vtt"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:      defaultLogDir,
			CatalogPath: defaultCatalogPath,
		},
		Scan: Scan{
			Workers:                0,
			Fingerprint:            false,
			FingerprintSampleBytes: defaultFingerprintSampleBytes,
			VideoExtensions:        defaultVideoExtensions(),
			SubtitleExtensions:     defaultSubtitleExtensions(),
			SmallVideoBytes:        defaultSmallVideoBytes,
		},
		Probe: Probe{
			Enabled:        false,
			Binary:         defaultProbeBinary,
			TimeoutSeconds: defaultProbeTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
