package scanner

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"culler/internal/config"
	"culler/internal/fingerprint"
	"culler/internal/logging"
	"culler/internal/probe"
	"culler/internal/quality"
	"culler/internal/title"
	"culler/internal/walk"
)

// Warning is a non-fatal per-entry failure surfaced to the caller.
type Warning struct {
	Path    string
	Message string
}

// Result is the outcome of one scan pass.
type Result struct {
	ScanID   string
	Entries  []MediaEntry
	Warnings []Warning
	Duration time.Duration
}

// Scanner analyzes raw library entries. Prober and Fingerprinter are both
// optional; absence degrades to filename-only scoring and no exact-hash
// grouping respectively.
type Scanner struct {
	cfg    *config.Config
	logger *slog.Logger
	prober probe.Prober
	hasher *fingerprint.Fingerprinter
}

// New constructs a Scanner. prober may be nil; hashing is controlled by the
// scan config.
func New(cfg *config.Config, prober probe.Prober, logger *slog.Logger) *Scanner {
	s := &Scanner{cfg: cfg, prober: prober}
	if cfg.Scan.Fingerprint {
		s.hasher = fingerprint.New(cfg.Scan.FingerprintSampleBytes)
	}
	s.logger = logging.NewComponentLogger(logger, "scanner")
	return s
}

// Scan analyzes every entry over a bounded worker pool. Entry order is
// preserved in the result. On cancellation Scan returns the entries
// completed so far together with ctx.Err(); callers must not group an
// incomplete result without acknowledging that.
func (s *Scanner) Scan(ctx context.Context, entries []walk.Entry) (Result, error) {
	started := time.Now()
	result := Result{ScanID: uuid.NewString()}

	workers := s.cfg.Scan.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(entries) && len(entries) > 0 {
		workers = len(entries)
	}

	s.logger.Info("scan started",
		logging.String(logging.FieldScanID, result.ScanID),
		logging.Int("entries", len(entries)),
		logging.Int("workers", workers),
	)

	type slot struct {
		entry    MediaEntry
		warnings []Warning
		done     bool
	}
	slots := make([]slot, len(entries))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				entry, warnings := s.analyze(ctx, entries[idx])
				slots[idx] = slot{entry: entry, warnings: warnings, done: true}
			}
		}()
	}

	var cancelled error
dispatch:
	for idx := range entries {
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break dispatch
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	for _, sl := range slots {
		if !sl.done {
			continue
		}
		result.Entries = append(result.Entries, sl.entry)
		result.Warnings = append(result.Warnings, sl.warnings...)
	}
	result.Duration = time.Since(started)

	s.logger.Info("scan finished",
		logging.String(logging.FieldScanID, result.ScanID),
		logging.Int("analyzed", len(result.Entries)),
		logging.Int("warnings", len(result.Warnings)),
		logging.Duration("duration", result.Duration),
	)
	return result, cancelled
}

// analyze computes one MediaEntry. Every failure downgrades the entry
// instead of failing it: a probe error falls back to filename scoring, a
// fingerprint error leaves the hash empty.
func (s *Scanner) analyze(ctx context.Context, raw walk.Entry) (MediaEntry, []Warning) {
	var warnings []Warning

	normalized := title.Normalize(raw.Name)
	entry := MediaEntry{
		Path:            raw.Path,
		DisplayName:     raw.Name,
		FileSize:        raw.FileSize,
		NormalizedTitle: normalized.Title,
		Year:            normalized.Year,
	}

	var probed *probe.Result
	if s.prober != nil && raw.PrincipalVideo != "" {
		if result, err := s.prober.Probe(ctx, raw.PrincipalVideo); err != nil {
			warnings = append(warnings, Warning{Path: raw.PrincipalVideo, Message: "probe failed: " + err.Error()})
			s.logger.Debug("probe failed", logging.String(logging.FieldPath, raw.PrincipalVideo), logging.Error(err))
		} else {
			probed = &result
		}
	}
	entry.Quality = quality.Evaluate(raw.Name, probed)

	if s.hasher != nil && raw.PrincipalVideo != "" {
		if hash, err := s.hasher.File(raw.PrincipalVideo); err != nil {
			warnings = append(warnings, Warning{Path: raw.PrincipalVideo, Message: "fingerprint failed: " + err.Error()})
			s.logger.Debug("fingerprint failed", logging.String(logging.FieldPath, raw.PrincipalVideo), logging.Error(err))
		} else {
			entry.Fingerprint = hash
		}
	}

	return entry, warnings
}
