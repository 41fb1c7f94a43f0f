package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"culler/internal/catalog"
	"culler/internal/dupes"
	"culler/internal/probe"
	"culler/internal/probe/ffprobe"
	"culler/internal/scanner"
	"culler/internal/title"
	"culler/internal/walk"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var fingerprintFlag bool
	var probeFlag bool
	var workersFlag int
	var noSave bool

	cmd := &cobra.Command{
		Use:   "scan <library-root>",
		Short: "Scan a library root and report probable duplicates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fingerprint") {
				cfg.Scan.Fingerprint = fingerprintFlag
			}
			if cmd.Flags().Changed("probe") {
				cfg.Probe.Enabled = probeFlag
			}
			if cmd.Flags().Changed("workers") {
				cfg.Scan.Workers = workersFlag
			}

			root, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve library root: %w", err)
			}
			info, err := os.Stat(root)
			if err != nil {
				return fmt.Errorf("inspect library root: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("library root %s is not a directory", root)
			}

			logger, closeLog, err := ctx.newLogger("scan")
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			if err := os.MkdirAll(filepath.Dir(cfg.Paths.CatalogPath), 0o755); err != nil {
				return fmt.Errorf("ensure catalog directory: %w", err)
			}
			lock := flock.New(cfg.Paths.CatalogPath + ".lock")
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire scan lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another scan is already running (lock at %s)", lock.Path())
			}
			defer func() { _ = lock.Unlock() }()

			walked, err := walk.New(cfg).Walk(root)
			if err != nil {
				return err
			}

			var prober probe.Prober
			if cfg.Probe.Enabled {
				prober = ffprobe.New(cfg.Probe.Binary, time.Duration(cfg.Probe.TimeoutSeconds)*time.Second)
			}

			result, err := scanner.New(cfg, prober, logger).Scan(cmd.Context(), walked.Entries)
			if err != nil {
				return err
			}
			for _, w := range walked.Warnings {
				result.Warnings = append(result.Warnings, scanner.Warning{Path: w.Path, Message: w.Message})
			}

			groups := dupes.GroupEntries(result.Entries)

			out := cmd.OutOrStdout()
			color := shouldColorize(out)
			printScanReport(out, result, groups, color)

			if noSave {
				return nil
			}
			store, err := catalog.Open(cfg.Paths.CatalogPath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.SaveScan(cmd.Context(), root, result, groups); err != nil {
				return fmt.Errorf("save scan: %w", err)
			}
			fmt.Fprintf(out, "\nSaved scan %s to %s\n", result.ScanID, store.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&fingerprintFlag, "fingerprint", false, "Hash video content for exact duplicate detection")
	cmd.Flags().BoolVar(&probeFlag, "probe", false, "Probe video streams with ffprobe for accurate quality scoring")
	cmd.Flags().IntVar(&workersFlag, "workers", 0, "Number of analysis workers (0 uses all CPUs)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Skip recording this scan in the catalog")
	return cmd
}

func printScanReport(out io.Writer, result scanner.Result, groups []dupes.Group, color bool) {
	fmt.Fprintf(out, "Scanned %d entries in %s (scan %s)\n",
		len(result.Entries), result.Duration.Round(time.Millisecond), result.ScanID)

	if len(groups) == 0 {
		fmt.Fprintln(out, "No duplicate groups found")
	} else {
		fmt.Fprintf(out, "%d duplicate group(s) found\n", len(groups))
		for _, group := range groups {
			fmt.Fprintf(out, "\n%s\n", groupHeading(group))
			fmt.Fprintln(out, renderGroupTable(group, color))
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(out, "\n%d warning(s):\n", len(result.Warnings))
		for _, warning := range result.Warnings {
			line := fmt.Sprintf("  %s: %s", warning.Path, warning.Message)
			fmt.Fprintln(out, colorize(line, ansiYellow, color))
		}
	}
}

// groupHeading renders the keep member's display title rather than the raw
// bucket key, which is a fingerprint for exact groups.
func groupHeading(group dupes.Group) string {
	keep := group.Keep()
	heading := title.Display(filepath.Base(keep.Entry.Path))
	if keep.Entry.Year != "" {
		heading += " (" + keep.Entry.Year + ")"
	}
	if keep.Has(dupes.MatchExactHash) {
		return fmt.Sprintf("== %s (identical content) ==", heading)
	}
	return fmt.Sprintf("== %s ==", heading)
}

func renderGroupTable(group dupes.Group, color bool) string {
	rows := make([][]string, 0, len(group.Members))
	for i, member := range group.Members {
		action := colorize("[DEL?]", ansiRed, color)
		if i == 0 {
			action = colorize("[KEEP]", ansiGreen, color)
		}
		rows = append(rows, []string{
			action,
			member.Entry.Path,
			formatSize(member.Entry.FileSize),
			fmt.Sprintf("%d", member.Entry.Quality.Score),
			orUnknown(member.Entry.Quality.Resolution),
			matchSummary(member),
		})
	}
	return renderTable([]string{"Action", "File", "Size", "Score", "Resolution", "Match"}, rows, 3, 4)
}

func matchSummary(member dupes.Member) string {
	parts := make([]string, 0, len(member.MatchTypes))
	for _, t := range member.MatchTypes {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}
