package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"culler/internal/scanner"
	"culler/internal/walk"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <library-root>",
		Short: "Summarize quality distribution across a library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			// Stats only needs filename evidence; skip hashing and probing.
			statsCfg := *cfg
			statsCfg.Scan.Fingerprint = false
			statsCfg.Probe.Enabled = false

			root, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve library root: %w", err)
			}
			if info, err := os.Stat(root); err != nil {
				return fmt.Errorf("inspect library root: %w", err)
			} else if !info.IsDir() {
				return fmt.Errorf("library root %s is not a directory", root)
			}

			logger, closeLog, err := ctx.newLogger("stats")
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			walked, err := walk.New(&statsCfg).Walk(root)
			if err != nil {
				return err
			}
			result, err := scanner.New(&statsCfg, nil, logger).Scan(cmd.Context(), walked.Entries)
			if err != nil {
				return err
			}

			printLibraryStats(cmd.OutOrStdout(), root, result)
			return nil
		},
	}
}

func printLibraryStats(out io.Writer, root string, result scanner.Result) {
	var totalSize int64
	resolutions := map[string]int{}
	sources := map[string]int{}
	codecs := map[string]int{}
	containers := map[string]int{}
	for _, entry := range result.Entries {
		totalSize += entry.FileSize
		resolutions[entry.Quality.Resolution]++
		sources[entry.Quality.Source]++
		codecs[entry.Quality.Codec]++
		containers[strings.ToLower(filepath.Ext(entry.Path))]++
	}

	fmt.Fprintf(out, "Library: %s\n", root)
	fmt.Fprintf(out, "Entries: %d, total size %s\n\n", len(result.Entries), formatSize(totalSize))

	fmt.Fprintln(out, "Resolution")
	fmt.Fprintln(out, renderDistribution(resolutions, len(result.Entries)))
	fmt.Fprintln(out, "Source")
	fmt.Fprintln(out, renderDistribution(sources, len(result.Entries)))
	fmt.Fprintln(out, "Codec")
	fmt.Fprintln(out, renderDistribution(codecs, len(result.Entries)))
	fmt.Fprintln(out, "Container")
	fmt.Fprintln(out, renderDistribution(containers, len(result.Entries)))

	if len(result.Warnings) > 0 {
		fmt.Fprintf(out, "%d warning(s):\n", len(result.Warnings))
		for _, warning := range result.Warnings {
			fmt.Fprintf(out, "  %s: %s\n", warning.Path, warning.Message)
		}
	}
}

func renderDistribution(counts map[string]int, total int) string {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})

	rows := make([][]string, 0, len(labels))
	for _, label := range labels {
		share := ""
		if total > 0 {
			share = fmt.Sprintf("%.0f%%", float64(counts[label])/float64(total)*100)
		}
		rows = append(rows, []string{orUnknown(label), fmt.Sprintf("%d", counts[label]), share})
	}
	return renderTable([]string{"Value", "Count", "Share"}, rows, 2, 3)
}
