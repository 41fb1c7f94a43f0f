package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"culler/internal/episode"
	"culler/internal/title"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "parse <name>...",
		Short:       "Parse episode numbering out of release names",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(args))
			for _, name := range args {
				rows = append(rows, parseRow(name))
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Name", "Kind", "Title", "Numbering", "Episode Title"},
				rows))
			return nil
		},
	}
}

func parseRow(name string) []string {
	info := episode.Parse(name)
	if !info.IsEpisode() {
		numbering := ""
		if year := title.Normalize(name).Year; year != "" {
			numbering = year
		}
		return []string{name, "movie", title.Display(name), numbering, ""}
	}
	kind := "episode"
	if info.IsMultiEpisode {
		kind = "multi-episode"
	}
	return []string{name, kind, title.Display(info.ShowTitle), episodeLabel(info), info.EpisodeTitle}
}

func episodeLabel(info episode.Info) string {
	if !info.IsMultiEpisode {
		return fmt.Sprintf("S%02dE%02d", info.Season, info.Episode)
	}
	parts := make([]string, 0, len(info.Episodes))
	for _, e := range info.Episodes {
		parts = append(parts, fmt.Sprintf("E%02d", e))
	}
	return fmt.Sprintf("S%02d%s", info.Season, strings.Join(parts, ""))
}
