package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"culler/internal/quality"
	"culler/internal/title"
)

func newScoreCommand() *cobra.Command {
	var showReasons bool

	cmd := &cobra.Command{
		Use:         "score <name>...",
		Short:       "Score release names by their quality markers",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			scores := make([]quality.Score, len(args))
			rows := make([][]string, 0, len(args))
			for i, name := range args {
				score := quality.Evaluate(name, nil)
				scores[i] = score
				normalized := title.Normalize(name)
				rows = append(rows, []string{
					name,
					orUnknown(normalized.Title),
					orUnknown(normalized.Year),
					fmt.Sprintf("%d", score.Score),
					orUnknown(score.Resolution),
					orUnknown(score.Source),
					orUnknown(score.Codec),
					orUnknown(score.Audio),
					yesNo(score.HDR),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Name", "Title", "Year", "Score", "Resolution", "Source", "Codec", "Audio", "HDR"},
				rows, 4))

			if showReasons {
				for i, name := range args {
					score := scores[i]
					fmt.Fprintf(out, "\n%s\n", name)
					if len(score.Reasons) == 0 {
						fmt.Fprintln(out, "  no quality markers detected")
						continue
					}
					for _, reason := range score.Reasons {
						fmt.Fprintf(out, "  %s\n", reason)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showReasons, "reasons", false, "Show the per-token score breakdown")
	return cmd
}
