package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [scan-id]",
		Short: "List recorded scans, or show one scan's duplicate groups",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()

			if len(args) == 1 {
				groups, err := store.LoadGroups(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if len(groups) == 0 {
					fmt.Fprintf(out, "Scan %s recorded no duplicate groups\n", args[0])
					return nil
				}
				color := shouldColorize(out)
				for _, group := range groups {
					fmt.Fprintf(out, "%s\n", groupHeading(group))
					fmt.Fprintln(out, renderGroupTable(group, color))
				}
				return nil
			}

			records, err := store.ListScans(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "No scans recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, record := range records {
				rows = append(rows, []string{
					record.ID,
					record.CreatedAt.Local().Format(time.DateTime),
					record.Root,
					fmt.Sprintf("%d", record.EntryCount),
					fmt.Sprintf("%d", record.GroupCount),
					fmt.Sprintf("%d", record.WarnCount),
					record.Duration.Round(time.Millisecond).String(),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Scan", "When", "Root", "Entries", "Groups", "Warnings", "Duration"},
				rows, 4, 5, 6, 7))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of scans to list (0 lists all)")
	return cmd
}
