package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillserve/skillserve/pkg/presenter"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all discovered skills",
	Long:  `List all skills discovered across the configured search roots with their names, descriptions, and source directories.`,
	Run: func(_ *cobra.Command, _ []string) {
		result := newScanner().ScanAll(effectiveRoots())

		if len(result.Skills) == 0 {
			presenter.Info("No skills found")
		} else {
			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSOURCE\tDESCRIPTION")
			fmt.Fprintln(tw, "----\t------\t-----------")

			for _, skill := range result.Skills {
				description := skill.Description
				if len(description) > 60 {
					description = description[:57] + "..."
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", skill.Name, skill.Source, description)
			}
			tw.Flush()
		}

		if len(result.Warnings) > 0 {
			presenter.Warning(fmt.Sprintf("%d warning(s) during scan, run 'skillserve doctor' for details", len(result.Warnings)))
		}
	},
}
