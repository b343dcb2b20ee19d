package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillserve/skillserve/pkg/config"
	"github.com/skillserve/skillserve/pkg/presenter"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Manage skill search paths",
	Long:  `List, add, and remove the directories that are scanned for skills, in addition to the built-in local and global defaults.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var pathsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective search paths",
	Run: func(_ *cobra.Command, _ []string) {
		presenter.Section("Effective search paths")
		for _, root := range effectiveRoots() {
			presenter.Info(root)
		}
	},
}

var pathsAddCmd = &cobra.Command{
	Use:   "add <directory>",
	Short: "Add a directory to the search paths",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		store, err := config.DefaultPathStore()
		if err != nil {
			presenter.Error(err, "Failed to locate path configuration")
			os.Exit(1)
		}

		added, err := store.Add(args[0])
		if err != nil {
			presenter.Error(err, "Failed to add path")
			os.Exit(1)
		}

		if !added {
			presenter.Warning(fmt.Sprintf("Path %s is already configured", args[0]))
			return
		}
		presenter.Success(fmt.Sprintf("Added %s to search paths", args[0]))
	},
}

var pathsRemoveCmd = &cobra.Command{
	Use:   "remove <directory>",
	Short: "Remove a directory from the search paths",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		store, err := config.DefaultPathStore()
		if err != nil {
			presenter.Error(err, "Failed to locate path configuration")
			os.Exit(1)
		}

		removed, err := store.Remove(args[0])
		if err != nil {
			presenter.Error(err, "Failed to remove path")
			os.Exit(1)
		}

		if !removed {
			presenter.Warning(fmt.Sprintf("Path %s is not configured", args[0]))
			return
		}
		presenter.Success(fmt.Sprintf("Removed %s from search paths", args[0]))
	},
}

func init() {
	pathsCmd.AddCommand(pathsListCmd)
	pathsCmd.AddCommand(pathsAddCmd)
	pathsCmd.AddCommand(pathsRemoveCmd)
}
