package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/skillserve/skillserve/pkg/config"
	"github.com/skillserve/skillserve/pkg/install"
	"github.com/skillserve/skillserve/pkg/presenter"
)

type InstallConfig struct {
	Global bool
}

func NewInstallConfig() *InstallConfig {
	return &InstallConfig{
		Global: false,
	}
}

var installCmd = &cobra.Command{
	Use:   "install <source-dir>",
	Short: "Install a skill from a local directory",
	Long: `Install a skill by copying a local directory containing a SKILL.md file
into the managed skills directory.

Examples:
  skillserve install ./my-skills/code-review
  skillserve install ./my-skills/code-review -g`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getInstallConfigFromFlags(cmd)

		destRoot, err := installRoot(cfg.Global)
		if err != nil {
			presenter.Error(err, "Failed to determine skills directory")
			os.Exit(1)
		}

		destDir, err := install.Install(args[0], destRoot)
		if err != nil {
			presenter.Error(err, "Failed to install skill")
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("Installed skill to %s", destDir))
	},
}

func init() {
	defaults := NewInstallConfig()
	installCmd.Flags().BoolP("global", "g", defaults.Global, "Install to the global ~/.skillserve/skills directory instead of the local one")
}

func getInstallConfigFromFlags(cmd *cobra.Command) *InstallConfig {
	cfg := NewInstallConfig()
	if global, err := cmd.Flags().GetBool("global"); err == nil {
		cfg.Global = global
	}
	return cfg
}

func installRoot(global bool) (string, error) {
	if global {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "failed to get user home directory")
		}
		return filepath.Join(homeDir, ".skillserve", "skills"), nil
	}
	return config.LocalSkillsDir, nil
}
