package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/skillserve/skillserve/pkg/presenter"
	"github.com/skillserve/skillserve/pkg/skills"
)

var showCmd = &cobra.Command{
	Use:   "show <skill-name>",
	Short: "Show a skill's instructions",
	Long: `Show the SKILL.md instructions of a skill by name. With --body the YAML
frontmatter block is stripped and only the instruction body is printed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		skill, err := newScanner().FindSkill(effectiveRoots(), name)
		if err != nil {
			presenter.Error(err, "Skill not found")
			os.Exit(1)
		}

		content, err := os.ReadFile(filepath.Join(skill.Path, skills.SkillFileName))
		if err != nil {
			presenter.Error(errors.Wrap(err, "failed to read skill file"), "")
			os.Exit(1)
		}

		text := string(content)
		if bodyOnly, err := cmd.Flags().GetBool("body"); err == nil && bodyOnly {
			text = skills.ExtractBody(text)
		}

		fmt.Print(text)
	},
}

func init() {
	showCmd.Flags().Bool("body", false, "Print only the instruction body, without frontmatter")
}
