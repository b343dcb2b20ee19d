package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillserve/skillserve/pkg/presenter"
	"github.com/skillserve/skillserve/pkg/skills"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose skill discovery problems",
	Long:  `Report the status of every search path, all warnings collected during a full scan, and skills whose SKILL.md frontmatter is missing or incomplete.`,
	Run: func(_ *cobra.Command, _ []string) {
		roots := effectiveRoots()
		scanner := newScanner()
		result := scanner.ScanAll(roots)

		presenter.Section("Search paths")
		for _, status := range skills.ProbePaths(roots) {
			switch {
			case !status.Exists:
				presenter.Warning(fmt.Sprintf("%s (missing)", status.Path))
			case !status.Readable:
				presenter.Warning(fmt.Sprintf("%s (not readable)", status.Path))
			default:
				presenter.Info(fmt.Sprintf("%s (ok)", status.Path))
			}
		}

		presenter.Separator()
		presenter.Section("Scan warnings")
		if len(result.Warnings) == 0 {
			presenter.Info("None")
		}
		for _, warning := range result.Warnings {
			presenter.Warning(fmt.Sprintf("%s: %s", warning.Path, warning.Reason))
		}

		presenter.Separator()
		presenter.Section("Frontmatter issues")
		issues := 0
		for _, skill := range result.Skills {
			content, err := os.ReadFile(filepath.Join(skill.Path, skills.SkillFileName))
			if err != nil {
				continue
			}
			meta, err := skills.ParseMetadata(string(content))
			switch {
			case err != nil:
				presenter.Warning(fmt.Sprintf("%s: %s", skill.Name, err.Error()))
				issues++
			case meta.Name == "":
				presenter.Warning(fmt.Sprintf("%s: frontmatter has no name", skill.Name))
				issues++
			case meta.Description == "":
				presenter.Warning(fmt.Sprintf("%s: frontmatter has no description", skill.Name))
				issues++
			}
		}
		if issues == 0 {
			presenter.Info("None")
		}

		presenter.Separator()
		presenter.Info(fmt.Sprintf("%d skill(s) discovered across %d path(s)", len(result.Skills), len(roots)))
	},
}
