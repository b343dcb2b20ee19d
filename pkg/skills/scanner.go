package skills

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// SkillFileName is the instruction file that marks a directory as a skill.
const SkillFileName = "SKILL.md"

// excludedDirNames are directory names the scanner never descends into:
// version-control metadata, dependency caches, and build output.
var excludedDirNames = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	".venv":        {},
	"node_modules": {},
	"__pycache__":  {},
	"dist":         {},
	"build":        {},
	"target":       {},
}

// Scanner discovers skills beneath configured search roots. Scans are
// stateless and read-only; concurrent scans simply walk the filesystem
// independently.
type Scanner struct {
	excluded map[string]struct{}
}

// NewScanner creates a Scanner with the default exclusion set.
func NewScanner() *Scanner {
	return &Scanner{excluded: excludedDirNames}
}

// Scan walks root depth-first and returns every skill found beneath it,
// together with a warning for each recoverable failure. Scan never returns
// an error: a missing root, an unreadable directory, or a broken SKILL.md
// each produce exactly one warning and scanning continues elsewhere.
func (s *Scanner) Scan(root string) ScanResult {
	result := ScanResult{Skills: []SkillInfo{}, Warnings: []ScanWarning{}}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		result.Warnings = append(result.Warnings, ScanWarning{
			Path:   root,
			Reason: "Directory does not exist",
		})
		return result
	}

	s.scanDir(root, root, &result)
	return result
}

// ScanAll scans each root in order and concatenates the results. Duplicate
// skill names across roots are preserved; consumers that need deduplication
// must apply their own precedence.
func (s *Scanner) ScanAll(roots []string) ScanResult {
	merged := ScanResult{Skills: []SkillInfo{}, Warnings: []ScanWarning{}}
	for _, root := range roots {
		result := s.Scan(root)
		merged.Skills = append(merged.Skills, result.Skills...)
		merged.Warnings = append(merged.Warnings, result.Warnings...)
	}
	return merged
}

// FindSkill returns the first skill in the merged scan of roots whose name
// matches exactly, or an error when no root contains it.
func (s *Scanner) FindSkill(roots []string, name string) (SkillInfo, error) {
	result := s.ScanAll(roots)
	for _, skill := range result.Skills {
		if skill.Name == name {
			return skill, nil
		}
	}
	return SkillInfo{}, errors.Errorf("skill '%s' not found", name)
}

func (s *Scanner) scanDir(dir, root string, result *ScanResult) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		result.Warnings = append(result.Warnings, ScanWarning{
			Path:   dir,
			Reason: "Cannot read directory: " + errCause(err),
		})
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() && entry.Name() == SkillFileName {
			// Skill boundary: load it and stop descending. Anything below
			// this directory is treated as supporting assets.
			s.loadSkill(dir, root, result)
			return
		}
	}

	for _, entry := range entries {
		// Symlinked directories are not followed during descent.
		if !entry.IsDir() {
			continue
		}
		if _, skip := s.excluded[entry.Name()]; skip {
			continue
		}
		s.scanDir(filepath.Join(dir, entry.Name()), root, result)
	}
}

func (s *Scanner) loadSkill(dir, root string, result *ScanResult) {
	skillPath := filepath.Join(dir, SkillFileName)

	content, err := os.ReadFile(skillPath)
	if err != nil {
		result.Warnings = append(result.Warnings, ScanWarning{
			Path:   skillPath,
			Reason: "Cannot read SKILL.md: " + errCause(err),
		})
		return
	}

	if strings.TrimSpace(string(content)) == "" {
		result.Warnings = append(result.Warnings, ScanWarning{
			Path:   skillPath,
			Reason: "SKILL.md is empty",
		})
		return
	}

	result.Skills = append(result.Skills, SkillInfo{
		Name:        filepath.Base(dir),
		Description: ExtractDescription(string(content)),
		Path:        dir,
		Source:      root,
	})
}

// errCause unwraps a PathError so warnings carry the underlying cause
// ("permission denied") rather than the operation and path noise.
func errCause(err error) string {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
