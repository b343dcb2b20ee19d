package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, dir, description string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := `---
name: ` + filepath.Base(dir) + `
description: ` + description + `
---

# ` + filepath.Base(dir) + `

Instructions go here.
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, SkillFileName), []byte(content), 0o644))
}

func skillNames(result ScanResult) []string {
	names := make([]string, 0, len(result.Skills))
	for _, skill := range result.Skills {
		names = append(names, skill.Name)
	}
	return names
}

func TestScanMissingRoot(t *testing.T) {
	scanner := NewScanner()
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	result := scanner.Scan(missing)

	assert.Empty(t, result.Skills)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, missing, result.Warnings[0].Path)
	assert.Equal(t, "Directory does not exist", result.Warnings[0].Reason)
}

func TestScanSingleSkill(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, filepath.Join(root, "code-review"), "Reviews code")

	result := NewScanner().Scan(root)

	assert.Empty(t, result.Warnings)
	require.Len(t, result.Skills, 1)
	skill := result.Skills[0]
	assert.Equal(t, "code-review", skill.Name)
	assert.Equal(t, "Reviews code", skill.Description)
	assert.Equal(t, filepath.Join(root, "code-review"), skill.Path)
	assert.Equal(t, root, skill.Source)
}

func TestScanNestedSkills(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, filepath.Join(root, "team", "backend", "migrations"), "Writes migrations")
	writeSkill(t, filepath.Join(root, "docs-style"), "Edits docs")

	result := NewScanner().Scan(root)

	assert.Empty(t, result.Warnings)
	assert.ElementsMatch(t, []string{"migrations", "docs-style"}, skillNames(result))
}

func TestScanSkillBoundaryIsLeaf(t *testing.T) {
	root := t.TempDir()
	outer := filepath.Join(root, "outer")
	writeSkill(t, outer, "The outer skill")
	// A SKILL.md below an existing boundary belongs to supporting assets
	// and must not surface as a sibling skill.
	writeSkill(t, filepath.Join(outer, "assets", "inner"), "Should not be found")

	result := NewScanner().Scan(root)

	assert.Empty(t, result.Warnings)
	require.Len(t, result.Skills, 1)
	assert.Equal(t, "outer", result.Skills[0].Name)
}

func TestScanEmptySkillFile(t *testing.T) {
	root := t.TempDir()
	skillDir := filepath.Join(root, "hollow")
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, SkillFileName), []byte("  \n\t\n"), 0o644))

	result := NewScanner().Scan(root)

	assert.Empty(t, result.Skills)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, filepath.Join(skillDir, SkillFileName), result.Warnings[0].Path)
	assert.Equal(t, "SKILL.md is empty", result.Warnings[0].Reason)
}

func TestScanMissingDescription(t *testing.T) {
	root := t.TempDir()
	skillDir := filepath.Join(root, "terse")
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, SkillFileName), []byte("# Terse\n\nNo metadata.\n"), 0o644))

	result := NewScanner().Scan(root)

	assert.Empty(t, result.Warnings)
	require.Len(t, result.Skills, 1)
	assert.Equal(t, DefaultDescription, result.Skills[0].Description)
}

func TestScanUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.MkdirAll(locked, 0o755))
	writeSkill(t, filepath.Join(root, "open-skill"), "Still discoverable")

	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	result := NewScanner().Scan(root)

	require.Len(t, result.Skills, 1)
	assert.Equal(t, "open-skill", result.Skills[0].Name)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, locked, result.Warnings[0].Path)
	assert.Contains(t, result.Warnings[0].Reason, "Cannot read directory:")
	assert.Contains(t, result.Warnings[0].Reason, "permission denied")
}

func TestScanUnreadableSkillFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	skillDir := filepath.Join(root, "sealed")
	writeSkill(t, skillDir, "Unreadable")
	skillFile := filepath.Join(skillDir, SkillFileName)

	require.NoError(t, os.Chmod(skillFile, 0o000))
	t.Cleanup(func() { os.Chmod(skillFile, 0o644) })

	result := NewScanner().Scan(root)

	assert.Empty(t, result.Skills)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, skillFile, result.Warnings[0].Path)
	assert.Contains(t, result.Warnings[0].Reason, "Cannot read SKILL.md:")
}

func TestScanSkipsExcludedDirectories(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	for _, name := range []string{"node_modules", ".git", "dist"} {
		writeSkill(t, filepath.Join(root, name, "hidden-skill"), "Must stay hidden")
	}
	writeSkill(t, filepath.Join(root, "visible"), "Visible skill")

	// Make an excluded directory unreadable: touching it would produce a
	// warning, so a clean result proves it was never listed.
	require.NoError(t, os.Chmod(filepath.Join(root, "node_modules"), 0o000))
	t.Cleanup(func() { os.Chmod(filepath.Join(root, "node_modules"), 0o755) })

	result := NewScanner().Scan(root)

	assert.Empty(t, result.Warnings)
	assert.Equal(t, []string{"visible"}, skillNames(result))
}

func TestScanIgnoresSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeSkill(t, filepath.Join(outside, "linked-skill"), "Reached via symlink")
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "link")))

	result := NewScanner().Scan(root)

	assert.Empty(t, result.Skills)
	assert.Empty(t, result.Warnings)
}

func TestScanIdempotent(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, filepath.Join(root, "alpha"), "First")
	writeSkill(t, filepath.Join(root, "beta"), "Second")

	scanner := NewScanner()
	first := scanner.Scan(root)
	second := scanner.Scan(root)

	assert.Equal(t, first, second)
}

func TestScanAll(t *testing.T) {
	rootA := t.TempDir()
	writeSkill(t, filepath.Join(rootA, "present"), "From root A")
	rootB := filepath.Join(t.TempDir(), "missing")

	result := NewScanner().ScanAll([]string{rootA, rootB})

	require.Len(t, result.Skills, 1)
	assert.Equal(t, "present", result.Skills[0].Name)
	assert.Equal(t, rootA, result.Skills[0].Source)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, rootB, result.Warnings[0].Path)
	assert.Equal(t, "Directory does not exist", result.Warnings[0].Reason)
}

func TestScanAllPreservesDuplicates(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeSkill(t, filepath.Join(rootA, "shared"), "From A")
	writeSkill(t, filepath.Join(rootB, "shared"), "From B")

	result := NewScanner().ScanAll([]string{rootA, rootB})

	require.Len(t, result.Skills, 2)
	assert.Equal(t, "From A", result.Skills[0].Description)
	assert.Equal(t, rootA, result.Skills[0].Source)
	assert.Equal(t, "From B", result.Skills[1].Description)
	assert.Equal(t, rootB, result.Skills[1].Source)
}

func TestFindSkill(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, filepath.Join(root, "wanted"), "The one")

	scanner := NewScanner()

	t.Run("existing skill", func(t *testing.T) {
		skill, err := scanner.FindSkill([]string{root}, "wanted")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "wanted"), skill.Path)
	})

	t.Run("unknown skill", func(t *testing.T) {
		_, err := scanner.FindSkill([]string{root}, "absent")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
