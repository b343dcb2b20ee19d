// Package install copies a skill directory into a managed search root. The
// source must look like a real skill (a non-empty SKILL.md) and the
// destination name must be a clean single path element, so a crafted source
// path cannot escape the target root.
package install

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/skillserve/skillserve/pkg/skills"
)

// Install copies the skill directory at src into destRoot, creating the root
// when needed. It returns the destination directory on success. An existing
// skill with the same name is never overwritten.
func Install(src, destRoot string) (string, error) {
	name := filepath.Base(filepath.Clean(src))
	if err := validateSkillName(name); err != nil {
		return "", err
	}

	if err := validateSource(src); err != nil {
		return "", err
	}

	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create skills directory")
	}

	destDir := filepath.Join(destRoot, name)
	if _, err := os.Stat(destDir); err == nil {
		return "", errors.Errorf("skill '%s' already exists at %s", name, destDir)
	}

	if err := copyDir(src, destDir); err != nil {
		// Leave no partial install behind.
		os.RemoveAll(destDir)
		return "", errors.Wrapf(err, "failed to copy skill '%s'", name)
	}

	return destDir, nil
}

func validateSkillName(name string) error {
	switch {
	case name == "" || name == "." || name == "..":
		return errors.Errorf("invalid skill name %q", name)
	case strings.ContainsAny(name, `/\`):
		return errors.Errorf("invalid skill name %q", name)
	}
	return nil
}

func validateSource(src string) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.Wrap(err, "source directory does not exist")
	}
	if !info.IsDir() {
		return errors.Errorf("source %s is not a directory", src)
	}

	skillFile := filepath.Join(src, skills.SkillFileName)
	content, err := os.ReadFile(skillFile)
	if err != nil {
		return errors.Wrapf(err, "no readable %s in source", skills.SkillFileName)
	}
	if strings.TrimSpace(string(content)) == "" {
		return errors.Errorf("%s in source is empty", skills.SkillFileName)
	}

	return nil
}

func copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		destPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, info.Mode())
		}

		return copyFile(path, destPath)
	})
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
