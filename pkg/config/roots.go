// Package config resolves the skill search roots and persists the
// operator-managed path list. Resolution is explicit: the effective roots are
// computed from values passed in, never read from ambient globals inside the
// scanning core.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	// EnvRootsVar lists extra search roots, separated by the OS path list
	// separator (":" on unix).
	EnvRootsVar = "SKILLSERVE_SKILL_PATHS"

	configDirName = ".skillserve"
	skillsDirName = "skills"
)

// LocalSkillsDir is the repo-local search root, always first in precedence.
const LocalSkillsDir = ".skillserve/skills"

// ParseEnvRoots splits an environment value into individual root paths.
func ParseEnvRoots(value string) []string {
	if value == "" {
		return nil
	}

	var roots []string
	for _, part := range strings.Split(value, string(os.PathListSeparator)) {
		part = strings.TrimSpace(part)
		if part != "" {
			roots = append(roots, part)
		}
	}
	return roots
}

// ParsePathsFile decodes the persisted path list: a flat ordered JSON array
// of strings. Empty input yields an empty list.
func ParsePathsFile(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}

	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		return nil, errors.Wrap(err, "invalid paths file")
	}
	return paths, nil
}

// ResolveRoots merges the default directories, the stored path list, and any
// environment-supplied extras into the effective ordered root list. Later
// duplicates of an earlier root are dropped; order is otherwise preserved.
func ResolveRoots(getenv func(string) string, stored []string) []string {
	roots := []string{LocalSkillsDir}

	if home := getenv("HOME"); home != "" {
		roots = append(roots, filepath.Join(home, configDirName, skillsDirName))
	}

	roots = append(roots, stored...)
	roots = append(roots, ParseEnvRoots(getenv(EnvRootsVar))...)

	seen := make(map[string]struct{}, len(roots))
	deduped := roots[:0]
	for _, root := range roots {
		if _, dup := seen[root]; dup {
			continue
		}
		seen[root] = struct{}{}
		deduped = append(deduped, root)
	}
	return deduped
}
