package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbePaths(t *testing.T) {
	readable := t.TempDir()
	missing := filepath.Join(t.TempDir(), "nope")

	statuses := ProbePaths([]string{readable, missing})

	require.Len(t, statuses, 2)
	assert.Equal(t, PathStatus{Path: readable, Exists: true, Readable: true}, statuses[0])
	assert.Equal(t, PathStatus{Path: missing, Exists: false, Readable: false}, statuses[1])
}

func TestProbePathsUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	locked := t.TempDir()
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	statuses := ProbePaths([]string{locked})

	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Exists)
	assert.False(t, statuses[0].Readable)
}

func TestProbePathsEmptyInput(t *testing.T) {
	assert.Empty(t, ProbePaths(nil))
}

func TestProbePathsPreservesOrder(t *testing.T) {
	dirs := []string{t.TempDir(), t.TempDir(), t.TempDir()}

	statuses := ProbePaths(dirs)

	require.Len(t, statuses, 3)
	for i, dir := range dirs {
		assert.Equal(t, dir, statuses[i].Path)
	}
}
