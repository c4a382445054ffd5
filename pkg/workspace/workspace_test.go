package workspace

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := Under("/home/runner/work/repo", fs)

	assert.Equal(t, filepath.Join("/home/runner/work/repo", "ros2_ws"), w.Root)
	assert.Equal(t, filepath.Join(w.Root, "src"), w.Src())
	assert.Equal(t, filepath.Join(w.Root, "install", "bin"), w.InstallBin())

	require.NoError(t, w.Prepare())
	isDir, err := afero.DirExists(fs, w.Src())
	require.NoError(t, err)
	assert.True(t, isDir)

	// idempotent
	require.NoError(t, w.Prepare())
}

func TestPrepareOnFileConflict(t *testing.T) {
	fs := afero.NewOsFs()
	root := filepath.Join(t.TempDir(), "ws")
	w := New(root, fs)
	require.NoError(t, afero.WriteFile(fs, root, []byte("not a dir"), 0o644))

	require.Error(t, w.Prepare())
}

func TestPrepareOnDisk(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "a", "b"), nil)
	require.NoError(t, w.Prepare())
	require.NoError(t, w.Prepare())
	isDir, err := afero.DirExists(afero.NewOsFs(), w.Src())
	require.NoError(t, err)
	assert.True(t, isDir)
}
