// Package workspace lays out the colcon workspace
package workspace

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// DirName is the name of the colcon workspace, under the GitHub workspace
const DirName = "ros2_ws"

// Workspace is a colcon workspace on some file system
type Workspace struct {
	Root string
	fs   afero.Fs
}

// New workspace rooted at root. A nil fs means the OS file system.
func New(root string, fs afero.Fs) *Workspace {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Workspace{Root: root, fs: fs}
}

// Under returns the workspace located in the GitHub workspace directory
func Under(githubWorkspace string, fs afero.Fs) *Workspace {
	return New(filepath.Join(githubWorkspace, DirName), fs)
}

// Src is the directory where repositories are imported
func (w *Workspace) Src() string {
	return filepath.Join(w.Root, "src")
}

// InstallBin is where colcon installs executables
func (w *Workspace) InstallBin() string {
	return filepath.Join(w.Root, "install", "bin")
}

// Prepare creates the src directory and its parents. It is idempotent.
func (w *Workspace) Prepare() error {
	return w.fs.MkdirAll(w.Src(), 0o755)
}
