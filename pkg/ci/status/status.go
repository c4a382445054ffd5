// Package status exports errors produced by the ci package.
package status

import (
	"github.com/oneconcern/ros2ci/pkg/errors"
)

var (
	// ErrNoPackages indicates that no package to build was given
	ErrNoPackages = errors.New("package-name is required: at least one package must be specified")

	// ErrNoWorkspace indicates that the workspace root is not known
	ErrNoWorkspace = errors.New("workspace root is required: is GITHUB_WORKSPACE set?")

	// ErrNoDistro indicates that the ROS distribution is not known
	ErrNoDistro = errors.New("ros-distro is required")
)
