package ci

import (
	"path"
	"runtime"

	"github.com/oneconcern/ros2ci/pkg/ci/status"
)

// DefaultROSDistro is the distribution sourced when none is configured
const DefaultROSDistro = "dashing"

// Config is the input of a CI run. It is validated once, before any step runs.
type Config struct {
	MixinName    string
	MixinRepo    string
	PackageNames []string

	// WorkspaceRoot is the colcon workspace, i.e. <GITHUB_WORKSPACE>/ros2_ws
	WorkspaceRoot string
	Platform      string

	ROSDistro    string
	SetupScript  string
	RefreshIndex bool
}

// WithDefaults fills in the platform, the distro and the setup script
func (c Config) WithDefaults() Config {
	if c.Platform == "" {
		c.Platform = runtime.GOOS
	}
	if c.ROSDistro == "" {
		c.ROSDistro = DefaultROSDistro
	}
	if c.SetupScript == "" {
		c.SetupScript = path.Join("/opt/ros", c.ROSDistro, "setup.bash")
	}
	c.PackageNames = append([]string(nil), c.PackageNames...)
	return c
}

// Validate the configuration
func (c Config) Validate() error {
	if len(c.PackageNames) == 0 {
		return status.ErrNoPackages
	}
	if c.WorkspaceRoot == "" {
		return status.ErrNoWorkspace
	}
	if c.ROSDistro == "" {
		return status.ErrNoDistro
	}
	return nil
}

// RegistersMixin tells if a mixin repository must be added before building
func (c Config) RegistersMixin() bool {
	return c.MixinName != "" && c.MixinRepo != ""
}

// mixinArgs selects the mixin on colcon build and test
func (c Config) mixinArgs() []string {
	if c.MixinName == "" {
		return nil
	}
	return []string{"--mixin", c.MixinName}
}
