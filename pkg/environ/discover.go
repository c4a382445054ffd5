package environ

import (
	"bytes"
	"context"

	"github.com/oneconcern/ros2ci/pkg/runner"
	"go.uber.org/zap"
)

// PlatformWindows is the only platform where discovery is skipped:
// rosdep does not work reliably on Windows.
const PlatformWindows = "windows"

// sourceScript receives the setup script as $1 so that the path is never
// interpreted by the shell
const sourceScript = `source "$1" && printenv`

// Supported tells if environment discovery runs on this platform
func Supported(platform string) bool {
	return platform != PlatformWindows
}

// Discoverer sources a setup script and captures the resulting environment
type Discoverer struct {
	Runner       runner.Runner
	Logger       *zap.Logger
	Platform     string
	SetupScript  string
	RefreshIndex bool
}

// Discover runs the setup script under bash and parses the output of printenv.
// On unsupported platforms, it returns an empty map without running anything.
//
// When RefreshIndex is set, the system package index and the rosdep database
// are updated once the environment is captured.
func (d Discoverer) Discover(ctx context.Context) (Map, error) {
	l := d.Logger
	if l == nil {
		l = zap.NewNop()
	}
	if !Supported(d.Platform) {
		l.Info("skipping environment discovery on this platform", zap.String("platform", d.Platform))
		return Map{}, nil
	}

	var buf bytes.Buffer
	_, err := d.Runner.Run(ctx, runner.Command{
		Name:   "bash",
		Args:   []string{"-c", sourceScript, "bash", d.SetupScript},
		Stdout: &buf,
	})
	if err != nil {
		return nil, err
	}
	env, err := Parse(&buf)
	if err != nil {
		return nil, err
	}
	l.Debug("captured environment",
		zap.Int("variables", len(env)),
		zap.String("AMENT_PREFIX_PATH", env["AMENT_PREFIX_PATH"]),
	)

	if !d.RefreshIndex {
		return env, nil
	}
	for _, c := range []runner.Command{
		{Name: "apt-get", Args: []string{"update"}},
		{Name: "rosdep", Args: []string{"update"}},
	} {
		if _, err := d.Runner.Run(ctx, c); err != nil {
			return nil, err
		}
	}
	return env, nil
}
