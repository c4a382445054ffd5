package ci

import (
	"io/ioutil"
	"testing"

	"github.com/oneconcern/ros2ci/pkg/manifest"
	"github.com/oneconcern/ros2ci/pkg/runner"
	"github.com/oneconcern/ros2ci/pkg/runner/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSetupOutput = "PATH=/opt/ros/dashing/bin:/usr/bin\nAMENT_PREFIX_PATH=/opt/ros/dashing\nROS_DISTRO=dashing\n"

// annotatorMock records workflow commands
type annotatorMock struct {
	paths    []string
	groups   []string
	warnings []string
	open     int
	err      error
}

func (a *annotatorMock) AddPath(dir string) error {
	if a.err != nil {
		return a.err
	}
	a.paths = append(a.paths, dir)
	return nil
}

func (a *annotatorMock) StartGroup(title string) {
	a.groups = append(a.groups, title)
	a.open++
}

func (a *annotatorMock) EndGroup() { a.open-- }

func (a *annotatorMock) Warning(msg string) { a.warnings = append(a.warnings, msg) }

func testConfig() Config {
	return Config{
		PackageNames:  []string{"cloudwatch_logger", "cloudwatch_metrics_collector"},
		WorkspaceRoot: "/home/runner/work/ros2_ws",
		Platform:      "linux",
	}
}

func testRepository() manifest.Repository {
	return manifest.Repository{
		Name: "cloudwatch-common",
		URL:  "https://github.com/org/fork.git",
		Ref:  "feature-x",
	}
}

// newTestRunner succeeds on every command unless told otherwise by the
// expectations registered before the catch-all
func newTestRunner(expectations ...func(*mocks.Runner)) *mocks.Runner {
	m := &mocks.Runner{Output: map[string]string{"bash": testSetupOutput}}
	for _, expect := range expectations {
		expect(m)
	}
	m.On("Run", mock.Anything).Return(0, nil)
	return m
}

func failing(name string, code int, args ...string) func(*mocks.Runner) {
	return func(m *mocks.Runner) {
		m.On("Run", mocks.Named(name, args...)).Return(code, &runner.ExitError{Name: name, Code: code})
	}
}

func exiting(name string, code int, args ...string) func(*mocks.Runner) {
	return func(m *mocks.Runner) {
		m.On("Run", mocks.Named(name, args...)).Return(code, nil)
	}
}

func newTestPipeline(m *mocks.Runner) (*Pipeline, *annotatorMock, afero.Fs) {
	fs := afero.NewMemMapFs()
	a := &annotatorMock{}
	return New(m, WithFs(fs), WithAnnotator(a)), a, fs
}

func findCommand(t *testing.T, m *mocks.Runner, name string, args ...string) runner.Command {
	for _, c := range m.Commands {
		if c.Name != name || len(c.Args) < len(args) {
			continue
		}
		matched := true
		for i := range args {
			if c.Args[i] != args[i] {
				matched = false
				break
			}
		}
		if matched {
			return c
		}
	}
	require.Failf(t, "command not run", "%s %v", name, args)
	return runner.Command{}
}

func readStdin(t *testing.T, c runner.Command) string {
	require.NotNil(t, c.Stdin)
	b, err := ioutil.ReadAll(c.Stdin)
	require.NoError(t, err)
	return string(b)
}

