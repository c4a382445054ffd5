package runner

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/oneconcern/ros2ci/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func skipOnWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func testRunner() (Runner, *bytes.Buffer) {
	var out bytes.Buffer
	return New(Output(&out, &out)), &out
}

func TestRunSuccess(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	r, out := testRunner()
	code, err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo hello"}})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "[command]sh -c echo hello")
	assert.Contains(t, out.String(), "hello\n")
}

func TestRunExitCode(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	r, _ := testRunner()
	code, err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "exit 3"}})
	require.Error(t, err)
	assert.Equal(t, 3, code)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.EqualError(t, err, `the process "sh" failed with exit code 3`)
}

func TestRunIgnoreReturnCode(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	r, _ := testRunner()
	code, err := r.Run(context.Background(), Command{
		Name:             "sh",
		Args:             []string{"-c", "exit 1"},
		IgnoreReturnCode: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

func TestRunStartFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, _ := testRunner()
	_, err := r.Run(context.Background(), Command{Name: "ros2ci-no-such-binary"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStart))

	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestRunStdinDirEnv(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	var captured bytes.Buffer
	r, _ := testRunner()

	code, err := r.Run(context.Background(), Command{
		Name:   "/bin/sh",
		Args:   []string{"-c", `read -r line; echo "$line"; echo "dir=$(pwd)"; echo "foo=$FOO"; echo "home=$HOME"`},
		Dir:    dir,
		Env:    map[string]string{"FOO": "bar"},
		Stdin:  strings.NewReader("from stdin\n"),
		Stdout: &captured,
	})
	require.NoError(t, err)
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(captured.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "from stdin", lines[0])
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, "dir="+resolved, lines[1])
	assert.Equal(t, "foo=bar", lines[2])
	// the environment is exactly Env: nothing leaks from the parent process
	assert.Equal(t, "home=", lines[3])
}

func TestRunInheritsEnvironment(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	t.Setenv("ROS2CI_RUNNER_TEST", "inherited")
	var captured bytes.Buffer
	r, _ := testRunner()

	_, err := r.Run(context.Background(), Command{
		Name:   "sh",
		Args:   []string{"-c", "echo $ROS2CI_RUNNER_TEST"},
		Stdout: &captured,
	})
	require.NoError(t, err)
	assert.Equal(t, "inherited\n", captured.String())
}

func TestCommandEnviron(t *testing.T) {
	assert.Nil(t, Command{}.Environ())
	assert.Nil(t, Command{Env: map[string]string{}}.Environ())
	assert.Equal(t,
		[]string{"A=1", "B=2"},
		Command{Env: map[string]string{"B": "2", "A": "1"}}.Environ(),
	)
	assert.Equal(t, "colcon build --symlink-install",
		Command{Name: "colcon", Args: []string{"build", "--symlink-install"}}.String())
	assert.Equal(t, "printenv", Command{Name: "printenv"}.String())
}
