package cmd

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/oneconcern/ros2ci/pkg/runner"
	"github.com/oneconcern/ros2ci/pkg/runner/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type ExitMocks struct {
	mock.Mock
	exitStatuses []int
}

func (m *ExitMocks) Fatalf(format string, v ...interface{}) {
	fmt.Printf(format+"\n", v...)
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Fatalln(v ...interface{}) {
	fmt.Println(v...)
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Exit(code int) {
	m.exitStatuses = append(m.exitStatuses, code)
}

func (m *ExitMocks) fatalCalls() int {
	return len(m.exitStatuses)
}

func NewExitMocks() *ExitMocks {
	exitMocks := ExitMocks{
		exitStatuses: make([]int, 0),
	}
	return &exitMocks
}

const setupOutput = "PATH=/opt/ros/dashing/bin:/usr/bin\nAMENT_PREFIX_PATH=/opt/ros/dashing\n"

// testEnv holds the patched globals of a test
type testEnv struct {
	exits  *ExitMocks
	runner *mocks.Runner
	fs     afero.Fs
	out    *bytes.Buffer
	vars   map[string]string
}

// setupTest patches the process environment, the file system, the exit calls
// and the command runner. Expectations are registered before the catch-all
// success expectation.
func setupTest(t *testing.T, vars map[string]string, expectations ...func(*mocks.Runner)) *testEnv {
	env := &testEnv{
		exits:  NewExitMocks(),
		runner: &mocks.Runner{Output: map[string]string{"bash": setupOutput}},
		fs:     afero.NewMemMapFs(),
		out:    &bytes.Buffer{},
		vars:   vars,
	}
	for _, expect := range expectations {
		expect(env.runner)
	}
	env.runner.On("Run", mock.Anything).Return(0, nil)

	saved := struct {
		getenv    func(string) string
		fs        afero.Fs
		out       io.Writer
		newRunner func(*zap.Logger) runner.Runner
		osExit    func(int)
		fatalf    func(string, ...interface{})
		fatalln   func(...interface{})
		noColor   bool
	}{getenv, appFs, stdout, newRunner, osExit, logFatalf, logFatalln, color.NoColor}

	getenv = func(k string) string { return env.vars[k] }
	appFs = env.fs
	stdout = env.out
	newRunner = func(*zap.Logger) runner.Runner { return env.runner }
	osExit = env.exits.Exit
	logFatalf = env.exits.Fatalf
	logFatalln = env.exits.Fatalln
	color.NoColor = true

	t.Cleanup(func() {
		getenv = saved.getenv
		appFs = saved.fs
		stdout = saved.out
		newRunner = saved.newRunner
		osExit = saved.osExit
		logFatalf = saved.fatalf
		logFatalln = saved.fatalln
		color.NoColor = saved.noColor
	})
	return env
}

func failing(name string, code int, args ...string) func(*mocks.Runner) {
	return func(m *mocks.Runner) {
		m.On("Run", mocks.Named(name, args...)).Return(code, &runner.ExitError{Name: name, Code: code})
	}
}
