// Package mocks provides a testify mock for runner.Runner
package mocks

import (
	"context"
	"io"

	"github.com/oneconcern/ros2ci/pkg/runner"
	"github.com/stretchr/testify/mock"
)

var _ runner.Runner = &Runner{}

// Runner records every command it is asked to run.
//
// Expectations are matched on the command name and arguments, e.g.
//
//	m.On("Run", mocks.Named("colcon", "build")).Return(0, nil)
type Runner struct {
	mock.Mock

	// Calls made, in order
	Commands []runner.Command

	// Output, when set for a command name, is written to the command's Stdout
	Output map[string]string
}

// Run a command
func (m *Runner) Run(ctx context.Context, c runner.Command) (int, error) {
	m.Commands = append(m.Commands, c)
	if out, ok := m.Output[c.Name]; ok && c.Stdout != nil {
		_, _ = io.WriteString(c.Stdout, out)
	}
	args := m.Called(c)
	return args.Int(0), args.Error(1)
}

// Names returns the command lines that were run
func (m *Runner) Names() []string {
	names := make([]string, 0, len(m.Commands))
	for _, c := range m.Commands {
		names = append(names, c.String())
	}
	return names
}

// Named matches a command by name and, optionally, by the leading arguments
func Named(name string, args ...string) interface{} {
	return mock.MatchedBy(func(c runner.Command) bool {
		if c.Name != name || len(c.Args) < len(args) {
			return false
		}
		for i, a := range args {
			if c.Args[i] != a {
				return false
			}
		}
		return true
	})
}
