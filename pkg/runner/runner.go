// Copyright © 2018 One Concern

// Package runner executes external tools, one at a time, with an explicit
// working directory and environment.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/oneconcern/ros2ci/pkg/errors"
	"go.uber.org/zap"
)

// ErrStart is returned when a process cannot be started at all
var ErrStart = errors.New("cannot start process")

// Runner runs a command to completion and returns its exit code.
type Runner interface {
	Run(context.Context, Command) (int, error)
}

// ExitError reports a non-zero exit code.
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("the process %q failed with exit code %d", e.Name, e.Code)
}

// Option configures the exec runner
type Option func(*execRunner)

// Logger sets the logger used to trace commands
func Logger(l *zap.Logger) Option {
	return func(r *execRunner) {
		if l != nil {
			r.l = l
		}
	}
}

// Output redirects the standard output and error of the child processes.
// The default is the current process' stdout and stderr.
func Output(stdout, stderr io.Writer) Option {
	return func(r *execRunner) {
		if stdout != nil {
			r.stdout = stdout
		}
		if stderr != nil {
			r.stderr = stderr
		}
	}
}

// New builds a Runner backed by os/exec
func New(opts ...Option) Runner {
	r := &execRunner{
		l:      zap.NewNop(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, apply := range opts {
		apply(r)
	}
	return r
}

type execRunner struct {
	l      *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

func (r *execRunner) Run(ctx context.Context, c Command) (int, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = c.Environ()
	cmd.Stdin = c.Stdin
	cmd.Stderr = r.stderr
	if c.Stdout != nil {
		cmd.Stdout = io.MultiWriter(r.stdout, c.Stdout)
	} else {
		cmd.Stdout = r.stdout
	}

	// echo the command line, like the actions toolkit does
	fmt.Fprintf(r.stdout, "[command]%s\n", c)
	r.l.Debug("running command",
		zap.String("name", c.Name),
		zap.Strings("args", c.Args),
		zap.String("dir", c.Dir),
		zap.Int("env", len(c.Env)),
	)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return -1, ErrStart.Wrap(fmt.Errorf("%s: %w", c.Name, err))
	}

	code := exitErr.ExitCode()
	if c.IgnoreReturnCode {
		r.l.Info("ignoring non-zero exit code",
			zap.String("name", c.Name),
			zap.Int("code", code),
		)
		return code, nil
	}
	return code, &ExitError{Name: c.Name, Code: code}
}
