package runner

import (
	"io"
	"sort"
	"strings"
)

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env is the complete environment of the process.
	// A nil or empty map means the process inherits the current environment.
	Env map[string]string

	// Stdin is fed to the process standard input when not nil.
	Stdin io.Reader

	// Stdout receives a copy of the process standard output, in addition
	// to the runner's own output.
	Stdout io.Writer

	// IgnoreReturnCode reports a non-zero exit code without failing.
	IgnoreReturnCode bool
}

// String renders the command line, the way it is echoed in the job log.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Environ flattens Env into a sorted KEY=VALUE list, or nil when Env is empty.
func (c Command) Environ() []string {
	if len(c.Env) == 0 {
		return nil
	}
	env := make([]string, 0, len(c.Env))
	for k, v := range c.Env {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env
}
