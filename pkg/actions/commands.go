package actions

import (
	"io"
	"os"

	"github.com/sethvargo/go-githubactions"
)

// Commands writes workflow commands to the runner
type Commands struct {
	action *githubactions.Action
	getenv Getenv
}

// NewCommands builds a workflow command writer. A nil out writes to stdout,
// a nil getenv reads the process environment.
func NewCommands(out io.Writer, getenv Getenv) *Commands {
	if out == nil {
		out = os.Stdout
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	return &Commands{
		action: newAction(getenv, githubactions.WithWriter(out)),
		getenv: getenv,
	}
}

func newAction(getenv Getenv, opts ...githubactions.Option) *githubactions.Action {
	return githubactions.New(append(opts, githubactions.WithGetenv(githubactions.GetenvFunc(getenv)))...)
}

// AddPath makes dir available on the PATH of the next workflow steps.
//
// It appends to the file named by GITHUB_PATH and falls back on the legacy
// add-path command when the runner does not provide one.
func (c *Commands) AddPath(dir string) error {
	if c.getenv("GITHUB_PATH") == "" {
		c.action.IssueCommand(&githubactions.Command{Name: "add-path", Message: dir})
		return nil
	}
	return c.action.IssueFileCommand(&githubactions.Command{Name: "path", Message: dir})
}

// StartGroup folds the following log lines under title
func (c *Commands) StartGroup(title string) {
	c.action.Group(title)
}

// EndGroup closes the current fold
func (c *Commands) EndGroup() {
	c.action.EndGroup()
}

// Warning annotates the run with a warning
func (c *Commands) Warning(msg string) {
	c.action.Warningf("%s", msg)
}

// Error annotates the run with an error. The step is failed by the exit code.
func (c *Commands) Error(msg string) {
	c.action.Errorf("%s", msg)
}
