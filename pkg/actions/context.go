// Package actions reads the GitHub Actions run context and emits workflow commands.
package actions

import (
	"os"
	"strings"

	"github.com/oneconcern/ros2ci/pkg/errors"
)

// DefaultServerURL is used when GITHUB_SERVER_URL is not set
const DefaultServerURL = "https://github.com"

const eventPathKey = "GITHUB_EVENT_PATH"

var (
	// ErrNoRepository indicates that GITHUB_REPOSITORY is missing or is not an owner/name slug
	ErrNoRepository = errors.New("GITHUB_REPOSITORY must be set to a owner/name repository slug")

	// ErrRunContext indicates that the run context or its event payload could not be read
	ErrRunContext = errors.New("cannot read the workflow run context")
)

// Context describes the workflow run which triggered this step
type Context struct {
	// Repository is the owner/name slug of the triggering repository
	Repository string
	Owner      string
	Name       string

	SHA       string
	HeadRef   string
	Workspace string
	EventName string
	EventPath string
	ServerURL string

	Event Event
}

// Getenv looks up an environment variable, e.g. os.Getenv
type Getenv func(string) string

// LoadContext reads the run context from the GITHUB_* variables and the event
// payload file. A missing payload file yields an empty event.
func LoadContext(getenv Getenv) (*Context, error) {
	gh, err := newAction(optionalEvent(getenv)).Context()
	if err != nil {
		return nil, ErrRunContext.Wrap(err)
	}
	c := &Context{
		Repository: gh.Repository,
		SHA:        gh.SHA,
		HeadRef:    gh.HeadRef,
		Workspace:  gh.Workspace,
		EventName:  gh.EventName,
		EventPath:  getenv(eventPathKey),
		ServerURL:  strings.TrimSuffix(gh.ServerURL, "/"),
	}
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}

	owner, name, ok := splitSlug(c.Repository)
	if !ok {
		return nil, ErrNoRepository
	}
	c.Owner, c.Name = owner, name

	if err := c.Event.decode(gh.Event); err != nil {
		return nil, ErrRunContext.Wrap(err)
	}
	return c, nil
}

// optionalEvent hides GITHUB_EVENT_PATH when it names no file
func optionalEvent(getenv Getenv) Getenv {
	return func(key string) string {
		v := getenv(key)
		if key != eventPathKey || v == "" {
			return v
		}
		if _, err := os.Stat(v); os.IsNotExist(err) {
			return ""
		}
		return v
	}
}

// IsPullRequest tells if the run was triggered by a pull request
func (c *Context) IsPullRequest() bool {
	return c.Event.PullRequest != nil
}

func splitSlug(slug string) (string, string, bool) {
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
