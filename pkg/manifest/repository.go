// Package manifest builds the repos file imported with vcs into the workspace
package manifest

import (
	"github.com/oneconcern/ros2ci/pkg/actions"
)

// Repository is the checkout of the package under test
type Repository struct {
	Name string
	URL  string
	Ref  string
}

// FromContext describes the repository to check out for this run.
//
// Pull requests are built from the head repository, which may be a fork, at
// the head branch. Other events build the triggering repository at the
// commit of the run.
func FromContext(c *actions.Context) Repository {
	slug := c.Repository
	ref := c.HeadRef
	if pr := c.Event.PullRequest; pr != nil {
		if pr.Head.Repo.FullName != "" {
			slug = pr.Head.Repo.FullName
		}
		if ref == "" {
			ref = pr.Head.Ref
		}
	}
	if ref == "" {
		ref = c.SHA
	}
	return Repository{
		Name: c.Name,
		URL:  c.ServerURL + "/" + slug + ".git",
		Ref:  ref,
	}
}
