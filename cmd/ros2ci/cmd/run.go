package cmd

import (
	"context"
	"io"
	"os"

	"github.com/oneconcern/ros2ci/pkg/actions"
	"github.com/oneconcern/ros2ci/pkg/ci"
	"github.com/oneconcern/ros2ci/pkg/manifest"
	"github.com/oneconcern/ros2ci/pkg/runner"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	// used to patch over the process environment, the file system and
	// the external commands during test

	getenv              = os.Getenv
	appFs               = afero.NewOsFs()
	stdout    io.Writer = os.Stdout
	newRunner           = func(l *zap.Logger) runner.Runner {
		return runner.New(runner.Logger(l), runner.Output(stdout, os.Stderr))
	}
)

func newCommands() *actions.Commands {
	return actions.NewCommands(stdout, getenv)
}

func runCI(ctx context.Context) error {
	gh, err := actions.LoadContext(getenv)
	if err != nil {
		return err
	}
	cfg := config.ciConfig(gh.Workspace)
	repo := manifest.FromContext(gh)

	l := logger.With(zap.String("component", "ci"))
	l.Info("starting CI run",
		zap.String("repository", gh.Repository),
		zap.String("event", gh.EventName),
		zap.Bool("pullRequest", gh.IsPullRequest()),
		zap.Strings("packages", cfg.PackageNames),
		zap.String("workspace", cfg.WorkspaceRoot),
		zap.String("platform", cfg.Platform),
	)

	pipeline := ci.New(newRunner(l),
		ci.WithLogger(l),
		ci.WithFs(appFs),
		ci.WithAnnotator(newCommands()),
	)
	report, err := pipeline.Run(ctx, cfg, repo)
	printSummary(stdout, report)
	return err
}
