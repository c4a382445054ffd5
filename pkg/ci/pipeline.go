// Copyright © 2018 One Concern

// Package ci runs the build of a ROS 2 package: it imports the repository under
// test into a colcon workspace, installs its dependencies, then builds and tests it.
package ci

import (
	"context"
	"time"

	"github.com/oneconcern/ros2ci/pkg/actions"
	"github.com/oneconcern/ros2ci/pkg/environ"
	"github.com/oneconcern/ros2ci/pkg/manifest"
	"github.com/oneconcern/ros2ci/pkg/runner"
	"github.com/oneconcern/ros2ci/pkg/workspace"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Pipeline runs the steps of a CI run, strictly in sequence
type Pipeline struct {
	runner    runner.Runner
	fs        afero.Fs
	annotator Annotator
	l         *zap.Logger
}

// New pipeline running commands with r
func New(r runner.Runner, opts ...Option) *Pipeline {
	p := &Pipeline{
		runner: r,
		l:      zap.NewNop(),
	}
	for _, apply := range opts {
		apply(p)
	}
	if p.fs == nil {
		p.fs = afero.NewOsFs()
	}
	if p.annotator == nil {
		p.annotator = actions.NewCommands(nil, nil)
	}
	return p
}

// Run the CI steps for the repository under test.
//
// The first fatal step error halts the run: it is returned as is, and the
// report is terminated in PhaseFailed. Tolerated failures are only recorded.
func (p *Pipeline) Run(ctx context.Context, cfg Config, repo manifest.Repository) (*Report, error) {
	cfg = cfg.WithDefaults()
	report := &Report{}
	if err := cfg.Validate(); err != nil {
		report.Final, report.Err = PhaseFailed, err
		return report, err
	}

	r := &run{
		Pipeline: p,
		cfg:      cfg,
		ws:       workspace.New(cfg.WorkspaceRoot, p.fs),
		repo:     repo,
	}

	for _, s := range r.steps() {
		record := p.runStep(ctx, r, s)
		report.Steps = append(report.Steps, record)
		if record.Status == StepFailed {
			report.Final, report.Err = PhaseFailed, record.Err
			return report, record.Err
		}
	}
	report.Final = PhaseDone
	return report, nil
}

func (p *Pipeline) runStep(ctx context.Context, r *run, s step) StepRecord {
	l := p.l.With(zap.String("phase", string(s.phase)))
	p.annotator.StartGroup(string(s.phase))
	defer p.annotator.EndGroup()

	start := time.Now()
	res, err := s.fn(r, ctx)
	record := StepRecord{
		Phase:    s.phase,
		Status:   res.status,
		ExitCode: res.code,
		Duration: time.Since(start),
	}

	switch {
	case err != nil:
		record.Status, record.Err = StepFailed, err
		l.Error("step failed", zap.Error(err), zap.Duration("duration", record.Duration))
	case record.Status == StepTolerated:
		l.Warn("step failure tolerated", zap.Int("exitCode", res.code), zap.Duration("duration", record.Duration))
	default:
		l.Info("step completed", zap.String("status", string(record.Status)), zap.Duration("duration", record.Duration))
	}
	return record
}

// run is the state of one CI run
type run struct {
	*Pipeline
	cfg  Config
	ws   *workspace.Workspace
	repo manifest.Repository

	// env is captured once by discovery and never modified
	env environ.Map

	// buildEnv is env with the install directory on PATH
	buildEnv environ.Map
}

// baseEnv is the captured environment or, when discovery was skipped,
// the environment of this process
func (r *run) baseEnv() environ.Map {
	if len(r.env) == 0 {
		return environ.Current()
	}
	return r.env
}
