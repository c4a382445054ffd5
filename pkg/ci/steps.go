package ci

import (
	"context"
	"fmt"

	"github.com/oneconcern/ros2ci/pkg/environ"
	"github.com/oneconcern/ros2ci/pkg/manifest"
	"github.com/oneconcern/ros2ci/pkg/runner"
	"go.uber.org/zap"
)

// resolverEnv lets rosdep install packages without prompting
var resolverEnv = map[string]string{
	"DEBIAN_FRONTEND":         "noninteractive",
	"RTI_NC_LICENSE_ACCEPTED": "yes",
}

type result struct {
	status StepStatus
	code   int
}

var (
	ok      = result{status: StepOK}
	skipped = result{status: StepSkipped}
)

func tolerated(code int) result {
	if code == 0 {
		return ok
	}
	return result{status: StepTolerated, code: code}
}

type step struct {
	phase Phase
	fn    func(*run, context.Context) (result, error)
}

func (r *run) steps() []step {
	return []step{
		{PhaseDiscover, (*run).discover},
		{PhasePrepare, (*run).prepare},
		{PhaseImport, (*run).importRepository},
		{PhaseDependencyInstall, (*run).installDependencies},
		{PhaseMixinRegister, (*run).registerMixin},
		{PhasePathAugment, (*run).augmentPath},
		{PhaseBuild, (*run).build},
		{PhaseTest, (*run).test},
		{PhaseCoverageExtract, (*run).extractCoverage},
	}
}

func (r *run) discover(ctx context.Context) (result, error) {
	env, err := environ.Discoverer{
		Runner:       r.runner,
		Logger:       r.l,
		Platform:     r.cfg.Platform,
		SetupScript:  r.cfg.SetupScript,
		RefreshIndex: r.cfg.RefreshIndex,
	}.Discover(ctx)
	if err != nil {
		return result{}, err
	}
	r.env = env
	if !environ.Supported(r.cfg.Platform) {
		return skipped, nil
	}
	return ok, nil
}

func (r *run) prepare(_ context.Context) (result, error) {
	return ok, r.ws.Prepare()
}

func (r *run) importRepository(ctx context.Context) (result, error) {
	m, err := manifest.New(r.repo)
	if err != nil {
		return result{}, err
	}
	rdr, err := m.Reader()
	if err != nil {
		return result{}, err
	}
	r.l.Info("importing repository",
		zap.String("name", r.repo.Name),
		zap.String("url", r.repo.URL),
		zap.String("version", r.repo.Ref),
	)
	return r.exec(ctx, runner.Command{
		Name:  "vcs",
		Args:  []string{"import", "src/"},
		Dir:   r.ws.Root,
		Env:   r.env,
		Stdin: rdr,
	})
}

// installDependencies never fails the run: rosdep often misses some keys,
// which is not critical to the build.
func (r *run) installDependencies(ctx context.Context) (result, error) {
	code, err := r.runner.Run(ctx, runner.Command{
		Name: "rosdep",
		Args: []string{
			"install", "-r",
			"--from-paths", "src",
			"--ignore-src",
			"--rosdistro", r.cfg.ROSDistro,
			"-y",
		},
		Dir:              r.ws.Root,
		Env:              r.baseEnv().Merge(resolverEnv),
		IgnoreReturnCode: true,
	})
	if err != nil {
		r.l.Warn("rosdep could not run", zap.Error(err))
		r.annotator.Warning(fmt.Sprintf("rosdep install: %v", err))
		return result{status: StepTolerated, code: code}, nil
	}
	if code != 0 {
		r.annotator.Warning(fmt.Sprintf("rosdep install exited with code %d: some dependencies may be missing", code))
	}
	return tolerated(code), nil
}

func (r *run) registerMixin(ctx context.Context) (result, error) {
	if !r.cfg.RegistersMixin() {
		return skipped, nil
	}
	if res, err := r.exec(ctx, runner.Command{
		Name: "colcon",
		Args: []string{"mixin", "add", "default", r.cfg.MixinRepo},
	}); err != nil {
		return res, err
	}
	return r.exec(ctx, runner.Command{
		Name: "colcon",
		Args: []string{"mixin", "update", "default"},
	})
}

// augmentPath puts the future install bin directory on PATH, so that cmake
// find_package locates packages of the workspace without sourcing local_setup.
func (r *run) augmentPath(_ context.Context) (result, error) {
	bin := r.ws.InstallBin()
	if err := r.annotator.AddPath(bin); err != nil {
		return result{}, err
	}
	r.buildEnv = r.baseEnv().WithPath(bin)
	return ok, nil
}

func (r *run) build(ctx context.Context) (result, error) {
	args := []string{"build", "--symlink-install", "--packages-up-to"}
	args = append(args, r.cfg.PackageNames...)
	args = append(args, r.cfg.mixinArgs()...)
	return r.exec(ctx, runner.Command{
		Name: "colcon",
		Args: args,
		Dir:  r.ws.Root,
		Env:  r.buildEnv,
	})
}

// test arguments meant for pytest are prefixed with a space, so that colcon
// does not parse them as its own options.
func (r *run) test(ctx context.Context) (result, error) {
	args := []string{
		"test",
		"--event-handlers", "console_cohesion+",
		"--pytest-args", " --cov=.", " --cov-report=xml",
		"--return-code-on-test-failure",
		"--packages-select",
	}
	args = append(args, r.cfg.PackageNames...)
	args = append(args, r.cfg.mixinArgs()...)
	return r.exec(ctx, runner.Command{
		Name: "colcon",
		Args: args,
		Dir:  r.ws.Root,
		Env:  r.buildEnv,
	})
}

// extractCoverage ignores the exit code: a lack of coverage data must not
// fail the build.
func (r *run) extractCoverage(ctx context.Context) (result, error) {
	args := append([]string{"lcov-result", "--packages-select"}, r.cfg.PackageNames...)
	code, err := r.runner.Run(ctx, runner.Command{
		Name:             "colcon",
		Args:             args,
		Dir:              r.ws.Root,
		Env:              r.buildEnv,
		IgnoreReturnCode: true,
	})
	if err != nil {
		r.l.Warn("coverage extraction could not run", zap.Error(err))
		return result{status: StepTolerated, code: code}, nil
	}
	return tolerated(code), nil
}

func (r *run) exec(ctx context.Context, c runner.Command) (result, error) {
	code, err := r.runner.Run(ctx, c)
	if err != nil {
		return result{code: code}, err
	}
	return ok, nil
}
