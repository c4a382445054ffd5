package ci

import (
	"time"
)

// Phase of a CI run
type Phase string

// Phases, in the order they run
const (
	PhaseDiscover          Phase = "discover"
	PhasePrepare           Phase = "prepare"
	PhaseImport            Phase = "import"
	PhaseDependencyInstall Phase = "dependency-install"
	PhaseMixinRegister     Phase = "mixin-register"
	PhasePathAugment       Phase = "path-augment"
	PhaseBuild             Phase = "build"
	PhaseTest              Phase = "test"
	PhaseCoverageExtract   Phase = "coverage-extract"

	// terminal phases
	PhaseDone   Phase = "done"
	PhaseFailed Phase = "failed"
)

// Phases lists the steps of a run, in order
var Phases = []Phase{
	PhaseDiscover,
	PhasePrepare,
	PhaseImport,
	PhaseDependencyInstall,
	PhaseMixinRegister,
	PhasePathAugment,
	PhaseBuild,
	PhaseTest,
	PhaseCoverageExtract,
}

// StepStatus is the outcome of a step
type StepStatus string

// Step outcomes
const (
	StepOK        StepStatus = "ok"
	StepSkipped   StepStatus = "skipped"
	StepTolerated StepStatus = "tolerated"
	StepFailed    StepStatus = "failed"
)

// StepRecord is the outcome of one step
type StepRecord struct {
	Phase    Phase
	Status   StepStatus
	ExitCode int
	Duration time.Duration
	Err      error
}

// Report is the history of a run.
// Final is PhaseDone when all steps passed, PhaseFailed otherwise.
type Report struct {
	Steps []StepRecord
	Final Phase
	Err   error
}

// Failed step, if any
func (r *Report) Failed() (StepRecord, bool) {
	for _, s := range r.Steps {
		if s.Status == StepFailed {
			return s, true
		}
	}
	return StepRecord{}, false
}

// Duration of the whole run
func (r *Report) Duration() time.Duration {
	var d time.Duration
	for _, s := range r.Steps {
		d += s.Duration
	}
	return d
}
