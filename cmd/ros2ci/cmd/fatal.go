package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/oneconcern/ros2ci/pkg/errors"
)

var (
	// globals used to patch over calls to os.Exit() during test

	logFatalln = log.Fatalln
	logFatalf  = log.Fatalf
	osExit     = os.Exit

	logStdOut = fmt.Printf
)

func wrapFatalln(msg string, err error) {
	if err == nil {
		logFatalln(msg)
	} else {
		logFatalf("%v", fmt.Errorf(msg+": %w", err))
	}
}

// failureMessage is the reason reported for a failed step
func failureMessage(err error) string {
	var e *errors.Error
	if errors.As(err, &e) {
		return e.Details()
	}
	return err.Error()
}

// failStep annotates the run with the error and exits with code 1,
// which marks the step as failed
func failStep(annotator interface{ Error(string) }, err error) {
	annotator.Error(failureMessage(err))
	osExit(1)
}
