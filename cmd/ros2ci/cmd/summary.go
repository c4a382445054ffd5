package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/oneconcern/ros2ci/pkg/ci"
)

func colorStatus(s ci.StepStatus) string {
	switch s {
	case ci.StepOK:
		return color.GreenString(string(s))
	case ci.StepTolerated:
		return color.YellowString(string(s))
	case ci.StepFailed:
		return color.RedString(string(s))
	default:
		return color.HiBlackString(string(s))
	}
}

// printSummary renders the steps of a run as a table
func printSummary(w io.Writer, report *ci.Report) {
	if report == nil || len(report.Steps) == 0 {
		return
	}
	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("STEP", "STATUS", "EXIT CODE", "DURATION")
	for _, s := range report.Steps {
		code := ""
		if s.ExitCode != 0 {
			code = strconv.Itoa(s.ExitCode)
		}
		table.AddRow(string(s.Phase), colorStatus(s.Status), code, units.HumanDuration(s.Duration))
	}
	fmt.Fprintln(w, table)
	fmt.Fprintf(w, "%s in %s\n", report.Final, units.HumanDuration(report.Duration()))
}
