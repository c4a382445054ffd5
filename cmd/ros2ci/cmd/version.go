package cmd

import (
	"runtime"

	"github.com/gosuri/uitable"
	"github.com/oneconcern/ros2ci/pkg/ci"
	"github.com/oneconcern/ros2ci/pkg/workspace"
	"github.com/spf13/cobra"
)

// set at link time
var (
	Version   string
	BuildDate string
	GitCommit string
)

// VersionInfo describes the build and the defaults baked into it
type VersionInfo struct {
	Version   string `json:"version,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
	ROSDistro string `json:"rosDistro"`
	Workspace string `json:"workspace"`
	Platform  string `json:"platform"`
}

func NewVersionInfo() VersionInfo {
	ver := VersionInfo{
		Version:   "dev",
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		ROSDistro: ci.DefaultROSDistro,
		Workspace: workspace.DirName,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if Version != "" {
		ver.Version = Version
	}
	return ver
}

func (v VersionInfo) String() string {
	table := uitable.New()
	table.AddRow("Version:", v.Version)
	table.AddRow("Build date:", v.BuildDate)
	table.AddRow("Commit:", v.GitCommit)
	table.AddRow("Default ROS distro:", v.ROSDistro)
	table.AddRow("Workspace directory:", v.Workspace)
	table.AddRow("Platform:", v.Platform)
	return table.String() + "\n"
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the version of ros2ci",
	Long: `Prints the version of ros2ci, with the defaults it was built with:
	* Version (output of git describe --tags)
	* Build date and git commit of the binary
	* The ROS distribution sourced when ros-distro is not set
	* The name of the colcon workspace created under GITHUB_WORKSPACE
	* The platform the binary runs on (discovery is skipped on windows)
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logStdOut("%s", NewVersionInfo().String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
