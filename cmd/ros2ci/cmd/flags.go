// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/ros2ci/pkg/ci"
	"github.com/oneconcern/ros2ci/pkg/dlogger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// keys of the action inputs. Inputs are read from the INPUT_<KEY> environment
// variables set by the runner, e.g. INPUT_PACKAGE-NAME.
const (
	keyPackageName      = "package-name"
	keyMixinName        = "colcon-mixin-name"
	keyMixinRepository  = "colcon-mixin-repository"
	keyROSDistro        = "ros-distro"
	keySetupScript      = "setup-script"
	keySkipIndexRefresh = "skip-index-refresh"
	keyLogLevel         = "log-level"
	keyWorkspace        = "workspace"
	keyPlatform         = "platform"
)

type flagsT struct {
	root struct {
		logLevel  string
		workspace string
		platform  string
	}
	ci struct {
		packageNames     string
		mixinName        string
		mixinRepository  string
		rosDistro        string
		setupScript      string
		skipIndexRefresh bool
	}
	doc struct {
		docTarget string
	}
}

var ros2ciFlags = flagsT{}

// bindFlag makes the flag the highest priority source for its viper key
func bindFlag(flags *pflag.FlagSet, key string) string {
	if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
		panic(err)
	}
	return key
}

func addPackageNameFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&ros2ciFlags.ci.packageNames, keyPackageName, "",
		"Whitespace-separated list of the packages to build and test (required)")
	return bindFlag(cmd.PersistentFlags(), keyPackageName)
}

func addMixinNameFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&ros2ciFlags.ci.mixinName, keyMixinName, "",
		"The colcon mixin to apply when building and testing")
	return bindFlag(cmd.PersistentFlags(), keyMixinName)
}

func addMixinRepositoryFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&ros2ciFlags.ci.mixinRepository, keyMixinRepository, "",
		"The URL of the colcon mixin repository to register as default")
	return bindFlag(cmd.PersistentFlags(), keyMixinRepository)
}

func addROSDistroFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&ros2ciFlags.ci.rosDistro, keyROSDistro, ci.DefaultROSDistro,
		"The ROS 2 distribution to build against")
	return bindFlag(cmd.PersistentFlags(), keyROSDistro)
}

func addSetupScriptFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&ros2ciFlags.ci.setupScript, keySetupScript, "",
		"The setup script to source. Defaults to /opt/ros/<distro>/setup.bash")
	return bindFlag(cmd.PersistentFlags(), keySetupScript)
}

func addSkipIndexRefreshFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().BoolVar(&ros2ciFlags.ci.skipIndexRefresh, keySkipIndexRefresh, false,
		"Skip the apt-get and rosdep index updates")
	return bindFlag(cmd.PersistentFlags(), keySkipIndexRefresh)
}

func addLogLevelFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&ros2ciFlags.root.logLevel, keyLogLevel, dlogger.LogLevelInfo,
		"The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug")
	return bindFlag(cmd.PersistentFlags(), keyLogLevel)
}

func addWorkspaceFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&ros2ciFlags.root.workspace, keyWorkspace, "",
		"The directory hosting the colcon workspace. Defaults to $GITHUB_WORKSPACE")
	return bindFlag(cmd.PersistentFlags(), keyWorkspace)
}

func addPlatformFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&ros2ciFlags.root.platform, keyPlatform, "",
		"Override the detected platform")
	_ = cmd.PersistentFlags().MarkHidden(keyPlatform)
	return bindFlag(cmd.PersistentFlags(), keyPlatform)
}

func addTargetFlag(cmd *cobra.Command) string {
	target := "target"
	cmd.Flags().StringVar(&ros2ciFlags.doc.docTarget, target, "docs/usage", "The target directory for the generated docs")
	return target
}
