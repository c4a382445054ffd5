// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/oneconcern/ros2ci/pkg/dlogger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// rootCmd runs the CI step when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ros2ci",
	Short: "ros2ci builds and tests a ROS 2 package in a GitHub Actions workflow",
	Long: `ros2ci builds and tests a ROS 2 package in a GitHub Actions workflow.

It imports the repository under test (or the head of the pull request being built)
into a colcon workspace, installs the dependencies with rosdep, then builds the
requested packages and their dependencies, runs their tests and extracts
the coverage results.

Inputs are read from the action inputs (INPUT_* environment variables), from the
command line flags or from a ros2ci.yaml config file.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCI(cmd.Context()); err != nil {
			failStep(newCommands(), err)
		}
	},
}

var (
	config *CLIConfig
	logger = zap.NewNop()
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addPackageNameFlag(rootCmd)
	addMixinNameFlag(rootCmd)
	addMixinRepositoryFlag(rootCmd)
	addROSDistroFlag(rootCmd)
	addSetupScriptFlag(rootCmd)
	addSkipIndexRefreshFlag(rootCmd)
	addLogLevelFlag(rootCmd)
	addWorkspaceFlag(rootCmd)
	addPlatformFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if os.Getenv("ROS2CI_CONFIG") != "" {
		// Use config file from the environment.
		viper.SetConfigFile(os.Getenv("ROS2CI_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.ros2ci")
		viper.SetConfigName("ros2ci")
	}

	// action inputs are exported as INPUT_<NAME>
	viper.SetEnvPrefix("input")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		wrapFatalln("invalid configuration", err)
		return
	}
	logger, err = dlogger.GetLogger(config.LogLevel)
	if err != nil {
		wrapFatalln("invalid log level", err)
		return
	}
}
