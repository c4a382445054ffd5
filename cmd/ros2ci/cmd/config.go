package cmd

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/oneconcern/ros2ci/pkg/ci"
	"github.com/oneconcern/ros2ci/pkg/workspace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// CLIConfig describes the inputs of the action.
type CLIConfig struct {
	PackageNames     []string `mapstructure:"package-name" yaml:"package-name"`
	MixinName        string   `mapstructure:"colcon-mixin-name" yaml:"colcon-mixin-name,omitempty"`
	MixinRepository  string   `mapstructure:"colcon-mixin-repository" yaml:"colcon-mixin-repository,omitempty"`
	ROSDistro        string   `mapstructure:"ros-distro" yaml:"ros-distro"`
	SetupScript      string   `mapstructure:"setup-script" yaml:"setup-script,omitempty"`
	SkipIndexRefresh bool     `mapstructure:"skip-index-refresh" yaml:"skip-index-refresh"`
	LogLevel         string   `mapstructure:"log-level" yaml:"log-level"`
	Workspace        string   `mapstructure:"workspace" yaml:"workspace,omitempty"`
	Platform         string   `mapstructure:"platform" yaml:"platform,omitempty"`
}

// splitFields decodes a whitespace-separated string into a list
func splitFields(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice || to.Elem().Kind() != reflect.String {
		return data, nil
	}
	return strings.Fields(reflect.ValueOf(data).String()), nil
}

var configDecodeHook = mapstructure.ComposeDecodeHookFunc(
	splitFields,
	mapstructure.StringToTimeDurationHookFunc(),
)

// decodeInto decodes settings, e.g. viper.AllSettings(), into config.
// Values from the environment are strings, hence the weakly typed input.
func decodeInto(input interface{}, config *CLIConfig) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       configDecodeHook,
		WeaklyTypedInput: true,
		Result:           config,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := decodeInto(viper.AllSettings(), &config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// ciConfig resolves the configuration of the run. githubWorkspace is used
// when no workspace is configured.
func (c *CLIConfig) ciConfig(githubWorkspace string) ci.Config {
	base := c.Workspace
	if base == "" {
		base = githubWorkspace
	}
	var root string
	if base != "" {
		root = workspace.Under(base, nil).Root
	}
	return ci.Config{
		MixinName:     c.MixinName,
		MixinRepo:     c.MixinRepository,
		PackageNames:  c.PackageNames,
		WorkspaceRoot: root,
		Platform:      c.Platform,
		ROSDistro:     c.ROSDistro,
		SetupScript:   c.SetupScript,
		RefreshIndex:  !c.SkipIndexRefresh,
	}.WithDefaults()
}

// configCmd prints the configuration resolved from flags, inputs and config file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Prints the resolved configuration",
	Long: `Prints the configuration resolved from the command line flags,
the action inputs (INPUT_* environment variables) and the config file, as YAML.

This is useful to troubleshoot the inputs given to the action by a workflow.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		b, err := yaml.Marshal(config)
		if err != nil {
			wrapFatalln("failed to render config", err)
			return
		}
		logStdOut("%s", b)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
