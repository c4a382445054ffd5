package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func filePrepender(_ string) string {
	return fmt.Sprintf("**Version: %s**\n\n", NewVersionInfo().Version)
}

// docCmd is a doc generation command powered by cobra
var docCmd = &cobra.Command{
	Use:   "usage",
	Short: "Generates documentation",
	Long:  `Command to generate usage documentation, as markdown.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := os.MkdirAll(ros2ciFlags.doc.docTarget, 0o755); err != nil {
			wrapFatalln("failed to create doc target", err)
			return
		}
		err := doc.GenMarkdownTreeCustom(rootCmd, ros2ciFlags.doc.docTarget,
			filePrepender,
			func(s string) string { return s },
		)
		if err != nil {
			wrapFatalln("failed to generate doc", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
	addTargetFlag(docCmd)
}
