// Package cli wires the cobra command tree.
package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "autocommit",
	Short: "Suggest commit messages from pending changes",
	Long: `autocommit analyzes your repository's pending changes, categorizes
the touched files, and suggests a conventional commit message. The commit
subcommand walks the full flow: analyze, confirm, stage, commit, push.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
