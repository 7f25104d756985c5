package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sprite-ai/autocommit/internal/analyze"
	"github.com/sprite-ai/autocommit/internal/diff"
	"github.com/sprite-ai/autocommit/internal/git"
	"github.com/sprite-ai/autocommit/internal/tui"
	"github.com/sprite-ai/autocommit/internal/workflow"
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Analyze, confirm, then stage, commit and push",
	Long: `Analyze the repository's pending changes, show the suggested commit
message for confirmation, then run the stage/commit/push sequence.

Examples:
  autocommit commit                # analyze everything, confirm, commit, push
  autocommit commit --mode staged  # only what is already in the index
  autocommit commit --yes --no-push
  autocommit commit --dry-run      # print the suggestion and stop`,
	Args: cobra.NoArgs,
	RunE: runCommit,
}

func init() {
	commitCmd.Flags().StringP("mode", "m", "all", "changes to analyze: all, staged, unstaged")
	commitCmd.Flags().StringP("repo", "C", ".", "path to the repository")
	commitCmd.Flags().BoolP("yes", "y", false, "accept the suggested message without prompting")
	commitCmd.Flags().Bool("no-push", false, "skip the push step")
	commitCmd.Flags().Bool("dry-run", false, "print the analysis and suggestion, mutate nothing")
}

func runCommit(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	mode := analyze.Mode(modeFlag)

	repoPath, _ := cmd.Flags().GetString("repo")
	repo, err := git.Open(repoPath)
	if err != nil {
		return err
	}

	analyzer := analyze.New(analyze.DefaultConfig())
	res, err := analyzer.Analyze(repo, mode)
	if err != nil {
		return err
	}

	if !res.HasChanges {
		fmt.Println(res.Message)
		return nil
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		printReport(res)
		return nil
	}

	yes, _ := cmd.Flags().GetBool("yes")
	message := res.SuggestedMessage
	if !yes {
		outcome, err := tui.Run(res, previewSet(repo, res))
		if err != nil {
			return err
		}
		if !outcome.Accepted {
			fmt.Fprintln(os.Stderr, "aborted, nothing committed")
			return nil
		}
		message = outcome.Message
	}

	noPush, _ := cmd.Flags().GetBool("no-push")
	opts := workflow.Options{
		SkipStage: res.Mode == analyze.ModeStaged,
		Push:      !noPush,
		Progress:  os.Stderr,
	}
	if err := workflow.Run(repo, message, opts); err != nil {
		return err
	}

	fmt.Printf("committed: %s\n", message)
	return nil
}

// previewSet re-reads the diff for display in the confirmation prompt.
// Preview is best-effort; a nil set just disables the diff view.
func previewSet(repo *git.Repo, res *analyze.Result) *diff.Set {
	var raw string
	var err error
	switch {
	case res.IsFirstCommit:
		raw, err = repo.DiffEmptyTree()
	case res.Mode == analyze.ModeStaged:
		raw, err = repo.DiffStaged()
	case res.Mode == analyze.ModeUnstaged:
		raw, err = repo.DiffWorking()
	default:
		var staged, working string
		staged, err = repo.DiffStaged()
		if err == nil {
			working, err = repo.DiffWorking()
		}
		raw = staged + "\n" + working
	}
	if err != nil {
		return nil
	}

	ds, err := diff.Parse(raw)
	if err != nil || len(ds.Files) == 0 {
		return nil
	}
	return ds
}
