package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sprite-ai/autocommit/internal/analyze"
	"github.com/sprite-ai/autocommit/internal/git"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print the change analysis and suggested message (non-interactive)",
	Long: `Run the change analysis and print the result without prompting or
mutating anything. Useful for scripting and piping into other tools.`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringP("mode", "m", "all", "changes to analyze: all, staged, unstaged")
	analyzeCmd.Flags().StringP("repo", "C", ".", "path to the repository")
	analyzeCmd.Flags().StringP("format", "f", "text", "output format: text, json, markdown")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")

	repoPath, _ := cmd.Flags().GetString("repo")
	repo, err := git.Open(repoPath)
	if err != nil {
		return err
	}

	analyzer := analyze.New(analyze.DefaultConfig())
	res, err := analyzer.Analyze(repo, analyze.Mode(modeFlag))
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		return outputJSON(res)
	case "markdown":
		return outputMarkdown(res)
	default:
		printReport(res)
		return nil
	}
}

var (
	reportHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8be9fd")).Bold(true)
	reportBucketStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bd93f9")).Bold(true)
	reportAddStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#50fa7b"))
	reportDelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
	reportMsgStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1fa8c")).Bold(true)
)

func printReport(res *analyze.Result) {
	if !res.HasChanges {
		fmt.Println(res.Message)
		return
	}

	fmt.Println(reportHeaderStyle.Render(res.Summarize()))
	if res.IsFirstCommit {
		fmt.Println("first commit: no prior reference point")
	}
	fmt.Println()

	for _, bucket := range []analyze.Bucket{
		analyze.BucketSource, analyze.BucketTest, analyze.BucketDocs,
		analyze.BucketConfig, analyze.BucketStyle,
	} {
		paths := res.Categorized[bucket]
		if len(paths) == 0 {
			continue
		}
		fmt.Println(reportBucketStyle.Render(string(bucket)))
		for _, p := range paths {
			for _, f := range res.Files {
				if f.Path == p {
					fmt.Printf("  %-50s %s %s\n", p,
						reportAddStyle.Render(fmt.Sprintf("+%d", f.Additions)),
						reportDelStyle.Render(fmt.Sprintf("-%d", f.Deletions)))
					break
				}
			}
		}
	}

	fmt.Println()
	fmt.Println("suggested: " + reportMsgStyle.Render(res.SuggestedMessage))
}

func outputJSON(res *analyze.Result) error {
	out := struct {
		*analyze.Result
		Summary string `json:"summary"`
	}{res, res.Summarize()}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputMarkdown(res *analyze.Result) error {
	if !res.HasChanges {
		fmt.Println(res.Message)
		return nil
	}

	fmt.Printf("## Change Analysis\n\n")
	fmt.Printf("**%s**\n\n", res.Summarize())
	fmt.Printf("Suggested message: `%s`\n\n", res.SuggestedMessage)

	fmt.Println("| File | Kind | Category | +/- |")
	fmt.Println("|------|------|----------|-----|")
	for _, f := range res.Files {
		category := ""
		for bucket, paths := range res.Categorized {
			for _, p := range paths {
				if p == f.Path {
					category = string(bucket)
				}
			}
		}
		fmt.Printf("| `%s` | %s | %s | +%d/-%d |\n",
			f.Path, f.Kind, category, f.Additions, f.Deletions)
	}

	return nil
}
