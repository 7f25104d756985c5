// Package git wraps the git binary with the queries and mutations autocommit needs.
package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Step identifies which git invocation produced an error.
type Step string

const (
	StepResolveHead   Step = "resolve-head"
	StepStatus        Step = "status"
	StepDiffStaged    Step = "diff-staged"
	StepDiffWorking   Step = "diff-working"
	StepDiffEmptyTree Step = "diff-empty-tree"
	StepStage         Step = "stage"
	StepCommit        Step = "commit"
	StepPush          Step = "push"
	StepBranch        Step = "branch"
)

// ErrNotARepository is returned when the target directory is not under git control.
var ErrNotARepository = errors.New("not a git repository")

// Error wraps a failed git invocation with the step that failed and any
// stderr output, so callers can branch on the step instead of message text.
type Error struct {
	Step   Step
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s: %v: %s", e.Step, e.Err, strings.TrimSpace(e.Stderr))
	}
	return fmt.Sprintf("git %s: %v", e.Step, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Repo runs git commands against a single repository.
type Repo struct {
	Dir string
}

// Open verifies that dir is inside a git repository and returns a Repo
// rooted at its top level.
func Open(dir string) (*Repo, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotARepository, dir)
	}
	return &Repo{Dir: strings.TrimSpace(string(out))}, nil
}

// run executes a git command and returns stdout, tagging failures with step.
func (r *Repo) run(step Step, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", &Error{Step: step, Stderr: stderr.String(), Err: err}
	}
	return string(out), nil
}

// ResolveHead resolves HEAD to a commit id. Failure means the repository
// has no commits yet; callers treat that as the first-commit state rather
// than an error.
func (r *Repo) ResolveHead() (string, error) {
	out, err := r.run(StepResolveHead, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// StatusShort returns the porcelain short-form status listing.
func (r *Repo) StatusShort() (string, error) {
	return r.run(StepStatus, "status", "--porcelain")
}

// DiffStaged diffs the index against HEAD.
func (r *Repo) DiffStaged() (string, error) {
	return r.run(StepDiffStaged, "diff", "--cached", "HEAD")
}

// DiffWorking diffs the working tree against HEAD.
func (r *Repo) DiffWorking() (string, error) {
	return r.run(StepDiffWorking, "diff", "HEAD")
}

// DiffEmptyTree diffs the index against the empty tree. Used before the
// first commit, when there is no HEAD to diff against.
func (r *Repo) DiffEmptyTree() (string, error) {
	return r.run(StepDiffEmptyTree, "diff", "--cached")
}

// StageAll stages every pending change, including untracked files.
func (r *Repo) StageAll() error {
	_, err := r.run(StepStage, "add", "-A")
	return err
}

// Commit records the staged changes with the given message.
func (r *Repo) Commit(message string) error {
	_, err := r.run(StepCommit, "commit", "-m", message)
	return err
}

// CurrentBranch returns the short name of the checked-out branch.
func (r *Repo) CurrentBranch() (string, error) {
	out, err := r.run(StepBranch, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Push pushes the current branch to its upstream.
func (r *Repo) Push() error {
	_, err := r.run(StepPush, "push")
	return err
}

// PushSetUpstream pushes the given branch to origin, creating the upstream.
func (r *Repo) PushSetUpstream(branch string) error {
	_, err := r.run(StepPush, "push", "--set-upstream", "origin", branch)
	return err
}

// StepOf extracts the failing step from err, or "" if err is not a git error.
func StepOf(err error) Step {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Step
	}
	return ""
}
