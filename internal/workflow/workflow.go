// Package workflow drives the stage, commit, push sequence once a message
// has been approved.
package workflow

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sprite-ai/autocommit/internal/git"
)

// Repo is the mutating slice of the git layer the workflow needs.
// *git.Repo satisfies it.
type Repo interface {
	StageAll() error
	Commit(message string) error
	CurrentBranch() (string, error)
	Push() error
	PushSetUpstream(branch string) error
}

// Options controls which of the three steps run.
type Options struct {
	// SkipStage leaves the index as-is; used when the analysis covered
	// staged changes only and the user prepared the index themselves.
	SkipStage bool

	// Push pushes the new commit to the upstream after committing.
	Push bool

	// Progress receives one line per executed step. Nil silences it.
	Progress io.Writer
}

// Run executes the mutation sequence: stage everything (unless skipped),
// commit with the approved message, then push. A push that fails because
// the branch has no upstream is retried once with --set-upstream origin.
func Run(repo Repo, message string, opts Options) error {
	if strings.TrimSpace(message) == "" {
		return errors.New("empty commit message")
	}

	if !opts.SkipStage {
		opts.progress("staging changes")
		if err := repo.StageAll(); err != nil {
			return fmt.Errorf("staging changes: %w", err)
		}
	}

	opts.progress("committing")
	if err := repo.Commit(message); err != nil {
		return fmt.Errorf("creating commit: %w", err)
	}

	if !opts.Push {
		return nil
	}

	opts.progress("pushing")
	err := repo.Push()
	if err == nil {
		return nil
	}
	if !missingUpstream(err) {
		return fmt.Errorf("pushing: %w", err)
	}

	branch, berr := repo.CurrentBranch()
	if berr != nil {
		return fmt.Errorf("resolving branch for upstream push: %w", berr)
	}
	opts.progress("pushing with --set-upstream origin " + branch)
	if err := repo.PushSetUpstream(branch); err != nil {
		return fmt.Errorf("pushing with upstream: %w", err)
	}
	return nil
}

func (o Options) progress(msg string) {
	if o.Progress != nil {
		fmt.Fprintln(o.Progress, msg)
	}
}

// missingUpstream reports whether a push failed because the current branch
// has no upstream configured.
func missingUpstream(err error) bool {
	var ge *git.Error
	if !errors.As(err, &ge) || ge.Step != git.StepPush {
		return false
	}
	stderr := strings.ToLower(ge.Stderr)
	return strings.Contains(stderr, "no upstream") ||
		strings.Contains(stderr, "set-upstream")
}
