package git

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorIncludesStepAndStderr(t *testing.T) {
	e := &Error{Step: StepPush, Stderr: "fatal: no upstream\n", Err: errors.New("exit status 128")}

	msg := e.Error()
	for _, want := range []string{"push", "no upstream", "exit status 128"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestStepOf(t *testing.T) {
	e := &Error{Step: StepStatus, Err: errors.New("boom")}
	wrapped := fmt.Errorf("reading status: %w", e)

	if got := StepOf(wrapped); got != StepStatus {
		t.Errorf("expected step %q, got %q", StepStatus, got)
	}
	if got := StepOf(errors.New("plain")); got != "" {
		t.Errorf("expected empty step for plain error, got %q", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("exit status 1")
	e := &Error{Step: StepCommit, Err: inner}

	if !errors.Is(e, inner) {
		t.Error("expected Unwrap to expose the inner error")
	}
}

func TestOpenNonRepo(t *testing.T) {
	_, err := Open(t.TempDir())
	if err == nil {
		t.Skip("test environment treats temp dir as a repository")
	}
	if !errors.Is(err, ErrNotARepository) {
		t.Errorf("expected ErrNotARepository, got %v", err)
	}
}
