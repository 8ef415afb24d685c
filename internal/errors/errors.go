// Package errors provides sentinel errors and custom error types for the pushit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
)

// Sentinel errors for the failures that end a run with a non-zero exit code
var (
	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrNoRemoteConfigured indicates that no "origin" remote exists and none was added
	ErrNoRemoteConfigured = errors.New("no remote configured")

	// ErrFileNotFound indicates that the file requested for staging does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrCommitFailed indicates that git refused to create the commit
	ErrCommitFailed = errors.New("commit failed")

	// ErrPushFailed indicates that git could not push to the remote
	ErrPushFailed = errors.New("push failed")

	// ErrInvalidBranch indicates that the branch name is empty
	ErrInvalidBranch = errors.New("invalid branch name")
)

// FileNotFoundError represents an error when the target file does not exist
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file %s does not exist", e.Path)
}

// Is returns true if the target error is ErrFileNotFound
func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// NewFileNotFoundError creates a new FileNotFoundError
func NewFileNotFoundError(path string) *FileNotFoundError {
	return &FileNotFoundError{Path: path}
}

// CommitError wraps the git failure behind a rejected commit
type CommitError struct {
	Err error
}

func (e *CommitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("commit failed: %v", e.Err)
	}
	return "commit failed"
}

// Is returns true if the target error is ErrCommitFailed
func (e *CommitError) Is(target error) bool {
	return target == ErrCommitFailed
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// NewCommitError creates a new CommitError
func NewCommitError(err error) *CommitError {
	return &CommitError{Err: err}
}

// PushError represents a failed push of a branch to a remote
type PushError struct {
	Remote string
	Branch string
	Err    error
}

func (e *PushError) Error() string {
	msg := fmt.Sprintf("failed to push %s to %s", e.Branch, e.Remote)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrPushFailed
func (e *PushError) Is(target error) bool {
	return target == ErrPushFailed
}

func (e *PushError) Unwrap() error {
	return e.Err
}

// NewPushError creates a new PushError
func NewPushError(remote, branch string, err error) *PushError {
	return &PushError{
		Remote: remote,
		Branch: branch,
		Err:    err,
	}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status of the failed command, or -1 when the
// command never ran to completion.
func (e *GitCommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
