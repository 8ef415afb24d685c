package git

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	pushiterrors "pushit.dev/pushit/internal/errors"
)

// DefaultRemote is the remote every push targets
const DefaultRemote = "origin"

// Repository runs the git queries and mutations pushit needs against a Runner
type Repository struct {
	runner Runner
}

// NewRepository creates a Repository backed by the given runner
func NewRepository(runner Runner) *Repository {
	return &Repository{runner: runner}
}

// IsRepository reports whether the working directory is inside a git work tree
func (r *Repository) IsRepository(ctx context.Context) bool {
	output, err := r.runner.Run(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false
	}
	return strings.TrimSpace(output) == "true"
}

// Remotes lists the configured remote names
func (r *Repository) Remotes(ctx context.Context) ([]string, error) {
	lines, err := runLines(ctx, r.runner, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	remotes := make([]string, 0, len(lines))
	for _, line := range lines {
		remotes = append(remotes, strings.TrimSpace(line))
	}
	return remotes, nil
}

// HasRemote checks whether a remote with the given name is configured
func (r *Repository) HasRemote(ctx context.Context, name string) (bool, error) {
	remotes, err := r.Remotes(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(remotes, name), nil
}

// AddRemote configures a new remote
func (r *Repository) AddRemote(ctx context.Context, name, url string) error {
	if _, err := r.runner.Run(ctx, "remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// RemoteURL returns the fetch URL of a remote
func (r *Repository) RemoteURL(ctx context.Context, name string) (string, error) {
	output, err := r.runner.Run(ctx, "remote", "get-url", name)
	if err != nil {
		return "", fmt.Errorf("failed to get URL of remote %s: %w", name, err)
	}
	return strings.TrimSpace(output), nil
}

// ModifiedFiles returns every path git status reports, staged or not, including untracked files
func (r *Repository) ModifiedFiles(ctx context.Context) ([]FileStatus, error) {
	output, err := r.runner.Run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to read status: %w", err)
	}
	return ParsePorcelainStatus(output), nil
}

// StageAll stages all changes including untracked files
func (r *Repository) StageAll(ctx context.Context) error {
	if _, err := r.runner.Run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// StageFile stages a single path
func (r *Repository) StageFile(ctx context.Context, path string) error {
	if _, err := r.runner.Run(ctx, "add", "--", path); err != nil {
		return fmt.Errorf("failed to stage %s: %w", path, err)
	}
	return nil
}

// StagedFiles returns the paths staged for the next commit
func (r *Repository) StagedFiles(ctx context.Context) ([]string, error) {
	lines, err := runLines(ctx, r.runner, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}
	files := make([]string, 0, len(lines))
	for _, line := range lines {
		files = append(files, strings.TrimSpace(line))
	}
	return files, nil
}

// Commit creates a commit with the given message
func (r *Repository) Commit(ctx context.Context, message string) error {
	if _, err := r.runner.Run(ctx, "commit", "-m", message); err != nil {
		return pushiterrors.NewCommitError(err)
	}
	return nil
}

// RemoteBranchExists asks the remote whether it already has the branch
func (r *Repository) RemoteBranchExists(ctx context.Context, remote, branch string) (bool, error) {
	output, err := r.runner.Run(ctx, "ls-remote", "--heads", remote, branch)
	if err != nil {
		return false, fmt.Errorf("failed to query %s for branch %s: %w", remote, branch, err)
	}
	return strings.TrimSpace(output) != "", nil
}

// Push pushes a branch to the remote
func (r *Repository) Push(ctx context.Context, remote, branch string) error {
	if _, err := r.runner.Run(ctx, "push", remote, branch); err != nil {
		return pushiterrors.NewPushError(remote, branch, err)
	}
	return nil
}

// LastCommitSummary returns the one-line summary of HEAD
func (r *Repository) LastCommitSummary(ctx context.Context) (string, error) {
	output, err := r.runner.Run(ctx, "log", "-1", "--oneline")
	if err != nil {
		return "", fmt.Errorf("failed to read last commit: %w", err)
	}
	return strings.TrimSpace(output), nil
}

// Status returns the human readable git status
func (r *Repository) Status(ctx context.Context) (string, error) {
	output, err := r.runner.Run(ctx, "status")
	if err != nil {
		return "", fmt.Errorf("failed to read status: %w", err)
	}
	return output, nil
}

// CommandOutput extracts what git printed for a failed command, preferring stderr
func CommandOutput(err error) string {
	var gitErr *pushiterrors.GitCommandError
	if !errors.As(err, &gitErr) {
		return ""
	}
	if out := strings.TrimSpace(gitErr.Stderr); out != "" {
		return out
	}
	return strings.TrimSpace(gitErr.Stdout)
}

// LocalBranches lists the local branch names
func (r *Repository) LocalBranches(ctx context.Context) ([]string, error) {
	lines, err := runLines(ctx, r.runner, "for-each-ref", "--format=%(refname:short)", "refs/heads")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return lines, nil
}
