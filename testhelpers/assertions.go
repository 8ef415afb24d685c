// Package testhelpers provides testing utilities for pushit: throwaway git
// repositories with bare remotes, a scene system, a mock GitHub API and
// assertions on repository state.
package testhelpers

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func gitLines(t *testing.T, dir string, args ...string) []string {
	t.Helper()

	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	output, err := cmd.Output()
	require.NoError(t, err, "git %s failed", strings.Join(args, " "))

	lines := []string{}
	for _, line := range strings.Split(string(output), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ExpectCommits asserts the newest commit subjects on rev, newest first.
func ExpectCommits(t *testing.T, repo *GitRepo, rev string, expected []string) {
	t.Helper()

	subjects := gitLines(t, repo.Dir, "log", "--format=%s", rev)
	if len(subjects) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(subjects))
		return
	}
	require.Equal(t, expected, subjects[:len(expected)], "Commits do not match")
}

// ExpectStaged asserts exactly which paths are staged.
func ExpectStaged(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()
	require.ElementsMatch(t, expected, gitLines(t, repo.Dir, "diff", "--cached", "--name-only"), "Staged files do not match")
}

// ExpectCleanWorkTree asserts git status reports nothing.
func ExpectCleanWorkTree(t *testing.T, repo *GitRepo) {
	t.Helper()
	require.Empty(t, gitLines(t, repo.Dir, "status", "--porcelain"), "Work tree is not clean")
}

// ExpectRemoteHead asserts the branch on a bare remote points at the local rev.
func ExpectRemoteHead(t *testing.T, repo *GitRepo, bareDir, branch, rev string) {
	t.Helper()

	local := gitLines(t, repo.Dir, "rev-parse", rev)
	remote := gitLines(t, bareDir, "rev-parse", "refs/heads/"+branch)
	require.Equal(t, local, remote, "Remote %s does not match %s", branch, rev)
}

// ExpectNoRemoteBranch asserts a bare remote does not have the branch.
func ExpectNoRemoteBranch(t *testing.T, bareDir, branch string) {
	t.Helper()
	require.Empty(t, gitLines(t, bareDir, "for-each-ref", "refs/heads/"+branch), "Remote unexpectedly has %s", branch)
}
