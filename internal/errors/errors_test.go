package errors_test

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	pushiterrors "pushit.dev/pushit/internal/errors"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	t.Parallel()

	cause := errors.New("exit status 1")

	t.Run("file not found", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("staging: %w", pushiterrors.NewFileNotFoundError("missing.txt"))
		require.ErrorIs(t, err, pushiterrors.ErrFileNotFound)
		require.Contains(t, err.Error(), "missing.txt")

		var fnf *pushiterrors.FileNotFoundError
		require.ErrorAs(t, err, &fnf)
		require.Equal(t, "missing.txt", fnf.Path)
	})

	t.Run("commit", func(t *testing.T) {
		t.Parallel()
		err := pushiterrors.NewCommitError(cause)
		require.ErrorIs(t, err, pushiterrors.ErrCommitFailed)
		require.ErrorIs(t, err, cause)
		require.NotErrorIs(t, err, pushiterrors.ErrPushFailed)
	})

	t.Run("push", func(t *testing.T) {
		t.Parallel()
		err := pushiterrors.NewPushError("origin", "main", cause)
		require.ErrorIs(t, err, pushiterrors.ErrPushFailed)
		require.ErrorIs(t, err, cause)
		require.Equal(t, "failed to push main to origin: exit status 1", err.Error())
	})
}

func TestGitCommandError(t *testing.T) {
	t.Parallel()

	t.Run("reports exit code of the failed process", func(t *testing.T) {
		t.Parallel()
		runErr := exec.Command("git", "definitely-not-a-command").Run()
		require.Error(t, runErr)

		err := pushiterrors.NewGitCommandError("git", []string{"definitely-not-a-command"}, "", "unknown", runErr)
		require.Equal(t, 1, err.ExitCode())
		require.Contains(t, err.Error(), "stderr: unknown")
	})

	t.Run("returns -1 without a process exit", func(t *testing.T) {
		t.Parallel()
		err := pushiterrors.NewGitCommandError("git", nil, "", "", errors.New("deadline exceeded"))
		require.Equal(t, -1, err.ExitCode())
	})
}
