package push

import (
	"fmt"
	"time"

	"pushit.dev/pushit/internal/config"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/runtime"
)

// commitTimeLayout is YYYY-MM-DD HH:MM:SS
const commitTimeLayout = "2006-01-02 15:04:05"

// DefaultCommitMessage is the message used when none is given
func DefaultCommitMessage(now time.Time) string {
	return "Update files - " + now.Format(commitTimeLayout)
}

// commit asks for confirmation and commits. It reports false when the
// operator declines, which ends the run successfully.
func commit(ctx *runtime.Context, opts config.Options, staged []string) (bool, error) {
	message := opts.CommitMessage
	if message == "" {
		message = DefaultCommitMessage(ctx.Now())
	}

	ctx.Splog.Info("Commit message: %s", message)
	ctx.Splog.Info("Target: %s/%s (%d file(s))", git.DefaultRemote, opts.Branch, len(staged))

	proceed, err := ctx.Prompter.Confirm("Proceed with commit and push?")
	if err != nil {
		ctx.Splog.Error("Could not read answer: %v", err)
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !proceed {
		ctx.Splog.Warn("Operation cancelled")
		return false, nil
	}

	ctx.Splog.Info("Committing...")
	if err := ctx.Git.Commit(ctx.Context, message); err != nil {
		ctx.Splog.Error("Commit failed")
		printGitOutput(ctx, err)
		return false, err
	}
	ctx.Splog.Success("Changes committed")
	return true, nil
}
