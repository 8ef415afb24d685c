package push

import (
	"fmt"

	pushiterrors "pushit.dev/pushit/internal/errors"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/runtime"
)

func checkRepository(ctx *runtime.Context) error {
	if !ctx.Git.IsRepository(ctx.Context) {
		ctx.Splog.Error("Not a git repository. Run pushit from inside a git work tree.")
		return pushiterrors.ErrNotARepository
	}
	ctx.Splog.Debug("Inside a git work tree")
	return nil
}

// ensureRemote makes sure "origin" exists, offering to add it when it does not
func ensureRemote(ctx *runtime.Context) error {
	hasOrigin, err := ctx.Git.HasRemote(ctx.Context, git.DefaultRemote)
	if err != nil {
		ctx.Splog.Error("Could not list remotes: %v", err)
		return fmt.Errorf("%w: %w", pushiterrors.ErrNoRemoteConfigured, err)
	}
	if hasOrigin {
		return nil
	}

	ctx.Splog.Warn("No remote '%s' configured", git.DefaultRemote)
	add, err := ctx.Prompter.Confirm(fmt.Sprintf("Would you like to add a remote '%s'?", git.DefaultRemote))
	if err != nil {
		ctx.Splog.Error("Could not read answer: %v", err)
		return fmt.Errorf("%w: %w", pushiterrors.ErrNoRemoteConfigured, err)
	}
	if !add {
		ctx.Splog.Error("A remote '%s' is required to push", git.DefaultRemote)
		return pushiterrors.ErrNoRemoteConfigured
	}

	url, err := ctx.Prompter.Input("Enter the remote repository URL:")
	if err != nil {
		ctx.Splog.Error("Could not read URL: %v", err)
		return fmt.Errorf("%w: %w", pushiterrors.ErrNoRemoteConfigured, err)
	}
	if url == "" {
		ctx.Splog.Error("No URL provided")
		return pushiterrors.ErrNoRemoteConfigured
	}

	if err := ctx.Git.AddRemote(ctx.Context, git.DefaultRemote, url); err != nil {
		ctx.Splog.Error("Failed to add remote '%s'", git.DefaultRemote)
		printGitOutput(ctx, err)
		return fmt.Errorf("%w: %w", pushiterrors.ErrNoRemoteConfigured, err)
	}
	ctx.Splog.Success("Remote '%s' added: %s", git.DefaultRemote, url)
	return nil
}

// printGitOutput shows what git said about a failed command, indented
func printGitOutput(ctx *runtime.Context, err error) {
	out := git.CommandOutput(err)
	if out == "" {
		ctx.Splog.Debug("%v", err)
		return
	}
	ctx.Splog.Page(indent(out))
}
