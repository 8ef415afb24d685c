package push

import (
	"strings"

	"pushit.dev/pushit/internal/config"
	pushiterrors "pushit.dev/pushit/internal/errors"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/runtime"
)

// detectChanges lists every modified, added, deleted or untracked path
func detectChanges(ctx *runtime.Context) ([]git.FileStatus, error) {
	ctx.Splog.Info("Checking for changes...")
	files, err := ctx.Git.ModifiedFiles(ctx.Context)
	if err != nil {
		ctx.Splog.Error("Could not read the working tree status")
		printGitOutput(ctx, err)
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	ctx.Splog.Info("Modified files:")
	for _, f := range files {
		ctx.Splog.Print("  %s", f)
	}
	return files, nil
}

// stage stages what the options ask for and returns the staged set
func stage(ctx *runtime.Context, opts config.Options) ([]string, error) {
	switch {
	case opts.StageAll:
		ctx.Splog.Info("Staging all changes...")
		if err := ctx.Git.StageAll(ctx.Context); err != nil {
			ctx.Splog.Error("Failed to stage changes")
			printGitOutput(ctx, err)
			return nil, err
		}
	case opts.TargetPath != "":
		if err := ctx.Stat(opts.TargetPath); err != nil {
			ctx.Splog.Error("File not found: %s", opts.TargetPath)
			return nil, pushiterrors.NewFileNotFoundError(opts.TargetPath)
		}
		ctx.Splog.Info("Staging %s...", opts.TargetPath)
		if err := ctx.Git.StageFile(ctx.Context, opts.TargetPath); err != nil {
			ctx.Splog.Error("Failed to stage %s", opts.TargetPath)
			printGitOutput(ctx, err)
			return nil, err
		}
	default:
		ctx.Splog.Info("No file specified, staging all changes...")
		if err := ctx.Git.StageAll(ctx.Context); err != nil {
			ctx.Splog.Error("Failed to stage changes")
			printGitOutput(ctx, err)
			return nil, err
		}
	}

	staged, err := ctx.Git.StagedFiles(ctx.Context)
	if err != nil {
		ctx.Splog.Error("Could not list staged files")
		printGitOutput(ctx, err)
		return nil, err
	}
	if len(staged) > 0 {
		ctx.Splog.Info("Files staged for commit:")
		for _, f := range staged {
			ctx.Splog.Print("  %s", f)
		}
	}
	return staged, nil
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}
