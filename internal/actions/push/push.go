// Package push implements the pushit run: check the repository, stage, commit and push.
package push

import (
	"pushit.dev/pushit/internal/config"
	"pushit.dev/pushit/internal/runtime"
)

// Action runs the fixed sequence
//
//	CheckRepo → CheckRemote → DetectChanges → Stage → Commit → Push → [FinalStatus] → Done
//
// It returns nil for a completed run and for the benign early exits (clean
// tree, nothing staged, declined confirmation). Every returned error has
// already been reported to the operator and matches one of the sentinels in
// internal/errors where one applies.
func Action(ctx *runtime.Context, opts config.Options) error {
	if err := opts.Validate(); err != nil {
		ctx.Splog.Error("%v", err)
		return err
	}

	if err := checkRepository(ctx); err != nil {
		return err
	}

	if err := ensureRemote(ctx); err != nil {
		return err
	}

	files, err := detectChanges(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		ctx.Splog.Info("No changes to commit, working tree clean")
		return nil
	}

	staged, err := stage(ctx, opts)
	if err != nil {
		return err
	}
	if len(staged) == 0 {
		ctx.Splog.Warn("No files staged for commit")
		return nil
	}

	proceed, err := commit(ctx, opts, staged)
	if err != nil || !proceed {
		return err
	}

	if err := publish(ctx, opts); err != nil {
		return err
	}

	finalStatus(ctx)

	ctx.Splog.Success("All done!")
	return nil
}
