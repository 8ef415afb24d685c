// Package cli wires the pushit command line onto the push action.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pushit.dev/pushit/internal/actions/push"
	"pushit.dev/pushit/internal/config"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/runtime"
	"pushit.dev/pushit/internal/tui"
)

// runFunc executes a parsed invocation
type runFunc func(cmd *cobra.Command, opts config.Options, verbose bool) error

// rootFlags holds the raw flag values before they become config.Options
type rootFlags struct {
	file    string
	message string
	branch  string
	all     bool
	open    bool
	verbose bool
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	cmd := newRootCmd(runPush)
	cmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	return cmd
}

func newRootCmd(run runFunc) *cobra.Command {
	var f rootFlags

	rootCmd := &cobra.Command{
		Use:   "pushit [file]",
		Short: "Stage, commit and push your changes in one go",
		Long: `pushit checks the repository, stages changes, commits them and pushes
the result to origin, asking before anything is committed.

Without a file every change is staged. A positional argument is used as the
file when --file is not given.`,
		Example: `  pushit -m "Fix typo"
  pushit -f README.md -m "Update docs" -b develop
  pushit --all`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, buildOptions(f, args), f.verbose)
		},
	}

	rootCmd.Flags().StringVarP(&f.file, "file", "f", "", "File to stage (default: all changes)")
	rootCmd.Flags().StringVarP(&f.message, "message", "m", "", `Commit message (default: "Update files - <timestamp>")`)
	rootCmd.Flags().StringVarP(&f.branch, "branch", "b", config.DefaultBranch, "Branch to push to")
	rootCmd.Flags().BoolVarP(&f.all, "all", "a", false, "Stage all changes, even when a file is given")
	rootCmd.Flags().BoolVar(&f.open, "open", false, "Open the repository in the browser after pushing")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Show debug output")

	_ = rootCmd.RegisterFlagCompletionFunc("branch", completeBranches)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if splog, serr := tui.NewSplogWithConfig(tui.SplogOptions{Writer: cmd.OutOrStdout()}); serr == nil {
			splog.Error("%v", err)
		}
		return err
	})

	return rootCmd
}

// buildOptions turns flag values and positional arguments into the invocation options
func buildOptions(f rootFlags, args []string) config.Options {
	target := f.file
	if target == "" && len(args) > 0 {
		target = args[0]
	}
	return config.Options{
		TargetPath:    target,
		CommitMessage: f.message,
		Branch:        f.branch,
		StageAll:      f.all,
		OpenBrowser:   f.open,
	}
}

// applyRepoConfig fills in defaults from the repository config for flags the
// operator did not set explicitly
func applyRepoConfig(opts config.Options, cfg *config.RepoConfig, changed func(name string) bool) config.Options {
	if !changed("branch") {
		opts.Branch = cfg.Branch()
	}
	if !changed("open") && cfg.ShouldOpenBrowser() {
		opts.OpenBrowser = true
	}
	return opts
}

// runPush runs the push action against the real git binary
func runPush(cmd *cobra.Command, opts config.Options, verbose bool) error {
	splog, err := tui.NewSplogWithConfig(tui.SplogOptions{
		Writer:      cmd.OutOrStdout(),
		LogFilePath: tui.GetLogFilePath(),
		Debug:       verbose || os.Getenv("DEBUG") != "",
	})
	if err != nil {
		// File logging is optional, keep going on the console
		splog, _ = tui.NewSplogWithConfig(tui.SplogOptions{
			Writer: cmd.OutOrStdout(),
			Debug:  verbose || os.Getenv("DEBUG") != "",
		})
		splog.Debug("File logging disabled: %v", err)
	}
	defer func() { _ = splog.Close() }()

	ctx := runtime.NewContext(cmd.Context(), "", splog)

	if wd, err := os.Getwd(); err == nil {
		if root, err := git.FindRepoRoot(wd); err == nil {
			cfg, err := config.GetRepoConfig(root)
			if err != nil {
				splog.Warn("Ignoring repository config: %v", err)
				cfg = &config.RepoConfig{}
			}
			opts = applyRepoConfig(opts, cfg, cmd.Flags().Changed)
		}
	}

	splog.Debug("Running with branch=%s file=%q all=%t", opts.Branch, opts.TargetPath, opts.StageAll)
	return push.Action(ctx, opts)
}
