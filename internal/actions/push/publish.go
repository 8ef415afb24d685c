package push

import (
	"context"
	"fmt"
	"time"

	"pushit.dev/pushit/internal/config"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/github"
	"pushit.dev/pushit/internal/runtime"
)

// hostingTimeout bounds every best-effort call to the hosting service
const hostingTimeout = 10 * time.Second

// PushFailureSuggestions returns the remediation steps printed after a failed push
func PushFailureSuggestions(remote, branch string) []string {
	return []string{
		"Check your credentials (SSH key or access token)",
		"Check that you have permission to push to this repository",
		fmt.Sprintf("Pull remote changes first: git pull --rebase %s %s", remote, branch),
		"Check your network connection",
	}
}

// publish pushes the branch and reports where it went
func publish(ctx *runtime.Context, opts config.Options) error {
	remote := git.DefaultRemote

	exists, err := ctx.Git.RemoteBranchExists(ctx.Context, remote, opts.Branch)
	switch {
	case err != nil:
		ctx.Splog.Warn("Could not check whether '%s' exists on %s", opts.Branch, remote)
		ctx.Splog.Debug("%v", err)
	case exists:
		ctx.Splog.Info("Branch '%s' exists on %s", opts.Branch, remote)
	default:
		ctx.Splog.Info("Branch '%s' will be created on %s", opts.Branch, remote)
	}

	ctx.Splog.Info("Pushing to %s/%s...", remote, opts.Branch)
	if err := ctx.Git.Push(ctx.Context, remote, opts.Branch); err != nil {
		ctx.Splog.Error("Push to %s/%s failed", remote, opts.Branch)
		printGitOutput(ctx, err)
		ctx.Splog.Newline()
		ctx.Splog.Print("Possible solutions:")
		for i, s := range PushFailureSuggestions(remote, opts.Branch) {
			ctx.Splog.Print("  %d. %s", i+1, s)
		}
		return err
	}
	ctx.Splog.Success("Pushed to %s/%s", remote, opts.Branch)

	if summary, err := ctx.Git.LastCommitSummary(ctx.Context); err == nil {
		ctx.Splog.Info("Latest commit: %s", summary)
	} else {
		ctx.Splog.Debug("Could not read last commit: %v", err)
	}

	reportRepository(ctx, opts)
	return nil
}

// reportRepository prints the browser URL of a GitHub remote and, when a
// hosting client is available, where to open or find the pull request
func reportRepository(ctx *runtime.Context, opts config.Options) {
	remoteURL, err := ctx.Git.RemoteURL(ctx.Context, git.DefaultRemote)
	if err != nil {
		ctx.Splog.Debug("Could not read remote URL: %v", err)
		return
	}
	webURL, ok := github.BrowserURL(remoteURL)
	if !ok {
		return
	}
	ctx.Splog.Info("Repository: %s", webURL)

	info, err := github.ParseRemoteURL(remoteURL)
	if err == nil {
		reportPullRequest(ctx, info, opts.Branch)
	}

	if opts.OpenBrowser && ctx.OpenBrowser != nil {
		if err := ctx.OpenBrowser(ctx.Context, webURL); err != nil {
			ctx.Splog.Warn("Could not open browser: %v", err)
		}
	}
}

func reportPullRequest(ctx *runtime.Context, info *github.RepoInfo, branch string) {
	if ctx.Hosting == nil {
		return
	}
	c, cancel := context.WithTimeout(ctx.Context, hostingTimeout)
	defer cancel()

	client, err := ctx.Hosting(c, info.Hostname)
	if err != nil {
		ctx.Splog.Debug("Skipping pull request lookup: %v", err)
		return
	}

	pr, err := client.OpenPullRequest(c, info.Owner, info.Repo, branch)
	if err != nil {
		ctx.Splog.Debug("Could not look up pull requests: %v", err)
		return
	}
	if pr != nil {
		ctx.Splog.Info("Pull request #%d (%s): %s", pr.Number, pr.Title, pr.HTMLURL)
		return
	}

	defaultBranch, err := client.DefaultBranch(c, info.Owner, info.Repo)
	if err != nil {
		ctx.Splog.Debug("Could not read default branch: %v", err)
		return
	}
	if defaultBranch == "" || defaultBranch == branch {
		return
	}
	ctx.Splog.Info("Open a pull request: %s", info.CompareURL(defaultBranch, branch))
}

// finalStatus optionally shows git status once everything is pushed. The push
// already succeeded, so nothing here fails the run.
func finalStatus(ctx *runtime.Context) {
	show, err := ctx.Prompter.Confirm("Show final git status?")
	if err != nil {
		ctx.Splog.Debug("Could not read answer: %v", err)
		return
	}
	if !show {
		return
	}

	status, err := ctx.Git.Status(ctx.Context)
	if err != nil {
		ctx.Splog.Warn("Could not read git status")
		printGitOutput(ctx, err)
		return
	}
	ctx.Splog.Page(status)
}
