package runtime

import (
	"context"
	"fmt"
	"os"
	"time"

	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/github"
	"pushit.dev/pushit/internal/tui"
	"pushit.dev/pushit/internal/utils"
)

// HostingFactory builds a hosting client for a remote host. It returns an
// error when no client can be built, e.g. without a token.
type HostingFactory func(ctx context.Context, hostname string) (github.RepositoryService, error)

// Context provides access to git, output and prompts for the push action
type Context struct {
	Context  context.Context
	Git      *git.Repository
	Splog    *tui.Splog
	Prompter tui.Prompter

	// Hosting builds the hosting client used after a successful push; nil disables it
	Hosting HostingFactory

	// Now returns the local time used for generated commit messages
	Now func() time.Time
	// Stat checks that a path names an existing file, not a directory
	Stat func(path string) error
	// OpenBrowser opens a URL in the browser
	OpenBrowser func(ctx context.Context, url string) error
}

// NewContext creates a context that runs the real git binary in workingDir
// and talks to the operator on the terminal
func NewContext(ctx context.Context, workingDir string, splog *tui.Splog) *Context {
	return &Context{
		Context:  ctx,
		Git:      git.NewRepository(git.NewCommandRunner(workingDir)),
		Splog:    splog,
		Prompter: tui.NewPrompter(),
		Hosting: func(ctx context.Context, hostname string) (github.RepositoryService, error) {
			return github.NewClient(ctx, hostname)
		},
		Now:         time.Now,
		Stat:        StatFile,
		OpenBrowser: utils.OpenBrowser,
	}
}

// StatFile returns an error unless path exists and is not a directory
func StatFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
