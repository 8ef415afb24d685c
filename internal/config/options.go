package config

import (
	"fmt"
	"strings"

	pushiterrors "pushit.dev/pushit/internal/errors"
)

// DefaultBranch is the branch pushed when neither a flag nor the repo config names one
const DefaultBranch = "main"

// Options is the invocation configuration of a single run. It is built once
// from the command line and passed by value to every step.
type Options struct {
	// TargetPath is the single file to stage; empty stages everything
	TargetPath string
	// CommitMessage is the commit message; empty generates one
	CommitMessage string
	// Branch is the remote branch to push to
	Branch string
	// StageAll stages every change even when TargetPath is set
	StageAll bool
	// OpenBrowser opens the repository page after a successful push
	OpenBrowser bool
}

// Validate checks the invariants of the options
func (o Options) Validate() error {
	if strings.TrimSpace(o.Branch) == "" {
		return fmt.Errorf("%w: branch name cannot be empty", pushiterrors.ErrInvalidBranch)
	}
	return nil
}
