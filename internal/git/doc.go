// Package git provides the git operations pushit delegates to the git binary.
//
// It wraps git command execution behind the Runner interface and provides:
//   - Repository checks (work tree detection, repository root)
//   - Remote operations (list, add, URL lookup, branch existence, push)
//   - Staging and commit (status, add, staged names, commit)
//
// This package should be the only place where direct git commands are executed.
package git
