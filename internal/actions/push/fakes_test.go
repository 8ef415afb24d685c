package push_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pushiterrors "pushit.dev/pushit/internal/errors"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/github"
	"pushit.dev/pushit/internal/runtime"
	"pushit.dev/pushit/internal/tui"
)

type fakeResponse struct {
	out    string
	stderr string
	fail   bool
}

// fakeRunner answers git commands from a script keyed by the joined arguments
// and records every command it was asked to run
type fakeRunner struct {
	responses map[string]fakeResponse
	calls     []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{responses: map[string]fakeResponse{
		"rev-parse --is-inside-work-tree": {out: "true"},
		"remote":                          {out: "origin"},
		"status --porcelain":              {out: " M README.md\n?? notes.txt"},
		"diff --cached --name-only":       {out: "README.md\nnotes.txt"},
		"ls-remote --heads origin main":   {out: "abc123\trefs/heads/main"},
		"log -1 --oneline":                {out: "abc1234 Update files"},
		"remote get-url origin":           {out: "/srv/git/repo.git"},
		"status":                          {out: "On branch main\nnothing to commit, working tree clean"},
	}}
}

func (r *fakeRunner) on(command string, response fakeResponse) *fakeRunner {
	r.responses[command] = response
	return r
}

func (r *fakeRunner) Run(_ context.Context, args ...string) (string, error) {
	command := strings.Join(args, " ")
	r.calls = append(r.calls, command)
	response := r.responses[command]
	if response.fail {
		return "", pushiterrors.NewGitCommandError("git", args, response.out, response.stderr, errors.New("exit status 1"))
	}
	return response.out, nil
}

func (r *fakeRunner) ran(prefix string) bool {
	for _, call := range r.calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

// fakePrompter answers confirmations and inputs in order. Running out of
// answers fails the test.
type fakePrompter struct {
	t        *testing.T
	confirms []bool
	inputs   []string
	asked    []string
}

func (p *fakePrompter) Confirm(prompt string) (bool, error) {
	p.asked = append(p.asked, prompt)
	require.NotEmpty(p.t, p.confirms, "unexpected confirmation: %s", prompt)
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *fakePrompter) Input(prompt string) (string, error) {
	p.asked = append(p.asked, prompt)
	require.NotEmpty(p.t, p.inputs, "unexpected input: %s", prompt)
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	return answer, nil
}

type fakeHosting struct {
	defaultBranch string
	pr            *github.PullRequestInfo
	err           error
}

func (h *fakeHosting) DefaultBranch(context.Context, string, string) (string, error) {
	return h.defaultBranch, h.err
}

func (h *fakeHosting) OpenPullRequest(context.Context, string, string, string) (*github.PullRequestInfo, error) {
	return h.pr, h.err
}

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

type harness struct {
	ctx      *runtime.Context
	runner   *fakeRunner
	prompter *fakePrompter
	out      *bytes.Buffer
	opened   []string
	missing  map[string]bool
}

func newHarness(t *testing.T, runner *fakeRunner, confirms ...bool) *harness {
	t.Helper()

	out := &bytes.Buffer{}
	splog, err := tui.NewSplogWithConfig(tui.SplogOptions{Writer: out})
	require.NoError(t, err)

	h := &harness{
		runner:   runner,
		prompter: &fakePrompter{t: t, confirms: confirms},
		out:      out,
		missing:  map[string]bool{},
	}
	h.ctx = &runtime.Context{
		Context:  context.Background(),
		Git:      git.NewRepository(runner),
		Splog:    splog,
		Prompter: h.prompter,
		Now:      func() time.Time { return fixedNow },
		Stat: func(path string) error {
			if h.missing[path] {
				return fmt.Errorf("stat %s: no such file or directory", path)
			}
			return nil
		},
		OpenBrowser: func(_ context.Context, url string) error {
			h.opened = append(h.opened, url)
			return nil
		},
	}
	return h
}

func (h *harness) withHosting(hosting *fakeHosting) *harness {
	h.ctx.Hosting = func(context.Context, string) (github.RepositoryService, error) {
		return hosting, nil
	}
	return h
}
