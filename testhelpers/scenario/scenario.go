// Package scenario combines a Scene with a runtime Context wired to it, giving
// push integration tests a terse API over a real repository.
package scenario

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/internal/actions/push"
	"pushit.dev/pushit/internal/config"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/runtime"
	"pushit.dev/pushit/internal/tui"
	"pushit.dev/pushit/testhelpers"
)

// FixedTime is the clock every scenario reports
var FixedTime = time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)

// Scenario is a repository plus a runtime Context that runs git in it,
// answers prompts from a script and captures console output.
type Scenario struct {
	T       *testing.T
	Scene   *testhelpers.Scene
	Context *runtime.Context
	Output  *bytes.Buffer
	// BareRemote is the path of the "origin" remote once WithRemote ran
	BareRemote string
	// Opened records the URLs the run asked the browser to open
	Opened []string
}

// NewScenario creates a Scenario over a fresh repository. It is safe for
// parallel tests: nothing touches the process working directory.
func NewScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()

	scene := testhelpers.NewSceneParallel(t, setup)
	out := &bytes.Buffer{}
	splog, err := tui.NewSplogWithConfig(tui.SplogOptions{Writer: out})
	require.NoError(t, err)

	s := &Scenario{T: t, Scene: scene, Output: out}
	s.Context = &runtime.Context{
		Context:  context.Background(),
		Git:      git.NewRepository(git.NewCommandRunner(scene.Dir)),
		Splog:    splog,
		Prompter: tui.NewLinePrompter(strings.NewReader(""), out),
		Now:      func() time.Time { return FixedTime },
		Stat: func(path string) error {
			if !filepath.IsAbs(path) {
				path = filepath.Join(scene.Dir, path)
			}
			return runtime.StatFile(path)
		},
		OpenBrowser: func(_ context.Context, url string) error {
			s.Opened = append(s.Opened, url)
			return nil
		},
	}
	return s
}

// WithInitialCommit creates an initial commit on main.
func (s *Scenario) WithInitialCommit() *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.CreateChangeAndCommit("initial", "init"))
	return s
}

// WithRemote adds a bare "origin" remote.
func (s *Scenario) WithRemote() *Scenario {
	s.T.Helper()
	s.BareRemote = testhelpers.Must(s.Scene.Repo.CreateBareRemote(git.DefaultRemote))
	return s
}

// WithUncommittedChange writes an unstaged change to <name>_test.txt.
func (s *Scenario) WithUncommittedChange(name string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.CreateChange("change "+name, name, true))
	return s
}

// WithAnswers scripts the prompt answers, one line each, in order.
func (s *Scenario) WithAnswers(answers ...string) *Scenario {
	input := strings.Join(answers, "\n")
	if len(answers) > 0 {
		input += "\n"
	}
	s.Context.Prompter = tui.NewLinePrompter(strings.NewReader(input), s.Output)
	return s
}

// RunGit runs a git command in the scenario's repository.
func (s *Scenario) RunGit(args ...string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.RunGitCommand(args...))
	return s
}

// Run runs the push action with opts, defaulting the branch to main.
func (s *Scenario) Run(opts config.Options) error {
	if opts.Branch == "" {
		opts.Branch = config.DefaultBranch
	}
	return push.Action(s.Context, opts)
}

// ExpectOutput asserts the captured output contains every fragment.
func (s *Scenario) ExpectOutput(fragments ...string) *Scenario {
	s.T.Helper()
	for _, fragment := range fragments {
		require.Contains(s.T, s.Output.String(), fragment)
	}
	return s
}

// ExpectCommitCount asserts how many commits HEAD has.
func (s *Scenario) ExpectCommitCount(expected int) *Scenario {
	s.T.Helper()
	count, err := s.Scene.Repo.CommitCount("HEAD")
	require.NoError(s.T, err)
	require.Equal(s.T, expected, count)
	return s
}
