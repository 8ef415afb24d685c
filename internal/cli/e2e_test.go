package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/testhelpers"
)

func pushitBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("builds the pushit binary")
	}
	path, err := testhelpers.GetSharedBinaryPath()
	require.NoError(t, err)
	return path
}

func TestBinary(t *testing.T) {
	t.Parallel()
	binary := pushitBinary(t)

	t.Run("pushes and exits zero", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})
		bare := testhelpers.Must(scene.Repo.CreateBareRemote("origin"))
		require.NoError(t, scene.Repo.CreateChange("change", "a", true))

		out, code, err := testhelpers.RunBinary(binary, scene.Dir, "y\nn\n", "-m", "Ship it", "--unknown-flag")
		require.NoError(t, err)
		require.Equal(t, 0, code, out)
		require.Contains(t, out, "[SUCCESS] All done!")
		testhelpers.ExpectCommits(t, scene.Repo, "HEAD", []string{"Ship it"})
		testhelpers.ExpectRemoteHead(t, scene.Repo, bare, "main", "HEAD")
	})

	t.Run("unknown flag before the file keeps the file", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})
		_ = testhelpers.Must(scene.Repo.CreateBareRemote("origin"))
		require.NoError(t, scene.Repo.CreateChange("change", "a", true))
		require.NoError(t, scene.Repo.CreateChange("change", "b", true))

		out, code, err := testhelpers.RunBinary(binary, scene.Dir, "y\nn\n", "--force", testhelpers.ChangeFileName("a"))
		require.NoError(t, err)
		require.Equal(t, 0, code, out)
		status, err := scene.Repo.RunGitCommandAndGetOutput("status", "--porcelain")
		require.NoError(t, err)
		require.Equal(t, "?? "+testhelpers.ChangeFileName("b"), status)
	})

	t.Run("declining exits zero", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})
		_ = testhelpers.Must(scene.Repo.CreateBareRemote("origin"))
		require.NoError(t, scene.Repo.CreateChange("change", "a", true))

		out, code, err := testhelpers.RunBinary(binary, scene.Dir, "n\n")
		require.NoError(t, err)
		require.Equal(t, 0, code, out)
		require.Contains(t, out, "Operation cancelled")
	})

	t.Run("missing file exits one", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})
		_ = testhelpers.Must(scene.Repo.CreateBareRemote("origin"))
		require.NoError(t, scene.Repo.CreateChange("change", "a", true))

		out, code, err := testhelpers.RunBinary(binary, scene.Dir, "", "-f", "missing.txt")
		require.NoError(t, err)
		require.Equal(t, 1, code, out)
		require.Contains(t, out, "[ERROR] File not found: missing.txt")
	})

	t.Run("outside a repository exits one", func(t *testing.T) {
		t.Parallel()
		out, code, err := testhelpers.RunBinary(binary, t.TempDir(), "")
		require.NoError(t, err)
		require.Equal(t, 1, code, out)
		require.Contains(t, out, "[ERROR] Not a git repository")
	})

	t.Run("help exits zero", func(t *testing.T) {
		t.Parallel()
		out, code, err := testhelpers.RunBinary(binary, t.TempDir(), "", "--help")
		require.NoError(t, err)
		require.Equal(t, 0, code)
		require.Contains(t, out, "Usage:")
	})
}
