package testhelpers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/testhelpers"
)

func TestSceneWithSetup(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewSceneParallel(t, func(scene *testhelpers.Scene) error {
		if err := scene.Repo.CreateChangeAndCommit("commit 1", "1"); err != nil {
			return err
		}
		return scene.Repo.CreateChangeAndCommit("commit 2", "2")
	})

	testhelpers.ExpectCommits(t, scene.Repo, "HEAD", []string{"commit 2", "commit 1"})
	require.Equal(t, 2, testhelpers.Must(scene.Repo.CommitCount("HEAD")))
	testhelpers.ExpectCleanWorkTree(t, scene.Repo)
}

func TestCreateChange(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewSceneParallel(t, nil)

	require.NoError(t, scene.Repo.CreateChange("staged", "a", false))
	require.NoError(t, scene.Repo.CreateChange("unstaged", "b", true))

	testhelpers.ExpectStaged(t, scene.Repo, []string{testhelpers.ChangeFileName("a")})
}

func TestBareRemote(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewSceneParallel(t, func(scene *testhelpers.Scene) error {
		return scene.Repo.CreateChangeAndCommit("initial", "init")
	})
	bare, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)

	testhelpers.ExpectNoRemoteBranch(t, bare, "main")
	require.NoError(t, scene.Repo.PushBranch("origin", "main"))
	testhelpers.ExpectRemoteHead(t, scene.Repo, bare, "main", "HEAD")
}
