package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/testhelpers"
)

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

func TestGetRepoConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults when config does not exist", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		cfg, err := GetRepoConfig(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, DefaultBranch, cfg.Branch())
		require.False(t, cfg.ShouldOpenBrowser())
	})

	t.Run("round trips saved values", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		err := SaveRepoConfig(scene.Dir, &RepoConfig{
			DefaultBranch: stringPtr("develop"),
			OpenBrowser:   boolPtr(true),
		})
		require.NoError(t, err)

		cfg, err := GetRepoConfig(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "develop", cfg.Branch())
		require.True(t, cfg.ShouldOpenBrowser())
	})

	t.Run("empty branch falls back to main", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)
		require.NoError(t, os.WriteFile(RepoConfigPath(scene.Dir), []byte(`{"defaultBranch": ""}`), 0600))

		cfg, err := GetRepoConfig(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, DefaultBranch, cfg.Branch())
	})

	t.Run("invalid JSON is an error", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)
		require.NoError(t, os.WriteFile(RepoConfigPath(scene.Dir), []byte("{not json"), 0600))

		_, err := GetRepoConfig(scene.Dir)
		require.Error(t, err)
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		t.Parallel()
		var cfg *RepoConfig
		require.Equal(t, DefaultBranch, cfg.Branch())
		require.False(t, cfg.ShouldOpenBrowser())
	})
}
